package fileprop

import "testing"

func TestCacheProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		wantStem string
		wantDir  string
		wantExt  string
	}{
		{
			name:     "nested path",
			filename: "bindings/CCScheduler.cpp",
			wantStem: "CCScheduler",
			wantDir:  "bindings",
			wantExt:  ".cpp",
		},
		{
			name:     "bare filename",
			filename: "CCLightning.cpp",
			wantStem: "CCLightning",
			wantDir:  "",
			wantExt:  ".cpp",
		},
		{
			name:     "no extension",
			filename: "src/README",
			wantStem: "README",
			wantDir:  "src",
			wantExt:  "",
		},
		{
			name:     "multiple dots",
			filename: "src/foo.pb.cc",
			wantStem: "foo.pb",
			wantDir:  "src",
			wantExt:  ".cc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New(tt.filename)
			if got := c.Stem(); got != tt.wantStem {
				t.Errorf("Stem() = %q, want %q", got, tt.wantStem)
			}
			if got := c.Dir(); got != tt.wantDir {
				t.Errorf("Dir() = %q, want %q", got, tt.wantDir)
			}
			if got := c.Ext(); got != tt.wantExt {
				t.Errorf("Ext() = %q, want %q", got, tt.wantExt)
			}
		})
	}
}

func TestCachePropertyEmptyNameReturnsWholeFilename(t *testing.T) {
	t.Parallel()
	c := New("a/b/c.cpp")
	got, err := c.Property("")
	if err != nil {
		t.Fatalf("Property(\"\") returned error: %v", err)
	}
	if got != "a/b/c.cpp" {
		t.Errorf("Property(\"\") = %q, want %q", got, "a/b/c.cpp")
	}
}

func TestCachePropertyUnknownName(t *testing.T) {
	t.Parallel()
	c := New("a.cpp")
	_, err := c.Property("bogus")
	if err == nil {
		t.Fatal("expected error for unknown property")
	}
	var unknown *ErrUnknownProperty
	if !isUnknownProperty(err, &unknown) {
		t.Errorf("expected ErrUnknownProperty, got %T: %v", err, err)
	}
}

func isUnknownProperty(err error, target **ErrUnknownProperty) bool {
	e, ok := err.(*ErrUnknownProperty)
	if !ok {
		return false
	}
	*target = e
	return true
}
