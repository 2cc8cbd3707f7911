package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9inefold/debase/internal/demangle"
	"github.com/9inefold/debase/internal/matcher"
)

func TestParseABI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    demangle.ABI
		wantErr bool
	}{
		{"itanium", demangle.Itanium, false},
		{"", demangle.Itanium, false},
		{"microsoft", demangle.Microsoft, false},
		{"msvc", demangle.Microsoft, false},
		{"MSVC", demangle.Microsoft, false},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseABI(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestRunSymbolsFileClassifiesLines(t *testing.T) {
	t.Parallel()

	m, err := matcher.New(nil, false)
	require.NoError(t, err)
	// Demangled structor features end in the base name twice (scope chain
	// plus the ctor/dtor name), so the pattern spells the full qualified name.
	require.NoError(t, m.AddPattern("cocos2d::CCScheduler::CCScheduler", true, true))

	symbolsPath := writeTempFile(t, "_ZN7cocos2d11CCSchedulerC2Ev\n_ZN7cocos2d7CCOtherC2Ev\n")

	color.NoColor = true
	output := captureStdout(t, func() {
		err := runSymbolsFile(m, demangle.For(demangle.Itanium), symbolsPath)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "DEBASE")
	assert.Contains(t, output, "KEEP")
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "symbols-*.txt")
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString(content)
	require.NoError(t, err)
	return f.Name()
}
