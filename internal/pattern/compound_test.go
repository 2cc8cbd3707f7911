package pattern

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLexCompound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		segment string
		want    []Token
		wantErr ErrorKind
	}{
		{
			name:    "slashes are stripped",
			segment: "/CC[A-Z][a-z]+/",
			want: []Token{
				{Kind: Regex, Text: "CC[A-Z][a-z]+"},
			},
		},
		{
			name:    "wildcard dot expands to identifier class",
			segment: "CC.Node",
			want: []Token{
				{Kind: Regex, Text: "CC[A-Za-z0-9_$]Node"},
			},
		},
		{
			name:    "escape classes expand",
			segment: `CC\d+`,
			want: []Token{
				{Kind: Regex, Text: "CC[0-9]+"},
			},
		},
		{
			name:    "late-bind hole inside compound",
			segment: "CC{file.stem}*",
			want: []Token{
				{Kind: RegexFmt, Text: "CC{0}*", Trailing: 1},
				{Kind: LateBind, Member: "stem"},
			},
		},
		{
			name:    "duplicate hole bodies dedupe",
			segment: "{file.stem}_{file.stem}",
			want: []Token{
				{Kind: SimpleFmt, Text: "{0}_{0}", Trailing: 1},
				{Kind: LateBind, Member: "stem"},
			},
		},
		{
			name:    "posix class is copied verbatim",
			segment: "[[:upper:]][[:lower:]]+",
			want: []Token{
				{Kind: Regex, Text: "[[:upper:]][[:lower:]]+"},
			},
		},
		{
			name:    "quantifier without atom is fatal",
			segment: "*Foo",
			wantErr: QuantifierMisuse,
		},
		{
			name:    "double question mark is fatal",
			segment: "Foo??",
			wantErr: QuantifierMisuse,
		},
		{
			name:    "star after star is fatal",
			segment: "Foo**Bar",
			wantErr: QuantifierMisuse,
		},
		{
			name:    "lazy question after star is fine",
			segment: "Fo*?Bar",
			want: []Token{
				{Kind: Regex, Text: "Fo*?Bar"},
			},
		},
		{
			name:    "unrecognized escape is fatal",
			segment: `Foo\q`,
			wantErr: InvalidEscape,
		},
		{
			name:    "whitespace escape is fatal",
			segment: `Foo\n`,
			wantErr: InvalidEscape,
		},
		{
			name:    "capture groups are unsupported",
			segment: "(Foo)",
			wantErr: UnsupportedFeature,
		},
		{
			name:    "empty character class is fatal",
			segment: "[]",
			wantErr: InvalidCharClass,
		},
		{
			name:    "dash at class edge is fatal",
			segment: "[-abc]",
			wantErr: InvalidCharClass,
		},
		{
			name:    "cross-case range is fatal",
			segment: "[A-z]",
			wantErr: InvalidCharClass,
		},
		{
			name:    "unknown posix class is fatal",
			segment: "[[:vowel:]]",
			wantErr: InvalidCharClass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := lexCompound("", tt.segment, nil)
			if tt.wantErr != 0 {
				if err == nil {
					t.Fatalf("lexCompound() = %v, want error %v", got, tt.wantErr)
				}
				perr, ok := err.(*Error)
				if !ok {
					t.Fatalf("lexCompound() error type = %T, want *pattern.Error", err)
				}
				if perr.Kind != tt.wantErr {
					t.Fatalf("lexCompound() error kind = %v, want %v", perr.Kind, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("lexCompound() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("lexCompound() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
