package pattern

// TokenKind tags what a pattern token represents.
type TokenKind int

const (
	// Simple is a literal scope-segment identifier.
	Simple TokenKind = iota
	// Anonymous is the `@` anonymous-namespace marker.
	Anonymous
	// Glob is the `**` wildcard-scope marker.
	Glob
	// This is an unresolved `{this.member}`/`{self.member}` reference —
	// only ever produced when no file-property cache was available at
	// lex time, and always rejected at compile time.
	This
	// LateBind is a `{file.member}`/`{input.member}` reference that
	// resolves when the matcher's SetFilename fires.
	LateBind
	// SimpleFmt is a literal string with `{n}` holes, no regex metachars.
	SimpleFmt
	// Regex is a regex string with no holes.
	Regex
	// RegexFmt is a regex string with `{n}` holes.
	RegexFmt
)

func (k TokenKind) String() string {
	switch k {
	case Simple:
		return "Simple"
	case Anonymous:
		return "Anonymous"
	case Glob:
		return "Glob"
	case This:
		return "This"
	case LateBind:
		return "LateBind"
	case SimpleFmt:
		return "SimpleFmt"
	case Regex:
		return "Regex"
	case RegexFmt:
		return "RegexFmt"
	default:
		return "Unknown"
	}
}

// Token is a single lexical unit of one scope segment. Text carries the
// token's payload: the literal for Simple, the regex/format string for
// Regex/RegexFmt/SimpleFmt. Member carries the property name ("", "stem",
// "dir", "ext") for This/LateBind. Trailing counts the compound token's hole
// arguments (themselves This/LateBind tokens) that immediately follow it in
// the token stream, in order.
type Token struct {
	Kind     TokenKind
	Text     string
	Member   string
	Trailing int
	Grouped  bool // set on all but the last trailing argument
	Modified bool
}

// IsCompoundHead reports whether t introduces trailing hole-argument tokens.
func (t Token) IsCompoundHead() bool {
	return t.Kind == SimpleFmt || t.Kind == RegexFmt
}

// IsReplacementLeaf reports whether t is itself a This/LateBind reference.
func (t Token) IsReplacementLeaf() bool {
	return t.Kind == This || t.Kind == LateBind
}
