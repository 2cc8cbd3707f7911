package pattern

import "regexp"

// SinglePattern is a leaf predicate over exactly one scope name.
type SinglePattern interface {
	MatchSingle(name string) bool
}

// Node is a compiled pattern-tree node matching a run of scope names. Every
// variant reports whether its consumed width is fixed (and if so, what it
// is) so AnySequence, LeadingGlob, and ButterflyGlob can do their arithmetic
// without re-deriving it from the tree shape.
type Node interface {
	Match(names []string) bool
	// Width reports the node's fixed scope-name count. ok is false for
	// variable-width nodes (LeadingGlob, ButterflyGlob).
	Width() (count int, ok bool)
}

// Simple matches an exact scope-name list positionwise.
type Simple struct {
	Parts []string
}

func (n *Simple) Width() (int, bool) { return len(n.Parts), true }

func (n *Simple) Match(names []string) bool {
	if len(names) != len(n.Parts) {
		return false
	}
	for i, p := range n.Parts {
		if names[i] != p {
			return false
		}
	}
	return true
}

// LeadingSimple is Simple's counterpart for the leading half of a
// ButterflyGlob: ButterflyGlob always pre-slices its children to their exact
// Width() before calling Match, so an all-literal leading half only ever
// needs positional equality over that slice. Kept as its own type (rather
// than reusing Simple) to keep the leading half visibly distinct in the
// compiled tree.
type LeadingSimple struct {
	Parts []string
}

func (n *LeadingSimple) Width() (int, bool) { return len(n.Parts), true }

func (n *LeadingSimple) Match(names []string) bool {
	if len(names) != len(n.Parts) {
		return false
	}
	for i, p := range n.Parts {
		if names[i] != p {
			return false
		}
	}
	return true
}

// SingleSequence matches one scope name per leaf, positionwise.
type SingleSequence struct {
	Items []SinglePattern
}

func (n *SingleSequence) Width() (int, bool) { return len(n.Items), true }

func (n *SingleSequence) Match(names []string) bool {
	if len(names) != len(n.Items) {
		return false
	}
	for i, item := range n.Items {
		if !item.MatchSingle(names[i]) {
			return false
		}
	}
	return true
}

// AnySequence concatenates fixed-width children: each child consumes its own
// Width() names off the front, in order, with nothing left over.
type AnySequence struct {
	Items []Node
}

func (n *AnySequence) Width() (int, bool) {
	total := 0
	for _, item := range n.Items {
		w, ok := item.Width()
		if !ok {
			return 0, false
		}
		total += w
	}
	return total, true
}

func (n *AnySequence) Match(names []string) bool {
	rest := names
	for _, item := range n.Items {
		w, ok := item.Width()
		if !ok {
			return false
		}
		if len(rest) < w {
			return false
		}
		if !item.Match(rest[:w]) {
			return false
		}
		rest = rest[w:]
	}
	return len(rest) == 0
}

// Forwarding lifts a one-segment SinglePattern into the Node interface.
type Forwarding struct {
	Inner SinglePattern
}

func (n *Forwarding) Width() (int, bool) { return 1, true }

func (n *Forwarding) Match(names []string) bool {
	return len(names) == 1 && n.Inner.MatchSingle(names[0])
}

// LeadingGlob matches a non-empty prefix, with Trailing pinned to the tail.
// Unlike ButterflyGlob's middle, the glob here requires at least one name:
// a scope list exactly as wide as Trailing does not match.
type LeadingGlob struct {
	Trailing Node
}

func (n *LeadingGlob) Width() (int, bool) { return 0, false }

func (n *LeadingGlob) Match(names []string) bool {
	w, ok := n.Trailing.Width()
	if !ok || len(names) <= w {
		return false
	}
	return n.Trailing.Match(names[len(names)-w:])
}

// ButterflyGlob pins Leading at the start and Trailing at the end, with an
// unconstrained (possibly empty) middle.
type ButterflyGlob struct {
	Leading  Node
	Trailing Node
}

func (n *ButterflyGlob) Width() (int, bool) { return 0, false }

func (n *ButterflyGlob) Match(names []string) bool {
	lw, ok := n.Leading.Width()
	if !ok {
		return false
	}
	tw, ok := n.Trailing.Width()
	if !ok {
		return false
	}
	if len(names) < lw+tw {
		return false
	}
	return n.Leading.Match(names[:lw]) && n.Trailing.Match(names[len(names)-tw:])
}

// Solo matches a single scope name by string equality. Replacer is non-nil
// when the literal originated from a `{file.member}`/`{input.member}`
// reference and is rewritten on every SetFilename.
type Solo struct {
	Literal  string
	Replacer *Replacer
}

func (s *Solo) MatchSingle(name string) bool { return name == s.Literal }

// Regex matches a single scope name against a compiled, fully-anchored
// regular expression. Replacer is non-nil when the source text embeds
// late-bind holes and must be recompiled on every SetFilename.
type Regex struct {
	Source   string
	Compiled *regexp.Regexp
	Replacer *Replacer
}

func (r *Regex) MatchSingle(name string) bool {
	if r.Compiled == nil {
		return false
	}
	return r.Compiled.MatchString(name)
}

// anchoredRegex compiles source as a whole-string match: the pattern
// language has no concept of partial scope-name matches.
func anchoredRegex(source string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + source + ")$")
}
