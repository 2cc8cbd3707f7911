package demangle

import "github.com/9inefold/debase/internal/symfeat"

// microsoftDemangler implements a restricted subset of the MSVC name-
// mangling grammar: enough to recover the qualified-name component list and
// detect the constructor (?0) / destructor (?1) special-name codes. Other
// special names (operators, vtables, RTTI, ...) are classified Other
// without further decoding, since the matcher never looks inside them.
type microsoftDemangler struct{}

func (microsoftDemangler) Classify(mangled string, out *symfeat.Features) symfeat.Kind {
	out.Clear()

	if mangled == "" || mangled[0] != '?' {
		return symfeat.Invalid
	}
	pos := 1

	kind := symfeat.Ignorable
	variant := 0
	if pos < len(mangled) && mangled[pos] == '?' {
		pos++
		if pos >= len(mangled) {
			return symfeat.Invalid
		}
		code := mangled[pos]
		pos++
		switch code {
		case '0':
			kind = symfeat.Ctor
			variant = 1
		case '1':
			kind = symfeat.Dtor
			variant = 1
		default:
			return symfeat.Other
		}
	}

	components, ok := parseComponentChain(mangled, pos)
	if !ok || len(components) == 0 {
		return symfeat.Invalid
	}

	name0 := components[0]
	innermostFirst := components[1:]
	outer := reverseStrings(innermostFirst)

	switch kind {
	case symfeat.Ctor, symfeat.Dtor:
		out.ScopeNames = append(append([]string{}, outer...), name0, name0)
		out.BaseName = name0
		out.Kind = kind
		out.Variant = variant
		return kind
	default:
		out.ScopeNames = append(append([]string{}, outer...), name0)
		out.BaseName = name0
		out.Kind = symfeat.Ignorable
		return symfeat.Ignorable
	}
}

// parseComponentChain reads a sequence of '@'-terminated identifiers,
// innermost first, stopping at the empty component that precedes the
// closing "@@".
func parseComponentChain(s string, pos int) ([]string, bool) {
	var components []string
	for {
		start := pos
		for pos < len(s) && s[pos] != '@' {
			pos++
		}
		if pos >= len(s) {
			return nil, false
		}
		component := s[start:pos]
		pos++ // consume '@'
		if component == "" {
			return components, true
		}
		components = append(components, component)
	}
}

func reverseStrings(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
