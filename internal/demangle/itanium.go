package demangle

import "github.com/9inefold/debase/internal/symfeat"

// itaniumDemangler implements a restricted subset of the Itanium C++ ABI
// name-mangling grammar: enough of <nested-name> and <unqualified-name> to
// recover the scope chain and detect constructor/destructor markers. It
// does not attempt to fully decode template arguments, substitutions, or
// function signatures — none of those affect the scope-chain features the
// matcher consumes.
type itaniumDemangler struct{}

// anonymousNamespaceSourceName is how clang/gcc spell the anonymous
// namespace in a mangled name: the literal source-name "_GLOBAL__N_1".
const anonymousNamespaceSourceName = "_GLOBAL__N_1"

func (itaniumDemangler) Classify(mangled string, out *symfeat.Features) symfeat.Kind {
	out.Clear()

	if mangled == "" || len(mangled) < 2 || mangled[0] != '_' || mangled[1] != 'Z' {
		return symfeat.Invalid
	}
	rest := mangled[2:]

	if isSpecialNamePrefix(rest) {
		return symfeat.Other
	}

	if len(rest) == 0 {
		return symfeat.Invalid
	}

	if rest[0] != 'N' {
		// Bare <unscoped-name> <bare-function-type>: a free function or
		// file-scope data symbol.
		if _, _, ok := parseSourceName(rest, 0); !ok {
			return symfeat.Invalid
		}
		return symfeat.Ignorable
	}

	p := itaniumParser{s: rest, pos: 1}
	p.skipCVQualifiers()

	var scope []string
	for {
		if p.pos >= len(p.s) {
			return symfeat.Invalid
		}
		if kind, variant, ok := p.matchStructorName(); ok {
			if len(scope) == 0 {
				return symfeat.Invalid
			}
			base := scope[len(scope)-1]
			out.ScopeNames = append(append([]string{}, scope...), base)
			out.BaseName = base
			out.Kind = kind
			out.Variant = variant
			return kind
		}

		if p.s[p.pos] == 'E' {
			// <nested-name> closed without ever hitting a ctor/dtor
			// marker: a plain qualified function or data member.
			return symfeat.Ignorable
		}

		name, ok := p.parseUnqualifiedName()
		if !ok {
			return symfeat.Invalid
		}
		scope = append(scope, name)
	}
}

// isSpecialNamePrefix reports whether rest begins one of the Itanium
// <special-name> productions this tool never needs to look inside:
// vtables, typeinfo, typeinfo names, VTTs, construction vtables, and guard
// variables.
func isSpecialNamePrefix(rest string) bool {
	for _, p := range []string{"TV", "TI", "TS", "TT", "TC", "GV", "GR"} {
		if hasPrefix(rest, p) {
			return true
		}
	}
	return false
}

func hasPrefix(s, p string) bool {
	return len(s) >= len(p) && s[:len(p)] == p
}

type itaniumParser struct {
	s   string
	pos int
}

func (p *itaniumParser) skipCVQualifiers() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case 'r', 'V', 'K':
			p.pos++
		default:
			return
		}
	}
}

// matchStructorName recognizes the Itanium ctor-dtor-name tokens C1/C2/C3
// (constructor variants) and D0/D1/D2 (destructor variants) at the current
// position, consuming them on success.
func (p *itaniumParser) matchStructorName() (symfeat.Kind, int, bool) {
	if p.pos+1 >= len(p.s) {
		return 0, 0, false
	}
	letter, digit := p.s[p.pos], p.s[p.pos+1]
	switch letter {
	case 'C':
		switch digit {
		case '1', '2', '3':
			p.pos += 2
			return symfeat.Ctor, int(digit - '0'), true
		}
	case 'D':
		switch digit {
		case '0', '1', '2':
			p.pos += 2
			return symfeat.Dtor, int(digit - '0'), true
		}
	}
	return 0, 0, false
}

// parseUnqualifiedName consumes one <source-name>, skipping any immediately
// following <template-args> (I ... E) without decoding them.
func (p *itaniumParser) parseUnqualifiedName() (string, bool) {
	name, next, ok := parseSourceName(p.s, p.pos)
	if !ok {
		return "", false
	}
	p.pos = next
	if p.pos < len(p.s) && p.s[p.pos] == 'I' {
		end, ok := skipBalanced(p.s, p.pos, 'I', 'E')
		if !ok {
			return "", false
		}
		p.pos = end
	}
	if name == anonymousNamespaceSourceName {
		name = ""
	}
	return name, true
}

// parseSourceName reads "<decimal-length><that many bytes>" starting at
// pos, returning the name and the position just past it.
func parseSourceName(s string, pos int) (string, int, bool) {
	start := pos
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	if pos == start {
		return "", 0, false
	}
	length := 0
	for i := start; i < pos; i++ {
		length = length*10 + int(s[i]-'0')
	}
	if pos+length > len(s) {
		return "", 0, false
	}
	return s[pos : pos+length], pos + length, true
}

// skipBalanced scans from pos (which must hold open) to the matching close,
// honoring nested open/close pairs, and returns the index just past it.
func skipBalanced(s string, pos int, open, close byte) (int, bool) {
	if pos >= len(s) || s[pos] != open {
		return 0, false
	}
	depth := 0
	for i := pos; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}
