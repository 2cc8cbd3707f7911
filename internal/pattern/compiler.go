package pattern

import (
	"fmt"

	"github.com/9inefold/debase/internal/fileprop"
)

// CompilePattern lexes and compiles patternText in one step. A non-nil fp
// resolves `{this.member}` references at lex time. The matcher always passes
// nil; on SetFilename it re-resolves late-bound leaves through their
// Replacers instead of recompiling.
func CompilePattern(patternText string, fp *fileprop.Cache) (Node, error) {
	tokens, err := Lex(patternText, fp)
	if err != nil {
		return nil, err
	}
	return Compile(patternText, tokens)
}

// tokenGroup is a contiguous run of tokens belonging to one scope segment,
// per §4.6 step 1.
type tokenGroup struct {
	tokens      []Token
	allSimple   bool
	replacement bool
	leadingGlob bool
}

// Compile turns a token vector into a single compiled Node. It rejects
// unresolved This references (§9 open question (a)) and patterns carrying
// more than one scope-level glob.
func Compile(patternText string, tokens []Token) (Node, error) {
	for _, t := range tokens {
		if t.Kind == This {
			return nil, newError(UnresolvedThis, patternText, "", "{this/self} reference has no file-property cache to resolve against")
		}
	}

	groups, err := groupTokens(patternText, tokens)
	if err != nil {
		return nil, err
	}

	globCount := 0
	for _, t := range tokens {
		if t.Kind == Glob {
			globCount++
		}
	}

	switch {
	case globCount == 0:
		return compileZeroGlob(patternText, groups)
	case globCount == 1:
		return compileOneGlob(patternText, groups)
	default:
		return nil, newError(MultiGlobNotImplemented, patternText, "", "patterns with more than one '**' are not yet supported")
	}
}

// groupTokens implements §4.6 step 1.
func groupTokens(patternText string, tokens []Token) ([]tokenGroup, error) {
	var groups []tokenGroup
	pendingLeadingGlob := false

	i := 0
	for i < len(tokens) {
		t := tokens[i]

		if t.Kind == Glob {
			pendingLeadingGlob = true
			i++
			continue
		}

		if t.IsCompoundHead() {
			size := 1 + t.Trailing
			if i+size > len(tokens) {
				return nil, newError(BadScope, patternText, "", "truncated compound token group")
			}
			groups = append(groups, tokenGroup{
				tokens:      tokens[i : i+size],
				replacement: true,
				leadingGlob: pendingLeadingGlob,
			})
			pendingLeadingGlob = false
			i += size
			continue
		}

		j := i
		allSimple := true
		for j < len(tokens) {
			tj := tokens[j]
			if tj.Kind == Glob || tj.IsCompoundHead() {
				break
			}
			if tj.Kind != Simple && tj.Kind != Anonymous {
				allSimple = false
			}
			j++
		}
		groups = append(groups, tokenGroup{
			tokens:      tokens[i:j],
			allSimple:   allSimple,
			leadingGlob: pendingLeadingGlob,
		})
		pendingLeadingGlob = false
		i = j
	}

	if pendingLeadingGlob {
		return nil, newError(BadScope, patternText, "", "trailing '**' with no following scope segment")
	}
	if len(groups) == 0 {
		return nil, newError(EmptyPattern, patternText, "", "pattern has no scope segments")
	}
	return groups, nil
}

func compileZeroGlob(patternText string, groups []tokenGroup) (Node, error) {
	if len(groups) == 1 {
		return makeDispatch(patternText, groups[0])
	}
	items := make([]Node, 0, len(groups))
	for _, g := range groups {
		n, err := makeDispatch(patternText, g)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return &AnySequence{Items: items}, nil
}

func compileOneGlob(patternText string, groups []tokenGroup) (Node, error) {
	globIdx := -1
	for i, g := range groups {
		if g.leadingGlob {
			globIdx = i
			break
		}
	}
	if globIdx < 0 {
		return nil, newError(BadScope, patternText, "", "internal error: glob count mismatch during compilation")
	}

	if globIdx == 0 {
		trailing, err := compileZeroGlob(patternText, groups)
		if err != nil {
			return nil, err
		}
		return &LeadingGlob{Trailing: trailing}, nil
	}

	leadingGroups, trailingGroups := groups[:globIdx], groups[globIdx:]

	leadingNode, err := compileLeadingHalf(patternText, leadingGroups)
	if err != nil {
		return nil, err
	}
	trailingNode, err := compileZeroGlob(patternText, trailingGroups)
	if err != nil {
		return nil, err
	}
	return &ButterflyGlob{Leading: leadingNode, Trailing: trailingNode}, nil
}

// compileLeadingHalf is compileZeroGlob specialized to prefer LeadingSimple
// over Simple when the whole leading half reduces to one all-literal group.
func compileLeadingHalf(patternText string, groups []tokenGroup) (Node, error) {
	if len(groups) == 1 && groups[0].allSimple && !groups[0].replacement {
		parts := make([]string, 0, len(groups[0].tokens))
		for _, t := range groups[0].tokens {
			parts = append(parts, simplePartText(t))
		}
		return &LeadingSimple{Parts: parts}, nil
	}
	return compileZeroGlob(patternText, groups)
}

// makeDispatch builds the Node for a single token group, per §4.6 step 1's
// make_dispatch.
func makeDispatch(patternText string, g tokenGroup) (Node, error) {
	if g.replacement {
		head := g.tokens[0]
		holes := g.tokens[1:]
		switch head.Kind {
		case SimpleFmt:
			solo, err := newLateBoundSolo(head.Text, holes)
			if err != nil {
				return nil, newError(BadScope, patternText, head.Text, "%v", err)
			}
			return &Forwarding{Inner: solo}, nil
		case RegexFmt:
			rx, err := newLateBoundRegex(head.Text, holes)
			if err != nil {
				return nil, newError(BadScope, patternText, head.Text, "%v", err)
			}
			return &Forwarding{Inner: rx}, nil
		default:
			return nil, fmt.Errorf("internal error: unexpected compound head kind %v", head.Kind)
		}
	}

	if g.allSimple {
		parts := make([]string, 0, len(g.tokens))
		for _, t := range g.tokens {
			parts = append(parts, simplePartText(t))
		}
		return &Simple{Parts: parts}, nil
	}

	items := make([]SinglePattern, 0, len(g.tokens))
	for _, t := range g.tokens {
		switch t.Kind {
		case Simple:
			items = append(items, &Solo{Literal: t.Text})
		case Anonymous:
			items = append(items, &Solo{Literal: ""})
		case Regex:
			compiled, err := anchoredRegex(t.Text)
			if err != nil {
				return nil, newError(InvalidCharClass, patternText, t.Text, "regex does not compile: %v", err)
			}
			items = append(items, &Regex{Source: t.Text, Compiled: compiled})
		case LateBind:
			solo, err := newLateBoundSolo("{0}", []Token{t})
			if err != nil {
				return nil, newError(BadScope, patternText, "", "%v", err)
			}
			items = append(items, solo)
		default:
			return nil, fmt.Errorf("internal error: unexpected mixed-group token kind %v", t.Kind)
		}
	}
	return &SingleSequence{Items: items}, nil
}

func simplePartText(t Token) string {
	if t.Kind == Anonymous {
		return ""
	}
	return t.Text
}
