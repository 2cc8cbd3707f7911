package pattern

import (
	"strings"

	"github.com/9inefold/debase/internal/charclass"
	"github.com/9inefold/debase/internal/fileprop"
)

// Lex tokenizes a pattern string per spec §4.4. When fp is non-nil,
// `{this.member}`/`{self.member}` references are resolved immediately
// against it; when fp is nil they are emitted as unresolved This tokens,
// which Compile always rejects (spec §9 open question (a)).
func Lex(patternText string, fp *fileprop.Cache) ([]Token, error) {
	trimmed := strings.TrimSpace(patternText)
	if trimmed == "" {
		return nil, newError(EmptyPattern, patternText, "", "pattern is empty")
	}
	trimmed = strings.TrimPrefix(trimmed, "::")
	if trimmed == "" {
		return nil, newError(EmptyPattern, patternText, "", "pattern is empty")
	}

	if strings.HasSuffix(trimmed, "::") {
		return nil, newError(BadScope, patternText, trimmed, "pattern ends in trailing scope resolution '::'")
	}
	if strings.HasSuffix(trimmed, "@") {
		return nil, newError(BadScope, patternText, trimmed, "pattern ends in '@'")
	}

	segments := strings.Split(trimmed, "::")

	var tokens []Token
	for _, raw := range segments {
		seg := strings.TrimSpace(raw)
		if seg == "" {
			return nil, newError(BadScope, patternText, raw, "empty scope segment")
		}

		segTokens, err := lexSegment(patternText, seg, fp)
		if err != nil {
			return nil, err
		}

		for _, t := range segTokens {
			if t.Kind == Glob && len(tokens) > 0 && tokens[len(tokens)-1].Kind == Glob {
				continue // sequential globs coalesce
			}
			tokens = append(tokens, t)
		}
	}

	if len(tokens) == 1 && (tokens[0].Kind == Glob || tokens[0].Kind == Anonymous) {
		return nil, newError(BadScope, patternText, "", "pattern consists solely of '%s'", tokens[0].Kind)
	}

	return tokens, nil
}

// lexSegment classifies one `::`-delimited, pre-trimmed segment into one or
// more tokens.
func lexSegment(patternText, seg string, fp *fileprop.Cache) ([]Token, error) {
	if charclass.IsIdentifier(seg) {
		if seg[0] >= '0' && seg[0] <= '9' {
			return nil, newError(BadIdentifier, patternText, seg, "identifier cannot start with a digit")
		}
		return []Token{{Kind: Simple, Text: seg}}, nil
	}

	if seg == "@" {
		return []Token{{Kind: Anonymous}}, nil
	}
	if seg == "**" {
		return []Token{{Kind: Glob}}, nil
	}

	if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") && !strings.Contains(seg[1:len(seg)-1], "{") {
		return lexReplacement(patternText, seg, fp)
	}

	return lexCompound(patternText, seg, fp)
}

// classifyReplacementBody parses a replacement's `obj[.member]` body, shared
// by the top-level and compound lexers.
func classifyReplacementBody(patternText, seg, body string) (isThis bool, member string, err error) {
	obj, mem, _ := strings.Cut(body, ".")
	objLower := strings.ToLower(strings.TrimSpace(obj))
	memberLower := strings.ToLower(strings.TrimSpace(mem))

	switch objLower {
	case "this", "self":
		isThis = true
	case "file", "input":
		isThis = false
	default:
		return false, "", newError(UnknownReplacementObject, patternText, seg, "unknown replacement object %q", obj)
	}

	canonical, ok := canonicalProperty(memberLower)
	if !ok {
		return false, "", newError(UnknownReplacementMember, patternText, seg, "unknown replacement member %q", mem)
	}
	return isThis, canonical, nil
}

// lexReplacement parses a top-level `{obj[.member]}` segment.
func lexReplacement(patternText, seg string, fp *fileprop.Cache) ([]Token, error) {
	body := seg[1 : len(seg)-1]

	isThis, canonicalMember, err := classifyReplacementBody(patternText, seg, body)
	if err != nil {
		return nil, err
	}

	if isThis {
		if fp != nil {
			value, err := fp.Property(canonicalMember)
			if err != nil {
				return nil, newError(FilePropertyError, patternText, seg, "%v", err)
			}
			if !charclass.IsIdentifier(value) {
				return nil, newError(BadIdentifier, patternText, seg, "resolved {this} value %q is not identifier-safe", value)
			}
			return []Token{{Kind: Simple, Text: value}}, nil
		}
		return []Token{{Kind: This, Member: canonicalMember}}, nil
	}

	return []Token{{Kind: LateBind, Member: canonicalMember}}, nil
}

func canonicalProperty(lower string) (string, bool) {
	switch lower {
	case "":
		return "", true
	case "stem":
		return "stem", true
	case "dir":
		return "dir", true
	case "ext":
		return "ext", true
	default:
		return "", false
	}
}
