package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/9inefold/debase/internal/fileprop"
)

// replaceTarget is the leaf a Replacer rewrites on every SetFilename.
type replaceTarget interface {
	applyText(text string) error
}

func (s *Solo) applyText(text string) error {
	s.Literal = text
	return nil
}

func (r *Regex) applyText(text string) error {
	compiled, err := anchoredRegex(text)
	if err != nil {
		return fmt.Errorf("recompiling late-bound regex %q: %w", text, err)
	}
	r.Compiled = compiled
	r.Source = text
	return nil
}

// replacerPiece is one element of a Replacer's literal/hole template.
type replacerPiece struct {
	literal string
	isHole  bool
	member  string
}

// Replacer rewrites a single leaf's text whenever a new filename is
// installed. quote is set for leaves embedded in a regex, where a
// file-property value must be escaped before insertion so it can't alter the
// surrounding regex's structure.
type Replacer struct {
	pieces []replacerPiece
	quote  bool
	target replaceTarget
}

// Resolve substitutes every hole from cache and pushes the rebuilt text into
// the Replacer's target leaf.
func (r *Replacer) Resolve(cache *fileprop.Cache) error {
	var sb strings.Builder
	for _, p := range r.pieces {
		if !p.isHole {
			sb.WriteString(p.literal)
			continue
		}
		value, err := cache.Property(p.member)
		if err != nil {
			return err
		}
		if r.quote {
			value = regexp.QuoteMeta(value)
		}
		sb.WriteString(value)
	}
	return r.target.applyText(sb.String())
}

// buildReplacerTemplate parses text's `{N}` placeholders (N indexing into
// holes) into an ordered literal/hole piece list.
func buildReplacerTemplate(text string, holes []Token) ([]replacerPiece, error) {
	var pieces []replacerPiece
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			pieces = append(pieces, replacerPiece{literal: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(text) {
		if text[i] == '{' {
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("malformed hole placeholder in %q", text)
			}
			numStr := text[i+1 : i+1+end]
			idx, err := strconv.Atoi(numStr)
			if err != nil || idx < 0 || idx >= len(holes) {
				return nil, fmt.Errorf("invalid hole index in %q", text)
			}
			flush()
			pieces = append(pieces, replacerPiece{isHole: true, member: holes[idx].Member})
			i += 1 + end + 1
			continue
		}
		lit.WriteByte(text[i])
		i++
	}
	flush()
	return pieces, nil
}

// newLateBoundSolo builds a Solo leaf whose literal text is rewritten from
// holes on every SetFilename.
func newLateBoundSolo(text string, holes []Token) (*Solo, error) {
	pieces, err := buildReplacerTemplate(text, holes)
	if err != nil {
		return nil, err
	}
	s := &Solo{}
	s.Replacer = &Replacer{pieces: pieces, quote: false, target: s}
	return s, nil
}

// newLateBoundRegex builds an unresolved Regex leaf; it has no Compiled
// pattern until the first SetFilename drives its Replacer.
func newLateBoundRegex(text string, holes []Token) (*Regex, error) {
	pieces, err := buildReplacerTemplate(text, holes)
	if err != nil {
		return nil, err
	}
	r := &Regex{}
	r.Replacer = &Replacer{pieces: pieces, quote: true, target: r}
	return r, nil
}
