// Package matcher owns the compiled ctor/dtor pattern sets, the
// pattern-compilation cache, and the late-bind replacer fan-out driven by
// the current input file. It is the entry point an IR-rewrite consumer uses
// to decide whether a demangled symbol's base-class calls should be erased.
package matcher

import (
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/9inefold/debase/internal/config"
	"github.com/9inefold/debase/internal/fileprop"
	"github.com/9inefold/debase/internal/pattern"
	"github.com/9inefold/debase/internal/symfeat"
)

const defaultCacheSize = 256

// Matcher holds the compiled pattern sets and late-bind state for one run.
// It is not safe for concurrent use; callers that fan work out across goroutines
// should give each worker its own Matcher built from the same configuration.
type Matcher struct {
	logger     *zap.Logger
	permissive bool

	cache *lru.Cache[string, pattern.Node]

	ctor []pattern.Node
	dtor []pattern.Node

	replacers []*pattern.Replacer

	configPath string
}

// New builds an empty Matcher. logger may be nil, in which case diagnostics
// are dropped rather than logged.
func New(logger *zap.Logger, permissive bool) (*Matcher, error) {
	c, err := lru.New[string, pattern.Node](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("matcher: building pattern cache: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger, permissive: permissive, cache: c}, nil
}

// CompilePattern lexes and compiles text, memoizing on the raw pattern
// string so that repeated text across the ctor and dtor sets shares one
// compiled node and one set of registered replacers (§4.6 step 3).
func (m *Matcher) CompilePattern(text string) (pattern.Node, error) {
	if node, ok := m.cache.Get(text); ok {
		return node, nil
	}

	node, err := pattern.CompilePattern(text, nil)
	if err != nil {
		return nil, err
	}

	m.cache.Add(text, node)
	for _, r := range pattern.CollectReplacers(node) {
		m.replacers = appendUniqueReplacer(m.replacers, r)
	}
	return node, nil
}

func appendUniqueReplacer(set []*pattern.Replacer, r *pattern.Replacer) []*pattern.Replacer {
	for _, existing := range set {
		if existing == r {
			return set
		}
	}
	return append(set, r)
}

func appendUniqueNode(set []pattern.Node, n pattern.Node) []pattern.Node {
	for _, existing := range set {
		if existing == n {
			return set
		}
	}
	return append(set, n)
}

// AddPattern compiles text and adds the resulting node to the ctor set, the
// dtor set, or both. A compile failure is fatal in strict mode and a
// dropped-with-warning no-op in permissive mode.
func (m *Matcher) AddPattern(text string, toCtor, toDtor bool) error {
	node, err := m.CompilePattern(text)
	if err != nil {
		if m.permissive {
			m.logger.Warn("dropping pattern that failed to compile",
				zap.String("pattern", text), zap.Error(err))
			return nil
		}
		return err
	}
	if toCtor {
		m.ctor = appendUniqueNode(m.ctor, node)
	}
	if toDtor {
		m.dtor = appendUniqueNode(m.dtor, node)
	}
	return nil
}

// SetFilename builds a fresh file-property cache for path and drives every
// registered Replacer's Resolve in insertion order; path itself is not
// stored on the Matcher. A failing replacer is fatal in strict mode and skipped
// with a warning in permissive mode.
func (m *Matcher) SetFilename(path string) error {
	cache := fileprop.New(path)
	for _, r := range m.replacers {
		if err := r.Resolve(cache); err != nil {
			if m.permissive {
				m.logger.Warn("skipping late-bind replacer that failed to resolve",
					zap.String("file", path), zap.Error(err))
				continue
			}
			return fmt.Errorf("resolving late-bind replacer for %s: %w", path, err)
		}
	}
	return nil
}

// Match reports whether features describes a constructor or destructor call
// whose scope names satisfy any node in the corresponding pattern set.
// Itanium deleting destructors (variant 0) and anything shorter than one
// scope name are always rejected.
func (m *Matcher) Match(features symfeat.Features) bool {
	if !features.IsStructor() {
		return false
	}
	if features.Variant == 0 {
		return false
	}
	if len(features.ScopeNames) < 1 {
		return false
	}

	var set []pattern.Node
	switch features.Kind {
	case symfeat.Ctor:
		set = m.ctor
	case symfeat.Dtor:
		set = m.dtor
	default:
		return false
	}

	for _, node := range set {
		if node.Match(features.ScopeNames) {
			return true
		}
	}
	return false
}

// LoadConfig reads the JSON configuration document at path, compiles its
// patterns into the ctor/dtor sets, and resolves its "files" entries into
// outFiles. Reloading is disallowed once a config has been loaded.
func (m *Matcher) LoadConfig(path string, outFiles *[]string) error {
	if m.configPath != "" {
		return fmt.Errorf("matcher: config already loaded from %s, reloading is disallowed", m.configPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	doc, err := config.Parse(data)
	if err != nil {
		if m.permissive {
			m.logger.Warn("dropping malformed config document", zap.String("path", path), zap.Error(err))
			m.configPath = path
			return nil
		}
		return err
	}

	sets, err := config.ResolvePatterns(doc.Patterns)
	if err != nil {
		if !m.permissive {
			return err
		}
		m.logger.Warn("skipping patterns field with unsupported shape", zap.String("path", path), zap.Error(err))
		sets = config.PatternSets{}
	}

	for _, text := range sets.Ctor {
		if err := m.AddPattern(text, true, false); err != nil {
			return err
		}
	}
	for _, text := range sets.Dtor {
		if err := m.AddPattern(text, false, true); err != nil {
			return err
		}
	}

	if outFiles != nil {
		fileList, err := config.StringOrArray("files", doc.Files)
		if err != nil {
			if !m.permissive {
				return err
			}
			m.logger.Warn("skipping files field with unsupported shape", zap.String("path", path), zap.Error(err))
			fileList = nil
		}

		for _, resolved := range config.ResolveFiles(fileList, filepath.Dir(path)) {
			if resolved.Err != nil {
				if m.permissive {
					m.logger.Warn("dropping unresolvable config file entry",
						zap.String("entry", resolved.Input), zap.Error(resolved.Err))
					continue
				}
				return resolved.Err
			}
			*outFiles = append(*outFiles, resolved.Path)
		}
	}

	m.configPath = path
	return nil
}

// ConfigPath returns the path LoadConfig was called with, or "" if no config
// has been loaded yet.
func (m *Matcher) ConfigPath() string { return m.configPath }
