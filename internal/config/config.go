// Package config parses the debase JSON configuration document described
// in spec §4.9: an optional "files" field and a "patterns" field that may
// be a plain string, a string array, or an object splitting ctor/dtor/all
// pattern lists.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Document is the raw top-level shape. Files and Patterns are kept as
// json.RawMessage because both fields are polymorphic (string, array, or
// for Patterns, an object); resolving them requires knowing the caller's
// permissive setting, which a plain Unmarshal target can't express.
type Document struct {
	Files    json.RawMessage `json:"files,omitempty"`
	Patterns json.RawMessage `json:"patterns,omitempty"`
}

// Parse unmarshals the top-level document shape only; it does not interpret
// Files or Patterns.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config document: %w", err)
	}
	return &doc, nil
}

// PatternSets is the resolved "patterns" field: ctor ∪ all and dtor ∪ all,
// per spec §4.9.
type PatternSets struct {
	Ctor []string
	Dtor []string
}

// ErrConfigShape is returned when a field's JSON type doesn't match any of
// the shapes spec §4.9 allows.
type ErrConfigShape struct {
	Field string
	Value json.RawMessage
}

func (e *ErrConfigShape) Error() string {
	return fmt.Sprintf("config field %q has an unsupported shape: %s", e.Field, e.Value)
}

// StringOrArray decodes a field that is either a bare string or an array of
// strings, per the "files" and plain-"patterns" shapes.
func StringOrArray(field string, raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil, nil
		}
		return []string{single}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	return nil, &ErrConfigShape{Field: field, Value: raw}
}

// patternsObject is the object form of "patterns": {"ctor": ..., "dtor":
// ..., "all": ...}, each itself a string-or-array.
type patternsObject struct {
	Ctor json.RawMessage `json:"ctor,omitempty"`
	Dtor json.RawMessage `json:"dtor,omitempty"`
	All  json.RawMessage `json:"all,omitempty"`
}

// ResolvePatterns interprets the "patterns" field into ctor/dtor lists. A
// plain string or array populates both sets (the "all" meaning); an object
// splits ctor/dtor/all, with ctor∪all feeding the ctor set and dtor∪all
// feeding the dtor set.
func ResolvePatterns(raw json.RawMessage) (PatternSets, error) {
	if len(raw) == 0 {
		return PatternSets{}, nil
	}

	if list, err := StringOrArray("patterns", raw); err == nil {
		return PatternSets{Ctor: list, Dtor: append([]string(nil), list...)}, nil
	}

	var obj patternsObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return PatternSets{}, &ErrConfigShape{Field: "patterns", Value: raw}
	}

	ctor, err := StringOrArray("patterns.ctor", obj.Ctor)
	if err != nil {
		return PatternSets{}, err
	}
	dtor, err := StringOrArray("patterns.dtor", obj.Dtor)
	if err != nil {
		return PatternSets{}, err
	}
	all, err := StringOrArray("patterns.all", obj.All)
	if err != nil {
		return PatternSets{}, err
	}

	if len(ctor) == 0 && len(dtor) == 0 && len(all) == 0 {
		return PatternSets{}, fmt.Errorf("config: at least one of patterns.ctor, patterns.dtor, patterns.all must be non-empty")
	}

	return PatternSets{
		Ctor: append(append([]string(nil), ctor...), all...),
		Dtor: append(append([]string(nil), dtor...), all...),
	}, nil
}

// ResolvedFile is one "files" entry after path normalization and an
// existence/regular-file check.
type ResolvedFile struct {
	Input string
	Path  string
	Err   error
}

// ResolveFiles normalizes each entry relative to configDir, `..`-cleans it,
// and verifies it names an existing regular file.
func ResolveFiles(files []string, configDir string) []ResolvedFile {
	out := make([]ResolvedFile, 0, len(files))
	for _, f := range files {
		abs := f
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(configDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			out = append(out, ResolvedFile{Input: f, Err: fmt.Errorf("stat %s: %w", abs, err)})
			continue
		}
		if !info.Mode().IsRegular() {
			out = append(out, ResolvedFile{Input: f, Err: fmt.Errorf("%s is not a regular file", abs)})
			continue
		}
		out = append(out, ResolvedFile{Input: f, Path: abs})
	}
	return out
}
