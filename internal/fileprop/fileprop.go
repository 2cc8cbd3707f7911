// Package fileprop lazily derives stem/dir/ext strings from a module's
// current input filename. A Cache is scoped to a single SetFilename call on
// the matcher and never escapes it.
package fileprop

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownProperty is returned by Property for any name other than
// "", "stem", "dir", or "ext".
type ErrUnknownProperty struct {
	Name string
}

func (e *ErrUnknownProperty) Error() string {
	return fmt.Sprintf("fileprop: unknown property %q", e.Name)
}

// Cache records a filename and lazily computes its stem, dir, and ext on
// first read. It does no I/O: every property is derived from the string
// alone.
type Cache struct {
	filename string

	stemSet bool
	stem    string
	dirSet  bool
	dir     string
	extSet  bool
	ext     string
}

// New returns a Cache for filename. No parsing happens until Property is
// called.
func New(filename string) *Cache {
	return &Cache{filename: filename}
}

// Property returns the value for name, one of "" (whole filename), "stem",
// "dir", "ext". Any other name is an error.
func (c *Cache) Property(name string) (string, error) {
	switch name {
	case "":
		return c.filename, nil
	case "stem":
		return c.Stem(), nil
	case "dir":
		return c.Dir(), nil
	case "ext":
		return c.Ext(), nil
	default:
		return "", &ErrUnknownProperty{Name: name}
	}
}

// Stem is the filename's leaf with its last suffix removed.
func (c *Cache) Stem() string {
	if !c.stemSet {
		base := filepath.Base(c.filename)
		ext := filepath.Ext(base)
		c.stem = strings.TrimSuffix(base, ext)
		c.stemSet = true
	}
	return c.stem
}

// Dir is the filename's parent directory, or "" if it has none.
func (c *Cache) Dir() string {
	if !c.dirSet {
		dir := filepath.Dir(c.filename)
		if dir == "." {
			dir = ""
		}
		c.dir = dir
		c.dirSet = true
	}
	return c.dir
}

// Ext is the filename's last dotted suffix, including the dot, or "" if it
// has none.
func (c *Cache) Ext() string {
	if !c.extSet {
		c.ext = filepath.Ext(filepath.Base(c.filename))
		c.extSet = true
	}
	return c.ext
}

// Filename returns the path the Cache was constructed with.
func (c *Cache) Filename() string { return c.filename }
