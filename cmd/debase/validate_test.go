package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9inefold/debase/internal/matcher"
)

func TestValidateReportsCompileErrors(t *testing.T) {
	t.Parallel()
	color.NoColor = true

	dir := t.TempDir()
	path := filepath.Join(dir, "debase.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"patterns": "**::foo::**::bar"}`), 0o644))

	m, err := matcher.New(nil, false)
	require.NoError(t, err)

	var files []string
	err = m.LoadConfig(path, &files)
	assert.Error(t, err, "a pattern with more than one glob must fail strict config loading")
}
