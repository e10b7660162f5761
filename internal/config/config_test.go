package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Default(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "CFGTOOLKIT", cfg.Format)
	assert.Equal(t, 100, cfg.TableWidth)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Cache)
}

func Test_Load_success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfgtoolkitrc.toml")
	contents := `
default_grammar_file = "expr.cfg"
table_width = 72
color = false
cache = true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expr.cfg", cfg.DefaultGrammarFile)
	assert.Equal(t, 72, cfg.TableWidth)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.Cache)
}

func Test_Load_unsupportedFormatIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfgtoolkitrc.toml")
	contents := `format = "SOMETHINGELSE"`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func Test_Load_missingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func Test_LoadDefaultOrFallback_fileAbsentReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg, err := LoadDefaultOrFallback()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func Test_LoadDefaultOrFallback_filePresentIsLoaded(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	contents := `table_width = 40`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(contents), 0o644))

	cfg, err := LoadDefaultOrFallback()
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.TableWidth)
}
