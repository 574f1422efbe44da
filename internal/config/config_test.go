package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/ragplan/internal/plan"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Output.Directory)
	assert.Equal(t, plan.OutputFilename, cfg.Output.Filename)
	assert.False(t, cfg.Exports.Markdown)
	assert.False(t, cfg.Exports.HTML)
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, ".ragplan/history.db", cfg.Journal.Path)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragplan.yaml")
	content := `
output:
  directory: ./out
exports:
  markdown: true
journal:
  enabled: true
  path: /tmp/journal.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./out", cfg.Output.Directory)
	// Filename not set in file, default still applies.
	assert.Equal(t, plan.OutputFilename, cfg.Output.Filename)
	assert.True(t, cfg.Exports.Markdown)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "/tmp/journal.db", cfg.Journal.Path)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("RAGPLAN_TEST_DIR", "/data/reports")

	path := filepath.Join(t.TempDir(), "ragplan.yaml")
	content := "output:\n  directory: ${RAGPLAN_TEST_DIR}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/reports", cfg.Output.Directory)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
