package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/ragplan/internal/config"
	"git.home.luguber.info/inful/ragplan/internal/journal"
	"git.home.luguber.info/inful/ragplan/internal/plan"
)

func TestCompanionPath(t *testing.T) {
	cases := []struct {
		in   string
		ext  string
		want string
	}{
		{"PIANO_MIGLIORAMENTO_RAG.docx", ".md", "PIANO_MIGLIORAMENTO_RAG.md"},
		{"out/plan.docx", ".html", "out/plan.html"},
		{"noext", ".md", "noext.md"},
	}
	for _, tc := range cases {
		if got := companionPath(tc.in, tc.ext); got != tc.want {
			t.Fatalf("companionPath(%q, %q): expected %q, got %q", tc.in, tc.ext, tc.want, got)
		}
	}
}

// resetGenerateFlags clears the package-level CLI state between tests.
func resetGenerateFlags() {
	CLI.Generate.Output = ""
	CLI.Generate.Markdown = false
	CLI.Generate.HTML = false
	CLI.Generate.Journal = false
}

func journalRuns(t *testing.T, path string) []journal.Run {
	t.Helper()
	store, err := journal.Open(path)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	return runs
}

func TestGenerateRecordsJournalRun(t *testing.T) {
	resetGenerateFlags()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output.Directory = dir
	cfg.Journal.Enabled = true
	cfg.Journal.Path = filepath.Join(dir, "history.db")

	require.NoError(t, runGenerate(cfg))

	runs := journalRuns(t, cfg.Journal.Path)
	require.Len(t, runs, 1)
	assert.Equal(t, "success", runs[0].Status)
	assert.Positive(t, runs[0].Bytes)

	info, err := os.Stat(filepath.Join(dir, plan.OutputFilename))
	require.NoError(t, err)
	assert.Equal(t, runs[0].Bytes, info.Size())
}

func TestGenerateRecordsFailureRun(t *testing.T) {
	resetGenerateFlags()
	dir := t.TempDir()
	cfg := config.Default()
	// Nonexistent output directory forces the artifact write to fail.
	cfg.Output.Directory = filepath.Join(dir, "missing")
	cfg.Journal.Enabled = true
	cfg.Journal.Path = filepath.Join(dir, "history.db")

	require.Error(t, runGenerate(cfg))

	runs := journalRuns(t, cfg.Journal.Path)
	require.Len(t, runs, 1)
	assert.Equal(t, "failure", runs[0].Status)
	assert.Zero(t, runs[0].Bytes)
}
