package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/ragplan/internal/config"
	"git.home.luguber.info/inful/ragplan/internal/errors"
	"git.home.luguber.info/inful/ragplan/internal/journal"
	"git.home.luguber.info/inful/ragplan/internal/logfields"
	"git.home.luguber.info/inful/ragplan/internal/plan"
	docxrender "git.home.luguber.info/inful/ragplan/internal/render/docx"
	"git.home.luguber.info/inful/ragplan/internal/render/htmlpreview"
	"git.home.luguber.info/inful/ragplan/internal/render/markdown"
)

// runGenerate performs the one-shot generation: assemble the document model,
// write the .docx artifact, then the opt-in companions.
func runGenerate(cfg *config.Config) error {
	started := time.Now()
	runID := uuid.NewString()

	filename := cfg.Output.Filename
	if CLI.Generate.Output != "" {
		filename = CLI.Generate.Output
	}
	outPath := filepath.Join(cfg.Output.Directory, filename)

	slog.Debug("Starting generation",
		logfields.RunID(runID),
		logfields.Path(outPath))

	fmt.Println("Generazione del documento di miglioramento RAG...")

	doc := plan.Build(started)
	slog.Debug("Document assembled",
		logfields.RunID(runID),
		logfields.Blocks(len(doc.Blocks())))

	bytesWritten, err := docxrender.WriteFile(doc, outPath)
	if err != nil {
		if CLI.Generate.Journal || cfg.Journal.Enabled {
			recordRun(cfg, journal.Run{
				RunID:      runID,
				Started:    started,
				Duration:   time.Since(started),
				OutputPath: outPath,
				Bytes:      bytesWritten,
				Status:     "failure",
			})
		}
		return err
	}
	slog.Debug("Document written",
		logfields.RunID(runID),
		logfields.Path(outPath),
		logfields.Bytes(bytesWritten))

	if CLI.Generate.Markdown || cfg.Exports.Markdown {
		mdPath := companionPath(outPath, ".md")
		if err := os.WriteFile(mdPath, []byte(markdown.Render(doc)), 0o644); err != nil {
			return errors.WriteError(mdPath, err)
		}
		slog.Debug("Markdown rendition written",
			logfields.RunID(runID),
			logfields.Format("markdown"),
			logfields.Path(mdPath))
	}

	if CLI.Generate.HTML || cfg.Exports.HTML {
		htmlPath := companionPath(outPath, ".html")
		if err := htmlpreview.WriteFile(doc, htmlPath); err != nil {
			return err
		}
		slog.Debug("HTML preview written",
			logfields.RunID(runID),
			logfields.Format("html"),
			logfields.Path(htmlPath))
	}

	if CLI.Generate.Journal || cfg.Journal.Enabled {
		recordRun(cfg, journal.Run{
			RunID:      runID,
			Started:    started,
			Duration:   time.Since(started),
			OutputPath: outPath,
			Bytes:      bytesWritten,
			Status:     "success",
		})
	}

	fmt.Printf("✓ Documento creato con successo: %s\n", filename)
	return nil
}

// recordRun appends to the journal. Best effort: a journal failure must not
// fail a generation that already produced its artifact.
func recordRun(cfg *config.Config, run journal.Run) {
	if dir := filepath.Dir(cfg.Journal.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Warn("Failed to create journal directory", logfields.Error(err))
			return
		}
	}

	store, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		slog.Warn("Failed to open journal", logfields.Error(err))
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), run); err != nil {
		slog.Warn("Failed to record run", logfields.RunID(run.RunID), logfields.Error(err))
	}
}

// companionPath swaps the artifact extension, e.g. plan.docx -> plan.md.
func companionPath(outPath, ext string) string {
	return strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ext
}
