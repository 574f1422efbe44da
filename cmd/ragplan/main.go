package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/ragplan/internal/config"
	"git.home.luguber.info/inful/ragplan/internal/errors"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"ragplan.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Generate struct {
		Output   string `short:"o" help:"Output file name (defaults to the fixed document name)"`
		Markdown bool   `help:"Also write a Markdown rendition next to the document"`
		HTML     bool   `help:"Also write an HTML preview next to the document"`
		Journal  bool   `help:"Record this run in the generation journal"`
	} `cmd:"" default:"1" help:"Generate the RAG improvement plan document"`

	History struct {
		Limit int `short:"n" help:"Maximum runs to show" default:"20"`
	} `cmd:"" help:"Show recorded generation runs"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Set up logging. Stdout is reserved for the confirmation lines.
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	adapter := errors.NewCLIErrorAdapter(CLI.Verbose, logger)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		adapter.HandleError(errors.ConfigLoadError(CLI.Config, err))
	}

	switch ctx.Command() {
	case "generate":
		if err := runGenerate(cfg); err != nil {
			adapter.HandleError(err)
		}
	case "history":
		if err := runHistory(cfg, CLI.History.Limit); err != nil {
			adapter.HandleError(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", ctx.Command())
		os.Exit(1)
	}
}
