package main

import (
	"context"
	"fmt"
	"os"

	"git.home.luguber.info/inful/ragplan/internal/config"
	"git.home.luguber.info/inful/ragplan/internal/errors"
	"git.home.luguber.info/inful/ragplan/internal/journal"
)

// runHistory prints recorded generation runs, newest first.
func runHistory(cfg *config.Config, limit int) error {
	if _, err := os.Stat(cfg.Journal.Path); os.IsNotExist(err) {
		return errors.JournalError("open", fmt.Errorf("no journal at %s (generate with --journal first)", cfg.Journal.Path))
	}

	store, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return errors.JournalError("open", err)
	}
	defer store.Close()

	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return errors.JournalError("list", err)
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("%s  %s  %6dms  %8dB  %s  %s\n",
			r.Started.Format("2006-01-02 15:04:05"),
			r.RunID,
			r.Duration.Milliseconds(),
			r.Bytes,
			r.Status,
			r.OutputPath)
	}
	return nil
}
