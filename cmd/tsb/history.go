package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/tsbuilds/tsb/internal/history"
)

// handleHistory implements `tsb history [n]` — prints the most recent
// recorded chain runs, newest first.
func handleHistory(args []string) error {
	n := 10
	if len(args) >= 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			return fmt.Errorf("invalid count %q", args[0])
		}
		n = parsed
	}

	path := history.DefaultPath(".")
	if _, err := os.Stat(path); err != nil {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(n)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	for _, rec := range records {
		status := "ok"
		if rec.ExitCode != 0 {
			status = fmt.Sprintf("exit %d", rec.ExitCode)
		}
		fmt.Printf("%s  %-12s %-8s %6s  (%d steps)\n",
			rec.Started.Format(time.DateTime),
			rec.Chain,
			status,
			rec.Duration.Round(time.Millisecond),
			len(rec.Steps))
	}
	return nil
}
