package main

import (
	gocontext "context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tsbuilds/tsb/internal/config"
	"github.com/tsbuilds/tsb/internal/history"
	"github.com/tsbuilds/tsb/internal/shell"
	"github.com/tsbuilds/tsb/pkg/chain"
	"github.com/tsbuilds/tsb/pkg/events"
	"github.com/tsbuilds/tsb/pkg/task"
)

// handleRun resolves and executes a chain or command name and returns the
// process exit code.
func handleRun(name string, args []string) int {
	trace := hasFlag(args, "--trace")

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
	}

	resolver := &chain.Resolver{
		Chains:   cfg.Chains,
		Commands: cfg.Commands,
		Builtins: task.Builtins(cfg.SrcDir),
	}

	if !resolver.Known(name) {
		fmt.Fprintf(os.Stderr, "error: unknown command or chain %q (run `tsb help` for the builtin set)\n", name)
		return 1
	}

	// A chain name that also exists as a user command silently hides the
	// command; surface that before running.
	for _, n := range resolver.ShadowedCommands() {
		fmt.Fprintf(os.Stderr, "warning: chain %q shadows the command with the same name; the chain runs\n", n)
	}

	bus := events.NewMemoryBus()
	executor := &chain.Executor{
		Resolver: resolver,
		Runner:   &shell.Runner{},
		Events:   events.Multi(&reporter{out: os.Stderr}, bus),
	}

	start := time.Now()
	res := executor.Run(gocontext.Background(), name)
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", res.Err)
	}

	recordRun(start, res)

	if trace {
		dumpTrace(os.Stderr, start, bus.History(start))
	}
	return res.ExitCode
}

// reporter prints human-readable progress lines as the chain runs.
type reporter struct {
	out io.Writer
}

func (r *reporter) Publish(e events.Event) {
	switch e.Type {
	case events.EventChainStart:
		if e.Total > 1 {
			fmt.Fprintf(r.out, "Running %s (%d steps)\n", e.Chain, e.Total)
		}
	case events.EventStepStart:
		fmt.Fprintf(r.out, "[%d/%d] %s: %s\n", e.Index+1, e.Total, e.Step, e.Command)
	case events.EventStepEnd:
		if e.ExitCode != 0 {
			fmt.Fprintf(r.out, "step %s failed (exit %d)\n", e.Step, e.ExitCode)
		}
	case events.EventChainEnd:
		if e.ExitCode == 0 && e.Total > 1 {
			fmt.Fprintf(r.out, "%s completed in %s\n", e.Chain, e.Duration.Round(time.Millisecond))
		}
	}
}

// recordRun appends the run to the project-local history database. Recording
// is best-effort and never affects the run's exit code.
func recordRun(start time.Time, res chain.Result) {
	if res.Err != nil {
		return
	}
	if err := os.MkdirAll(".tsb", 0755); err != nil {
		return
	}
	store, err := history.Open(history.DefaultPath("."))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history: %v\n", err)
		return
	}
	defer store.Close()

	steps := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		steps[i] = s.Name
	}
	rec := history.Record{
		Chain:    res.Chain,
		Steps:    steps,
		ExitCode: res.ExitCode,
		Started:  start,
		Duration: res.Duration,
	}
	if err := store.Append(rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history: %v\n", err)
	}
}

// dumpTrace prints the run's event timeline, offset from the run start.
func dumpTrace(out io.Writer, start time.Time, evs []events.Event) {
	fmt.Fprintln(out, "--- trace ---")
	for _, e := range evs {
		offset := e.Timestamp.Sub(start).Round(time.Millisecond)
		switch e.Type {
		case events.EventStepStart, events.EventStepEnd:
			fmt.Fprintf(out, "%8s %-12s %s (exit %d)\n", offset, e.Type, e.Step, e.ExitCode)
		default:
			fmt.Fprintf(out, "%8s %-12s %s (exit %d)\n", offset, e.Type, e.Chain, e.ExitCode)
		}
	}
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}
