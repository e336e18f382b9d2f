// Package shell runs command strings through the system shell with
// passthrough stdio.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner executes one command string at a time via `sh -c`, so shell features
// like `&&`, pipes, and env assignment prefixes work. Output streams are
// inherited live rather than captured.
type Runner struct {
	Dir    string    // default working directory; empty means the process cwd
	Stdin  io.Reader // defaults to os.Stdin
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
}

// Run executes the command in dir (falling back to the Runner's default
// directory) and returns the child's exit code. A child that cannot be
// spawned at all is reported on stderr and mapped to exit code 1; Run never
// returns an error.
func (r *Runner) Run(ctx context.Context, command, dir string) int {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	if dir != "" {
		cmd.Dir = dir
	} else {
		cmd.Dir = r.Dir
	}
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(r.stderr(), "tsb: %v\n", err)
		return 1
	}
	return 0
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
