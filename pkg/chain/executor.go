package chain

import (
	"context"
	"time"

	"github.com/tsbuilds/tsb/pkg/events"
)

// Runner executes a single shell command in a working directory and reports
// its exit code. Spawn failures are reported as exit code 1, never as errors.
type Runner interface {
	Run(ctx context.Context, command, dir string) int
}

// Result is the outcome of one chain run.
type Result struct {
	Chain    string
	Steps    []Step // flattened steps, empty when expansion failed
	Executed int    // how many steps actually ran
	ExitCode int
	Err      error // expansion error, nil once execution starts
	Duration time.Duration
}

// Executor drives a chain run: expand the name, then execute each step
// strictly sequentially, stopping at the first non-zero exit code. At most
// one child process is ever outstanding.
type Executor struct {
	Resolver *Resolver
	Runner   Runner
	Events   events.Publisher // optional
}

// Run executes the named chain. The returned Result's ExitCode is the run's
// authoritative outcome: 0 when every step passed, the failing step's own
// code on fail-fast, and 1 on expansion failure.
func (e *Executor) Run(ctx context.Context, name string) Result {
	start := time.Now()
	res := Result{Chain: name}

	steps, err := e.Resolver.Expand(name)
	if err != nil {
		res.Err = err
		res.ExitCode = 1
		res.Duration = time.Since(start)
		return res
	}
	res.Steps = steps

	e.publish(events.Event{
		Type:  events.EventChainStart,
		Chain: name,
		Total: len(steps),
	})

	for i, step := range steps {
		e.publish(events.Event{
			Type:    events.EventStepStart,
			Chain:   name,
			Step:    step.Name,
			Command: step.Spec.Run,
			Index:   i,
			Total:   len(steps),
		})

		stepStart := time.Now()
		code := e.Runner.Run(ctx, step.Spec.Run, step.Spec.Dir)
		res.Executed++

		e.publish(events.Event{
			Type:     events.EventStepEnd,
			Chain:    name,
			Step:     step.Name,
			Command:  step.Spec.Run,
			Index:    i,
			Total:    len(steps),
			ExitCode: code,
			Duration: time.Since(stepStart),
		})

		if code != 0 {
			res.ExitCode = code
			break
		}
	}

	res.Duration = time.Since(start)
	e.publish(events.Event{
		Type:     events.EventChainEnd,
		Chain:    name,
		Total:    len(steps),
		Index:    res.Executed,
		ExitCode: res.ExitCode,
		Duration: res.Duration,
	})
	return res
}

func (e *Executor) publish(ev events.Event) {
	if e.Events != nil {
		e.Events.Publish(ev)
	}
}
