package events

import "time"

// EventType identifies the kind of event emitted during a chain run.
type EventType string

const (
	EventChainStart EventType = "chain.start"
	EventChainEnd   EventType = "chain.end"
	EventStepStart  EventType = "step.start"
	EventStepEnd    EventType = "step.end"
)

// Event records one lifecycle moment of a chain run. Step-level fields are
// zero on chain-level events; ExitCode is meaningful on step.end and
// chain.end only.
type Event struct {
	Type      EventType     `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	Chain     string        `json:"chain"`
	Step      string        `json:"step,omitempty"`
	Command   string        `json:"command,omitempty"`
	Index     int           `json:"index"`
	Total     int           `json:"total"`
	ExitCode  int           `json:"exit_code"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// Publisher is the sink for chain lifecycle events.
type Publisher interface {
	Publish(e Event)
}

type multi []Publisher

func (m multi) Publish(e Event) {
	for _, p := range m {
		p.Publish(e)
	}
}

// Multi fans each event out to every given publisher, in order. Nil entries
// are skipped.
func Multi(ps ...Publisher) Publisher {
	var out multi
	for _, p := range ps {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
