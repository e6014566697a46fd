package provision

import (
	"fmt"
	"log"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Observer receives structured events as the plan executes.
type Observer interface {
	// Event emits a structured provisioning event.
	Event(e Event)
}

// Event is one structured provisioning event.
type Event struct {
	Type    EventType
	Step    string
	Action  string
	Message string
}

// EventType classifies provisioning events.
type EventType string

const (
	// EventStepStarted indicates a plan step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a plan step finished, regardless of
	// its per-action outcomes.
	EventStepCompleted EventType = "step.completed"

	// EventActionSucceeded indicates one action within a step completed.
	EventActionSucceeded EventType = "action.succeeded"
	// EventActionSkipped indicates the desired state was already present.
	EventActionSkipped EventType = "action.skipped"
	// EventActionFailed indicates one action failed; the run continues.
	EventActionFailed EventType = "action.failed"
)

// LogObserver writes events through a logr.Logger.
type LogObserver struct {
	log logr.Logger
}

// NewLogObserver returns an observer backed by the standard log package.
func NewLogObserver() *LogObserver {
	l := funcr.New(func(prefix, args string) {
		if prefix != "" {
			log.Printf("%s: %s", prefix, args)
			return
		}
		log.Print(args)
	}, funcr.Options{})
	return NewObserver(l)
}

// NewObserver returns an observer backed by the given logger. Callers
// that already carry a logr.Logger plug it in here instead of going
// through the standard log package.
func NewObserver(l logr.Logger) *LogObserver {
	return &LogObserver{log: l}
}

// Event implements Observer.
func (o *LogObserver) Event(e Event) {
	kv := []any{"type", string(e.Type), "step", e.Step}
	if e.Action != "" {
		kv = append(kv, "action", e.Action)
	}
	o.log.Info(e.Message, kv...)
}

// logStepStart emits a step start event.
func logStepStart(obs Observer, step string, position, total int) {
	obs.Event(Event{
		Type:    EventStepStarted,
		Step:    step,
		Message: fmt.Sprintf("starting (%d/%d)", position, total),
	})
}

// logStepDone emits a step completion event.
func logStepDone(obs Observer, step string, d time.Duration) {
	obs.Event(Event{
		Type:    EventStepCompleted,
		Step:    step,
		Message: fmt.Sprintf("completed in %v", d.Round(time.Millisecond)),
	})
}

// logResult emits the event matching a single action result.
func logResult(obs Observer, r Result) {
	t := EventActionSucceeded
	switch r.Status {
	case StatusSkipped:
		t = EventActionSkipped
	case StatusFailed:
		t = EventActionFailed
	}
	obs.Event(Event{Type: t, Step: r.Step, Action: r.Action, Message: r.Detail})
}
