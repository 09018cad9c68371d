// Package events provides the fire-and-forget domain event boundary.
// The engine emits events (sprint_completed, milestone_reached, ...) for
// external consumers; nothing inside the engine reads them back.
package events

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/cadence/internal/store"
)

// Emitter publishes domain events. Emit never returns an error: failures
// are an observability problem, not a business one.
type Emitter interface {
	Emit(ctx context.Context, eventType string, payload map[string]any)
}

// StoreEmitter appends events to the store's domain event table.
type StoreEmitter struct {
	repo store.EventRepo
}

// NewStoreEmitter creates an Emitter backed by the event repo.
func NewStoreEmitter(repo store.EventRepo) *StoreEmitter {
	return &StoreEmitter{repo: repo}
}

func (e *StoreEmitter) Emit(ctx context.Context, eventType string, payload map[string]any) {
	if err := e.repo.AppendDomainEvent(ctx, eventType, payload); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to emit %s event: %v\n", eventType, err)
	}
}

// NopEmitter discards all events. Useful in tests.
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, string, map[string]any) {}

// Recorder captures emitted events for test assertions.
type Recorder struct {
	Events []Recorded
}

// Recorded is one captured event.
type Recorded struct {
	Type    string
	Payload map[string]any
}

func (r *Recorder) Emit(_ context.Context, eventType string, payload map[string]any) {
	r.Events = append(r.Events, Recorded{Type: eventType, Payload: payload})
}

// Has reports whether an event of the given type was emitted.
func (r *Recorder) Has(eventType string) bool {
	for _, e := range r.Events {
		if e.Type == eventType {
			return true
		}
	}
	return false
}
