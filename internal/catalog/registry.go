package catalog

import (
	"slices"

	"github.com/KirkDiggler/lifesim-api/internal/errors"
)

// Well-known event IDs the engine treats specially
const (
	// EventIDBirth is the only event allowed on the first turn of a life
	EventIDBirth = "birth"
	// EventIDQuietYear is the low-weight filler event with no gates
	EventIDQuietYear = "quiet_year"
)

// Registry holds a validated event catalog. Events keep their
// declaration order, which selection relies on for determinism.
type Registry struct {
	events []*Event
	byID   map[string]*Event
}

// NewRegistry validates the events and builds a registry. Duplicate
// IDs and structurally invalid events are rejected.
func NewRegistry(events []*Event) (*Registry, error) {
	r := &Registry{
		events: make([]*Event, 0, len(events)),
		byID:   make(map[string]*Event, len(events)),
	}
	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			return nil, errors.Wrapf(err, "event %q", ev.ID)
		}
		if _, exists := r.byID[ev.ID]; exists {
			return nil, errors.InvalidArgumentf("duplicate event id %q", ev.ID)
		}
		r.events = append(r.events, ev)
		r.byID[ev.ID] = ev
	}
	return r, nil
}

// Events returns the catalog in declaration order. The slice is a
// copy; the events are shared.
func (r *Registry) Events() []*Event {
	out := make([]*Event, len(r.events))
	copy(out, r.events)
	return out
}

// Get looks up an event by ID
func (r *Registry) Get(id string) (*Event, bool) {
	ev, ok := r.byID[id]
	return ev, ok
}

// Len returns the number of events in the catalog
func (r *Registry) Len() int {
	return len(r.events)
}

// Default builds the built-in catalog
func Default() (*Registry, error) {
	return NewRegistry(slices.Concat(
		childhoodEvents(),
		teenEvents(),
		adultEvents(),
		commonEvents(),
	))
}
