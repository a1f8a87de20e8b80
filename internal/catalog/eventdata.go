package catalog

import "github.com/KirkDiggler/lifesim-api/internal/entities/life"

// Well-known EventData keys
const (
	// KeyReceiver holds the resolved co-participant of the turn
	KeyReceiver = "receiver"
)

// EventData carries people and values from an event's description
// generator to its result text and hooks. It lives for exactly one
// turn: the orchestrator creates it when an event fires and drops it
// when the turn resolves. Nothing in here survives into PlayerState
// unless a hook explicitly moves it there.
type EventData struct {
	people map[string]*life.Person
	values map[string]string
}

// NewEventData creates an empty turn-scoped data bag
func NewEventData() *EventData {
	return &EventData{
		people: make(map[string]*life.Person),
		values: make(map[string]string),
	}
}

// SetPerson stashes a person under a key
func (d *EventData) SetPerson(key string, p *life.Person) {
	if d == nil {
		return
	}
	d.people[key] = p
}

// Person returns the person under a key, or nil
func (d *EventData) Person(key string) *life.Person {
	if d == nil {
		return nil
	}
	return d.people[key]
}

// Receiver returns the person under KeyReceiver, or nil
func (d *EventData) Receiver() *life.Person {
	return d.Person(KeyReceiver)
}

// SetValue stashes a string value under a key
func (d *EventData) SetValue(key, value string) {
	if d == nil {
		return
	}
	d.values[key] = value
}

// Value returns the string value under a key, or ""
func (d *EventData) Value(key string) string {
	if d == nil {
		return ""
	}
	return d.values[key]
}
