package sim

import (
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
)

// Phase is where the turn state machine currently sits
type Phase string

// Turn phases
const (
	// PhaseIdle means the engine is ready for the next year
	PhaseIdle Phase = "idle"
	// PhaseAwaitingChoice means an event fired and waits on the player
	PhaseAwaitingChoice Phase = "awaiting_choice"
	// PhaseDead is terminal until NewLife or NewGame
	PhaseDead Phase = "dead"
)

// ChoiceOption is one selectable branch presented to the player
type ChoiceOption struct {
	Index int
	Text  string
}

// RenderPayload is what the presentation layer shows for a turn
type RenderPayload struct {
	Title       string
	Description string
	// Message is the resolution text; empty while a choice is pending
	Message string
	Choices []ChoiceOption
	// IsTerminal marks the turn that ended the life
	IsTerminal   bool
	CauseOfDeath string
}

// RelationshipView is a read-only summary of one relationship
type RelationshipView struct {
	PersonID string
	Name     string
	Age      int
	Status   life.RelationshipStatus
	Level    int
}

// Snapshot is a read-only view of the current life
type Snapshot struct {
	Phase         Phase
	LifeID        string
	Name          string
	Gender        life.Gender
	Age           int
	Year          int
	Stats         life.StatBlock
	Money         int
	Job           string
	Traits        []string
	Hobbies       []string
	Achievements  []string
	Relationships []RelationshipView
	Alive         bool
	CauseOfDeath  string
}

// AdvanceYearInput contains parameters for advancing one year
type AdvanceYearInput struct{}

// AdvanceYearOutput contains the fired event's render payload
type AdvanceYearOutput struct {
	EventID string
	Phase   Phase
	Payload *RenderPayload
}

// ResolveChoiceInput contains the selected choice index
type ResolveChoiceInput struct {
	ChoiceIndex int
}

// ResolveChoiceOutput contains the resolved turn's render payload
type ResolveChoiceOutput struct {
	EventID string
	Phase   Phase
	Payload *RenderPayload
}

// NewLifeInput contains parameters for starting a new life
type NewLifeInput struct{}

// NewLifeOutput describes the freshly born character
type NewLifeOutput struct {
	Snapshot *Snapshot
}

// NewGameInput contains parameters for resetting the whole game
type NewGameInput struct{}

// NewGameOutput describes the first character of the new game
type NewGameOutput struct {
	Snapshot *Snapshot
}

// GetStateInput contains parameters for reading the current state
type GetStateInput struct{}

// GetStateOutput contains the current state snapshot
type GetStateOutput struct {
	Snapshot *Snapshot
}
