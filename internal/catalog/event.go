// Package catalog defines life events: their gating requirements,
// selection weights, effects, and player-facing text.
package catalog

import (
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/errors"
	"github.com/KirkDiggler/lifesim-api/internal/people"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/random"
)

// Type buckets events for display and tooling. It carries no gating
// semantics.
type Type string

// Event types
const (
	TypeSocial    Type = "social"
	TypeCareer    Type = "career"
	TypeHealth    Type = "health"
	TypeEducation Type = "education"
	TypeRandom    Type = "random"
)

// Repeatability controls how often an event may fire
type Repeatability string

// Repeatability modes
const (
	// RepeatUnlimited events may fire every year
	RepeatUnlimited Repeatability = "unlimited"
	// RepeatOncePerLife events fire at most once per life
	RepeatOncePerLife Repeatability = "once_per_life"
	// RepeatOncePerGame events fire at most once per game, across lives
	RepeatOncePerGame Repeatability = "once_per_game"
	// RepeatCooldown events wait CooldownYears between firings
	RepeatCooldown Repeatability = "cooldown"
)

// ReceiverRequirement names the kind of co-participant an event needs
type ReceiverRequirement string

// Receiver requirements
const (
	ReceiverNone     ReceiverRequirement = ""
	ReceiverSpouse   ReceiverRequirement = "spouse"
	ReceiverFriend   ReceiverRequirement = "friend"
	ReceiverFamily   ReceiverRequirement = "family"
	ReceiverStranger ReceiverRequirement = "stranger"
	ReceiverAny      ReceiverRequirement = "any"
)

// Requirements gate event eligibility. Zero values mean "no gate":
// MaxAge <= 0 is unbounded, numeric minimums of 0 always pass, and
// boolean gates only apply when true.
type Requirements struct {
	MinAge       int
	MaxAge       int
	MinHappiness int
	MinHealth    int
	MinSmarts    int
	MinMoney     int
	MaxMoney     int

	HasFriends    bool
	HasJob        bool
	HasPartner    bool
	IsSingle      bool
	IsMarried     bool
	HasHighSchool bool
}

// Effect is a bundle of stat and money deltas. Stats clamp to
// [0,100] and money floors at zero when applied.
type Effect struct {
	Happiness int
	Health    int
	Smarts    int
	Looks     int
	Money     int
}

// IsZero reports whether the effect changes nothing
func (e Effect) IsZero() bool {
	return e == Effect{}
}

// Env is what event text generators and hooks get to work with. It is
// built fresh for each turn by the orchestrator.
type Env struct {
	State  *life.PlayerState
	Random *random.Source
	People people.Factory
}

// DescribeFunc produces player-facing text for the current turn. It
// may stash generated people and values in data for later hooks.
type DescribeFunc func(env *Env, data *EventData) string

// Description is player-facing text, either static or generated per
// turn. Exactly one of Text and Generate is set.
type Description struct {
	Text     string
	Generate DescribeFunc
}

// Static builds a fixed description
func Static(text string) Description {
	return Description{Text: text}
}

// Generated builds a per-turn description
func Generated(fn DescribeFunc) Description {
	return Description{Generate: fn}
}

// Resolve produces the text for this turn
func (d Description) Resolve(env *Env, data *EventData) string {
	if d.Generate != nil {
		return d.Generate(env, data)
	}
	return d.Text
}

func (d Description) isSet() bool {
	return d.Text != "" || d.Generate != nil
}

// Hook runs side effects beyond plain stat deltas: creating people,
// changing relationships, setting flags, killing the player.
type Hook func(env *Env, data *EventData)

// Choice is one player-selectable branch of an event
type Choice struct {
	Text     string
	Effect   Effect
	Result   Description
	OnSelect Hook
}

// Event is a single catalog entry. An event either resolves
// immediately (Effect, Message, OnTrigger) or presents Choices; never
// both.
type Event struct {
	ID            string
	Title         string
	Type          Type
	Weight        int
	Repeatability Repeatability
	// CooldownYears applies only with RepeatCooldown
	CooldownYears int
	// MaxOccurrences caps total firings per game when > 0
	MaxOccurrences int
	Requirements   Requirements
	Receiver       ReceiverRequirement
	Description    Description

	Effect    Effect
	Message   Description
	OnTrigger Hook

	Choices []Choice
}

// HasChoices reports whether the event waits for a player decision
func (e *Event) HasChoices() bool {
	return len(e.Choices) > 0
}

// Validate checks structural invariants of a single event
func (e *Event) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", e.ID, vb)
	errors.ValidateRequired("title", e.Title, vb)
	if e.Weight <= 0 {
		vb.InvalidField("weight", "must be positive")
	}
	switch e.Repeatability {
	case RepeatUnlimited, RepeatOncePerLife, RepeatOncePerGame:
		if e.CooldownYears != 0 {
			vb.InvalidField("cooldown_years", "only valid with cooldown repeatability")
		}
	case RepeatCooldown:
		if e.CooldownYears <= 0 {
			vb.InvalidField("cooldown_years", "must be positive with cooldown repeatability")
		}
	default:
		vb.InvalidField("repeatability", "unknown mode")
	}
	if e.MaxOccurrences < 0 {
		vb.InvalidField("max_occurrences", "must not be negative")
	}
	if !e.Description.isSet() {
		vb.RequiredField("description")
	}
	if e.HasChoices() {
		if e.Message.isSet() || !e.Effect.IsZero() || e.OnTrigger != nil {
			vb.InvalidField("choices", "choice events must not carry a flat outcome")
		}
		for i, c := range e.Choices {
			if c.Text == "" {
				vb.Fieldf("choices", "choice %d has no text", i)
			}
		}
	} else if !e.Message.isSet() {
		vb.RequiredField("message")
	}
	return vb.Build()
}
