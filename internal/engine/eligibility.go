// Package engine implements turn resolution: which events may fire,
// which one does, and what happens to the player when it resolves.
package engine

import (
	"github.com/KirkDiggler/lifesim-api/internal/catalog"
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/history"
)

// EligibilityInput carries everything gating decisions read
type EligibilityInput struct {
	Events  []*catalog.Event
	State   *life.PlayerState
	History *history.Log
	LifeID  string
}

// EligibilityFilter applies requirement and repeatability gates.
// Filtering never mutates state; an event with contradictory
// requirements is simply never eligible.
type EligibilityFilter struct{}

// NewEligibilityFilter creates an EligibilityFilter
func NewEligibilityFilter() *EligibilityFilter {
	return &EligibilityFilter{}
}

// Eligible returns the events allowed to fire this turn, preserving
// catalog order. On the very first turn of a life only the birth
// event is allowed.
func (f *EligibilityFilter) Eligible(input *EligibilityInput) []*catalog.Event {
	if input.State.Age == 0 && input.History.CountInLife(input.LifeID) == 0 {
		for _, ev := range input.Events {
			if ev.ID == catalog.EventIDBirth {
				return []*catalog.Event{ev}
			}
		}
		return nil
	}

	var out []*catalog.Event
	for _, ev := range input.Events {
		if !f.meetsRequirements(ev, input.State) {
			continue
		}
		if !f.meetsRepeatability(ev, input) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func (f *EligibilityFilter) meetsRequirements(ev *catalog.Event, state *life.PlayerState) bool {
	req := ev.Requirements

	if state.Age < req.MinAge {
		return false
	}
	if req.MaxAge > 0 && state.Age > req.MaxAge {
		return false
	}
	if state.Stats.Happiness < req.MinHappiness {
		return false
	}
	if state.Stats.Health < req.MinHealth {
		return false
	}
	if state.Stats.Smarts < req.MinSmarts {
		return false
	}
	if state.Money < req.MinMoney {
		return false
	}
	if req.MaxMoney > 0 && state.Money > req.MaxMoney {
		return false
	}

	if req.HasFriends && len(state.Relationships.Friends()) == 0 {
		return false
	}
	if req.HasJob && state.Job == "" {
		return false
	}
	partners := state.Relationships.Partners()
	if req.HasPartner && len(partners) == 0 {
		return false
	}
	if req.IsSingle && len(partners) > 0 {
		return false
	}
	if req.IsMarried && len(state.Relationships.ByStatus(life.StatusMarried)) == 0 {
		return false
	}
	if req.HasHighSchool && !state.Education.HighSchool {
		return false
	}

	// a spouse receiver that cannot exist makes the event ineligible
	// up front rather than failing at resolution time
	if ev.Receiver == catalog.ReceiverSpouse && len(state.Relationships.ByStatus(life.StatusMarried)) == 0 {
		return false
	}

	return true
}

func (f *EligibilityFilter) meetsRepeatability(ev *catalog.Event, input *EligibilityInput) bool {
	if ev.MaxOccurrences > 0 && input.History.CountFired(ev.ID) >= ev.MaxOccurrences {
		return false
	}

	switch ev.Repeatability {
	case catalog.RepeatOncePerLife:
		return !input.History.HasFiredInLife(ev.ID, input.LifeID)
	case catalog.RepeatOncePerGame:
		return !input.History.HasFiredInGame(ev.ID)
	case catalog.RepeatCooldown:
		last, ok := input.History.LastFiredYear(ev.ID)
		if !ok {
			return true
		}
		return input.State.Year-last >= ev.CooldownYears
	default:
		return true
	}
}
