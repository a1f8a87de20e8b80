package life

import "github.com/KirkDiggler/rpg-toolkit/core"

// Education tracks the player's completed education milestones
type Education struct {
	HighSchool bool
	College    bool
}

// PlayerState is the authoritative record of the current life. Events
// are the only thing that mutates it; the orchestrator serializes
// access so events never see a half-applied state.
type PlayerState struct {
	ID     string
	Name   string
	Gender Gender
	// Age is the player's age in the current life. Year is the global
	// simulation year, which survives across lives.
	Age          int
	Year         int
	Stats        StatBlock
	Money        int
	Traits       []string
	Hobbies      []string
	Achievements []string
	Job          string
	Education    Education
	// Relationships owns the canonical relationship list. Town and
	// PotentialRelationships may share Person pointers with it.
	Relationships          *RelationshipStore
	Town                   []*Person
	PotentialRelationships []*Person
	// CauseOfDeath is empty while the player is alive
	CauseOfDeath string
}

// NewPlayerState starts a life from a generated newborn
func NewPlayerState(p *Person, money int) *PlayerState {
	return &PlayerState{
		ID:            p.ID,
		Name:          p.Name,
		Gender:        p.Gender,
		Age:           p.Age,
		Stats:         p.Stats,
		Money:         money,
		Relationships: NewRelationshipStore(),
	}
}

// GetID implements core.Entity
func (s *PlayerState) GetID() string {
	return s.ID
}

// GetType implements core.Entity
func (s *PlayerState) GetType() string {
	return "player"
}

// Alive reports whether the life is still running
func (s *PlayerState) Alive() bool {
	return s.CauseOfDeath == ""
}

// AddTrait appends a trait unless already present
func (s *PlayerState) AddTrait(trait string) bool {
	if s.HasTrait(trait) {
		return false
	}
	s.Traits = append(s.Traits, trait)
	return true
}

// HasTrait reports whether the player has the given trait
func (s *PlayerState) HasTrait(trait string) bool {
	for _, t := range s.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// AddHobby appends a hobby unless already present
func (s *PlayerState) AddHobby(hobby string) bool {
	for _, h := range s.Hobbies {
		if h == hobby {
			return false
		}
	}
	s.Hobbies = append(s.Hobbies, hobby)
	return true
}

// AddAchievement appends an achievement unless already present
func (s *PlayerState) AddAchievement(achievement string) bool {
	for _, a := range s.Achievements {
		if a == achievement {
			return false
		}
	}
	s.Achievements = append(s.Achievements, achievement)
	return true
}

// AdjustMoney applies a money delta, flooring at zero
func (s *PlayerState) AdjustMoney(delta int) {
	s.Money += delta
	if s.Money < 0 {
		s.Money = 0
	}
}

// AddToTown registers a person in the town roster unless already there
func (s *PlayerState) AddToTown(p *Person) {
	if p == nil {
		return
	}
	for _, existing := range s.Town {
		if existing.ID == p.ID {
			return
		}
	}
	s.Town = append(s.Town, p)
}

// AdvanceAges ages the player and every tracked person by exactly one
// year. Persons shared between the town roster, the potentials pool
// and the relationship list are aged once.
func (s *PlayerState) AdvanceAges() {
	s.Age++
	aged := make(map[string]bool)
	ageOnce := func(p *Person) {
		if p == nil || aged[p.ID] {
			return
		}
		p.Age++
		aged[p.ID] = true
	}
	for _, p := range s.Town {
		ageOnce(p)
	}
	for _, p := range s.PotentialRelationships {
		ageOnce(p)
	}
	for _, rel := range s.Relationships.All() {
		ageOnce(rel.Person)
	}
}

var _ core.Entity = (*PlayerState)(nil)
