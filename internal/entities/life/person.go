package life

import "github.com/KirkDiggler/rpg-toolkit/core"

// Gender of a generated person
type Gender string

// Gender values
const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
)

// Person is any inhabitant of the simulated world other than the
// player: parents, friends, strangers, enemies.
// NOTE: This is a data-only struct. All generation happens in
// internal/people and all mutation happens through events.
type Person struct {
	ID          string
	Name        string
	Age         int
	Gender      Gender
	Personality string
	Interests   []string
	Stats       StatBlock
	Traits      []string
	Job         string
	// Parents holds the IDs of this person's parents when known
	Parents []string
}

// GetID implements core.Entity
func (p *Person) GetID() string {
	return p.ID
}

// GetType implements core.Entity
func (p *Person) GetType() string {
	return "person"
}

// AddTrait appends a trait if the person does not already have it.
// Returns true if the trait was added.
func (p *Person) AddTrait(trait string) bool {
	if p.HasTrait(trait) {
		return false
	}
	p.Traits = append(p.Traits, trait)
	return true
}

// HasTrait reports whether the person has the given trait
func (p *Person) HasTrait(trait string) bool {
	for _, t := range p.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

var _ core.Entity = (*Person)(nil)
