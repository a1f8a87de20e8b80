// Package people generates the inhabitants of the simulated world
package people

import (
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
)

//go:generate mockgen -destination=mock/mock_factory.go -package=peoplemock github.com/KirkDiggler/lifesim-api/internal/people Factory

// GenerateOptions pins selected attributes of a generated person.
// Unset fields are rolled randomly.
type GenerateOptions struct {
	// Age overrides the default random age range when set
	Age         *int
	Gender      life.Gender
	Personality string
	Interests   []string
	Traits      []string
	Stats       *life.StatBlock
	Job         string
}

// Age is a convenience for pinning an age in GenerateOptions
func Age(n int) *int {
	return &n
}

// Factory creates people. Implementations must be safe to call from a
// single goroutine at a time; the orchestrator serializes turns.
type Factory interface {
	// Generate creates a person, honoring any pinned options
	Generate(opts *GenerateOptions) *life.Person
	// Child creates a newborn of the two given parents
	Child(parent1, parent2 *life.Person) *life.Person
	// Enemy creates a hostile person
	Enemy(opts *GenerateOptions) *life.Person
	// Town creates the starting pool of townsfolk
	Town(count int) []*life.Person
}
