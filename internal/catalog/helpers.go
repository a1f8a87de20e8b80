package catalog

import (
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/people"
)

// familyStatuses are the statuses bulk family-level adjustments touch
var familyStatuses = []life.RelationshipStatus{
	life.StatusMom,
	life.StatusDad,
	life.StatusFamily,
}

// adjustFamilyLevels shifts the closeness level of every family member
func adjustFamilyLevels(env *Env, delta int) {
	env.State.Relationships.AdjustLevelByStatus(delta, familyStatuses...)
}

// sameAgePerson generates a person the player's age and adds them to
// the town roster.
func sameAgePerson(env *Env) *life.Person {
	p := env.People.Generate(&people.GenerateOptions{Age: people.Age(env.State.Age)})
	env.State.AddToTown(p)
	return p
}

// befriend registers a new same-age friend at the given level
func befriend(env *Env, level int) *life.Person {
	p := sameAgePerson(env)
	env.State.Relationships.Set(p, life.StatusFriend, level)
	return p
}

// addTrait is AddTrait as a hook body; duplicates are ignored
func addTrait(env *Env, trait string) {
	env.State.AddTrait(trait)
}
