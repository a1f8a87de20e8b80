// Package receivers resolves the co-participant an event needs,
// creating new townsfolk when the policy allows it.
package receivers

import (
	"github.com/KirkDiggler/lifesim-api/internal/catalog"
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/errors"
	"github.com/KirkDiggler/lifesim-api/internal/people"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/random"
)

// upbeat personalities for freshly created friends
var friendPersonalities = []string{"Friendly", "Outgoing", "Cheerful"}

// Config holds the resolver's dependencies
type Config struct {
	Factory people.Factory
	Random  *random.Source
}

// Validate ensures the config is complete
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Factory == nil {
		vb.RequiredField("Factory")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	return vb.Build()
}

// Resolver finds or creates event receivers. Policies differ by
// requirement: spouse and family never create, friend and stranger
// do. A created person lands in both the town roster and the
// relationship list.
type Resolver struct {
	factory people.Factory
	random  *random.Source
}

// NewResolver creates a Resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{
		factory: cfg.Factory,
		random:  cfg.Random,
	}, nil
}

// MissingReceiver signals that a required receiver could not be found
// and the policy forbids creating one. Callers should re-select with
// the event excluded.
func MissingReceiver(req catalog.ReceiverRequirement) error {
	return errors.Unavailablef("no receiver available for requirement %q", req).
		WithMeta("requirement", string(req))
}

// IsMissingReceiver reports whether err is a missing-receiver failure
func IsMissingReceiver(err error) bool {
	return errors.IsUnavailable(err)
}

// Resolve returns a receiver for the requirement, or nil for
// ReceiverNone. A family requirement with no family degrades to a nil
// receiver without error; events fall back to receiver-less text.
func (r *Resolver) Resolve(req catalog.ReceiverRequirement, state *life.PlayerState) (*life.Person, error) {
	switch req {
	case catalog.ReceiverNone:
		return nil, nil
	case catalog.ReceiverSpouse:
		return r.resolveSpouse(state)
	case catalog.ReceiverFriend:
		return r.resolveFriend(state), nil
	case catalog.ReceiverFamily:
		return r.resolveFamily(state), nil
	case catalog.ReceiverStranger:
		return r.resolveStranger(state), nil
	case catalog.ReceiverAny:
		return r.resolveAny(state), nil
	default:
		return nil, errors.InvalidArgumentf("unknown receiver requirement %q", req)
	}
}

func (r *Resolver) resolveSpouse(state *life.PlayerState) (*life.Person, error) {
	minAge := max(16, state.Age-20)
	maxAge := state.Age + 20
	if spouse := r.pickByStatus(state, minAge, maxAge, life.StatusMarried); spouse != nil {
		return spouse, nil
	}
	return nil, MissingReceiver(catalog.ReceiverSpouse)
}

func (r *Resolver) resolveFriend(state *life.PlayerState) *life.Person {
	minAge := max(5, state.Age-10)
	maxAge := state.Age + 10
	if friend := r.pickByStatus(state, minAge, maxAge, life.StatusFriend, life.StatusGoodFriend, life.StatusBestFriend); friend != nil {
		return friend
	}

	friend := r.factory.Generate(&people.GenerateOptions{
		Age:         people.Age(max(0, state.Age+r.random.IntBetween(-2, 2))),
		Personality: friendPersonalities[r.random.Index(len(friendPersonalities))],
	})
	state.AddToTown(friend)
	state.Relationships.Set(friend, life.StatusFriend, r.random.IntBetween(30, 49))
	return friend
}

func (r *Resolver) resolveFamily(state *life.PlayerState) *life.Person {
	// no age band and no creation: family either exists or it doesn't
	return r.pickByStatus(state, 0, 0, life.StatusMom, life.StatusDad, life.StatusFamily)
}

func (r *Resolver) resolveStranger(state *life.PlayerState) *life.Person {
	minAge := max(5, state.Age-20)
	maxAge := state.Age + 20
	if stranger := r.pickByStatus(state, minAge, maxAge, life.StatusStranger); stranger != nil {
		return stranger
	}

	stranger := r.factory.Generate(&people.GenerateOptions{
		Age: people.Age(max(0, state.Age+r.random.IntBetween(-5, 5))),
	})
	state.AddToTown(stranger)
	state.Relationships.Set(stranger, life.StatusStranger, 0)
	return stranger
}

func (r *Resolver) resolveAny(state *life.PlayerState) *life.Person {
	all := state.Relationships.All()
	if len(all) > 0 {
		return all[r.random.Index(len(all))].Person
	}
	return r.resolveStranger(state)
}

// pickByStatus returns a random relationship partner with one of the
// statuses, inside the [minAge, maxAge] band when maxAge > 0.
func (r *Resolver) pickByStatus(state *life.PlayerState, minAge, maxAge int, statuses ...life.RelationshipStatus) *life.Person {
	var candidates []*life.Person
	for _, rel := range state.Relationships.ByStatus(statuses...) {
		if maxAge > 0 && (rel.Person.Age < minAge || rel.Person.Age > maxAge) {
			continue
		}
		candidates = append(candidates, rel.Person)
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[r.random.Index(len(candidates))]
}
