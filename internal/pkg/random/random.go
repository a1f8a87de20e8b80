// Package random provides range and percentage helpers over rpg-toolkit dice rollers.
package random

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Source wraps a dice.Roller with the integer-range helpers the
// simulation needs. All engine randomness flows through a Source so a
// seeded roller makes a whole run reproducible.
type Source struct {
	roller dice.Roller
}

// New creates a Source over the given roller
func New(roller dice.Roller) *Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Source{roller: roller}
}

// NewSeeded creates a Source over a deterministic roller for the seed
func NewSeeded(seed int64) *Source {
	return New(NewSeededRoller(seed))
}

// Roller returns the underlying roller
func (s *Source) Roller() dice.Roller {
	return s.roller
}

// Index returns a uniform value in [0, n). Non-positive n yields 0.
func (s *Source) Index(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := s.roller.Roll(n)
	if err != nil {
		// Roller failures only occur on a broken entropy source;
		// degrading to the first bucket keeps the turn alive.
		return 0
	}
	return v - 1
}

// IntBetween returns a uniform value in [minValue, maxValue], both inclusive
func (s *Source) IntBetween(minValue, maxValue int) int {
	if maxValue <= minValue {
		return minValue
	}
	return minValue + s.Index(maxValue-minValue+1)
}

// Percent returns true with probability pct/100
func (s *Source) Percent(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return s.Index(100) < pct
}
