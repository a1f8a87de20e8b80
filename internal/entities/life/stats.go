// Package life implements the life simulation entities
package life

// Stat bounds. Core stats conventionally live in [0,100]; mutations
// clamp after applying deltas, not at creation time.
const (
	StatMin = 0
	StatMax = 100
)

// StatBlock holds the four core stats shared by the player and every
// other person in the simulation.
// NOTE: This is a data-only struct. Eligibility checks and effect
// application live in internal/engine, not here.
type StatBlock struct {
	Happiness int
	Health    int
	Smarts    int
	Looks     int
}

// Clamp forces every stat back into [StatMin, StatMax]
func (s *StatBlock) Clamp() {
	s.Happiness = clampStat(s.Happiness)
	s.Health = clampStat(s.Health)
	s.Smarts = clampStat(s.Smarts)
	s.Looks = clampStat(s.Looks)
}

func clampStat(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}
