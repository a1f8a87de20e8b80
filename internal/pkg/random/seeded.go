package random

import (
	mrand "math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/lifesim-api/internal/errors"
)

// seededRoller implements dice.Roller over a deterministic PRNG stream.
// Same seed, same sequence of rolls; this is what makes selection
// reproducible in tests and replays.
type seededRoller struct {
	rng *mrand.Rand
}

// NewSeededRoller returns a dice.Roller producing a reproducible roll
// stream for the given seed
func NewSeededRoller(seed int64) dice.Roller {
	return &seededRoller{rng: mrand.New(mrand.NewSource(seed))}
}

// Roll returns a uniform value in [1, size]
func (r *seededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return r.rng.Intn(size) + 1, nil
}

// RollN returns count uniform values in [1, size]
func (r *seededRoller) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("roll count must be positive, got %d", count)
	}
	rolls := make([]int, count)
	for i := range rolls {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls[i] = v
	}
	return rolls, nil
}

// Compile-time check that the seeded roller satisfies dice.Roller
var _ dice.Roller = (*seededRoller)(nil)
