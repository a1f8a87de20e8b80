// Package counters provides the persisted game-lifetime counters:
// the global year and the tallies that survive individual lives.
package counters

import "context"

//go:generate mockgen -destination=mock/mock_repository.go -package=countersmock github.com/KirkDiggler/lifesim-api/internal/repositories/counters Repository

// Counter names a persisted counter
type Counter string

// Persisted counters
const (
	// CounterGlobalYear is the simulation year, shared across lives
	CounterGlobalYear Counter = "global_year"
	// CounterYearsLived tallies every simulated year across all lives
	CounterYearsLived Counter = "years_lived"
	// CounterDeaths tallies completed lives
	CounterDeaths Counter = "deaths"
)

// Counters is a snapshot of all counters for a game
type Counters struct {
	GlobalYear int64
	YearsLived int64
	Deaths     int64
}

// GetInput contains parameters for reading a game's counters
type GetInput struct {
	GameID string
}

// GetOutput contains the counter snapshot. Missing games read as all
// zeros.
type GetOutput struct {
	Counters *Counters
}

// IncrementInput contains parameters for bumping one counter
type IncrementInput struct {
	GameID  string
	Counter Counter
	Delta   int64
}

// IncrementOutput contains the post-increment value
type IncrementOutput struct {
	Value int64
}

// ResetInput contains parameters for zeroing a game's counters
type ResetInput struct {
	GameID string
}

// ResetOutput is empty, reserved for future fields
type ResetOutput struct{}

// Repository persists game counters
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Increment(ctx context.Context, input IncrementInput) (*IncrementOutput, error)
	Reset(ctx context.Context, input ResetInput) (*ResetOutput, error)
}
