package counters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/lifesim-api/internal/errors"
)

// memoryRepository keeps counters in process memory. Useful for play
// sessions without Redis and for orchestrator tests.
type memoryRepository struct {
	mu    sync.Mutex
	games map[string]map[Counter]int64
}

// NewMemoryRepository creates an in-memory counter repository
func NewMemoryRepository() Repository {
	return &memoryRepository{
		games: make(map[string]map[Counter]int64),
	}
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	game := r.games[input.GameID]
	return &GetOutput{Counters: &Counters{
		GlobalYear: game[CounterGlobalYear],
		YearsLived: game[CounterYearsLived],
		Deaths:     game[CounterDeaths],
	}}, nil
}

func (r *memoryRepository) Increment(_ context.Context, input IncrementInput) (*IncrementOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}
	if input.Counter == "" {
		return nil, errors.InvalidArgument(errCounterEmpty)
	}

	delta := input.Delta
	if delta == 0 {
		delta = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.games[input.GameID] == nil {
		r.games[input.GameID] = make(map[Counter]int64)
	}
	r.games[input.GameID][input.Counter] += delta

	return &IncrementOutput{Value: r.games[input.GameID][input.Counter]}, nil
}

func (r *memoryRepository) Reset(_ context.Context, input ResetInput) (*ResetOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.games, input.GameID)
	return &ResetOutput{}, nil
}
