package memorial

import (
	"context"
	"sync"

	"github.com/KirkDiggler/lifesim-api/internal/errors"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/clock"
)

// memoryRepository keeps memorials in process memory. Useful for play
// sessions without Redis and for orchestrator tests.
type memoryRepository struct {
	mu    sync.Mutex
	clock clock.Clock
	games map[string][]*Record
}

// NewMemoryRepository creates an in-memory memorial repository
func NewMemoryRepository(clk clock.Clock) Repository {
	if clk == nil {
		clk = clock.New()
	}
	return &memoryRepository{
		clock: clk,
		games: make(map[string][]*Record),
	}
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument("record cannot be nil")
	}
	if input.Record.LifeID == "" {
		return nil, errors.InvalidArgument("record life ID cannot be empty")
	}

	stored := *input.Record
	stored.RecordedAt = r.clock.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.games[input.GameID] = append(r.games[input.GameID], &stored)
	return &CreateOutput{Record: &stored}, nil
}

func (r *memoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]*Record, len(r.games[input.GameID]))
	copy(records, r.games[input.GameID])
	return &ListOutput{Records: records}, nil
}
