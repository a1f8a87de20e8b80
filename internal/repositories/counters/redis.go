package counters

import (
	"context"
	"strconv"

	"github.com/KirkDiggler/lifesim-api/internal/errors"
	redisclient "github.com/KirkDiggler/lifesim-api/internal/redis"
)

// Key pattern: counters:{game_id}
const countersKeyPrefix = "counters:"

const (
	errGameIDEmpty  = "game ID cannot be empty"
	errCounterEmpty = "counter name cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed counter repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get reads all counters from the game's hash. A game with no hash
// reads as zeros.
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	fields, err := r.client.HGetAll(ctx, r.buildKey(input.GameID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read counters from Redis")
	}

	out := &Counters{}
	for field, raw := range fields {
		value, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return nil, errors.Internalf("corrupt counter %s: %q", field, raw)
		}
		switch Counter(field) {
		case CounterGlobalYear:
			out.GlobalYear = value
		case CounterYearsLived:
			out.YearsLived = value
		case CounterDeaths:
			out.Deaths = value
		}
	}

	return &GetOutput{Counters: out}, nil
}

// Increment bumps one counter atomically and returns the new value
func (r *redisRepository) Increment(ctx context.Context, input IncrementInput) (*IncrementOutput, error) {
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

	value, err := r.client.HIncrBy(ctx, r.buildKey(input.GameID), string(input.Counter), delta).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to increment counter in Redis")
	}

	return &IncrementOutput{Value: value}, nil
}

// Reset deletes the game's counter hash
func (r *redisRepository) Reset(ctx context.Context, input ResetInput) (*ResetOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	if err := r.client.Del(ctx, r.buildKey(input.GameID)).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to reset counters in Redis")
	}

	return &ResetOutput{}, nil
}

func (r *redisRepository) buildKey(gameID string) string {
	return countersKeyPrefix + gameID
}
