package memorial

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/lifesim-api/internal/errors"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/lifesim-api/internal/redis"
)

// Key pattern: memorial:{game_id}
const memorialKeyPrefix = "memorial:"

const errGameIDEmpty = "game ID cannot be empty"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis-backed memorial repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// recordData is the Redis storage format for a memorial record
type recordData struct {
	LifeID       string   `json:"life_id"`
	Name         string   `json:"name"`
	BornYear     int      `json:"born_year"`
	DiedYear     int      `json:"died_year"`
	Age          int      `json:"age"`
	CauseOfDeath string   `json:"cause_of_death"`
	Achievements []string `json:"achievements,omitempty"`
	RecordedAt   int64    `json:"recorded_at"`
}

// Create appends a finished life to the game's memorial list
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
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

	payload, err := json.Marshal(recordToData(&stored))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal memorial record")
	}

	if err := r.client.RPush(ctx, r.buildKey(input.GameID), payload).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store memorial record in Redis")
	}

	return &CreateOutput{Record: &stored}, nil
}

// List returns the game's memorials in the order lives ended
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	raw, err := r.client.LRange(ctx, r.buildKey(input.GameID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read memorials from Redis")
	}

	records := make([]*Record, 0, len(raw))
	for _, item := range raw {
		var data recordData
		if err := json.Unmarshal([]byte(item), &data); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal memorial record")
		}
		records = append(records, dataToRecord(&data))
	}

	return &ListOutput{Records: records}, nil
}

func (r *redisRepository) buildKey(gameID string) string {
	return memorialKeyPrefix + gameID
}

func recordToData(rec *Record) *recordData {
	return &recordData{
		LifeID:       rec.LifeID,
		Name:         rec.Name,
		BornYear:     rec.BornYear,
		DiedYear:     rec.DiedYear,
		Age:          rec.Age,
		CauseOfDeath: rec.CauseOfDeath,
		Achievements: rec.Achievements,
		RecordedAt:   rec.RecordedAt.Unix(),
	}
}

func dataToRecord(data *recordData) *Record {
	return &Record{
		LifeID:       data.LifeID,
		Name:         data.Name,
		BornYear:     data.BornYear,
		DiedYear:     data.DiedYear,
		Age:          data.Age,
		CauseOfDeath: data.CauseOfDeath,
		Achievements: data.Achievements,
		RecordedAt:   time.Unix(data.RecordedAt, 0).UTC(),
	}
}
