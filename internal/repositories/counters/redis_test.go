package counters_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/lifesim-api/internal/errors"
	"github.com/KirkDiggler/lifesim-api/internal/repositories/counters"
	"github.com/KirkDiggler/lifesim-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    counters.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := counters.NewRedisRepository(&counters.Config{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) TestGetMissingGameReadsZeros() {
	out, err := s.repo.Get(s.ctx, counters.GetInput{GameID: "fresh"})
	s.Require().NoError(err)
	s.Equal(int64(0), out.Counters.GlobalYear)
	s.Equal(int64(0), out.Counters.YearsLived)
	s.Equal(int64(0), out.Counters.Deaths)
}

func (s *RedisRepositoryTestSuite) TestIncrementAndGet() {
	for i := 0; i < 3; i++ {
		_, err := s.repo.Increment(s.ctx, counters.IncrementInput{
			GameID:  "game1",
			Counter: counters.CounterGlobalYear,
		})
		s.Require().NoError(err)
	}
	out, err := s.repo.Increment(s.ctx, counters.IncrementInput{
		GameID:  "game1",
		Counter: counters.CounterDeaths,
		Delta:   2,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), out.Value)

	got, err := s.repo.Get(s.ctx, counters.GetInput{GameID: "game1"})
	s.Require().NoError(err)
	s.Equal(int64(3), got.Counters.GlobalYear)
	s.Equal(int64(2), got.Counters.Deaths)
}

func (s *RedisRepositoryTestSuite) TestGamesAreIsolated() {
	_, err := s.repo.Increment(s.ctx, counters.IncrementInput{
		GameID:  "game1",
		Counter: counters.CounterYearsLived,
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, counters.GetInput{GameID: "game2"})
	s.Require().NoError(err)
	s.Equal(int64(0), got.Counters.YearsLived)
}

func (s *RedisRepositoryTestSuite) TestResetZeroesCounters() {
	_, err := s.repo.Increment(s.ctx, counters.IncrementInput{
		GameID:  "game1",
		Counter: counters.CounterGlobalYear,
		Delta:   40,
	})
	s.Require().NoError(err)

	_, err = s.repo.Reset(s.ctx, counters.ResetInput{GameID: "game1"})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, counters.GetInput{GameID: "game1"})
	s.Require().NoError(err)
	s.Equal(int64(0), got.Counters.GlobalYear)
}

func (s *RedisRepositoryTestSuite) TestValidatesInput() {
	_, err := s.repo.Get(s.ctx, counters.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Increment(s.ctx, counters.IncrementInput{GameID: "game1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Reset(s.ctx, counters.ResetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestCorruptCounterValue(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClientWithContext(t, func(mr *miniredis.Miniredis) {
		mr.HSet("counters:game1", string(counters.CounterGlobalYear), "not-a-number")
	})
	defer cleanup()

	repo, err := counters.NewRedisRepository(&counters.Config{Client: client})
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}

	_, err = repo.Get(context.Background(), counters.GetInput{GameID: "game1"})
	if !errors.IsInternal(err) {
		t.Fatalf("expected internal error for corrupt counter, got %v", err)
	}
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func TestMemoryRepositoryMatchesRedisSemantics(t *testing.T) {
	repo := counters.NewMemoryRepository()
	ctx := context.Background()

	out, err := repo.Increment(ctx, counters.IncrementInput{
		GameID:  "game1",
		Counter: counters.CounterGlobalYear,
	})
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if out.Value != 1 {
		t.Fatalf("expected 1, got %d", out.Value)
	}

	got, err := repo.Get(ctx, counters.GetInput{GameID: "game1"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Counters.GlobalYear != 1 {
		t.Fatalf("expected global year 1, got %d", got.Counters.GlobalYear)
	}

	if _, err := repo.Reset(ctx, counters.ResetInput{GameID: "game1"}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	got, err = repo.Get(ctx, counters.GetInput{GameID: "game1"})
	if err != nil {
		t.Fatalf("get after reset: %v", err)
	}
	if got.Counters.GlobalYear != 0 {
		t.Fatalf("expected 0 after reset, got %d", got.Counters.GlobalYear)
	}
}
