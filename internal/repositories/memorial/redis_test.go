package memorial_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/lifesim-api/internal/errors"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/clock"
	"github.com/KirkDiggler/lifesim-api/internal/repositories/memorial"
	"github.com/KirkDiggler/lifesim-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    memorial.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	s.clock = &clock.Fixed{T: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)}
	repo, err := memorial.NewRedisRepository(&memorial.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndList() {
	created, err := s.repo.Create(s.ctx, memorial.CreateInput{
		GameID: "game1",
		Record: &memorial.Record{
			LifeID:       "life-1",
			Name:         "Emma Smith",
			BornYear:     3,
			DiedYear:     21,
			Age:          18,
			CauseOfDeath: "Car accident - collision with tree",
			Achievements: []string{"High School Diploma"},
		},
	})
	s.Require().NoError(err)
	s.Equal(s.clock.T, created.Record.RecordedAt)

	out, err := s.repo.List(s.ctx, memorial.ListInput{GameID: "game1"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 1)
	s.Equal("Emma Smith", out.Records[0].Name)
	s.Equal(18, out.Records[0].Age)
	s.Equal("Car accident - collision with tree", out.Records[0].CauseOfDeath)
	s.Equal([]string{"High School Diploma"}, out.Records[0].Achievements)
	s.Equal(s.clock.T, out.Records[0].RecordedAt)
}

func (s *RedisRepositoryTestSuite) TestListOrderFollowsCreation() {
	for _, lifeID := range []string{"life-1", "life-2", "life-3"} {
		_, err := s.repo.Create(s.ctx, memorial.CreateInput{
			GameID: "game1",
			Record: &memorial.Record{LifeID: lifeID, Name: "Someone"},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, memorial.ListInput{GameID: "game1"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)
	s.Equal("life-1", out.Records[0].LifeID)
	s.Equal("life-2", out.Records[1].LifeID)
	s.Equal("life-3", out.Records[2].LifeID)
}

func (s *RedisRepositoryTestSuite) TestGamesAreIsolated() {
	_, err := s.repo.Create(s.ctx, memorial.CreateInput{
		GameID: "game1",
		Record: &memorial.Record{LifeID: "life-1", Name: "Someone"},
	})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, memorial.ListInput{GameID: "game2"})
	s.Require().NoError(err)
	s.Empty(out.Records)
}

func (s *RedisRepositoryTestSuite) TestValidatesInput() {
	_, err := s.repo.Create(s.ctx, memorial.CreateInput{
		Record: &memorial.Record{LifeID: "life-1"},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, memorial.CreateInput{GameID: "game1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, memorial.CreateInput{
		GameID: "game1",
		Record: &memorial.Record{},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, memorial.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func TestMemoryRepositoryMatchesRedisSemantics(t *testing.T) {
	fixed := &clock.Fixed{T: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)}
	repo := memorial.NewMemoryRepository(fixed)
	ctx := context.Background()

	created, err := repo.Create(ctx, memorial.CreateInput{
		GameID: "game1",
		Record: &memorial.Record{LifeID: "life-1", Name: "Someone"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.Record.RecordedAt.Equal(fixed.T) {
		t.Fatalf("expected recorded at %v, got %v", fixed.T, created.Record.RecordedAt)
	}

	out, err := repo.List(ctx, memorial.ListInput{GameID: "game1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Records) != 1 || out.Records[0].LifeID != "life-1" {
		t.Fatalf("unexpected records: %+v", out.Records)
	}
}
