package receivers_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/lifesim-api/internal/catalog"
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/people"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/idgen"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/random"
	"github.com/KirkDiggler/lifesim-api/internal/receivers"
)

type ResolverTestSuite struct {
	suite.Suite
	resolver *receivers.Resolver
	state    *life.PlayerState
}

func (s *ResolverTestSuite) SetupTest() {
	src := random.NewSeeded(11)
	factory, err := people.NewRandomFactory(&people.RandomFactoryConfig{
		Random:      src,
		IDGenerator: idgen.NewSequential("person"),
	})
	s.Require().NoError(err)

	resolver, err := receivers.NewResolver(&receivers.Config{
		Factory: factory,
		Random:  src,
	})
	s.Require().NoError(err)
	s.resolver = resolver

	s.state = life.NewPlayerState(&life.Person{ID: "player", Name: "Jamie"}, 500)
	s.state.Age = 30
}

func (s *ResolverTestSuite) TestConfigValidation() {
	_, err := receivers.NewResolver(&receivers.Config{})
	s.Require().Error(err)

	_, err = receivers.NewResolver(nil)
	s.Require().Error(err)
}

func (s *ResolverTestSuite) TestNoneRequirement() {
	got, err := s.resolver.Resolve(catalog.ReceiverNone, s.state)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *ResolverTestSuite) TestSpouseFoundInsideAgeBand() {
	spouse := &life.Person{ID: "spouse", Name: "Riley", Age: 32}
	s.state.Relationships.Set(spouse, life.StatusMarried, 80)

	got, err := s.resolver.Resolve(catalog.ReceiverSpouse, s.state)
	s.Require().NoError(err)
	s.Equal("spouse", got.ID)
}

func (s *ResolverTestSuite) TestSpouseMissingIsAnError() {
	_, err := s.resolver.Resolve(catalog.ReceiverSpouse, s.state)
	s.Require().Error(err)
	s.True(receivers.IsMissingReceiver(err))
}

func (s *ResolverTestSuite) TestSpouseOutsideAgeBandIsMissing() {
	spouse := &life.Person{ID: "spouse", Name: "Riley", Age: 80}
	s.state.Relationships.Set(spouse, life.StatusMarried, 80)

	_, err := s.resolver.Resolve(catalog.ReceiverSpouse, s.state)
	s.True(receivers.IsMissingReceiver(err))
}

func (s *ResolverTestSuite) TestFriendPrefersExisting() {
	friend := &life.Person{ID: "friend", Name: "Jordan", Age: 28}
	s.state.Relationships.Set(friend, life.StatusBestFriend, 90)

	got, err := s.resolver.Resolve(catalog.ReceiverFriend, s.state)
	s.Require().NoError(err)
	s.Equal("friend", got.ID)
}

func (s *ResolverTestSuite) TestFriendCreatedWhenNoneExists() {
	got, err := s.resolver.Resolve(catalog.ReceiverFriend, s.state)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	// the new friend lands in both the town roster and the
	// relationship list
	rel, ok := s.state.Relationships.Get(got.ID)
	s.Require().True(ok)
	s.Equal(life.StatusFriend, rel.Status)
	s.GreaterOrEqual(rel.Level, 30)
	s.LessOrEqual(rel.Level, 49)
	s.Contains([]string{"Friendly", "Outgoing", "Cheerful"}, got.Personality)

	found := false
	for _, p := range s.state.Town {
		if p.ID == got.ID {
			found = true
		}
	}
	s.True(found, "created friend must be in town")
}

func (s *ResolverTestSuite) TestFamilyMissingDegradesToNil() {
	got, err := s.resolver.Resolve(catalog.ReceiverFamily, s.state)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *ResolverTestSuite) TestFamilyFoundRegardlessOfAge() {
	mom := &life.Person{ID: "mom", Name: "Sarah", Age: 95}
	s.state.Relationships.Set(mom, life.StatusMom, 80)

	got, err := s.resolver.Resolve(catalog.ReceiverFamily, s.state)
	s.Require().NoError(err)
	s.Equal("mom", got.ID)
}

func (s *ResolverTestSuite) TestStrangerCreatedAtLevelZero() {
	got, err := s.resolver.Resolve(catalog.ReceiverStranger, s.state)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	rel, ok := s.state.Relationships.Get(got.ID)
	s.Require().True(ok)
	s.Equal(life.StatusStranger, rel.Status)
	s.Equal(0, rel.Level)
}

func (s *ResolverTestSuite) TestAnyPicksExistingRelationship() {
	mom := &life.Person{ID: "mom", Name: "Sarah", Age: 55}
	s.state.Relationships.Set(mom, life.StatusMom, 80)

	got, err := s.resolver.Resolve(catalog.ReceiverAny, s.state)
	s.Require().NoError(err)
	s.Equal("mom", got.ID)
}

func (s *ResolverTestSuite) TestAnyFallsBackToStranger() {
	got, err := s.resolver.Resolve(catalog.ReceiverAny, s.state)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	rel, ok := s.state.Relationships.Get(got.ID)
	s.Require().True(ok)
	s.Equal(life.StatusStranger, rel.Status)
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
