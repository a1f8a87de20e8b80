package people_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/people"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/idgen"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/random"
)

type RandomFactoryTestSuite struct {
	suite.Suite
	factory *people.RandomFactory
}

func (s *RandomFactoryTestSuite) SetupTest() {
	factory, err := people.NewRandomFactory(&people.RandomFactoryConfig{
		Random:      random.NewSeeded(42),
		IDGenerator: idgen.NewSequential("person"),
	})
	s.Require().NoError(err)
	s.factory = factory
}

func (s *RandomFactoryTestSuite) TestConfigValidation() {
	_, err := people.NewRandomFactory(&people.RandomFactoryConfig{})
	s.Require().Error(err)

	_, err = people.NewRandomFactory(nil)
	s.Require().Error(err)
}

func (s *RandomFactoryTestSuite) TestGenerateDefaults() {
	p := s.factory.Generate(nil)

	s.NotEmpty(p.ID)
	s.NotEmpty(p.Name)
	s.GreaterOrEqual(p.Age, 5)
	s.LessOrEqual(p.Age, 25)
	s.NotEmpty(p.Personality)
	s.Len(p.Interests, 1)

	for _, stat := range []int{p.Stats.Happiness, p.Stats.Health, p.Stats.Smarts, p.Stats.Looks} {
		s.GreaterOrEqual(stat, 40)
		s.LessOrEqual(stat, 60)
	}
}

func (s *RandomFactoryTestSuite) TestGenerateHonorsPins() {
	p := s.factory.Generate(&people.GenerateOptions{
		Age:         people.Age(0),
		Gender:      life.GenderFemale,
		Personality: "Cheerful",
		Traits:      []string{"Curious"},
	})

	s.Equal(0, p.Age)
	s.Equal(life.GenderFemale, p.Gender)
	s.Equal("Cheerful", p.Personality)
	s.Equal([]string{"Curious"}, p.Traits)
}

func (s *RandomFactoryTestSuite) TestGenerateUniqueIDs() {
	a := s.factory.Generate(nil)
	b := s.factory.Generate(nil)
	s.NotEqual(a.ID, b.ID)
}

func (s *RandomFactoryTestSuite) TestChildRecordsParents() {
	mom := s.factory.Generate(&people.GenerateOptions{Age: people.Age(30)})
	dad := s.factory.Generate(&people.GenerateOptions{Age: people.Age(32)})

	child := s.factory.Child(mom, dad)

	s.Equal(0, child.Age)
	s.Equal([]string{mom.ID, dad.ID}, child.Parents)
}

func (s *RandomFactoryTestSuite) TestEnemyIsHostile() {
	enemy := s.factory.Enemy(nil)

	s.True(enemy.HasTrait("Hostile"))
	s.Equal("Aggressive", enemy.Personality)
	s.GreaterOrEqual(enemy.Age, 18)
	s.LessOrEqual(enemy.Age, 40)
}

func (s *RandomFactoryTestSuite) TestTownSize() {
	town := s.factory.Town(40)
	s.Len(town, 40)
}

func TestRandomFactorySuite(t *testing.T) {
	suite.Run(t, new(RandomFactoryTestSuite))
}
