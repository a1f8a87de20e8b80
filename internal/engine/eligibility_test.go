package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/lifesim-api/internal/catalog"
	"github.com/KirkDiggler/lifesim-api/internal/engine"
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/history"
)

type EligibilityTestSuite struct {
	suite.Suite
	filter  *engine.EligibilityFilter
	state   *life.PlayerState
	history *history.Log
}

func (s *EligibilityTestSuite) SetupTest() {
	s.filter = engine.NewEligibilityFilter()
	s.state = life.NewPlayerState(&life.Person{ID: "player", Name: "Jamie"}, 500)
	s.state.Age = 10
	s.state.Stats = life.StatBlock{Happiness: 50, Health: 50, Smarts: 50, Looks: 50}
	s.history = history.NewLog()
}

func (s *EligibilityTestSuite) event(id string, mutate func(*catalog.Event)) *catalog.Event {
	ev := &catalog.Event{
		ID:            id,
		Title:         id,
		Weight:        1,
		Repeatability: catalog.RepeatUnlimited,
		Description:   catalog.Static("d"),
		Message:       catalog.Static("m"),
	}
	if mutate != nil {
		mutate(ev)
	}
	return ev
}

func (s *EligibilityTestSuite) eligible(events ...*catalog.Event) []*catalog.Event {
	return s.filter.Eligible(&engine.EligibilityInput{
		Events:  events,
		State:   s.state,
		History: s.history,
		LifeID:  "life_1",
	})
}

func (s *EligibilityTestSuite) ids(events []*catalog.Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.ID)
	}
	return out
}

func (s *EligibilityTestSuite) TestFirstTurnOnlyBirth() {
	s.state.Age = 0
	birth := s.event(catalog.EventIDBirth, nil)
	other := s.event("other", nil)

	got := s.eligible(other, birth)
	s.Equal([]string{catalog.EventIDBirth}, s.ids(got))
}

func (s *EligibilityTestSuite) TestBirthExcludedOnceFired() {
	s.state.Age = 1
	s.history.Record(history.Entry{Year: 1, EventID: catalog.EventIDBirth, LifeID: "life_1"})

	birth := s.event(catalog.EventIDBirth, func(ev *catalog.Event) {
		ev.Repeatability = catalog.RepeatOncePerLife
		ev.Requirements = catalog.Requirements{MaxAge: 1}
	})
	other := s.event("other", nil)

	got := s.eligible(birth, other)
	s.Equal([]string{"other"}, s.ids(got))
}

func (s *EligibilityTestSuite) TestAgeGates() {
	tooYoung := s.event("too_young", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{MinAge: 16}
	})
	tooOld := s.event("too_old", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{MaxAge: 5}
	})
	inRange := s.event("in_range", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{MinAge: 5, MaxAge: 12}
	})

	got := s.eligible(tooYoung, tooOld, inRange)
	s.Equal([]string{"in_range"}, s.ids(got))
}

func (s *EligibilityTestSuite) TestContradictoryAgeRangeNeverEligible() {
	impossible := s.event("impossible", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{MinAge: 20, MaxAge: 10}
	})

	for age := 0; age <= 30; age++ {
		s.state.Age = age
		s.Empty(s.eligible(impossible), "age %d", age)
	}
}

func (s *EligibilityTestSuite) TestStatAndMoneyGates() {
	needsSmarts := s.event("needs_smarts", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{MinSmarts: 60}
	})
	needsMoney := s.event("needs_money", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{MinMoney: 1000}
	})
	tooRich := s.event("too_rich", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{MaxMoney: 100}
	})
	fits := s.event("fits", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{MinHappiness: 30, MinMoney: 100, MaxMoney: 1000}
	})

	got := s.eligible(needsSmarts, needsMoney, tooRich, fits)
	s.Equal([]string{"fits"}, s.ids(got))
}

func (s *EligibilityTestSuite) TestBooleanGates() {
	hasFriends := s.event("has_friends", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{HasFriends: true}
	})
	isSingle := s.event("is_single", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{IsSingle: true}
	})
	isMarried := s.event("is_married", func(ev *catalog.Event) {
		ev.Requirements = catalog.Requirements{IsMarried: true}
	})

	// no relationships yet: single, no friends, not married
	got := s.eligible(hasFriends, isSingle, isMarried)
	s.Equal([]string{"is_single"}, s.ids(got))

	s.state.Relationships.Set(&life.Person{ID: "f1", Name: "Jordan"}, life.StatusFriend, 40)
	s.state.Relationships.Set(&life.Person{ID: "m1", Name: "Riley"}, life.StatusMarried, 80)

	got = s.eligible(hasFriends, isSingle, isMarried)
	s.Equal([]string{"has_friends", "is_married"}, s.ids(got))
}

func (s *EligibilityTestSuite) TestSpouseReceiverRequiresMarriage() {
	spouseEvent := s.event("date_night", func(ev *catalog.Event) {
		ev.Receiver = catalog.ReceiverSpouse
	})

	s.Empty(s.eligible(spouseEvent))

	s.state.Relationships.Set(&life.Person{ID: "m1", Name: "Riley"}, life.StatusMarried, 80)
	s.Len(s.eligible(spouseEvent), 1)
}

func (s *EligibilityTestSuite) TestOncePerLifeResetsAcrossLives() {
	once := s.event("milestone", func(ev *catalog.Event) {
		ev.Repeatability = catalog.RepeatOncePerLife
	})
	s.history.Record(history.Entry{Year: 3, EventID: "milestone", LifeID: "life_1"})

	s.Empty(s.eligible(once))

	// same event, next life
	got := s.filter.Eligible(&engine.EligibilityInput{
		Events:  []*catalog.Event{once},
		State:   s.state,
		History: s.history,
		LifeID:  "life_2",
	})
	s.Len(got, 1)
}

func (s *EligibilityTestSuite) TestOncePerGameNeverResets() {
	once := s.event("jackpot", func(ev *catalog.Event) {
		ev.Repeatability = catalog.RepeatOncePerGame
	})
	s.history.Record(history.Entry{Year: 3, EventID: "jackpot", LifeID: "life_1"})

	got := s.filter.Eligible(&engine.EligibilityInput{
		Events:  []*catalog.Event{once},
		State:   s.state,
		History: s.history,
		LifeID:  "life_2",
	})
	s.Empty(got)
}

func (s *EligibilityTestSuite) TestCooldownYearMath() {
	cooled := s.event("checkup", func(ev *catalog.Event) {
		ev.Repeatability = catalog.RepeatCooldown
		ev.CooldownYears = 3
	})
	s.history.Record(history.Entry{Year: 10, EventID: "checkup", LifeID: "life_1"})

	s.state.Year = 12
	s.Empty(s.eligible(cooled))

	s.state.Year = 13
	s.Len(s.eligible(cooled), 1)
}

func (s *EligibilityTestSuite) TestMaxOccurrencesCap() {
	capped := s.event("promotion", func(ev *catalog.Event) {
		ev.MaxOccurrences = 2
	})
	s.history.Record(history.Entry{Year: 1, EventID: "promotion", LifeID: "life_1"})
	s.Len(s.eligible(capped), 1)

	s.history.Record(history.Entry{Year: 2, EventID: "promotion", LifeID: "life_1"})
	s.Empty(s.eligible(capped))
}

func TestEligibilitySuite(t *testing.T) {
	suite.Run(t, new(EligibilityTestSuite))
}
