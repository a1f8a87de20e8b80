package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/lifesim-api/internal/catalog"
	"github.com/KirkDiggler/lifesim-api/internal/engine"
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/random"
)

func newEnv() *catalog.Env {
	state := life.NewPlayerState(&life.Person{ID: "player", Name: "Jamie"}, 500)
	state.Stats = life.StatBlock{Happiness: 50, Health: 50, Smarts: 50, Looks: 50}
	return &catalog.Env{State: state, Random: random.NewSeeded(1)}
}

func TestApplyClampsStats(t *testing.T) {
	applier := engine.NewEffectApplier()
	env := newEnv()
	env.State.Stats.Happiness = 95
	env.State.Stats.Health = 5

	outcome := applier.Apply(env, catalog.Effect{Happiness: 20, Health: -30}, nil, nil)

	require.False(t, outcome.Died)
	assert.Equal(t, 100, env.State.Stats.Happiness)
	assert.Equal(t, 0, env.State.Stats.Health)
}

func TestApplyFloorsMoney(t *testing.T) {
	applier := engine.NewEffectApplier()
	env := newEnv()

	applier.Apply(env, catalog.Effect{Money: -10000}, nil, nil)
	assert.Equal(t, 0, env.State.Money)
}

func TestApplyRunsHookAfterDeltas(t *testing.T) {
	applier := engine.NewEffectApplier()
	env := newEnv()

	var seenSmarts int
	hook := func(hookEnv *catalog.Env, _ *catalog.EventData) {
		seenSmarts = hookEnv.State.Stats.Smarts
	}

	applier.Apply(env, catalog.Effect{Smarts: 10}, hook, nil)
	assert.Equal(t, 60, seenSmarts, "hook must observe post-delta stats")
}

func TestApplyReportsDeath(t *testing.T) {
	applier := engine.NewEffectApplier()
	env := newEnv()

	hook := func(hookEnv *catalog.Env, _ *catalog.EventData) {
		hookEnv.State.CauseOfDeath = "Car accident"
	}

	outcome := applier.Apply(env, catalog.Effect{Health: -100}, hook, nil)

	require.True(t, outcome.Died)
	assert.Equal(t, "Car accident", outcome.CauseOfDeath)
	assert.Equal(t, 0, env.State.Stats.Health)
}

func TestApplyPassesEventDataToHook(t *testing.T) {
	applier := engine.NewEffectApplier()
	env := newEnv()

	data := catalog.NewEventData()
	data.SetPerson("mom", &life.Person{ID: "mom", Name: "Sarah"})

	hook := func(hookEnv *catalog.Env, hookData *catalog.EventData) {
		if mom := hookData.Person("mom"); mom != nil {
			hookEnv.State.Relationships.Set(mom, life.StatusMom, 80)
		}
	}

	applier.Apply(env, catalog.Effect{}, hook, data)
	assert.Equal(t, 1, env.State.Relationships.Len())
}
