package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/lifesim-api/internal/catalog"
	"github.com/KirkDiggler/lifesim-api/internal/engine"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/random"
)

func weightedEvent(id string, weight int) *catalog.Event {
	return &catalog.Event{
		ID:            id,
		Title:         id,
		Weight:        weight,
		Repeatability: catalog.RepeatUnlimited,
		Description:   catalog.Static("d"),
		Message:       catalog.Static("m"),
	}
}

func TestSelectEmptyPoolFails(t *testing.T) {
	sel, err := engine.NewWeightedSelector(random.NewSeeded(1))
	require.NoError(t, err)

	_, err = sel.Select(nil)
	require.Error(t, err)
	assert.True(t, engine.IsNoEligibleEvent(err))
}

func TestSelectSkipsNonPositiveWeights(t *testing.T) {
	sel, err := engine.NewWeightedSelector(random.NewSeeded(1))
	require.NoError(t, err)

	only := weightedEvent("only", 5)
	for i := 0; i < 50; i++ {
		got, err := sel.Select([]*catalog.Event{weightedEvent("zero", 0), only})
		require.NoError(t, err)
		assert.Equal(t, "only", got.ID)
	}
}

func TestSelectAllZeroWeightsFails(t *testing.T) {
	sel, err := engine.NewWeightedSelector(random.NewSeeded(1))
	require.NoError(t, err)

	_, err = sel.Select([]*catalog.Event{weightedEvent("a", 0), weightedEvent("b", 0)})
	assert.True(t, engine.IsNoEligibleEvent(err))
}

func TestSelectIsDeterministicForSeed(t *testing.T) {
	pool := []*catalog.Event{
		weightedEvent("a", 3),
		weightedEvent("b", 5),
		weightedEvent("c", 2),
	}

	first := drawSequence(t, 42, pool, 20)
	second := drawSequence(t, 42, pool, 20)
	assert.Equal(t, first, second)
}

func TestSelectRespectsWeights(t *testing.T) {
	sel, err := engine.NewWeightedSelector(random.NewSeeded(7))
	require.NoError(t, err)

	heavy := weightedEvent("heavy", 95)
	light := weightedEvent("light", 5)

	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		got, err := sel.Select([]*catalog.Event{heavy, light})
		require.NoError(t, err)
		counts[got.ID]++
	}

	assert.Greater(t, counts["heavy"], counts["light"])
	assert.Greater(t, counts["heavy"], 800)
}

func drawSequence(t *testing.T, seed int64, pool []*catalog.Event, n int) []string {
	t.Helper()
	sel, err := engine.NewWeightedSelector(random.NewSeeded(seed))
	require.NoError(t, err)

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		got, err := sel.Select(pool)
		require.NoError(t, err)
		out = append(out, got.ID)
	}
	return out
}
