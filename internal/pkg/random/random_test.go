package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRollerIsDeterministic(t *testing.T) {
	a := NewSeededRoller(42)
	b := NewSeededRoller(42)

	for i := 0; i < 50; i++ {
		va, err := a.Roll(100)
		require.NoError(t, err)
		vb, err := b.Roll(100)
		require.NoError(t, err)
		assert.Equal(t, va, vb, "roll %d diverged", i)
	}
}

func TestSeededRollerBounds(t *testing.T) {
	r := NewSeededRoller(7)
	for i := 0; i < 200; i++ {
		v, err := r.Roll(6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestSeededRollerRejectsBadSize(t *testing.T) {
	r := NewSeededRoller(7)
	_, err := r.Roll(0)
	assert.Error(t, err)
	_, err = r.RollN(0, 6)
	assert.Error(t, err)
}

func TestSourceIndex(t *testing.T) {
	s := NewSeeded(1)

	assert.Equal(t, 0, s.Index(0))
	assert.Equal(t, 0, s.Index(1))

	for i := 0; i < 100; i++ {
		v := s.Index(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}

func TestSourceIntBetween(t *testing.T) {
	s := NewSeeded(3)

	assert.Equal(t, 5, s.IntBetween(5, 5))
	assert.Equal(t, 5, s.IntBetween(5, 2))

	for i := 0; i < 100; i++ {
		v := s.IntBetween(20, 35)
		assert.GreaterOrEqual(t, v, 20)
		assert.LessOrEqual(t, v, 35)
	}
}

func TestSourcePercentExtremes(t *testing.T) {
	s := NewSeeded(9)
	assert.False(t, s.Percent(0))
	assert.False(t, s.Percent(-5))
	assert.True(t, s.Percent(100))
	assert.True(t, s.Percent(150))
}
