package interaction

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceRiseScenario(t *testing.T) {
	a := NewAnimator(7, 8)
	prev := a.Progress()
	for i := 0; i < 10; i++ {
		got := a.Advance(true, 0.016)
		require.Greater(t, got, prev, "tick %d", i)
		require.LessOrEqual(t, got, gomath.Pi)
		prev = got
	}
	assert.InDelta(t, 1.12, a.Progress(), 1e-9)
}

func TestAdvanceClampsAndIsIdempotent(t *testing.T) {
	a := NewAnimator(DefaultRiseRate, DefaultFallRate)
	for i := 0; i < 100; i++ {
		a.Advance(true, 0.05)
	}
	assert.Equal(t, gomath.Pi, a.Progress())
	assert.Equal(t, 1.0, a.Fraction())
	for i := 0; i < 10; i++ {
		assert.Equal(t, gomath.Pi, a.Advance(true, 0.1))
	}

	for i := 0; i < 100; i++ {
		a.Advance(false, 0.05)
	}
	assert.Equal(t, 0.0, a.Progress())
	for i := 0; i < 10; i++ {
		assert.Equal(t, 0.0, a.Advance(false, 0.1))
	}
}

func TestAdvanceMonotonicAndBounded(t *testing.T) {
	a := NewAnimator(3, 5)
	targets := []bool{true, true, true, false, false, true, false, false, false, false}
	prev := a.Progress()
	for i, target := range targets {
		for j := 0; j < 20; j++ {
			got := a.Advance(target, 0.033)
			if target {
				require.GreaterOrEqual(t, got, prev, "segment %d", i)
			} else {
				require.LessOrEqual(t, got, prev, "segment %d", i)
			}
			require.GreaterOrEqual(t, got, ProgressMin)
			require.LessOrEqual(t, got, ProgressMax)
			prev = got
		}
	}
}

func TestAsymmetricRates(t *testing.T) {
	a := NewAnimator(2, 4)
	a.Advance(true, 1)
	assert.InDelta(t, 2, a.Progress(), 1e-12)
	a.Advance(false, 0.25)
	assert.InDelta(t, 1, a.Progress(), 1e-12)
}

func TestAdvanceIgnoresNonPositiveDelta(t *testing.T) {
	a := NewAnimator(7, 8)
	a.Advance(true, 0.1)
	before := a.Progress()
	assert.Equal(t, before, a.Advance(false, 0))
	assert.Equal(t, before, a.Advance(true, -1))
}
