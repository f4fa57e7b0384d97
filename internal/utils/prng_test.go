package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseWeightedConvergence(t *testing.T) {
	rng := NewPRNGService(42)
	weights := []float64{0.4, 0.6}

	const draws = 10000
	hits := 0
	for range draws {
		if rng.ChooseWeighted(weights) == 0 {
			hits++
		}
	}

	frac := float64(hits) / draws
	assert.GreaterOrEqual(t, frac, 0.38)
	assert.LessOrEqual(t, frac, 0.42)
}

func TestChooseWeightedSkipsNonPositive(t *testing.T) {
	rng := NewPRNGService(7)
	for range 1000 {
		i := rng.ChooseWeighted([]float64{0, -3, 2})
		require.Equal(t, 2, i)
	}
}

func TestChooseWeightedEmpty(t *testing.T) {
	rng := NewPRNGService(1)
	assert.Equal(t, -1, rng.ChooseWeighted(nil))
	assert.Equal(t, -1, rng.ChooseWeighted([]float64{0, 0}))
	assert.Equal(t, -1, rng.ChooseWeighted([]float64{1, math.Inf(1)}))
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for range 100 {
		assert.Equal(t, a.Angle(), b.Angle())
	}
}

func TestAngleRange(t *testing.T) {
	rng := NewPRNGService(3)
	for range 1000 {
		a := rng.Angle()
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 2*math.Pi)
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, math.Pi, NormalizeAngle(-math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, 0.5, NormalizeAngle(0.5+4*math.Pi), 1e-9)
}
