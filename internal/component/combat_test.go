package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandOf(t *testing.T) {
	assert.Equal(t, BandHigh, BandOf(1))
	assert.Equal(t, BandHigh, BandOf(0.61))
	assert.Equal(t, BandMedium, BandOf(0.6))
	assert.Equal(t, BandMedium, BandOf(0.31))
	assert.Equal(t, BandLow, BandOf(0.3))
	assert.Equal(t, BandLow, BandOf(0))
}

func TestHealthFraction(t *testing.T) {
	assert.Equal(t, 0.6, (&Health{Current: 6, Max: 10}).Fraction())
	assert.Zero(t, (&Health{}).Fraction())
}

func TestLifeStateString(t *testing.T) {
	assert.Equal(t, "dying", Dying.String())
	assert.Equal(t, "unknown", LifeState(9).String())
}
