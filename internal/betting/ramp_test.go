package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatRamp(t *testing.T) {
	r := Flat(1)
	require.NoError(t, r.Validate())

	for _, tc := range []float64{-10, -1, 0, 2.5, 8} {
		units, sitOut := r.Resolve(tc)
		assert.False(t, sitOut, "tc %g", tc)
		assert.Equal(t, 1.0, units, "tc %g", tc)
	}
}

func TestResolvePicksGreatestFloorAtOrBelow(t *testing.T) {
	r := Ramp{
		{Floor: 0, Units: 1},
		{Floor: 1, Units: 2},
		{Floor: 3, Units: 6},
	}
	require.NoError(t, r.Validate())

	tests := []struct {
		tc   float64
		want float64
	}{
		{-4, 1}, // below the lowest floor: minimum defined bet
		{0, 1},
		{0.9, 1},
		{1, 2},
		{2.99, 2},
		{3, 6},
		{10, 6},
	}
	for _, tt := range tests {
		units, sitOut := r.Resolve(tt.tc)
		assert.False(t, sitOut, "tc %g", tt.tc)
		assert.Equal(t, tt.want, units, "tc %g", tt.tc)
	}
}

func TestWongOut(t *testing.T) {
	r := Spread112()
	require.NoError(t, r.Validate())

	_, sitOut := r.Resolve(-2)
	assert.True(t, sitOut)

	units, sitOut := r.Resolve(-1)
	assert.False(t, sitOut)
	assert.Equal(t, 1.0, units)

	units, sitOut = r.Resolve(4.5)
	assert.False(t, sitOut)
	assert.Equal(t, 12.0, units)
}

func TestValidateRejectsBadRamps(t *testing.T) {
	assert.ErrorIs(t, Ramp{}.Validate(), ErrEmptyRamp)

	nonAscending := Ramp{{Floor: 1, Units: 1}, {Floor: 1, Units: 2}}
	assert.Error(t, nonAscending.Validate())

	zeroBet := Ramp{{Floor: 0, Units: 0}}
	assert.Error(t, zeroBet.Validate())

	allWong := Ramp{{Floor: 0, WongOut: true}}
	assert.Error(t, allWong.Validate())

	// Sitting out at a neutral shoe would never rejoin after a shuffle.
	wongAtZero := Ramp{{Floor: -1, WongOut: true}, {Floor: 1, Units: 1}}
	assert.Error(t, wongAtZero.Validate())
}

func TestMinBet(t *testing.T) {
	r := Spread112()
	assert.Equal(t, 1.0, r.MinBet())
}
