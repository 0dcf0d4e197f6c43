package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withIllustrious18(t *testing.T) *Table {
	t.Helper()
	table := Basic()
	for _, d := range Illustrious18() {
		require.NoError(t, table.AddDeviation(d))
	}
	return table
}

func TestBasicIsComplete(t *testing.T) {
	assert.NoError(t, Basic().Validate())
}

func TestValidateReportsMissingKeys(t *testing.T) {
	table := NewTable()
	err := table.Validate()
	require.ErrorIs(t, err, ErrIncomplete)
}

func TestDecideFailsOnUnmappedKey(t *testing.T) {
	table := NewTable()
	_, err := table.Decide(Query{HardTotal: 16, Up: 10})
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestSixteenVersusTenAtZero(t *testing.T) {
	table := withIllustrious18(t)

	// The index play stands on 16v10 at zero or higher, surrendering
	// first when the rules allow it.
	move, err := table.Decide(Query{HardTotal: 16, Up: 10, TrueCount: 0, CanSurrender: true})
	require.NoError(t, err)
	assert.Equal(t, MoveSurrender, move)

	move, err = table.Decide(Query{HardTotal: 16, Up: 10, TrueCount: 0, CanSurrender: false})
	require.NoError(t, err)
	assert.Equal(t, MoveStand, move)

	// Below the index the base play applies: surrender, else hit.
	move, err = table.Decide(Query{HardTotal: 16, Up: 10, TrueCount: -1, CanSurrender: false})
	require.NoError(t, err)
	assert.Equal(t, MoveHit, move)
}

func TestNegativeIndexHitsThirteen(t *testing.T) {
	table := withIllustrious18(t)

	move, err := table.Decide(Query{HardTotal: 13, Up: 2, TrueCount: 0})
	require.NoError(t, err)
	assert.Equal(t, MoveStand, move)

	move, err = table.Decide(Query{HardTotal: 13, Up: 2, TrueCount: -1.5})
	require.NoError(t, err)
	assert.Equal(t, MoveHit, move)
}

func TestConditionalDoubleFallsBack(t *testing.T) {
	table := Basic()

	move, err := table.Decide(Query{HardTotal: 11, Up: 6, CanDouble: true})
	require.NoError(t, err)
	assert.Equal(t, MoveDouble, move)

	// Three-card 11 can no longer double.
	move, err = table.Decide(Query{HardTotal: 11, Up: 6, CanDouble: false})
	require.NoError(t, err)
	assert.Equal(t, MoveHit, move)

	// Soft 18 v 3 doubles, else stands.
	move, err = table.Decide(Query{HardTotal: 8, SoftTotal: 18, Up: 3, CanDouble: false})
	require.NoError(t, err)
	assert.Equal(t, MoveStand, move)
}

func TestSplitIfDAS(t *testing.T) {
	table := Basic()
	q := Query{HardTotal: 4, Pair: true, PairValue: 2, Up: 2, CanSplit: true}

	q.DAS = true
	move, err := table.Decide(q)
	require.NoError(t, err)
	assert.Equal(t, MoveSplit, move)

	q.DAS = false
	move, err = table.Decide(q)
	require.NoError(t, err)
	assert.Equal(t, MoveHit, move)
}

func TestPairFallsThroughAtResplitLimit(t *testing.T) {
	table := Basic()

	// Pair of 8s with the split limit reached resolves as hard 16.
	move, err := table.Decide(Query{HardTotal: 16, Pair: true, PairValue: 8, Up: 10, CanSplit: false})
	require.NoError(t, err)
	assert.Equal(t, MoveHit, move)

	// Pair of aces at the limit resolves as soft 12.
	move, err = table.Decide(Query{HardTotal: 2, SoftTotal: 12, Pair: true, PairValue: 11, Up: 6, CanSplit: false})
	require.NoError(t, err)
	assert.Equal(t, MoveHit, move)
}

func TestEightsAlwaysSplit(t *testing.T) {
	table := Basic()
	for up := 2; up <= 11; up++ {
		move, err := table.Decide(Query{HardTotal: 16, Pair: true, PairValue: 8, Up: up, CanSplit: true})
		require.NoError(t, err)
		assert.Equal(t, MoveSplit, move, "upcard %d", up)
	}
}

func TestInsuranceIndex(t *testing.T) {
	table := Basic()
	assert.False(t, table.TakeInsurance(5), "no index registered")

	table = withIllustrious18(t)
	assert.False(t, table.TakeInsurance(2.9))
	assert.True(t, table.TakeInsurance(3))
	assert.True(t, table.TakeInsurance(6))
}

func TestAddDeviationRejectsDuplicatesAndUnknownKeys(t *testing.T) {
	table := Basic()
	d := dev("16v10", 0, AtOrAbove, Stand)
	require.NoError(t, table.AddDeviation(d))
	assert.Error(t, table.AddDeviation(d))

	bogus := Deviation{Key: Key{Kind: Hard, Value: 3, Up: 2}, Action: Stand}
	assert.Error(t, table.AddDeviation(bogus))
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		input string
		want  Key
	}{
		{"16v10", Key{Kind: Hard, Value: 16, Up: 10}},
		{"16vA", Key{Kind: Hard, Value: 16, Up: 11}},
		{"s18v3", Key{Kind: Soft, Value: 18, Up: 3}},
		{"p8v10", Key{Kind: Pair, Value: 8, Up: 10}},
		{"p11va", Key{Kind: Pair, Value: 11, Up: 11}},
		{"insurance", InsuranceKey},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	for _, bad := range []string{"", "16", "v10", "x16v10", "22v5", "s11v2", "p1v2", "16v12"} {
		_, err := ParseKey(bad)
		assert.Error(t, err, bad)
	}
}
