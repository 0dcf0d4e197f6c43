package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/countsim/internal/shoe"
)

func TestHandTotals(t *testing.T) {
	tests := []struct {
		name  string
		cards []shoe.Rank
		total int
		soft  bool
	}{
		{"hard sixteen", []shoe.Rank{shoe.Ten, shoe.Six}, 16, false},
		{"soft seventeen", []shoe.Rank{shoe.Ace, shoe.Six}, 17, true},
		{"soft eighteen three cards", []shoe.Rank{shoe.Ace, shoe.Three, shoe.Four}, 18, true},
		{"ace forced hard", []shoe.Rank{shoe.Ace, shoe.Six, shoe.Ten}, 17, false},
		{"two aces", []shoe.Rank{shoe.Ace, shoe.Ace}, 12, true},
		{"many aces", []shoe.Rank{shoe.Ace, shoe.Ace, shoe.Ace, shoe.Ace}, 14, true},
		{"twenty one", []shoe.Rank{shoe.Seven, shoe.Seven, shoe.Seven}, 21, false},
		{"bust", []shoe.Rank{shoe.Ten, shoe.Six, shoe.King}, 26, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Hand{Cards: tt.cards}
			total, soft := h.Total()
			assert.Equal(t, tt.total, total)
			assert.Equal(t, tt.soft, soft)
		})
	}
}

func TestHandIsPair(t *testing.T) {
	require.True(t, (&Hand{Cards: []shoe.Rank{shoe.Eight, shoe.Eight}}).IsPair())
	require.True(t, (&Hand{Cards: []shoe.Rank{shoe.King, shoe.Queen}}).IsPair(), "mixed ten-values split together")
	require.False(t, (&Hand{Cards: []shoe.Rank{shoe.Eight, shoe.Nine}}).IsPair())
	require.False(t, (&Hand{Cards: []shoe.Rank{shoe.Eight, shoe.Eight, shoe.Eight}}).IsPair())

	h := &Hand{Cards: []shoe.Rank{shoe.King, shoe.Ten}}
	require.Equal(t, 10, h.PairValue())
	require.Equal(t, 11, (&Hand{Cards: []shoe.Rank{shoe.Ace, shoe.Ace}}).PairValue())
}

func TestHandIsBlackjack(t *testing.T) {
	require.True(t, (&Hand{Cards: []shoe.Rank{shoe.Ace, shoe.King}}).IsBlackjack())
	require.False(t, (&Hand{Cards: []shoe.Rank{shoe.Ace, shoe.King}, FromSplit: true}).IsBlackjack(),
		"twenty-one after a split is not a natural")
	require.False(t, (&Hand{Cards: []shoe.Rank{shoe.Seven, shoe.Seven, shoe.Seven}}).IsBlackjack())
}

func TestHandLive(t *testing.T) {
	assert.True(t, (&Hand{Status: StatusStood}).Live())
	assert.True(t, (&Hand{Status: StatusDoubled}).Live())
	assert.False(t, (&Hand{Status: StatusBusted}).Live())
	assert.False(t, (&Hand{Status: StatusSurrendered}).Live())
}
