package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardH17Valid(t *testing.T) {
	require.NoError(t, StandardH17().Validate())
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"zero decks", func(r *Rules) { r.Decks = 0 }},
		{"penetration over one", func(r *Rules) { r.Penetration = 1.5 }},
		{"penetration zero", func(r *Rules) { r.Penetration = 0 }},
		{"payout below even money", func(r *Rules) { r.BlackjackPayout = 0.9 }},
		{"no split hands", func(r *Rules) { r.MaxSplitHands = 0 }},
		{"resplit aces without room", func(r *Rules) { r.ResplitAces = true; r.MaxSplitHands = 2 }},
		{"surrender without peek", func(r *Rules) { r.DealerPeek = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := StandardH17()
			tt.mutate(&r)
			require.Error(t, r.Validate())
		})
	}
}
