// Package sim owns the round lifecycle: dealing, strategy-driven play,
// splits, insurance, settlement, and the parallel shard runner that turns
// millions of rounds into aggregate statistics.
package sim

import (
	"fmt"
)

// Rules is the table rule configuration for a run. Immutable once a run
// starts.
type Rules struct {
	Decks            int
	HitSoft17        bool
	DoubleAfterSplit bool
	Surrender        bool
	ResplitAces      bool
	MaxSplitHands    int     // total hands one seat may hold, splits included
	BlackjackPayout  float64 // e.g. 1.5 for 3:2
	Penetration      float64 // fraction of the shoe dealt before reshuffle
	DealerPeek       bool
	Insurance        bool
}

// StandardH17 returns a common six-deck H17 game: DAS, late surrender,
// 3:2 blackjack, four split hands, 83% penetration.
func StandardH17() Rules {
	return Rules{
		Decks:            6,
		HitSoft17:        true,
		DoubleAfterSplit: true,
		Surrender:        true,
		ResplitAces:      false,
		MaxSplitHands:    4,
		BlackjackPayout:  1.5,
		Penetration:      0.83,
		DealerPeek:       true,
		Insurance:        true,
	}
}

// Validate checks the rule set before any simulation work begins.
func (r Rules) Validate() error {
	if r.Decks < 1 {
		return fmt.Errorf("rules: deck count must be at least 1, got %d", r.Decks)
	}
	if r.Penetration <= 0 || r.Penetration > 1 {
		return fmt.Errorf("rules: penetration must be in (0, 1], got %g", r.Penetration)
	}
	if r.BlackjackPayout < 1 {
		return fmt.Errorf("rules: blackjack payout must be at least even money, got %g", r.BlackjackPayout)
	}
	if r.MaxSplitHands < 1 {
		return fmt.Errorf("rules: max split hands must be at least 1, got %d", r.MaxSplitHands)
	}
	if r.ResplitAces && r.MaxSplitHands < 3 {
		return fmt.Errorf("rules: resplit-aces needs at least 3 split hands, got %d", r.MaxSplitHands)
	}
	if r.Surrender && !r.DealerPeek {
		// Late surrender only exists behind a peek: without one, whether a
		// surrendered bet survives a dealer blackjack is ambiguous.
		return fmt.Errorf("rules: surrender without a dealer peek is contradictory")
	}
	return nil
}
