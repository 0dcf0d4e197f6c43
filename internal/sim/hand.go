package sim

import (
	"github.com/lox/countsim/internal/shoe"
)

// HandStatus is the terminal-state machine for one player hand.
type HandStatus int

const (
	StatusActive HandStatus = iota
	StatusStood
	StatusBusted
	StatusDoubled // doubled and resolved, one card received
	StatusSurrendered
)

// String returns the string representation of a hand status
func (s HandStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusStood:
		return "stood"
	case StatusBusted:
		return "busted"
	case StatusDoubled:
		return "doubled"
	case StatusSurrendered:
		return "surrendered"
	default:
		return "?"
	}
}

// Hand is one player or dealer hand in progress.
type Hand struct {
	Cards         []shoe.Rank
	Bet           float64
	Doubled       bool
	FromSplit     bool
	FromSplitAces bool
	Status        HandStatus
}

// Total returns the hand's best total and whether it is soft (an ace
// currently counted as 11).
func (h *Hand) Total() (total int, soft bool) {
	aces := 0
	for _, c := range h.Cards {
		if c.IsAce() {
			aces++
			total++
		} else {
			total += c.Value()
		}
	}
	if aces > 0 && total+10 <= 21 {
		return total + 10, true
	}
	return total, false
}

// Busted reports whether the hand's total exceeds 21.
func (h *Hand) Busted() bool {
	total, _ := h.Total()
	return total > 21
}

// IsPair reports whether the hand is two cards of equal blackjack value.
// Mixed ten-value pairs (e.g. king-queen) are splittable like any pair.
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Value() == h.Cards[1].Value()
}

// PairValue returns the paired card's value (11 for aces). Only meaningful
// when IsPair is true.
func (h *Hand) PairValue() int {
	return h.Cards[0].Value()
}

// IsBlackjack reports a natural: a two-card 21 on an unsplit hand. A 21
// assembled after a split pays even money, not the blackjack premium.
func (h *Hand) IsBlackjack() bool {
	if len(h.Cards) != 2 || h.FromSplit {
		return false
	}
	total, _ := h.Total()
	return total == 21
}

// Live reports whether the hand still contests the dealer at settlement.
func (h *Hand) Live() bool {
	return h.Status != StatusBusted && h.Status != StatusSurrendered
}
