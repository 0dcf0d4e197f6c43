package shoe

import (
	"fmt"
	"math"
)

// System is a card-tagging scheme for counting. Tags are indexed by
// Rank.Index(). A balanced system's tags sum to zero over a full deck.
type System struct {
	Name     string
	Tags     [RankCount]int
	Balanced bool
}

// HiLo returns the Hi-Lo counting system: 2-6 tag +1, 7-9 tag 0,
// tens and aces tag -1.
func HiLo() System {
	var tags [RankCount]int
	for r := Two; r <= Six; r++ {
		tags[r.Index()] = 1
	}
	for r := Ten; r <= Ace; r++ {
		tags[r.Index()] = -1
	}
	return System{Name: "hilo", Tags: tags, Balanced: true}
}

// Tag returns the tag value for a rank.
func (s System) Tag(r Rank) int {
	return s.Tags[r.Index()]
}

// Validate checks the system is internally consistent: a system flagged as
// balanced must have tags that sum to zero across one deck.
func (s System) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("count system has no name")
	}
	if s.Balanced {
		sum := 0
		for _, r := range Ranks() {
			sum += s.Tag(r) * 4
		}
		if sum != 0 {
			return fmt.Errorf("count system %q is flagged balanced but tags sum to %d per deck", s.Name, sum)
		}
	}
	return nil
}

// RoundingMode selects how the remaining-decks estimate is rounded before
// the true count division.
type RoundingMode int

const (
	// RoundExact divides by the exact fractional decks remaining.
	RoundExact RoundingMode = iota
	// RoundFloor floors the estimate to whole decks.
	RoundFloor
	// RoundHalfDeck rounds the estimate to the nearest half deck.
	RoundHalfDeck
)

// deckEpsilon floors the remaining-decks estimate so the true count stays
// bounded as the shoe empties.
const deckEpsilon = 0.25

// CountState tracks the running count for the current shoe. It is reset to
// zero on every reshuffle and mutated on every card reveal, the dealer hole
// card included.
type CountState struct {
	system   System
	shoeSize int
	running  int
	seen     int
}

// NewCountState creates a count state for a shoe of the given total size.
func NewCountState(system System, shoeSize int) *CountState {
	return &CountState{system: system, shoeSize: shoeSize}
}

// Observe applies one revealed card to the running count.
func (c *CountState) Observe(r Rank) {
	c.running += c.system.Tag(r)
	c.seen++
}

// Reset zeroes the count for a fresh shoe.
func (c *CountState) Reset() {
	c.running = 0
	c.seen = 0
}

// Running returns the current running count.
func (c *CountState) Running() int {
	return c.running
}

// CardsSeen returns how many cards have been revealed since the last shuffle.
func (c *CountState) CardsSeen() int {
	return c.seen
}

// TrueCount returns the running count normalised by the remaining-decks
// estimate. The estimate is rounded per mode and floored at a small epsilon,
// so the result is always finite.
func (c *CountState) TrueCount(mode RoundingMode) float64 {
	remaining := float64(c.shoeSize-c.seen) / float64(DeckSize)
	switch mode {
	case RoundFloor:
		remaining = math.Floor(remaining)
	case RoundHalfDeck:
		remaining = math.Round(remaining*2) / 2
	}
	if remaining < deckEpsilon {
		remaining = deckEpsilon
	}
	return float64(c.running) / remaining
}
