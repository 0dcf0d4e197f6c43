package shoe

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrExhausted is returned when a card is drawn from an empty stacked shoe.
// Randomized shoes never exhaust: if a deep-penetration round outruns the
// remaining cards, the shoe rebuilds and reshuffles mid-round.
var ErrExhausted = errors.New("stacked shoe exhausted")

// Shoe owns the physical card supply for one shard: a shuffled multiset of
// decks x 52 ranks, a penetration cutoff, and the count state fed by every
// card it reveals.
type Shoe struct {
	decks       int
	penetration float64
	cards       []Rank
	rng         *rand.Rand
	count       *CountState
	stacked     bool
}

// New creates a shuffled shoe. Penetration is the fraction of the shoe dealt
// before NeedsReshuffle reports true.
func New(decks int, penetration float64, system System, rng *rand.Rand) (*Shoe, error) {
	if decks < 1 {
		return nil, fmt.Errorf("deck count must be at least 1, got %d", decks)
	}
	if penetration <= 0 || penetration > 1 {
		return nil, fmt.Errorf("penetration must be in (0, 1], got %g", penetration)
	}
	s := &Shoe{
		decks:       decks,
		penetration: penetration,
		cards:       make([]Rank, 0, decks*DeckSize),
		rng:         rng,
		count:       NewCountState(system, decks*DeckSize),
	}
	s.Reshuffle()
	return s, nil
}

// NewStacked creates a shoe that deals the given cards in order and never
// reshuffles. The deck count only sizes the true-count divisor. Useful for
// replaying known deals in tests and analysis tools.
func NewStacked(decks int, system System, cards []Rank) *Shoe {
	s := &Shoe{
		decks:       decks,
		penetration: 1,
		stacked:     true,
		count:       NewCountState(system, decks*DeckSize),
	}
	// Draw pops from the tail, so store the deal order reversed.
	s.cards = make([]Rank, len(cards))
	for i, c := range cards {
		s.cards[len(cards)-1-i] = c
	}
	return s
}

// Draw removes and returns the top card, feeding it to the count state.
func (s *Shoe) Draw() (Rank, error) {
	r, err := s.DrawHidden()
	if err != nil {
		return 0, err
	}
	s.count.Observe(r)
	return r, nil
}

// DrawHidden removes and returns the top card without updating the count.
// Used for the dealer hole card, which is counted only when revealed via
// Count().Observe.
func (s *Shoe) DrawHidden() (Rank, error) {
	if len(s.cards) == 0 {
		if s.stacked {
			return 0, ErrExhausted
		}
		// Ran dry mid-round. Shuffle a fresh shoe in, like a table
		// bringing the discards back when the cut card runs long.
		s.Reshuffle()
	}
	r := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return r, nil
}

// NeedsReshuffle reports whether remaining cards have fallen to or below
// (1 - penetration) of the shoe. Checked only between rounds.
func (s *Shoe) NeedsReshuffle() bool {
	if s.stacked {
		return false
	}
	total := s.decks * DeckSize
	return float64(len(s.cards)) <= (1-s.penetration)*float64(total)
}

// Reshuffle rebuilds the full multiset, applies a uniform permutation, and
// resets the count to zero.
func (s *Shoe) Reshuffle() {
	if s.stacked {
		return
	}
	s.cards = s.cards[:0]
	for d := 0; d < s.decks; d++ {
		for r := Two; r <= Ace; r++ {
			for i := 0; i < 4; i++ {
				s.cards = append(s.cards, r)
			}
		}
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.count.Reset()
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Decks returns the configured deck count.
func (s *Shoe) Decks() int {
	return s.decks
}

// Count returns the count state fed by this shoe.
func (s *Shoe) Count() *CountState {
	return s.count
}
