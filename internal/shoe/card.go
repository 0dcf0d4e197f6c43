package shoe

// Rank represents a card rank. Suits are irrelevant to blackjack play and
// counting, so the shoe deals bare ranks.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// RankCount is the number of distinct ranks in a deck.
const RankCount = 13

// DeckSize is the number of cards in a single deck.
const DeckSize = 52

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Value returns the blackjack value of the rank. Aces count as 11 here;
// hand totals demote them to 1 as needed.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

// IsAce returns true if the rank is an Ace
func (r Rank) IsAce() bool {
	return r == Ace
}

// IsTenValue returns true if the rank counts as ten (T, J, Q, K)
func (r Rank) IsTenValue() bool {
	return r >= Ten && r <= King
}

// Index maps the rank to a dense 0..12 index for tag tables.
func (r Rank) Index() int {
	return int(r - Two)
}

// Ranks returns all thirteen ranks in ascending order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, RankCount)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}
