package sim

import (
	"github.com/charmbracelet/log"

	"github.com/lox/countsim/internal/betting"
	"github.com/lox/countsim/internal/shoe"
	"github.com/lox/countsim/internal/stats"
	"github.com/lox/countsim/internal/strategy"
)

// Simulator plays complete rounds against a single shoe. It owns all the
// mutable round state and is strictly sequential: one Simulator per shard,
// never shared.
type Simulator struct {
	rules    Rules
	shoe     *shoe.Shoe
	table    *strategy.Table
	ramp     betting.Ramp
	rounding shoe.RoundingMode
	logger   *log.Logger

	// Scratch reused across rounds. RoundResult.HandProfits aliases the
	// profits buffer; the accumulator consumes it before the next round.
	hands   []*Hand
	profits []float64
}

// NewSimulator creates a round simulator over the given shoe.
func NewSimulator(rules Rules, sh *shoe.Shoe, table *strategy.Table, ramp betting.Ramp, rounding shoe.RoundingMode, logger *log.Logger) *Simulator {
	return &Simulator{
		rules:    rules,
		shoe:     sh,
		table:    table,
		ramp:     ramp,
		rounding: rounding,
		logger:   logger,
	}
}

// trueCount is recomputed fresh before every betting and playing decision,
// never cached across reveals.
func (s *Simulator) trueCount() float64 {
	return s.shoe.Count().TrueCount(s.rounding)
}

// PlayRound runs one complete round: reshuffle check, bet resolution, deal,
// insurance, player hands (splits included), dealer play, settlement.
func (s *Simulator) PlayRound() (stats.RoundResult, error) {
	if s.shoe.NeedsReshuffle() {
		s.shoe.Reshuffle()
		s.logger.Debug("reshuffled shoe", "decks", s.shoe.Decks())
	}

	tc := s.trueCount()
	units, sitOut := s.ramp.Resolve(tc)
	if sitOut {
		// Wonged out: the player's cards are never dealt, but the dealer's
		// hand is still played so the shoe and the count keep advancing.
		if err := s.playDealerOnly(); err != nil {
			return stats.RoundResult{}, err
		}
		return stats.RoundResult{TrueCount: tc, Skipped: true}, nil
	}

	p1, err := s.shoe.Draw()
	if err != nil {
		return stats.RoundResult{}, err
	}
	up, err := s.shoe.Draw()
	if err != nil {
		return stats.RoundResult{}, err
	}
	p2, err := s.shoe.Draw()
	if err != nil {
		return stats.RoundResult{}, err
	}
	hole, err := s.shoe.DrawHidden()
	if err != nil {
		return stats.RoundResult{}, err
	}

	primary := &Hand{Cards: []shoe.Rank{p1, p2}, Bet: units}

	// Insurance is offered on an ace and settles independently of the
	// main hand. The decision is the table's insurance index, consulted at
	// a fresh true count.
	insuranceTaken := false
	insuranceProfit := 0.0
	stake := 0.0
	if up.IsAce() && s.rules.Insurance && s.table.TakeInsurance(s.trueCount()) {
		insuranceTaken = true
		stake = units / 2
	}

	if s.rules.DealerPeek && (up.IsAce() || up.IsTenValue()) {
		if up.Value()+hole.Value() == 21 {
			// Dealer blackjack: the hole card is exposed, insurance pays
			// 2:1, and the round settles before any player action.
			s.shoe.Count().Observe(hole)
			if insuranceTaken {
				insuranceProfit = 2 * stake
			}
			profit := -units
			if primary.IsBlackjack() {
				profit = 0
			}
			s.profits = s.profits[:0]
			s.profits = append(s.profits, profit)
			return stats.RoundResult{
				HandProfits:     s.profits,
				InsuranceProfit: insuranceProfit,
				TrueCount:       tc,
				Blackjack:       primary.IsBlackjack(),
				InsuranceTaken:  insuranceTaken,
			}, nil
		}
		// Peek came up empty: the insurance bet loses now.
		if insuranceTaken {
			insuranceProfit = -stake
		}
	}

	s.hands = s.hands[:0]
	s.hands = append(s.hands, primary)
	splitCount := 1

	for i := 0; i < len(s.hands); i++ {
		h := s.hands[i]
		if h.IsBlackjack() {
			h.Status = StatusStood
			continue
		}
		for h.Status == StatusActive {
			if err := s.playStep(h, up, units, &splitCount); err != nil {
				return stats.RoundResult{}, err
			}
		}
	}

	// The dealer always exposes the hole card at the end of the round.
	s.shoe.Count().Observe(hole)
	dealer := &Hand{Cards: []shoe.Rank{up, hole}}

	anyLive := false
	for _, h := range s.hands {
		if h.Live() {
			anyLive = true
			break
		}
	}
	if anyLive {
		if err := s.playDealerHand(dealer); err != nil {
			return stats.RoundResult{}, err
		}
	}

	dealerTotal, _ := dealer.Total()
	dealerBJ := len(dealer.Cards) == 2 && dealerTotal == 21

	// Without a peek, insurance waits for the reveal.
	if insuranceTaken && !s.rules.DealerPeek {
		if dealerBJ {
			insuranceProfit = 2 * stake
		} else {
			insuranceProfit = -stake
		}
	}

	s.profits = s.profits[:0]
	for _, h := range s.hands {
		s.profits = append(s.profits, s.settle(h, dealerTotal, dealerBJ))
	}

	return stats.RoundResult{
		HandProfits:     s.profits,
		InsuranceProfit: insuranceProfit,
		TrueCount:       tc,
		Blackjack:       primary.IsBlackjack(),
		Surrendered:     primary.Status == StatusSurrendered,
		InsuranceTaken:  insuranceTaken,
	}, nil
}

// playStep advances one active hand by one decision.
func (s *Simulator) playStep(h *Hand, up shoe.Rank, units float64, splitCount *int) error {
	total, soft := h.Total()
	if total > 21 {
		h.Status = StatusBusted
		return nil
	}

	canResplit := *splitCount < s.rules.MaxSplitHands

	// A hand made by splitting aces received its one card and stands,
	// unless resplit-aces lets a fresh ace pair go again.
	if h.FromSplitAces && !(s.rules.ResplitAces && h.IsPair() && canResplit) {
		h.Status = StatusStood
		return nil
	}

	q := strategy.Query{
		Up:        upcardClass(up),
		TrueCount: s.trueCount(),
		DAS:       s.rules.DoubleAfterSplit,
	}
	if soft {
		q.SoftTotal = total
		q.HardTotal = total - 10
	} else {
		q.HardTotal = total
	}
	if h.IsPair() {
		q.Pair = true
		q.PairValue = h.PairValue()
		q.CanSplit = canResplit && (!h.FromSplitAces || s.rules.ResplitAces)
	}
	q.CanDouble = len(h.Cards) == 2 && (!h.FromSplit || s.rules.DoubleAfterSplit)
	q.CanSurrender = s.rules.Surrender && len(h.Cards) == 2 && !h.FromSplit

	move, err := s.table.Decide(q)
	if err != nil {
		return err
	}

	switch move {
	case strategy.MoveHit:
		c, err := s.shoe.Draw()
		if err != nil {
			return err
		}
		h.Cards = append(h.Cards, c)
		if h.Busted() {
			h.Status = StatusBusted
		}

	case strategy.MoveStand:
		h.Status = StatusStood

	case strategy.MoveDouble:
		c, err := s.shoe.Draw()
		if err != nil {
			return err
		}
		h.Cards = append(h.Cards, c)
		h.Bet *= 2
		h.Doubled = true
		if h.Busted() {
			h.Status = StatusBusted
		} else {
			h.Status = StatusDoubled
		}

	case strategy.MoveSurrender:
		h.Status = StatusSurrendered

	case strategy.MoveSplit:
		*splitCount++
		fromAces := h.Cards[0].IsAce()
		child := &Hand{
			Cards:         []shoe.Rank{h.Cards[1]},
			Bet:           units, // equal to the original bet
			FromSplit:     true,
			FromSplitAces: fromAces,
		}
		h.Cards = h.Cards[:1]
		h.FromSplit = true
		h.FromSplitAces = fromAces

		// One card to each resulting hand; the child joins the end of the
		// queue and plays in creation order.
		c, err := s.shoe.Draw()
		if err != nil {
			return err
		}
		h.Cards = append(h.Cards, c)
		c, err = s.shoe.Draw()
		if err != nil {
			return err
		}
		child.Cards = append(child.Cards, c)
		s.hands = append(s.hands, child)
	}
	return nil
}

// playDealerHand draws to the configured soft-17 rule.
func (s *Simulator) playDealerHand(dealer *Hand) error {
	for {
		total, soft := dealer.Total()
		if total > 17 || (total == 17 && !(soft && s.rules.HitSoft17)) {
			return nil
		}
		c, err := s.shoe.Draw()
		if err != nil {
			return err
		}
		dealer.Cards = append(dealer.Cards, c)
	}
}

// playDealerOnly consumes a dealer hand during a wonged-out round.
func (s *Simulator) playDealerOnly() error {
	up, err := s.shoe.Draw()
	if err != nil {
		return err
	}
	hole, err := s.shoe.DrawHidden()
	if err != nil {
		return err
	}
	s.shoe.Count().Observe(hole)
	return s.playDealerHand(&Hand{Cards: []shoe.Rank{up, hole}})
}

// settle scores one player hand against the dealer's final total.
func (s *Simulator) settle(h *Hand, dealerTotal int, dealerBJ bool) float64 {
	switch h.Status {
	case StatusSurrendered:
		return -0.5 * h.Bet
	case StatusBusted:
		return -h.Bet
	}
	if h.IsBlackjack() {
		if dealerBJ {
			return 0
		}
		return h.Bet * s.rules.BlackjackPayout
	}
	if dealerBJ {
		return -h.Bet
	}
	total, _ := h.Total()
	switch {
	case dealerTotal > 21 || total > dealerTotal:
		return h.Bet
	case total < dealerTotal:
		return -h.Bet
	default:
		return 0
	}
}

// upcardClass maps the dealer upcard to its table column (2-11).
func upcardClass(r shoe.Rank) int {
	return r.Value()
}
