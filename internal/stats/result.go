package stats

import (
	"math"
	"sort"
	"time"
)

// TrueCountRow is one row of the per-true-count breakdown.
type TrueCountRow struct {
	Bucket int
	Hands  int64
	EV     float64 // mean profit per hand, units
	Stdev  float64
}

// RunResult carries the derived metrics for a completed run. Metrics that
// are undefined for the observed data (N0 and the desirability-derived
// values when mean profit is zero or negative, or when variance is zero)
// are reported as NaN rather than computed through a zero division.
type RunResult struct {
	Hands        int64
	Rounds       int64
	WongedRounds int64

	MeanPerHand     float64
	VariancePerHand float64
	EVPer100        float64
	StdevPer100     float64

	// N0Hands is the hand count needed to overcome one standard deviation
	// of variance. NaN when mean profit is not positive.
	N0Hands float64

	// DesirabilityIndex is 1000 * mean / stdev; Score is DI^2 / 10. Both
	// are fixed comparison formulas, consistent across runs.
	DesirabilityIndex float64
	Score             float64

	// RiskOfRuin is exp(-2 * mean / variance * bankroll). The formula
	// assumes a constant bet size even though bets vary with the count;
	// this is a known, deliberately preserved approximation.
	RiskOfRuin float64

	ByTrueCount []TrueCountRow

	Blackjacks    int64
	Surrenders    int64
	InsuranceBets int64

	Elapsed time.Duration

	// RoundLog is populated only when the run retains rounds for debugging.
	RoundLog []RoundResult
}

// Finalize computes the derived metrics once, at the end of a run.
// bankrollUnits is the bankroll used by the risk-of-ruin formula, in bet
// units.
func (a *Accumulator) Finalize(bankrollUnits float64) *RunResult {
	mean := a.Mean()
	variance := a.Variance()
	stdev := math.Sqrt(variance)

	res := &RunResult{
		Hands:             a.all.n,
		Rounds:            a.rounds,
		WongedRounds:      a.wongedRounds,
		MeanPerHand:       mean,
		VariancePerHand:   variance,
		EVPer100:          mean * 100,
		StdevPer100:       stdev * 10,
		N0Hands:           math.NaN(),
		DesirabilityIndex: math.NaN(),
		Score:             math.NaN(),
		RiskOfRuin:        riskOfRuin(mean, variance, bankrollUnits),
		Blackjacks:        a.blackjacks,
		Surrenders:        a.surrenders,
		InsuranceBets:     a.insuranceBets,
	}

	if mean > 0 && variance > 0 {
		res.N0Hands = variance / (mean * mean)
	}
	if stdev > 0 {
		di := 1000 * mean / stdev
		res.DesirabilityIndex = di
		res.Score = di * di / 10
	}

	buckets := make([]int, 0, len(a.buckets))
	for b := range a.buckets {
		buckets = append(buckets, b)
	}
	sort.Ints(buckets)
	for _, b := range buckets {
		m := a.buckets[b]
		res.ByTrueCount = append(res.ByTrueCount, TrueCountRow{
			Bucket: b,
			Hands:  m.n,
			EV:     m.mean,
			Stdev:  math.Sqrt(m.variance()),
		})
	}
	return res
}

// riskOfRuin applies the constant-bet approximation. A non-positive edge
// ruins with certainty; a positive edge with zero variance cannot ruin.
func riskOfRuin(mean, variance, bankroll float64) float64 {
	if mean <= 0 {
		return 1
	}
	if variance == 0 {
		return 0
	}
	ror := math.Exp(-2 * mean / variance * bankroll)
	if ror > 1 {
		return 1
	}
	return ror
}
