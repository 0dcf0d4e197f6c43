// Package stats collects per-round outcomes into online moments and derives
// the run-level risk/return metrics.
package stats

import (
	"math"
)

// RoundResult is the outcome of one simulated round. Per-hand profits are in
// bet units; splits produce one entry per settled hand. The accumulator
// consumes results synchronously and never retains HandProfits, so the
// producer may reuse the slice.
type RoundResult struct {
	HandProfits     []float64
	InsuranceProfit float64
	TrueCount       float64 // observed at bet time
	Blackjack       bool
	Surrendered     bool
	InsuranceTaken  bool
	Skipped         bool // wong-out: no bet placed, nothing settled
}

// Clone returns a copy that does not alias the producer's profit buffer.
func (r RoundResult) Clone() RoundResult {
	c := r
	c.HandProfits = append([]float64(nil), r.HandProfits...)
	return c
}

// Profit returns the round's total profit, insurance included.
func (r RoundResult) Profit() float64 {
	total := r.InsuranceProfit
	for _, p := range r.HandProfits {
		total += p
	}
	return total
}

// moments holds Welford online moments. Unlike a raw sum of squares this
// form stays numerically stable at tens of millions of observations, and it
// merges with the exact parallel-combination identity, so any partition of
// shards reproduces the unsharded aggregate.
type moments struct {
	n    int64
	mean float64
	m2   float64
}

func (m *moments) add(x float64) {
	m.n++
	delta := x - m.mean
	m.mean += delta / float64(m.n)
	m.m2 += delta * (x - m.mean)
}

func (m *moments) merge(o moments) {
	if o.n == 0 {
		return
	}
	if m.n == 0 {
		*m = o
		return
	}
	n := m.n + o.n
	delta := o.mean - m.mean
	m.m2 += o.m2 + delta*delta*float64(m.n)*float64(o.n)/float64(n)
	m.mean += delta * float64(o.n) / float64(n)
	m.n = n
}

// variance returns the population variance.
func (m *moments) variance() float64 {
	if m.n == 0 {
		return 0
	}
	return m.m2 / float64(m.n)
}

// True-count buckets are clamped to a bounded display range.
const (
	BucketMin = -10
	BucketMax = 10
)

// Bucket maps a true count to its integer display bucket.
func Bucket(tc float64) int {
	b := int(math.Floor(tc))
	if b < BucketMin {
		return BucketMin
	}
	if b > BucketMax {
		return BucketMax
	}
	return b
}

// Accumulator is the online statistics collector for one shard. It is not
// safe for concurrent use; shards each own one and the runner merges them.
type Accumulator struct {
	all     moments
	buckets map[int]*moments

	blackjacks    int64
	surrenders    int64
	insuranceBets int64
	wongedRounds  int64
	rounds        int64
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{buckets: make(map[int]*moments)}
}

// Record folds one round into the statistics. Each settled hand is one
// observation; the insurance outcome rides on the round's first hand so
// observations sum exactly to round profit. Skipped rounds only bump the
// wong counter.
func (a *Accumulator) Record(r RoundResult) {
	if r.Skipped {
		a.wongedRounds++
		return
	}
	a.rounds++
	if r.Blackjack {
		a.blackjacks++
	}
	if r.Surrendered {
		a.surrenders++
	}
	if r.InsuranceTaken {
		a.insuranceBets++
	}

	bucket := a.bucket(Bucket(r.TrueCount))
	for i, p := range r.HandProfits {
		if i == 0 {
			p += r.InsuranceProfit
		}
		a.all.add(p)
		bucket.add(p)
	}
}

func (a *Accumulator) bucket(b int) *moments {
	m, ok := a.buckets[b]
	if !ok {
		m = &moments{}
		a.buckets[b] = m
	}
	return m
}

// Merge folds another accumulator into this one. Merging is associative and
// commutative: any grouping of shards yields the same aggregate to within
// floating-point tolerance.
func (a *Accumulator) Merge(o *Accumulator) {
	a.all.merge(o.all)
	for b, m := range o.buckets {
		a.bucket(b).merge(*m)
	}
	a.blackjacks += o.blackjacks
	a.surrenders += o.surrenders
	a.insuranceBets += o.insuranceBets
	a.wongedRounds += o.wongedRounds
	a.rounds += o.rounds
}

// Hands returns the number of recorded hand observations.
func (a *Accumulator) Hands() int64 {
	return a.all.n
}

// Rounds returns the number of recorded (non-skipped) rounds.
func (a *Accumulator) Rounds() int64 {
	return a.rounds
}

// Mean returns the mean profit per hand in bet units.
func (a *Accumulator) Mean() float64 {
	return a.all.mean
}

// Variance returns the population variance of per-hand profit.
func (a *Accumulator) Variance() float64 {
	return a.all.variance()
}
