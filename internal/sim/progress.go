package sim

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
)

// shardCounter is written by exactly one shard goroutine and read by the
// progress reporter. Each field is atomic on its own; a snapshot taken
// between the two stores can pair the new profit with the previous hand
// count, which is fine for a running estimate.
type shardCounter struct {
	hands  atomic.Int64
	profit atomic.Uint64
}

func (c *shardCounter) record(hands int64, profit float64) {
	old := math.Float64frombits(c.profit.Load())
	c.profit.Store(math.Float64bits(old + profit))
	c.hands.Add(hands)
}

// reporter periodically aggregates the shard counters into a Snapshot.
type reporter struct {
	counters []shardCounter
	total    int64
	fn       ProgressFunc
	clock    quartz.Clock
	start    time.Time
}

func newReporter(shards int, total int64, fn ProgressFunc, clock quartz.Clock) *reporter {
	return &reporter{
		counters: make([]shardCounter, shards),
		total:    total,
		fn:       fn,
		clock:    clock,
		start:    clock.Now(),
	}
}

func (r *reporter) snapshot() Snapshot {
	var hands int64
	var profit float64
	for i := range r.counters {
		hands += r.counters[i].hands.Load()
		profit += math.Float64frombits(r.counters[i].profit.Load())
	}
	ev := math.NaN()
	if hands > 0 {
		ev = profit / float64(hands)
	}
	return Snapshot{
		HandsDone:  hands,
		HandsTotal: r.total,
		RunningEV:  ev,
		Elapsed:    r.clock.Since(r.start),
	}
}

// run emits snapshots on the interval until ctx is cancelled, then emits a
// final snapshot so the consumer always sees the terminal state.
func (r *reporter) run(ctx context.Context, interval time.Duration) {
	if r.fn == nil {
		<-ctx.Done()
		return
	}
	waiter := r.clock.TickerFunc(ctx, interval, func() error {
		r.fn(r.snapshot())
		return nil
	}, "progress")
	_ = waiter.Wait()
	r.fn(r.snapshot())
}
