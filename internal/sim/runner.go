package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/countsim/internal/randutil"
	"github.com/lox/countsim/internal/shoe"
	"github.com/lox/countsim/internal/stats"
)

// Run executes cfg.Hands betting rounds split across cfg.Workers shards and
// merges their statistics. Each shard owns its own shoe and RNG stream, so
// two runs with the same seed and worker count produce identical results.
// Changing the worker count changes the shard streams and therefore the
// outcome, even under the same seed.
func Run(ctx context.Context, cfg RunConfig) (*stats.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Clock.Now().UnixNano()
		cfg.Logger.Debug("seeding from clock", "seed", seed)
	}

	workers := cfg.Workers
	rep := newReporter(workers, cfg.Hands, cfg.Progress, cfg.Clock)
	start := cfg.Clock.Now()

	shards := make([]*shardState, workers)
	base := cfg.Hands / int64(workers)
	extra := cfg.Hands % int64(workers)
	for i := range shards {
		allotment := base
		if int64(i) < extra {
			allotment++
		}
		shards[i] = &shardState{
			allotment: allotment,
			acc:       stats.NewAccumulator(),
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	progressDone := make(chan struct{})
	progressCtx, stopProgress := context.WithCancel(ctx)
	go func() {
		defer close(progressDone)
		rep.run(progressCtx, cfg.ProgressInterval)
	}()

	for i, st := range shards {
		g.Go(func() error {
			if err := st.run(gctx, cfg, seed, i, &rep.counters[i]); err != nil {
				return fmt.Errorf("shard %d: %w", i, err)
			}
			return nil
		})
	}

	err := g.Wait()
	stopProgress()
	<-progressDone
	if err != nil {
		return nil, err
	}

	// Merge in ascending shard order so the combined moments are stable.
	merged := stats.NewAccumulator()
	for _, st := range shards {
		merged.Merge(st.acc)
	}
	result := merged.Finalize(cfg.BankrollUnits)
	result.Elapsed = cfg.Clock.Since(start)
	if cfg.RetainRounds {
		for _, st := range shards {
			result.RoundLog = append(result.RoundLog, st.rounds...)
		}
	}

	cfg.Logger.Info("run complete",
		"hands", result.Hands,
		"rounds", result.Rounds,
		"ev/100", result.EVPer100,
		"elapsed", result.Elapsed)
	return result, nil
}

// shardState is the private world of one worker goroutine.
type shardState struct {
	allotment int64
	acc       *stats.Accumulator
	rounds    []stats.RoundResult
}

func (st *shardState) run(ctx context.Context, cfg RunConfig, seed int64, shard int, counter *shardCounter) error {
	rng := randutil.ForShard(seed, shard)
	sh, err := shoe.New(cfg.Rules.Decks, cfg.Rules.Penetration, cfg.System, rng)
	if err != nil {
		return err
	}
	sim := NewSimulator(cfg.Rules, sh, cfg.Table, cfg.Ramp, cfg.Rounding, cfg.Logger)

	var played int64
	for played < st.allotment {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		res, err := sim.PlayRound()
		if err != nil {
			return err
		}
		if cfg.RetainRounds {
			st.rounds = append(st.rounds, res.Clone())
		}
		st.acc.Record(res)
		if res.Skipped {
			continue
		}
		played++
		counter.record(1, res.Profit())
	}
	return nil
}
