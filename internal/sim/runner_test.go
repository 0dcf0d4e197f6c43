package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lox/countsim/internal/betting"
	"github.com/lox/countsim/internal/shoe"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testRunConfig(t *testing.T) RunConfig {
	t.Helper()
	return RunConfig{
		Hands:         2000,
		Rules:         StandardH17(),
		System:        shoe.HiLo(),
		Table:         testTable(t),
		Ramp:          betting.Spread112(),
		Rounding:      shoe.RoundExact,
		Seed:          42,
		Workers:       4,
		BankrollUnits: 1000,
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := testRunConfig(t)

	first, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	second, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	first.Elapsed = 0
	second.Elapsed = 0
	require.Equal(t, first, second, "seeded runs must be reproducible bit for bit")
}

func TestRunWorkerCountChangesOutcome(t *testing.T) {
	cfg := testRunConfig(t)
	cfg.Workers = 1
	single, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 4
	sharded, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotEqual(t, single.MeanPerHand, sharded.MeanPerHand,
		"shard streams derive from the worker index")
}

func TestRunCountsRoundsAndHands(t *testing.T) {
	cfg := testRunConfig(t)
	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), res.Rounds, "wonged rounds do not consume the allotment")
	assert.GreaterOrEqual(t, res.Hands, res.Rounds, "splits add observations")
	assert.Greater(t, res.WongedRounds, int64(0), "a 1-12 spread wongs out at negative counts")
}

func TestRunSingleDeckDeepPenetration(t *testing.T) {
	// One deck at 0.83 penetration leaves only a few cards behind the
	// cutoff, so long rounds regularly outrun the shoe. The run must
	// finish via mid-round refills, never abort.
	cfg := testRunConfig(t)
	cfg.Rules.Decks = 1
	cfg.Rules.Penetration = 0.83
	cfg.Hands = 20000

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), res.Rounds)
}

func TestRunProgressReportsCompletion(t *testing.T) {
	cfg := testRunConfig(t)
	var snapshots []Snapshot
	cfg.Progress = func(s Snapshot) { snapshots = append(snapshots, s) }

	_, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	require.NotEmpty(t, snapshots, "a final snapshot is always emitted")
	last := snapshots[len(snapshots)-1]
	assert.Equal(t, int64(2000), last.HandsDone)
	assert.Equal(t, int64(2000), last.HandsTotal)
}

func TestRunRetainRoundsMatchesAggregate(t *testing.T) {
	cfg := testRunConfig(t)
	cfg.Hands = 200
	cfg.Workers = 2
	cfg.Ramp = betting.Flat(1)
	cfg.RetainRounds = true

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, res.RoundLog, 200)

	var total float64
	for _, r := range res.RoundLog {
		total += r.Profit()
	}
	assert.InDelta(t, res.MeanPerHand*float64(res.Hands), total, 1e-9,
		"retained rounds reconcile with the aggregate")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testRunConfig(t)
	cfg.Hands = 10_000_000
	_, err := Run(ctx, cfg)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := testRunConfig(t)
	cfg.Hands = 0
	_, err := Run(context.Background(), cfg)
	require.Error(t, err)

	cfg = testRunConfig(t)
	cfg.Table = nil
	_, err = Run(context.Background(), cfg)
	require.Error(t, err)

	cfg = testRunConfig(t)
	cfg.Ramp = betting.Ramp{}
	_, err = Run(context.Background(), cfg)
	require.ErrorIs(t, err, betting.ErrEmptyRamp)
}

func TestRunFlatBetEVSanity(t *testing.T) {
	if testing.Short() {
		t.Skip("needs a large sample")
	}
	cfg := testRunConfig(t)
	cfg.Hands = 50_000
	cfg.Ramp = betting.Flat(1)

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	// Basic strategy with deviations at a flat bet sits within a fraction
	// of a percent of even; anything outside a few standard errors means
	// the engine is leaking money somewhere.
	assert.Greater(t, res.MeanPerHand, -0.05)
	assert.Less(t, res.MeanPerHand, 0.05)
	assert.Greater(t, res.VariancePerHand, 1.0, "blackjack per-hand variance exceeds a coin flip")
}
