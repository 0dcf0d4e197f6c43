package sim

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/countsim/internal/betting"
	"github.com/lox/countsim/internal/shoe"
	"github.com/lox/countsim/internal/strategy"
)

// Snapshot reports run progress at an instant.
type Snapshot struct {
	HandsDone  int64
	HandsTotal int64
	RunningEV  float64 // units per hand over the hands completed so far
	Elapsed    time.Duration
}

// ProgressFunc receives periodic progress snapshots. It is called from a
// single reporting goroutine, never concurrently.
type ProgressFunc func(Snapshot)

// RunConfig describes a complete simulation run.
type RunConfig struct {
	Hands    int64
	Rules    Rules
	System   shoe.System
	Table    *strategy.Table
	Ramp     betting.Ramp
	Rounding shoe.RoundingMode

	// Seed 0 draws the seed from entropy, making the run irreproducible.
	Seed    int64
	Workers int // 0 means GOMAXPROCS

	// BankrollUnits sizes the risk-of-ruin estimate.
	BankrollUnits float64

	// RetainRounds keeps every round outcome in the result, for inspection
	// of small runs. Memory grows linearly with Hands.
	RetainRounds bool

	Progress         ProgressFunc
	ProgressInterval time.Duration

	Logger *log.Logger
	Clock  quartz.Clock
}

// Validate checks the run configuration and everything it aggregates.
func (c *RunConfig) Validate() error {
	if c.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Hands)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.BankrollUnits < 0 {
		return fmt.Errorf("bankroll must be non-negative, got %g", c.BankrollUnits)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.System.Validate(); err != nil {
		return err
	}
	if c.Table == nil {
		return fmt.Errorf("strategy table is required")
	}
	if err := c.Table.Validate(); err != nil {
		return err
	}
	return c.Ramp.Validate()
}

// withDefaults fills the optional fields so the runner never branches on nil.
func (c RunConfig) withDefaults() RunConfig {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if int64(c.Workers) > c.Hands {
		c.Workers = int(c.Hands)
	}
	if c.ProgressInterval <= 0 {
		c.ProgressInterval = time.Second
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
	return c
}
