package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/countsim/internal/config"
	"github.com/lox/countsim/internal/sim"
)

// SimulateCmd runs a full simulation from a profile, with flag overrides for
// the parameters worth sweeping from the command line.
type SimulateCmd struct {
	Config   string  `kong:"arg,optional,type='existingfile',help='Profile file (HCL). Omit for the standard six-deck game.'"`
	Hands    int64   `kong:"help='Override the number of hands'"`
	Seed     int64   `kong:"help='Override the RNG seed (0 for a clock seed)'"`
	Workers  int     `kong:"help='Override the worker count (0 for GOMAXPROCS)'"`
	Bankroll float64 `kong:"help='Override the bankroll in bet units'"`
	Debug    bool    `kong:"help='Enable debug logging'"`
	Quiet    bool    `kong:"short='q',help='Suppress the progress line'"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	profile, err := c.loadProfile(logger)
	if err != nil {
		return err
	}

	cfg, err := profile.RunConfig()
	if err != nil {
		return err
	}
	cfg.Logger = logger
	if !c.Quiet {
		cfg.Progress = renderProgress
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting simulation",
		"hands", cfg.Hands,
		"decks", cfg.Rules.Decks,
		"system", cfg.System.Name,
		"workers", cfg.Workers)

	result, err := sim.Run(ctx, cfg)
	if err != nil {
		return err
	}
	if !c.Quiet {
		fmt.Fprintln(os.Stderr)
	}

	renderResult(os.Stdout, result)
	return nil
}

func (c *SimulateCmd) loadProfile(logger *log.Logger) (*config.Profile, error) {
	if c.Config == "" {
		profile := config.Default()
		c.applyOverrides(profile)
		return profile, nil
	}

	profile, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded profile", "file", c.Config)
	c.applyOverrides(profile)
	return profile, nil
}

func (c *SimulateCmd) applyOverrides(p *config.Profile) {
	if c.Hands != 0 {
		p.Hands = c.Hands
	}
	if c.Seed != 0 {
		p.Seed = c.Seed
	}
	if c.Workers != 0 {
		p.Workers = c.Workers
	}
	if c.Bankroll != 0 {
		p.Bankroll = c.Bankroll
	}
}

func setupLogger(debug bool) *log.Logger {
	logger := log.New(os.Stderr)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
