package main

import (
	"fmt"
	"os"

	"github.com/lox/countsim/internal/config"
)

// ValidateCmd loads a profile and runs every consistency check the engine
// would apply, without simulating anything.
type ValidateCmd struct {
	Config string `kong:"arg,type='existingfile',help='Profile file (HCL) to check'"`
}

func (c *ValidateCmd) Run() error {
	profile, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	cfg, err := profile.RunConfig()
	if err != nil {
		return fmt.Errorf("%s: %w", c.Config, err)
	}

	fmt.Fprintf(os.Stdout, "%s is valid\n", c.Config)
	fmt.Fprintf(os.Stdout, "  hands       %d\n", cfg.Hands)
	fmt.Fprintf(os.Stdout, "  decks       %d (penetration %.0f%%)\n", cfg.Rules.Decks, cfg.Rules.Penetration*100)
	fmt.Fprintf(os.Stdout, "  system      %s\n", cfg.System.Name)
	fmt.Fprintf(os.Stdout, "  deviations  %d\n", len(cfg.Table.Deviations()))
	fmt.Fprintf(os.Stdout, "  ramp rungs  %d (min bet %g)\n", len(cfg.Ramp), cfg.Ramp.MinBet())
	return nil
}
