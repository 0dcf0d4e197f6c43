// Package config loads simulation profiles from HCL files and lowers them
// into runnable configurations.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/countsim/internal/betting"
	"github.com/lox/countsim/internal/shoe"
	"github.com/lox/countsim/internal/sim"
	"github.com/lox/countsim/internal/strategy"
)

// Profile is the on-disk shape of a simulation run. Optional scalars use
// pointers so an omitted field falls back to the engine default rather than
// the zero value.
type Profile struct {
	Hands    int64   `hcl:"hands,optional"`
	Seed     int64   `hcl:"seed,optional"`
	Workers  int     `hcl:"workers,optional"`
	Bankroll float64 `hcl:"bankroll,optional"`
	Rounding string  `hcl:"rounding,optional"`

	Rules    *RulesConfig    `hcl:"rules,block"`
	Count    *CountConfig    `hcl:"count,block"`
	Strategy *StrategyConfig `hcl:"strategy,block"`
	Bets     []BetConfig     `hcl:"bet,block"`
}

// RulesConfig overrides individual table rules. Unset fields keep the
// standard six-deck H17 game.
type RulesConfig struct {
	Decks            *int     `hcl:"decks,optional"`
	HitSoft17        *bool    `hcl:"hit_soft_17,optional"`
	DoubleAfterSplit *bool    `hcl:"double_after_split,optional"`
	Surrender        *bool    `hcl:"surrender,optional"`
	ResplitAces      *bool    `hcl:"resplit_aces,optional"`
	MaxSplitHands    *int     `hcl:"max_split_hands,optional"`
	BlackjackPayout  *float64 `hcl:"blackjack_payout,optional"`
	Penetration      *float64 `hcl:"penetration,optional"`
	DealerPeek       *bool    `hcl:"dealer_peek,optional"`
	Insurance        *bool    `hcl:"insurance,optional"`
}

// CountConfig selects the counting system. Custom systems supply one tag per
// rank, two through ace.
type CountConfig struct {
	System string `hcl:"system,optional"`
	Tags   []int  `hcl:"tags,optional"`
}

// StrategyConfig layers index deviations over basic strategy.
type StrategyConfig struct {
	UseIllustrious18 *bool             `hcl:"use_illustrious18,optional"`
	Deviations       []DeviationConfig `hcl:"deviation,block"`
}

// DeviationConfig is one index play, keyed by the chart shorthand
// ("16v10", "s18v3", "p10v5", "insurance").
type DeviationConfig struct {
	Key       string  `hcl:"key,label"`
	TrueCount float64 `hcl:"true_count"`
	Direction string  `hcl:"direction,optional"`
	Action    string  `hcl:"action,optional"`
}

// BetConfig is one rung of the bet ramp.
type BetConfig struct {
	Floor   float64 `hcl:"floor"`
	Units   float64 `hcl:"units,optional"`
	WongOut bool    `hcl:"wong_out,optional"`
}

// Load reads a profile from an HCL file.
func Load(filename string) (*Profile, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes a profile from HCL source.
func Parse(src []byte, filename string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}

	var p Profile
	diags = gohcl.DecodeBody(file.Body, nil, &p)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", filename, diags.Error())
	}
	return &p, nil
}

// Default returns the profile used when no file is given: one million hands
// of the standard game with Hi-Lo, the Illustrious 18, and a 1-12 spread.
func Default() *Profile {
	return &Profile{Hands: 1_000_000}
}

// RunConfig lowers the profile into an engine configuration. The result is
// fully validated.
func (p *Profile) RunConfig() (sim.RunConfig, error) {
	cfg := sim.RunConfig{
		Hands:         p.Hands,
		Seed:          p.Seed,
		Workers:       p.Workers,
		BankrollUnits: p.Bankroll,
		Rules:         sim.StandardH17(),
	}
	if cfg.Hands == 0 {
		cfg.Hands = 1_000_000
	}
	if cfg.BankrollUnits == 0 {
		cfg.BankrollUnits = 1000
	}

	switch p.Rounding {
	case "", "exact":
		cfg.Rounding = shoe.RoundExact
	case "floor":
		cfg.Rounding = shoe.RoundFloor
	case "half-deck":
		cfg.Rounding = shoe.RoundHalfDeck
	default:
		return sim.RunConfig{}, fmt.Errorf("unknown rounding mode %q", p.Rounding)
	}

	if p.Rules != nil {
		applyRules(&cfg.Rules, p.Rules)
	}

	system, err := p.countSystem()
	if err != nil {
		return sim.RunConfig{}, err
	}
	cfg.System = system

	table, err := p.strategyTable()
	if err != nil {
		return sim.RunConfig{}, err
	}
	cfg.Table = table

	cfg.Ramp = p.betRamp()

	if err := cfg.Validate(); err != nil {
		return sim.RunConfig{}, err
	}
	return cfg, nil
}

func applyRules(r *sim.Rules, c *RulesConfig) {
	if c.Decks != nil {
		r.Decks = *c.Decks
	}
	if c.HitSoft17 != nil {
		r.HitSoft17 = *c.HitSoft17
	}
	if c.DoubleAfterSplit != nil {
		r.DoubleAfterSplit = *c.DoubleAfterSplit
	}
	if c.Surrender != nil {
		r.Surrender = *c.Surrender
	}
	if c.ResplitAces != nil {
		r.ResplitAces = *c.ResplitAces
	}
	if c.MaxSplitHands != nil {
		r.MaxSplitHands = *c.MaxSplitHands
	}
	if c.BlackjackPayout != nil {
		r.BlackjackPayout = *c.BlackjackPayout
	}
	if c.Penetration != nil {
		r.Penetration = *c.Penetration
	}
	if c.DealerPeek != nil {
		r.DealerPeek = *c.DealerPeek
	}
	if c.Insurance != nil {
		r.Insurance = *c.Insurance
	}
}

func (p *Profile) countSystem() (shoe.System, error) {
	if p.Count == nil {
		return shoe.HiLo(), nil
	}
	switch p.Count.System {
	case "", "hilo":
		if len(p.Count.Tags) > 0 {
			return shoe.System{}, fmt.Errorf("count system %q does not take tags", "hilo")
		}
		return shoe.HiLo(), nil
	case "custom":
		if len(p.Count.Tags) != shoe.RankCount {
			return shoe.System{}, fmt.Errorf("custom count system needs %d tags (two through ace), got %d",
				shoe.RankCount, len(p.Count.Tags))
		}
		s := shoe.System{Name: "custom"}
		sum := 0
		for i, tag := range p.Count.Tags {
			s.Tags[i] = tag
			sum += tag
		}
		s.Balanced = sum == 0
		return s, nil
	default:
		return shoe.System{}, fmt.Errorf("unknown count system %q", p.Count.System)
	}
}

func (p *Profile) strategyTable() (*strategy.Table, error) {
	table := strategy.Basic()

	useI18 := true
	var deviations []DeviationConfig
	if p.Strategy != nil {
		if p.Strategy.UseIllustrious18 != nil {
			useI18 = *p.Strategy.UseIllustrious18
		}
		deviations = p.Strategy.Deviations
	}

	if useI18 {
		for _, d := range strategy.Illustrious18() {
			if err := table.AddDeviation(d); err != nil {
				return nil, err
			}
		}
	}

	for _, dc := range deviations {
		key, err := strategy.ParseKey(dc.Key)
		if err != nil {
			return nil, fmt.Errorf("deviation %q: %w", dc.Key, err)
		}

		dir := strategy.AtOrAbove
		if dc.Direction != "" {
			dir, err = strategy.ParseDirection(dc.Direction)
			if err != nil {
				return nil, fmt.Errorf("deviation %q: %w", dc.Key, err)
			}
		}

		action := strategy.Stand
		if dc.Action != "" {
			action, err = strategy.ParseAction(dc.Action)
			if err != nil {
				return nil, fmt.Errorf("deviation %q: %w", dc.Key, err)
			}
		} else if key.Kind != strategy.Insurance {
			return nil, fmt.Errorf("deviation %q: action is required", dc.Key)
		}

		err = table.AddDeviation(strategy.Deviation{
			Key:       key,
			Threshold: dc.TrueCount,
			Direction: dir,
			Action:    action,
		})
		if err != nil {
			return nil, fmt.Errorf("deviation %q: %w", dc.Key, err)
		}
	}
	return table, nil
}

func (p *Profile) betRamp() betting.Ramp {
	if len(p.Bets) == 0 {
		return betting.Spread112()
	}
	ramp := make(betting.Ramp, 0, len(p.Bets))
	for _, b := range p.Bets {
		ramp = append(ramp, betting.Entry{Floor: b.Floor, Units: b.Units, WongOut: b.WongOut})
	}
	return ramp
}
