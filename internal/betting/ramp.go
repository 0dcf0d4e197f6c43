// Package betting maps true counts to bet sizes.
package betting

import (
	"errors"
	"fmt"
)

// Entry is one rung of a bet ramp: at true counts at or above Floor (and
// below the next rung's floor) the player bets Units, or sits the round out
// when WongOut is set.
type Entry struct {
	Floor   float64
	Units   float64
	WongOut bool
}

// Ramp is an ordered list of entries, ascending by floor.
type Ramp []Entry

// ErrEmptyRamp is returned when a ramp has no entries.
var ErrEmptyRamp = errors.New("bet ramp has no entries")

// Flat returns a single-entry ramp that always bets the given units.
func Flat(units float64) Ramp {
	return Ramp{{Floor: 0, Units: units}}
}

// Spread112 returns a conventional 1-12 spread for a six-deck game,
// sitting out below -1. The wong rung's floor sits far below any count a
// six-deck shoe can produce, so the sit-out covers everything under -1.
func Spread112() Ramp {
	return Ramp{
		{Floor: -99, WongOut: true},
		{Floor: -1, Units: 1},
		{Floor: 1, Units: 2},
		{Floor: 2, Units: 4},
		{Floor: 3, Units: 8},
		{Floor: 4, Units: 12},
	}
}

// Validate checks the ramp is usable: non-empty, strictly ascending floors,
// positive bets on live entries, and a live bet at a neutral count. The last
// condition matters because a freshly shuffled shoe always sits at true
// count zero; a ramp that wongs out there would never rejoin.
func (r Ramp) Validate() error {
	if len(r) == 0 {
		return ErrEmptyRamp
	}
	live := false
	for i, e := range r {
		if i > 0 && e.Floor <= r[i-1].Floor {
			return fmt.Errorf("bet ramp floors must be strictly ascending: entry %d floor %g after %g", i, e.Floor, r[i-1].Floor)
		}
		if !e.WongOut {
			live = true
			if e.Units <= 0 {
				return fmt.Errorf("bet ramp entry %d: bet must be positive, got %g", i, e.Units)
			}
		}
	}
	if !live {
		return errors.New("bet ramp must contain at least one live bet")
	}
	if _, sitOut := r.Resolve(0); sitOut {
		return errors.New("bet ramp must place a live bet at true count 0")
	}
	return nil
}

// Resolve selects the entry with the greatest floor at or below the true
// count; counts below the lowest floor fall back to the minimum defined bet.
// It returns the bet size in units, or sitOut when the matched entry wongs
// out.
func (r Ramp) Resolve(tc float64) (units float64, sitOut bool) {
	if len(r) == 0 {
		return 0, true
	}
	if tc < r[0].Floor {
		return r.MinBet(), false
	}
	matched := r[0]
	for _, e := range r[1:] {
		if e.Floor > tc {
			break
		}
		matched = e
	}
	if matched.WongOut {
		return 0, true
	}
	return matched.Units, false
}

// MinBet returns the smallest live bet in the ramp.
func (r Ramp) MinBet() float64 {
	min := 0.0
	for _, e := range r {
		if !e.WongOut && (min == 0 || e.Units < min) {
			min = e.Units
		}
	}
	return min
}
