package strategy

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned when a reachable decision point has no defined
// action. Table coverage is validated up front, so hitting this during play
// indicates a table-construction defect, not a runtime condition.
var ErrIncomplete = errors.New("strategy table incomplete")

// Table is a pure decision function over declarative lookup maps: one action
// per (hand descriptor, dealer upcard) key, plus true-count-gated deviations
// that override the base entry for the same key.
type Table struct {
	entries    map[Key]Action
	deviations map[Key]Deviation
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:    make(map[Key]Action),
		deviations: make(map[Key]Deviation),
	}
}

// Set defines the base action for a key, replacing any previous entry.
func (t *Table) Set(k Key, a Action) {
	t.entries[k] = a
}

// AddDeviation registers an index play. At most one deviation may exist per
// key.
func (t *Table) AddDeviation(d Deviation) error {
	if _, dup := t.deviations[d.Key]; dup {
		return fmt.Errorf("duplicate deviation for %s", d.Key)
	}
	if d.Key.Kind != Insurance {
		if _, ok := t.entries[d.Key]; !ok {
			return fmt.Errorf("deviation %s targets a key with no base entry", d)
		}
	}
	t.deviations[d.Key] = d
	return nil
}

// Deviations returns the registered index plays.
func (t *Table) Deviations() []Deviation {
	out := make([]Deviation, 0, len(t.deviations))
	for _, d := range t.deviations {
		out = append(out, d)
	}
	return out
}

// Query describes one decision point: the hand shape, the dealer upcard
// class, the fresh true count, and which plays the rules currently permit.
type Query struct {
	HardTotal int
	SoftTotal int  // 0 when the hand is not soft
	Pair      bool // unsplit pair eligible for the pair table
	PairValue int
	Up        int
	TrueCount float64

	CanSplit     bool // resplit limit not reached
	CanDouble    bool // two cards, doubling legal for this hand
	CanSurrender bool // surrender enabled and hand has not acted
	DAS          bool
}

// key selects the lookup key per the table precedence: pair table when the
// hand is a splittable pair, soft table when an ace counts as 11, hard
// table otherwise.
func (q Query) key() Key {
	switch {
	case q.Pair && q.CanSplit:
		return Key{Kind: Pair, Value: q.PairValue, Up: q.Up}
	case q.SoftTotal > 0:
		return Key{Kind: Soft, Value: q.SoftTotal, Up: q.Up}
	default:
		return Key{Kind: Hard, Value: q.HardTotal, Up: q.Up}
	}
}

// Decide resolves one action for one decision point. Deviation resolution
// precedes the base lookup; conditional actions are then resolved against
// what the query says is legal.
func (t *Table) Decide(q Query) (Move, error) {
	k := q.key()
	action, ok := t.entries[k]
	if !ok {
		return 0, fmt.Errorf("%w: no action for %s", ErrIncomplete, k)
	}
	if d, found := t.deviations[k]; found && d.Satisfied(q.TrueCount) {
		action = d.Action
	}
	return t.resolve(action, q), nil
}

func (t *Table) resolve(a Action, q Query) Move {
	switch a {
	case Hit:
		return MoveHit
	case Stand:
		return MoveStand
	case DoubleHit:
		if q.CanDouble {
			return MoveDouble
		}
		return MoveHit
	case DoubleStand:
		if q.CanDouble {
			return MoveDouble
		}
		return MoveStand
	case Split:
		if q.CanSplit {
			return MoveSplit
		}
		return MoveHit
	case SplitIfDAS:
		if q.CanSplit && q.DAS {
			return MoveSplit
		}
		return MoveHit
	case SurrenderHit:
		if q.CanSurrender {
			return MoveSurrender
		}
		return MoveHit
	case SurrenderStand:
		if q.CanSurrender {
			return MoveSurrender
		}
		return MoveStand
	default:
		return MoveStand
	}
}

// TakeInsurance reports whether the insurance bet should be taken at the
// given true count. The base play always declines; an insurance index makes
// it count-dependent.
func (t *Table) TakeInsurance(tc float64) bool {
	d, ok := t.deviations[InsuranceKey]
	return ok && d.Satisfied(tc)
}

// Validate enumerates every reachable (hand descriptor, upcard) combination
// and fails if any is unmapped. Completeness is a hard contract: play never
// consults a key outside this enumeration.
func (t *Table) Validate() error {
	var missing []Key
	for up := 2; up <= 11; up++ {
		for total := 4; total <= 21; total++ {
			k := Key{Kind: Hard, Value: total, Up: up}
			if _, ok := t.entries[k]; !ok {
				missing = append(missing, k)
			}
		}
		for total := 12; total <= 21; total++ {
			k := Key{Kind: Soft, Value: total, Up: up}
			if _, ok := t.entries[k]; !ok {
				missing = append(missing, k)
			}
		}
		for value := 2; value <= 11; value++ {
			k := Key{Kind: Pair, Value: value, Up: up}
			if _, ok := t.entries[k]; !ok {
				missing = append(missing, k)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %d unmapped keys, first %s", ErrIncomplete, len(missing), missing[0])
	}
	return nil
}
