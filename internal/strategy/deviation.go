package strategy

import "fmt"

// Direction selects which side of the threshold triggers a deviation.
type Direction int

const (
	// AtOrAbove triggers when the true count is >= the threshold.
	AtOrAbove Direction = iota
	// AtOrBelow triggers when the true count is <= the threshold.
	AtOrBelow
)

// String returns the string representation of a direction
func (d Direction) String() string {
	if d == AtOrBelow {
		return "<="
	}
	return ">="
}

// ParseDirection parses ">=" or "<=".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case ">=":
		return AtOrAbove, nil
	case "<=":
		return AtOrBelow, nil
	default:
		return 0, fmt.Errorf("unknown deviation direction %q (want \">=\" or \"<=\")", s)
	}
}

// Deviation is a single index play: when the true count satisfies the
// threshold in the given direction, Action overrides the base table entry
// for Key.
type Deviation struct {
	Key       Key
	Threshold float64
	Direction Direction
	Action    Action
}

// Satisfied reports whether the true count triggers this deviation.
func (d Deviation) Satisfied(tc float64) bool {
	if d.Direction == AtOrBelow {
		return tc <= d.Threshold
	}
	return tc >= d.Threshold
}

// String returns the string representation of a deviation
func (d Deviation) String() string {
	return fmt.Sprintf("%s @ %s%g -> %s", d.Key, d.Direction, d.Threshold, d.Action)
}

func dev(key string, threshold float64, dir Direction, action Action) Deviation {
	k, err := ParseKey(key)
	if err != nil {
		panic(err) // built-in preset keys are static
	}
	return Deviation{Key: k, Threshold: threshold, Direction: dir, Action: action}
}

// Illustrious18 returns the classic Hi-Lo index set, insurance included.
// Thresholds follow the standard published values; the handful of entries
// already covered by the built-in basic chart (11vA under H17) are omitted.
// Negative indexes of the form "hit below N" are encoded as <= N-1 so the
// base play stands at the index itself.
func Illustrious18() []Deviation {
	return []Deviation{
		dev("insurance", 3, AtOrAbove, Stand), // action unused; presence gates the bet
		dev("16v10", 0, AtOrAbove, SurrenderStand),
		dev("16v9", 5, AtOrAbove, Stand),
		dev("15v10", 4, AtOrAbove, SurrenderStand),
		dev("p10v5", 5, AtOrAbove, Split),
		dev("p10v6", 4, AtOrAbove, Split),
		dev("10v10", 4, AtOrAbove, DoubleHit),
		dev("10vA", 4, AtOrAbove, DoubleHit),
		dev("12v2", 3, AtOrAbove, Stand),
		dev("12v3", 2, AtOrAbove, Stand),
		dev("9v2", 1, AtOrAbove, DoubleHit),
		dev("9v7", 3, AtOrAbove, DoubleHit),
		dev("13v2", -1, AtOrBelow, Hit),
		dev("13v3", -2, AtOrBelow, Hit),
		dev("12v4", -1, AtOrBelow, Hit),
		dev("12v5", -2, AtOrBelow, Hit),
		dev("12v6", -1, AtOrBelow, Hit),
	}
}
