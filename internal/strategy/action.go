package strategy

import "fmt"

// Action is a table entry in the strategy vocabulary. Conditional actions
// resolve against the table rules at decision time.
type Action int

const (
	Hit Action = iota
	Stand
	// DoubleHit doubles when doubling is legal, otherwise hits.
	DoubleHit
	// DoubleStand doubles when doubling is legal, otherwise stands.
	DoubleStand
	Split
	// SplitIfDAS splits only when double-after-split is allowed, otherwise hits.
	SplitIfDAS
	// SurrenderHit surrenders when surrender is available, otherwise hits.
	SurrenderHit
	// SurrenderStand surrenders when surrender is available, otherwise stands.
	SurrenderStand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case DoubleHit:
		return "double"
	case DoubleStand:
		return "double-stand"
	case Split:
		return "split"
	case SplitIfDAS:
		return "split-das"
	case SurrenderHit:
		return "surrender"
	case SurrenderStand:
		return "surrender-stand"
	default:
		return "?"
	}
}

// ParseAction parses the string form used in preset files.
func ParseAction(s string) (Action, error) {
	switch s {
	case "hit":
		return Hit, nil
	case "stand":
		return Stand, nil
	case "double":
		return DoubleHit, nil
	case "double-stand":
		return DoubleStand, nil
	case "split":
		return Split, nil
	case "split-das":
		return SplitIfDAS, nil
	case "surrender":
		return SurrenderHit, nil
	case "surrender-stand":
		return SurrenderStand, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// Move is a fully resolved play, with all rule conditions applied.
type Move int

const (
	MoveHit Move = iota
	MoveStand
	MoveDouble
	MoveSplit
	MoveSurrender
)

// String returns the string representation of a move
func (m Move) String() string {
	switch m {
	case MoveHit:
		return "hit"
	case MoveStand:
		return "stand"
	case MoveDouble:
		return "double"
	case MoveSplit:
		return "split"
	case MoveSurrender:
		return "surrender"
	default:
		return "?"
	}
}
