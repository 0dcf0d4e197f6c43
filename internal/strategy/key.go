package strategy

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies a hand descriptor.
type Kind int

const (
	// Hard keys by the hand's hard total (4-21).
	Hard Kind = iota
	// Soft keys by the soft total with an ace counted as 11 (12-21).
	Soft
	// Pair keys by the value of the paired card (2-11, 11 for aces).
	Pair
	// Insurance is the single key for the insurance decision.
	Insurance
)

// Key identifies one decision point: a hand descriptor and the dealer
// upcard class (2-11, where 11 is an ace). Insurance uses Value 0, Up 11.
type Key struct {
	Kind  Kind
	Value int
	Up    int
}

// InsuranceKey is the key under which the insurance index is registered.
var InsuranceKey = Key{Kind: Insurance, Up: 11}

// String renders the key in the chart shorthand used by preset files, e.g.
// "16v10", "s18v3", "p8v10", "insurance".
func (k Key) String() string {
	switch k.Kind {
	case Hard:
		return fmt.Sprintf("%dv%d", k.Value, k.Up)
	case Soft:
		return fmt.Sprintf("s%dv%d", k.Value, k.Up)
	case Pair:
		return fmt.Sprintf("p%dv%d", k.Value, k.Up)
	case Insurance:
		return "insurance"
	default:
		return "?"
	}
}

var keyPattern = regexp.MustCompile(`^([sp]?)(\d{1,2})v(\d{1,2}|[aA])$`)

// ParseKey parses the chart shorthand. The upcard may be written as "a" or
// "A" for an ace (equivalent to 11).
func ParseKey(s string) (Key, error) {
	if strings.EqualFold(s, "insurance") {
		return InsuranceKey, nil
	}
	m := keyPattern.FindStringSubmatch(s)
	if m == nil {
		return Key{}, fmt.Errorf("malformed hand key %q", s)
	}
	value, err := strconv.Atoi(m[2])
	if err != nil {
		return Key{}, fmt.Errorf("malformed hand key %q: %w", s, err)
	}
	up := 11
	if !strings.EqualFold(m[3], "a") {
		up, err = strconv.Atoi(m[3])
		if err != nil {
			return Key{}, fmt.Errorf("malformed hand key %q: %w", s, err)
		}
	}
	k := Key{Value: value, Up: up}
	switch m[1] {
	case "s":
		k.Kind = Soft
	case "p":
		k.Kind = Pair
	default:
		k.Kind = Hard
	}
	if err := k.validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

func (k Key) validate() error {
	if k.Kind != Insurance && (k.Up < 2 || k.Up > 11) {
		return fmt.Errorf("key %s: upcard out of range", k)
	}
	switch k.Kind {
	case Hard:
		if k.Value < 4 || k.Value > 21 {
			return fmt.Errorf("key %s: hard total out of range", k)
		}
	case Soft:
		if k.Value < 12 || k.Value > 21 {
			return fmt.Errorf("key %s: soft total out of range", k)
		}
	case Pair:
		if k.Value < 2 || k.Value > 11 {
			return fmt.Errorf("key %s: pair value out of range", k)
		}
	}
	return nil
}
