package domain

import (
	"fmt"
	"strings"
)

// Direction is the side a card leaves through.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Sign returns -1 or +1.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// Action names the application action bound to the direction.
func (d Direction) Action() string {
	if d == Left {
		return "pass"
	}
	return "like"
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts "left"/"right" and the action aliases "pass"/"like".
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses a direction or action name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "pass", "l":
		return Left, nil
	case "right", "like", "r":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
