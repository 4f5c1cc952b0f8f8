package domain

import "fmt"

// Outcome is the classification of a released gesture.
type Outcome int

const (
	OutcomeAbort Outcome = iota
	OutcomeCommit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAbort:
		return "abort"
	case OutcomeCommit:
		return "commit"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name.
func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "abort":
		*o = OutcomeAbort
	case "commit":
		*o = OutcomeCommit
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}
	return nil
}

// Decision is the policy verdict for a gesture.
// Direction is meaningful only when Outcome is OutcomeCommit.
type Decision struct {
	Outcome   Outcome   `json:"outcome"`
	Direction Direction `json:"direction"`
	X         float64   `json:"x"`
	Velocity  Velocity  `json:"velocity"`
}

// Commit reports whether the decision flings the card.
func (d Decision) Commit() bool {
	return d.Outcome == OutcomeCommit
}
