package domain

import "fmt"

// Glow selects the card border color.
type Glow int

const (
	GlowNeutral Glow = iota
	GlowCommitLeft
	GlowCommitRight
)

func (g Glow) String() string {
	switch g {
	case GlowNeutral:
		return "neutral"
	case GlowCommitLeft:
		return "commit-left"
	case GlowCommitRight:
		return "commit-right"
	default:
		return fmt.Sprintf("glow(%d)", int(g))
	}
}

// MarshalText encodes the glow by name.
func (g Glow) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText decodes a glow name.
func (g *Glow) UnmarshalText(text []byte) error {
	for _, candidate := range []Glow{GlowNeutral, GlowCommitLeft, GlowCommitRight} {
		if candidate.String() == string(text) {
			*g = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown glow %q", text)
}

// Feedback is the indicator state derived from the horizontal offset.
// Left and Right are opacities in [0, 1]; at most one is non-zero.
type Feedback struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
	Glow  Glow    `json:"glow"`
}

// Neutral is the feedback shown while the card is near rest.
var Neutral = Feedback{}
