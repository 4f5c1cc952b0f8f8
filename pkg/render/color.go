package render

import (
	"github.com/aretw0/fling/pkg/domain"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines the glow and indicator colors.
type Palette struct {
	Neutral colorful.Color
	Left    colorful.Color
	Right   colorful.Color
	Card    colorful.Color
}

// DefaultPalette is gray at rest, red toward "pass" and green toward "like".
var DefaultPalette = Palette{
	Neutral: mustHex("#9ca3af"),
	Left:    mustHex("#ef4444"),
	Right:   mustHex("#22c55e"),
	Card:    mustHex("#1f2937"),
}

// Glow blends from the neutral border color toward the active side's color
// by the active indicator intensity.
func (p Palette) Glow(fb domain.Feedback) colorful.Color {
	switch fb.Glow {
	case domain.GlowCommitLeft:
		return p.Neutral.BlendLab(p.Left, fb.Left).Clamped()
	case domain.GlowCommitRight:
		return p.Neutral.BlendLab(p.Right, fb.Right).Clamped()
	default:
		return p.Neutral
	}
}

// Indicator returns the label color for one side, fading in from the card
// background as intensity grows.
func (p Palette) Indicator(dir domain.Direction, intensity float64) colorful.Color {
	target := p.Right
	if dir == domain.Left {
		target = p.Left
	}
	return p.Card.BlendLab(target, intensity).Clamped()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
