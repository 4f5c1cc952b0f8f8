package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/render"
	"github.com/aretw0/fling/pkg/simulate"
	"github.com/muesli/termenv"
)

// Summary formats the outcome of a simulation as one colored line per fact.
// Use termenv.Ascii for uncolored output.
func Summary(p termenv.Profile, rep *simulate.Report, palette render.Palette) string {
	var b strings.Builder

	outcome := p.String(rep.Outcome).Bold()
	switch {
	case rep.Direction != nil:
		c := palette.Indicator(*rep.Direction, 1)
		outcome = outcome.Foreground(p.Color(c.Hex()))
		fmt.Fprintf(&b, "%s  %s (%s)\n", outcome, rep.Direction, rep.Direction.Action())
	default:
		outcome = outcome.Foreground(p.Color(palette.Neutral.Hex()))
		fmt.Fprintf(&b, "%s\n", outcome)
	}

	if rep.Decision != nil {
		d := rep.Decision
		fmt.Fprintf(&b, "released at x=%.1fpx, speed %.2fpx/ms\n", d.X, d.Velocity.Magnitude())
	}
	fmt.Fprintf(&b, "dispatches: %d  frames: %d  elapsed: %s\n", rep.Dispatched(), len(rep.Timeline), rep.Elapsed)
	fmt.Fprintf(&b, "final: %s\n", glowString(p, rep.Final, palette))
	return b.String()
}

func glowString(p termenv.Profile, f domain.Frame, palette render.Palette) string {
	c := palette.Glow(f.Feedback)
	return p.String(f.CSS()).Foreground(p.Color(c.Hex())).String()
}
