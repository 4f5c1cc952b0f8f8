package gesture

import (
	"math"

	"github.com/aretw0/fling/pkg/domain"
)

// Decide classifies a released drag. It commits when the card is past the
// distance threshold or was thrown faster than the velocity threshold.
func Decide(x float64, v domain.Velocity, th domain.Thresholds) domain.Decision {
	d := domain.Decision{
		Outcome:   domain.OutcomeAbort,
		Direction: directionOf(x, v.VX),
		X:         x,
		Velocity:  v,
	}
	if math.Abs(x) > th.DistancePx || v.Magnitude() > th.VelocityThreshold {
		d.Outcome = domain.OutcomeCommit
	}
	return d
}

// ForButton returns the verdict for a button press: always a commit toward
// dir, with a small synthetic velocity so the fling math has an input.
func ForButton(dir domain.Direction, th domain.Thresholds) domain.Decision {
	return domain.Decision{
		Outcome:   domain.OutcomeCommit,
		Direction: dir,
		Velocity:  domain.Velocity{VX: dir.Sign() * th.ButtonVelocity},
	}
}

// directionOf resolves sign(x), then sign(vx), then right.
func directionOf(x, vx float64) domain.Direction {
	switch {
	case x < 0:
		return domain.Left
	case x > 0:
		return domain.Right
	case vx < 0:
		return domain.Left
	default:
		return domain.Right
	}
}
