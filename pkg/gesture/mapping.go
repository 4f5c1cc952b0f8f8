package gesture

import (
	"math"

	"github.com/aretw0/fling/pkg/domain"
)

// Rotation maps a horizontal offset to a card tilt, bounded by MaxRotationDeg.
func Rotation(dx float64, th domain.Thresholds) float64 {
	r := dx * th.RotationPerPx
	return math.Max(-th.MaxRotationDeg, math.Min(th.MaxRotationDeg, r))
}

// TransformAt returns the drag transform for a delta from the session origin.
func TransformAt(dx, dy float64, th domain.Thresholds) domain.Transform {
	return domain.Transform{X: dx, Y: dy, Rotation: Rotation(dx, th)}
}

// Feedback maps the horizontal offset to indicator intensities.
// It depends on x alone, never on how the card got there.
func Feedback(x float64, th domain.Thresholds) domain.Feedback {
	intensity := math.Min(math.Abs(x)/th.DistancePx, 1)
	switch {
	case x > th.FeedbackDeadZonePx:
		return domain.Feedback{Right: intensity, Glow: domain.GlowCommitRight}
	case x < -th.FeedbackDeadZonePx:
		return domain.Feedback{Left: intensity, Glow: domain.GlowCommitLeft}
	default:
		return domain.Neutral
	}
}
