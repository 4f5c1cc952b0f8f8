package gesture

import (
	"math"
	"time"
)

// EaseOutCubic is 1 - (1-p)^3 for p clamped to [0, 1].
func EaseOutCubic(p float64) float64 {
	p = Clamp01(p)
	inv := 1 - p
	return 1 - inv*inv*inv
}

// Progress returns elapsed/total clamped to [0, 1]. A non-positive total
// is treated as already finished.
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp01(float64(elapsed) / float64(total))
}

// Clamp01 bounds v to [0, 1]; NaN maps to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
