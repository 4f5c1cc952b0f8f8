package domain

import (
	"fmt"
	"time"
)

// Thresholds tunes the gesture engine. The values are fixed by the product
// design; DefaultThresholds is the only set the engine runs with.
type Thresholds struct {
	DistancePx        float64 `json:"distance_px"`
	MaxRotationDeg    float64 `json:"max_rotation_deg"`
	RotationPerPx     float64 `json:"rotation_per_px"`
	Friction          float64 `json:"friction"` // declared for parity, unused by the closed-form snap-back
	VelocityThreshold float64 `json:"velocity_threshold"`

	FeedbackDeadZonePx float64 `json:"feedback_dead_zone_px"`
	FlingOvershootPx   float64 `json:"fling_overshoot_px"`
	FlingRotationDeg   float64 `json:"fling_rotation_deg"`
	FlingMomentum      float64 `json:"fling_momentum"` // ms; vertical velocity to offset
	ButtonVelocity     float64 `json:"button_velocity"`

	SnapBackDuration    time.Duration `json:"snap_back_duration"`
	FlingDuration       time.Duration `json:"fling_duration"`
	DispatchDelay       time.Duration `json:"dispatch_delay"`
	IndicatorClearDelay time.Duration `json:"indicator_clear_delay"`
}

// DefaultThresholds returns the production tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DistancePx:          100,
		MaxRotationDeg:      15,
		RotationPerPx:       0.1,
		Friction:            0.95,
		VelocityThreshold:   0.8,
		FeedbackDeadZonePx:  30,
		FlingOvershootPx:    200,
		FlingRotationDeg:    30,
		FlingMomentum:       100,
		ButtonVelocity:      0.5,
		SnapBackDuration:    400 * time.Millisecond,
		FlingDuration:       600 * time.Millisecond,
		DispatchDelay:       300 * time.Millisecond,
		IndicatorClearDelay: 100 * time.Millisecond,
	}
}

// Validate checks the internal consistency of the thresholds.
func (t Thresholds) Validate() error {
	switch {
	case t.DistancePx <= 0:
		return fmt.Errorf("%w: distance must be positive", ErrInvalidThresholds)
	case t.VelocityThreshold <= 0:
		return fmt.Errorf("%w: velocity threshold must be positive", ErrInvalidThresholds)
	case t.MaxRotationDeg < 0:
		return fmt.Errorf("%w: max rotation must not be negative", ErrInvalidThresholds)
	case t.SnapBackDuration <= 0 || t.FlingDuration <= 0:
		return fmt.Errorf("%w: animation durations must be positive", ErrInvalidThresholds)
	case t.DispatchDelay <= 0 || t.DispatchDelay >= t.FlingDuration:
		return fmt.Errorf("%w: dispatch must happen strictly inside the fling", ErrInvalidThresholds)
	case t.IndicatorClearDelay < 0 || t.IndicatorClearDelay >= t.FlingDuration:
		return fmt.Errorf("%w: indicator clear delay outside the fling", ErrInvalidThresholds)
	}
	return nil
}
