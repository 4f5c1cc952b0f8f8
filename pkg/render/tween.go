package render

import (
	"time"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/gesture"
)

// Tween reproduces CSS transition semantics for renderers without a
// compositor: a frame with a Transition starts interpolating from whatever
// is on screen, a frame without one jumps, and a frame whose transform
// equals the current target leaves a running transition alone.
type Tween struct {
	from     domain.Transform
	to       domain.Transform
	started  time.Time
	duration time.Duration
	easing   domain.Easing
}

// Apply feeds the latest engine frame observed at now.
func (tw *Tween) Apply(frame domain.Frame, now time.Time) {
	if frame.Transform == tw.to {
		return
	}
	if frame.Transition == nil || frame.Transition.Duration <= 0 {
		tw.from = frame.Transform
		tw.to = frame.Transform
		tw.duration = 0
		return
	}
	tw.from = tw.At(now)
	tw.to = frame.Transform
	tw.started = now
	tw.duration = frame.Transition.Duration
	tw.easing = frame.Transition.Easing
}

// At returns the transform on screen at now.
func (tw *Tween) At(now time.Time) domain.Transform {
	if tw.duration <= 0 {
		return tw.to
	}
	p := ease(tw.easing, gesture.Progress(now.Sub(tw.started), tw.duration))
	return domain.Transform{
		X:        lerp(tw.from.X, tw.to.X, p),
		Y:        lerp(tw.from.Y, tw.to.Y, p),
		Rotation: lerp(tw.from.Rotation, tw.to.Rotation, p),
	}
}

// Active reports whether a transition is still running at now.
func (tw *Tween) Active(now time.Time) bool {
	return tw.duration > 0 && now.Sub(tw.started) < tw.duration
}

func ease(e domain.Easing, p float64) float64 {
	switch e {
	case domain.EaseOut:
		return gesture.EaseOutCubic(p)
	default:
		return p
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
