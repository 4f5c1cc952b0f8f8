package gesture

import "github.com/aretw0/fling/pkg/domain"

// Estimator derives velocity from the last two samples.
//
// The estimate is a plain finite difference with no smoothing window, so it
// follows high-frequency touch jitter. That matches the shipped feel of the
// card and is kept until the UX owners ask otherwise.
type Estimator struct {
	last     domain.Sample
	velocity domain.Velocity
	primed   bool
}

// Reset starts a new gesture at s with zero velocity.
func (e *Estimator) Reset(s domain.Sample) {
	e.last = s
	e.velocity = domain.Velocity{}
	e.primed = true
}

// Sample feeds a new reading and returns the current velocity in px/ms.
// A sample that does not advance time keeps the previous velocity.
func (e *Estimator) Sample(s domain.Sample) domain.Velocity {
	if !e.primed {
		e.Reset(s)
		return e.velocity
	}

	dt := float64(s.T.Sub(e.last.T).Microseconds()) / 1000
	if dt <= 0 {
		return e.velocity
	}

	e.velocity = domain.Velocity{
		VX: (s.X - e.last.X) / dt,
		VY: (s.Y - e.last.Y) / dt,
	}
	e.last = s
	return e.velocity
}

// Velocity returns the latest estimate.
func (e *Estimator) Velocity() domain.Velocity {
	return e.velocity
}
