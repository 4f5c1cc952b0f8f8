package runtime

import (
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/gesture"
)

// session is the state of one pointer-down to pointer-up interaction.
type session struct {
	origin    domain.Sample
	last      domain.Sample
	estimator gesture.Estimator
}

// PointerDown opens a gesture session. It returns true when the event was
// taken, meaning the platform default (scroll, text selection) should be
// suppressed. It is ignored while the card is disabled, unmounted, animating,
// already dragging or while a commit is being processed.
func (e *Engine) PointerDown(ev domain.PointerEvent) bool {
	if reason := e.startBlocker(); reason != "" {
		e.logger.Debug("pointer down ignored", "reason", reason)
		return false
	}
	s, ok := e.sample(ev)
	if !ok {
		e.logger.Debug("pointer down ignored", "reason", "no contact")
		return false
	}

	e.session = &session{origin: s, last: s}
	e.session.estimator.Reset(s)
	e.phase = domain.PhaseDragging
	e.cursor = domain.CursorGrabbing
	// A card reused after a fling still sits at its off-screen destination.
	e.place(gesture.TransformAt(0, 0, e.th), domain.Neutral, nil)

	if e.hooks.OnGestureStart != nil {
		e.hooks.OnGestureStart(&domain.GestureEvent{
			EventBase: e.event(domain.EventGestureStart),
			Origin:    s,
		})
	}
	return true
}

// PointerMove follows the pointer while a session is open.
func (e *Engine) PointerMove(ev domain.PointerEvent) {
	if e.phase != domain.PhaseDragging || e.session == nil {
		return
	}
	s, ok := e.sample(ev)
	if !ok {
		return
	}

	e.session.last = s
	e.session.estimator.Sample(s)

	t := gesture.TransformAt(s.X-e.session.origin.X, s.Y-e.session.origin.Y, e.th)
	e.place(t, gesture.Feedback(t.X, e.th), nil)
}

// PointerUp closes the session and lets the policy pick fling-off or
// snap-back.
func (e *Engine) PointerUp() {
	if e.phase != domain.PhaseDragging || e.session == nil {
		return
	}
	v := e.session.estimator.Velocity()
	e.session = nil
	e.phase = domain.PhaseIdle
	e.cursor = domain.CursorGrab

	dec := gesture.Decide(e.transform.X, v, e.th)
	e.decided(dec, domain.SourceDrag)

	if dec.Commit() {
		e.fling(dec)
		return
	}
	e.snapBack()
}

// PointerCancel abandons the session (e.g. the platform stole the touch)
// and returns the card to rest without a decision.
func (e *Engine) PointerCancel() {
	if e.phase != domain.PhaseDragging || e.session == nil {
		return
	}
	e.session = nil
	e.phase = domain.PhaseIdle
	e.cursor = domain.CursorGrab
	e.logger.Debug("gesture canceled", "x", e.transform.X)
	e.snapBack()
}

func (e *Engine) startBlocker() string {
	switch {
	case !e.mounted:
		return "unmounted"
	case !e.enabled:
		return "disabled"
	case e.phase != domain.PhaseIdle:
		return e.phase.String()
	case e.flag.Busy():
		return "processing"
	}
	return ""
}

// sample normalizes ev and stamps it with the scheduler clock if needed.
func (e *Engine) sample(ev domain.PointerEvent) (domain.Sample, bool) {
	s, ok := domain.Normalize(ev)
	if !ok {
		return s, false
	}
	if s.T.IsZero() {
		s.T = e.sched.Now()
	}
	return s, true
}

func (e *Engine) decided(dec domain.Decision, src domain.Source) {
	e.logger.Debug("gesture decided",
		"outcome", dec.Outcome,
		"direction", dec.Direction,
		"x", dec.X,
		"speed", dec.Velocity.Magnitude(),
		"source", src,
	)
	if e.hooks.OnDecision != nil {
		e.hooks.OnDecision(&domain.DecisionEvent{
			EventBase: e.event(domain.EventDecision),
			Decision:  dec,
			Source:    src,
		})
	}
}

func (e *Engine) event(kind domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: e.sched.Now(),
		Type:      kind,
		CardID:    e.id,
	}
}
