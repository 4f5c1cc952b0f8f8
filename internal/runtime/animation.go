package runtime

import (
	"time"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/gesture"
	"github.com/aretw0/fling/pkg/ports"
)

// animation tracks the fling-off or snap-back that currently owns the card.
type animation struct {
	outcome domain.Outcome
	started time.Time
	frame   ports.Handle // snap-back only; fling timers are never canceled
}

// Swipe commits the card toward dir as if a button had been pressed.
// It returns false when the press is ignored: the card is unmounted, a commit
// is already flinging, or the processing flag is held. An open drag is
// discarded and a running snap-back is interrupted.
func (e *Engine) Swipe(dir domain.Direction) bool {
	switch {
	case !e.mounted:
		e.logger.Debug("button swipe ignored", "reason", "unmounted")
		return false
	case e.phase == domain.PhaseCommitting:
		e.logger.Debug("button swipe ignored", "reason", "committing")
		return false
	case e.flag.Busy():
		e.logger.Debug("button swipe ignored", "reason", "processing")
		return false
	}

	e.stopFrames()
	e.session = nil
	e.phase = domain.PhaseIdle
	e.cursor = domain.CursorGrab
	e.transform = domain.Rest

	dec := gesture.ForButton(dir, e.th)
	e.decided(dec, domain.SourceButton)
	e.fling(dec)
	return true
}

// fling computes the off-screen destination once and hands the
// interpolation to the renderer. The commit action fires at DispatchDelay,
// the indicators clear at IndicatorClearDelay and the card returns to idle
// at FlingDuration.
func (e *Engine) fling(dec domain.Decision) {
	dir := dec.Direction
	sign := dir.Sign()

	dest := domain.Transform{
		X:        sign * (e.viewport() + e.th.FlingOvershootPx),
		Y:        e.transform.Y + dec.Velocity.VY*e.th.FlingMomentum,
		Rotation: sign * e.th.FlingRotationDeg,
	}
	motion := &domain.Transition{Duration: e.th.FlingDuration, Easing: domain.EaseOut}

	e.phase = domain.PhaseCommitting
	e.anim = &animation{outcome: domain.OutcomeCommit, started: e.sched.Now()}
	e.place(dest, gesture.Feedback(dest.X, e.th), motion)

	e.sched.AfterFunc(e.th.IndicatorClearDelay, func() {
		if e.phase != domain.PhaseCommitting {
			return
		}
		e.feedback = domain.Neutral
		e.render()
	})
	e.sched.AfterFunc(e.th.DispatchDelay, func() {
		e.dispatch(dir)
	})
	e.sched.AfterFunc(e.th.FlingDuration, func() {
		e.settle(domain.OutcomeCommit)
	})
}

// snapBack eases the card from where it was released back to rest, one
// scheduled frame at a time.
func (e *Engine) snapBack() {
	start := e.transform
	if start.IsRest() {
		e.place(domain.Rest, domain.Neutral, nil)
		return
	}

	e.phase = domain.PhaseAborting
	e.anim = &animation{outcome: domain.OutcomeAbort, started: e.sched.Now()}
	e.requestSnapFrame(start)
}

func (e *Engine) requestSnapFrame(start domain.Transform) {
	anim := e.anim
	anim.frame = e.sched.RequestFrame(func(now time.Time) {
		if e.anim != anim || e.phase != domain.PhaseAborting {
			return
		}
		e.snapFrame(start, now)
	})
}

func (e *Engine) snapFrame(start domain.Transform, now time.Time) {
	progress := gesture.Progress(now.Sub(e.anim.started), e.th.SnapBackDuration)
	if progress >= 1 {
		// Land exactly on rest, without floating point residue.
		e.place(domain.Rest, domain.Neutral, nil)
		e.settle(domain.OutcomeAbort)
		return
	}

	current := start.Scale(1 - gesture.EaseOutCubic(progress))
	e.place(current, gesture.Feedback(current.X, e.th), nil)
	e.requestSnapFrame(start)
}

// settle returns the card to idle once an animation has finished.
func (e *Engine) settle(outcome domain.Outcome) {
	anim := e.anim
	if anim == nil || anim.outcome != outcome {
		return
	}
	e.anim = nil
	e.phase = domain.PhaseIdle
	e.motion = nil
	e.render()

	elapsed := e.sched.Now().Sub(anim.started)
	e.logger.Debug("animation settled", "outcome", outcome, "elapsed", elapsed)
	if e.hooks.OnSettle != nil {
		e.hooks.OnSettle(&domain.SettleEvent{
			EventBase: e.event(domain.EventSettle),
			Outcome:   outcome,
			Duration:  elapsed,
		})
	}
}

// stopFrames cancels a pending snap-back frame.
func (e *Engine) stopFrames() {
	if e.anim == nil || e.anim.frame == nil {
		return
	}
	e.anim.frame.Cancel()
	e.anim = nil
}
