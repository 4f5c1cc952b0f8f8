package runtime

import "github.com/aretw0/fling/pkg/domain"

// dispatch fires the commit action for dir at most once per cycle.
//
// The processing flag is acquired before the callback runs. With a
// caller-owned flag the downstream effect must release it when it completes
// or fails; with the engine's private flag there is no downstream effect to
// wait for, so it is released as soon as the callback returns.
func (e *Engine) dispatch(dir domain.Direction) {
	ev := &domain.DispatchEvent{
		EventBase: e.event(domain.EventDispatch),
		Direction: dir,
	}

	if !e.flag.TryAcquire() {
		ev.Skipped = true
		e.logger.Debug("dispatch skipped", "reason", "processing", "direction", dir)
		if e.hooks.OnDispatch != nil {
			e.hooks.OnDispatch(ev)
		}
		return
	}

	e.logger.Debug("dispatching commit", "direction", dir, "action", dir.Action())
	if e.hooks.OnDispatch != nil {
		e.hooks.OnDispatch(ev)
	}

	cb := e.callbacks.OnCommitRight
	if dir == domain.Left {
		cb = e.callbacks.OnCommitLeft
	}
	if cb != nil {
		cb()
	}

	if e.ownFlag {
		e.flag.Release()
	}
}
