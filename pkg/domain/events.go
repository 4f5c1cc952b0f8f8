package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGestureStart EventType = "gesture_start"
	EventDecision     EventType = "decision"
	EventDispatch     EventType = "dispatch"
	EventSettle       EventType = "settle"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	CardID    string    `json:"card_id,omitempty"`
}

// GestureEvent is emitted when a pointer session opens.
type GestureEvent struct {
	EventBase
	Origin Sample `json:"origin"`
}

// DecisionEvent is emitted when a gesture (or button) has been classified.
type DecisionEvent struct {
	EventBase
	Decision Decision `json:"decision"`
	Source   Source   `json:"source"`
}

// DispatchEvent is emitted at the commit mark of a fling.
// Skipped is true when the processing flag was already held.
type DispatchEvent struct {
	EventBase
	Direction Direction `json:"direction"`
	Skipped   bool      `json:"skipped,omitempty"`
}

// SettleEvent is emitted when an animation hands the card back to idle.
type SettleEvent struct {
	EventBase
	Outcome  Outcome       `json:"outcome"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run on the engine goroutine and must not block.
type LifecycleHooks struct {
	OnGestureStart func(*GestureEvent)
	OnDecision     func(*DecisionEvent)
	OnDispatch     func(*DispatchEvent)
	OnSettle       func(*SettleEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnGestureStart: chain(h.OnGestureStart, other.OnGestureStart),
		OnDecision:     chain(h.OnDecision, other.OnDecision),
		OnDispatch:     chain(h.OnDispatch, other.OnDispatch),
		OnSettle:       chain(h.OnSettle, other.OnSettle),
	}
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}
