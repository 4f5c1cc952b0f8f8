package observability

import (
	"log/slog"

	"github.com/aretw0/fling/pkg/domain"
)

// LogHooks returns lifecycle hooks that log every event at info level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGestureStart: func(e *domain.GestureEvent) {
			logger.Info("gesture_start",
				"card", e.CardID,
				"x", e.Origin.X,
				"y", e.Origin.Y,
			)
		},
		OnDecision: func(e *domain.DecisionEvent) {
			logger.Info("decision",
				"card", e.CardID,
				"outcome", e.Decision.Outcome,
				"direction", e.Decision.Direction,
				"x", e.Decision.X,
				"speed", e.Decision.Velocity.Magnitude(),
				"source", e.Source,
			)
		},
		OnDispatch: func(e *domain.DispatchEvent) {
			logger.Info("dispatch",
				"card", e.CardID,
				"direction", e.Direction,
				"action", e.Direction.Action(),
				"skipped", e.Skipped,
			)
		},
		OnSettle: func(e *domain.SettleEvent) {
			logger.Info("settle",
				"card", e.CardID,
				"outcome", e.Outcome,
				"duration", e.Duration,
			)
		},
	}
}
