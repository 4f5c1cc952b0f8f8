package observability

import (
	"github.com/aretw0/fling/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for card gestures.
type Metrics struct {
	Gestures       prometheus.Counter
	Decisions      *prometheus.CounterVec
	Dispatches     *prometheus.CounterVec
	ReleaseSpeed   prometheus.Histogram
	SettleDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Gestures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fling_gestures_started_total",
			Help: "Total number of drag sessions opened",
		}),
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fling_decisions_total",
				Help: "Total number of gesture decisions",
			},
			[]string{"outcome", "direction", "source"},
		),
		Dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fling_dispatches_total",
				Help: "Total number of commit actions, including skipped ones",
			},
			[]string{"direction", "skipped"},
		),
		ReleaseSpeed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fling_release_speed_px_per_ms",
			Help:    "Pointer speed at release of drag gestures",
			Buckets: []float64{0.1, 0.25, 0.5, 0.8, 1.2, 2, 4, 8},
		}),
		SettleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fling_animation_seconds",
				Help:    "Time from decision to idle",
				Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.8, 1},
			},
			[]string{"outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Gestures, m.Decisions, m.Dispatches, m.ReleaseSpeed, m.SettleDuration)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGestureStart: func(*domain.GestureEvent) {
			m.Gestures.Inc()
		},
		OnDecision: func(e *domain.DecisionEvent) {
			dir := "none"
			if e.Decision.Commit() {
				dir = e.Decision.Direction.String()
			}
			m.Decisions.WithLabelValues(e.Decision.Outcome.String(), dir, string(e.Source)).Inc()
			if e.Source == domain.SourceDrag {
				m.ReleaseSpeed.Observe(e.Decision.Velocity.Magnitude())
			}
		},
		OnDispatch: func(e *domain.DispatchEvent) {
			skipped := "false"
			if e.Skipped {
				skipped = "true"
			}
			m.Dispatches.WithLabelValues(e.Direction.String(), skipped).Inc()
		},
		OnSettle: func(e *domain.SettleEvent) {
			m.SettleDuration.WithLabelValues(e.Outcome.String()).Observe(e.Duration.Seconds())
		},
	}
}
