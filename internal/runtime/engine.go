package runtime

import (
	"log/slog"

	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
)

// DefaultViewportWidth is used when no viewport accessor is configured.
const DefaultViewportWidth = 1024

// Callbacks are the commit actions handed to the application.
type Callbacks struct {
	OnCommitLeft  func()
	OnCommitRight func()
}

// Engine is the swipe state machine of a single card.
//
// An Engine is not safe for concurrent use. Input methods must be called on
// the goroutine that runs the Scheduler's callbacks.
type Engine struct {
	id        string
	th        domain.Thresholds
	sched     ports.Scheduler
	renderer  ports.Renderer
	viewport  func() float64
	flag      *domain.ProcessingFlag
	ownFlag   bool
	callbacks Callbacks
	hooks     domain.LifecycleHooks
	logger    *slog.Logger

	enabled   bool
	mounted   bool
	phase     domain.Phase
	cursor    domain.Cursor
	transform domain.Transform
	feedback  domain.Feedback
	motion    *domain.Transition

	session *session
	anim    *animation
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithID labels the card in logs and events.
func WithID(id string) EngineOption {
	return func(e *Engine) {
		e.id = id
	}
}

// WithThresholds replaces the default tuning. Invalid thresholds are ignored.
func WithThresholds(th domain.Thresholds) EngineOption {
	return func(e *Engine) {
		if th.Validate() == nil {
			e.th = th
		}
	}
}

// WithRenderer sets the frame sink.
func WithRenderer(r ports.Renderer) EngineOption {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithViewport sets the viewport width accessor used for the fling destination.
func WithViewport(width func() float64) EngineOption {
	return func(e *Engine) {
		if width != nil {
			e.viewport = width
		}
	}
}

// WithProcessingFlag shares a caller-owned processing flag. The caller's
// commit callbacks are then responsible for releasing it.
func WithProcessingFlag(flag *domain.ProcessingFlag) EngineOption {
	return func(e *Engine) {
		if flag != nil {
			e.flag = flag
			e.ownFlag = false
		}
	}
}

// WithCallbacks sets the commit actions.
func WithCallbacks(cb Callbacks) EngineOption {
	return func(e *Engine) {
		e.callbacks = cb
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEnabled sets the initial enabled state (default true).
func WithEnabled(enabled bool) EngineOption {
	return func(e *Engine) {
		e.enabled = enabled
	}
}

// NewEngine creates a mounted, idle card driven by sched.
func NewEngine(sched ports.Scheduler, opts ...EngineOption) *Engine {
	e := &Engine{
		th:       domain.DefaultThresholds(),
		sched:    sched,
		viewport: func() float64 { return DefaultViewportWidth },
		flag:     &domain.ProcessingFlag{},
		ownFlag:  true,
		logger:   logging.NewNop(),
		enabled:  true,
		mounted:  true,
		phase:    domain.PhaseIdle,
		cursor:   domain.CursorGrab,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.id != "" {
		e.logger = e.logger.With("card", e.id)
	}
	return e
}

// ID returns the card label.
func (e *Engine) ID() string {
	return e.id
}

// Phase returns the current interaction phase.
func (e *Engine) Phase() domain.Phase {
	return e.phase
}

// Thresholds returns the tuning in use.
func (e *Engine) Thresholds() domain.Thresholds {
	return e.th
}

// Mounted reports whether the card still has a render target.
func (e *Engine) Mounted() bool {
	return e.mounted
}

// Enabled reports whether drags are accepted.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// Frame returns what the card currently looks like.
func (e *Engine) Frame() domain.Frame {
	return domain.Frame{
		Transform:  e.transform,
		Feedback:   e.feedback,
		Cursor:     e.cursor,
		Phase:      e.phase,
		Transition: e.motion,
	}
}

// SetEnabled toggles drag input. Disabling drops an open drag and cancels a
// running snap-back, leaving the card at rest; a fling already underway
// completes.
func (e *Engine) SetEnabled(enabled bool) {
	if e.enabled == enabled {
		return
	}
	e.enabled = enabled
	if enabled {
		return
	}

	switch e.phase {
	case domain.PhaseDragging, domain.PhaseAborting:
		e.logger.Debug("card disabled mid-gesture", "phase", e.phase)
		e.stopFrames()
		e.session = nil
		e.phase = domain.PhaseIdle
		e.cursor = domain.CursorGrab
		e.place(domain.Rest, domain.Neutral, nil)
	}
}

// Close tears the card down. Pending snap-back frames are canceled and no
// further frames are rendered. Timers of a fling in progress still fire, so
// the commit action may still reach the callbacks.
func (e *Engine) Close() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.stopFrames()
	e.session = nil
	if e.phase != domain.PhaseCommitting {
		e.phase = domain.PhaseIdle
	}
	e.logger.Debug("card closed", "phase", e.phase)
}

// place updates the visual state and renders it.
func (e *Engine) place(t domain.Transform, fb domain.Feedback, motion *domain.Transition) {
	e.transform = t
	e.feedback = fb
	e.motion = motion
	e.render()
}

func (e *Engine) render() {
	if !e.mounted || e.renderer == nil {
		return
	}
	e.renderer.Render(e.Frame())
}
