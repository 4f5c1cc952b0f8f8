package fling

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/internal/runtime"
	"github.com/aretw0/fling/pkg/adapters/clock"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
)

// Card is the high-level entry point for the fling library.
// It wraps the internal runtime and provides a simplified API for consumers.
//
// Like the runtime, a Card is driven from a single goroutine: the one that
// runs its Scheduler's callbacks. Use Post to reach it from elsewhere.
type Card struct {
	runtime   *runtime.Engine
	sched     ports.Scheduler
	loop      *clock.Loop // non-nil when the card owns its scheduler
	th        *domain.Thresholds
	callbacks runtime.Callbacks
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	opts      []runtime.EngineOption
	ID        string
}

// Option defines a functional option for configuring the Card.
type Option func(*Card)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Card) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the card.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Card) {
		c.logger = logger
	}
}

// WithScheduler injects the frame and timer source. Without it the card
// creates a wall-clock loop that must be started with Run.
func WithScheduler(s ports.Scheduler) Option {
	return func(c *Card) {
		c.sched = s
	}
}

// WithRenderer sets the frame sink.
func WithRenderer(r ports.Renderer) Option {
	return func(c *Card) {
		c.opts = append(c.opts, runtime.WithRenderer(r))
	}
}

// WithViewport sets the viewport width accessor used for fling destinations.
func WithViewport(width func() float64) Option {
	return func(c *Card) {
		c.opts = append(c.opts, runtime.WithViewport(width))
	}
}

// WithThresholds replaces the default tuning. New fails if they are invalid.
func WithThresholds(th domain.Thresholds) Option {
	return func(c *Card) {
		c.th = &th
	}
}

// WithCallbacks sets the commit actions.
func WithCallbacks(onLeft, onRight func()) Option {
	return func(c *Card) {
		c.callbacks = runtime.Callbacks{OnCommitLeft: onLeft, OnCommitRight: onRight}
	}
}

// WithProcessingFlag shares a caller-owned processing flag across cards.
// The commit callbacks (or the effects they start) must release it.
func WithProcessingFlag(flag *domain.ProcessingFlag) Option {
	return func(c *Card) {
		c.opts = append(c.opts, runtime.WithProcessingFlag(flag))
	}
}

// WithID labels the card in logs and lifecycle events.
func WithID(id string) Option {
	return func(c *Card) {
		c.ID = id
	}
}

// WithDisabled starts the card with drag input turned off.
func WithDisabled() Option {
	return func(c *Card) {
		c.opts = append(c.opts, runtime.WithEnabled(false))
	}
}

// New initializes a mounted, idle Card.
func New(opts ...Option) (*Card, error) {
	c := &Card{}
	for _, opt := range opts {
		opt(c)
	}

	if c.th != nil {
		if err := c.th.Validate(); err != nil {
			return nil, fmt.Errorf("failed to configure card: %w", err)
		}
	}

	// Ensure logger is initialized so nil is never handed to the runtime.
	if c.logger == nil {
		c.logger = logging.NewNop()
	}

	if c.sched == nil {
		c.loop = clock.NewLoop(clock.WithLoopLogger(c.logger))
		c.sched = c.loop
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithID(c.ID),
		runtime.WithLifecycleHooks(c.hooks),
		runtime.WithLogger(c.logger),
		runtime.WithCallbacks(c.callbacks),
	}
	if c.th != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithThresholds(*c.th))
	}
	runtimeOpts = append(runtimeOpts, c.opts...)

	c.runtime = runtime.NewEngine(c.sched, runtimeOpts...)
	return c, nil
}

// Run drives the card's own wall-clock scheduler until ctx is done.
// It returns immediately when a scheduler was injected.
func (c *Card) Run(ctx context.Context) error {
	if c.loop == nil {
		return nil
	}
	return c.loop.Run(ctx)
}

// Post runs fn on the card's scheduler goroutine.
func (c *Card) Post(fn func()) {
	c.sched.Post(fn)
}

// PointerDown opens a drag. It returns true when the event was taken and
// the platform default should be suppressed.
func (c *Card) PointerDown(ev domain.PointerEvent) bool {
	return c.runtime.PointerDown(ev)
}

// PointerMove follows an open drag.
func (c *Card) PointerMove(ev domain.PointerEvent) {
	c.runtime.PointerMove(ev)
}

// PointerUp releases the drag.
func (c *Card) PointerUp() {
	c.runtime.PointerUp()
}

// PointerCancel abandons the drag without a decision.
func (c *Card) PointerCancel() {
	c.runtime.PointerCancel()
}

// Swipe commits the card toward dir. It returns false if the press was ignored.
func (c *Card) Swipe(dir domain.Direction) bool {
	return c.runtime.Swipe(dir)
}

// SwipeLeft is Swipe(domain.Left).
func (c *Card) SwipeLeft() bool {
	return c.runtime.Swipe(domain.Left)
}

// SwipeRight is Swipe(domain.Right).
func (c *Card) SwipeRight() bool {
	return c.runtime.Swipe(domain.Right)
}

// SetEnabled toggles drag input.
func (c *Card) SetEnabled(enabled bool) {
	c.runtime.SetEnabled(enabled)
}

// Close tears the card down.
func (c *Card) Close() {
	c.runtime.Close()
}

// Frame returns what the card currently looks like.
func (c *Card) Frame() domain.Frame {
	return c.runtime.Frame()
}

// Phase returns the current interaction phase.
func (c *Card) Phase() domain.Phase {
	return c.runtime.Phase()
}

// Thresholds returns the tuning in use.
func (c *Card) Thresholds() domain.Thresholds {
	return c.runtime.Thresholds()
}

// Scheduler returns the scheduler driving the card.
func (c *Card) Scheduler() ports.Scheduler {
	return c.sched
}
