package simulate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/internal/runtime"
	"github.com/aretw0/fling/pkg/adapters/clock"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/render"
)

// Epoch is the virtual start time of every run.
var Epoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options tune a run.
type Options struct {
	Logger     *slog.Logger
	Hooks      domain.LifecycleHooks
	Thresholds *domain.Thresholds

	// ProcessingFlag, if set, is shared with the card and left held after a
	// dispatch, the way a real downstream effect would see it.
	ProcessingFlag *domain.ProcessingFlag
}

// Run replays tr and returns the report. Once the steps are exhausted the
// clock keeps running until every animation has settled.
func Run(ctx context.Context, tr Trace, opts Options) (*Report, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	clk := clock.NewManual(Epoch)
	rec := render.NewRecorder(clk.Now)
	rep := &Report{Name: tr.Name}

	collect := domain.LifecycleHooks{
		OnDecision: func(e *domain.DecisionEvent) {
			rep.Decisions = append(rep.Decisions, *e)
		},
		OnDispatch: func(e *domain.DispatchEvent) {
			rep.Dispatches = append(rep.Dispatches, *e)
		},
		OnSettle: func(e *domain.SettleEvent) {
			rep.Settles = append(rep.Settles, *e)
		},
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithID(tr.Name),
		runtime.WithRenderer(rec),
		runtime.WithLogger(logger),
		runtime.WithLifecycleHooks(collect.Merge(opts.Hooks)),
		runtime.WithProcessingFlag(opts.ProcessingFlag),
	}
	if tr.Viewport > 0 {
		width := tr.Viewport
		engineOpts = append(engineOpts, runtime.WithViewport(func() float64 { return width }))
	}
	if opts.Thresholds != nil {
		if err := opts.Thresholds.Validate(); err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, runtime.WithThresholds(*opts.Thresholds))
	}
	eng := runtime.NewEngine(clk, engineOpts...)

	for i, step := range tr.Steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulation interrupted at step %d: %w", i, err)
		}
		clk.Advance(step.After)
		apply(eng, clk, step)
	}

	// Let running animations finish.
	th := eng.Thresholds()
	drain := max(th.FlingDuration, th.SnapBackDuration) + 2*clk.FrameInterval()
	for i := 0; eng.Phase().Animating() || clk.Pending() > 0; i++ {
		if i > 16 {
			return nil, fmt.Errorf("simulation did not settle")
		}
		clk.Advance(drain)
	}

	rep.finish(rec.Frames(), eng.Frame(), clk.Now().Sub(Epoch))
	logger.Debug("simulation finished", "trace", tr.Name, "frames", len(rep.Timeline), "dispatches", len(rep.Dispatches))
	return rep, nil
}

func apply(eng *runtime.Engine, clk *clock.Manual, s Step) {
	switch s.Action {
	case ActionDown:
		eng.PointerDown(pointer(s))
	case ActionMove:
		eng.PointerMove(pointer(s))
	case ActionUp:
		eng.PointerUp()
	case ActionCancel:
		eng.PointerCancel()
	case ActionButton:
		eng.Swipe(s.Direction)
	case ActionWait:
		clk.Advance(s.For)
	}
}

func pointer(s Step) domain.PointerEvent {
	if s.Input == InputTouch {
		return domain.TouchEvent{Touches: []domain.Point{{X: s.X, Y: s.Y}}}
	}
	return domain.MouseEvent{ClientX: s.X, ClientY: s.Y}
}
