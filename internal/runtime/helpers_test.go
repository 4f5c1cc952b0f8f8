package runtime_test

import (
	"testing"
	"time"

	"github.com/aretw0/fling/internal/runtime"
	"github.com/aretw0/fling/pkg/adapters/clock"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/render"
)

var epoch = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// rig wires an engine to a virtual clock, a frame recorder and counting
// callbacks.
type rig struct {
	clk       *clock.Manual
	rec       *render.Recorder
	eng       *runtime.Engine
	lefts     int
	rights    int
	decisions []*domain.DecisionEvent
	dispatch  []*domain.DispatchEvent
	settles   []*domain.SettleEvent
}

func newRig(t *testing.T, opts ...runtime.EngineOption) *rig {
	t.Helper()
	r := &rig{clk: clock.NewManual(epoch)}
	r.rec = render.NewRecorder(r.clk.Now)

	base := []runtime.EngineOption{
		runtime.WithID("card-1"),
		runtime.WithRenderer(r.rec),
		runtime.WithCallbacks(runtime.Callbacks{
			OnCommitLeft:  func() { r.lefts++ },
			OnCommitRight: func() { r.rights++ },
		}),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnDecision: func(e *domain.DecisionEvent) { r.decisions = append(r.decisions, e) },
			OnDispatch: func(e *domain.DispatchEvent) { r.dispatch = append(r.dispatch, e) },
			OnSettle:   func(e *domain.SettleEvent) { r.settles = append(r.settles, e) },
		}),
	}
	r.eng = runtime.NewEngine(r.clk, append(base, opts...)...)
	return r
}

func (r *rig) down(x, y float64) bool {
	return r.eng.PointerDown(domain.MouseEvent{ClientX: x, ClientY: y})
}

func (r *rig) move(x, y float64) {
	r.eng.PointerMove(domain.MouseEvent{ClientX: x, ClientY: y})
}

func (r *rig) last(t *testing.T) domain.Frame {
	t.Helper()
	f, ok := r.rec.Last()
	if !ok {
		t.Fatal("no frame rendered")
	}
	return f
}

// dragTo performs a drag from (0,0) to (x,y) in the given number of equal
// steps, each one frame apart, and then holds still for hold before
// returning. A non-zero hold zeroes the release velocity.
func (r *rig) dragTo(x, y float64, steps int, hold time.Duration) {
	r.down(0, 0)
	for i := 1; i <= steps; i++ {
		r.clk.Advance(clock.DefaultFrameInterval)
		k := float64(i) / float64(steps)
		r.move(x*k, y*k)
	}
	if hold > 0 {
		r.clk.Advance(hold)
		r.move(x, y)
	}
}
