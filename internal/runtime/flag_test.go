package runtime_test

import (
	"testing"
	"time"

	"github.com/aretw0/fling/internal/runtime"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwipe_Button(t *testing.T) {
	t.Run("Commits From Idle", func(t *testing.T) {
		r := newRig(t)
		require.True(t, r.eng.Swipe(domain.Left))

		require.Len(t, r.decisions, 1)
		assert.Equal(t, domain.SourceButton, r.decisions[0].Source)
		assert.Equal(t, domain.Velocity{VX: -0.5}, r.decisions[0].Decision.Velocity)
		assert.Equal(t, domain.Transform{X: -1224, Y: 0, Rotation: -30}, r.last(t).Transform)

		r.clk.Advance(300 * time.Millisecond)
		assert.Equal(t, 1, r.lefts)
	})

	t.Run("Overrides Drag", func(t *testing.T) {
		r := newRig(t)
		r.dragTo(-60, 40, 3, 0)

		require.True(t, r.eng.Swipe(domain.Right))
		assert.Equal(t, domain.PhaseCommitting, r.eng.Phase())
		// The drag offset is discarded before the fling is computed.
		assert.Equal(t, domain.Transform{X: 1224, Y: 0, Rotation: 30}, r.last(t).Transform)

		r.eng.PointerUp()
		assert.Len(t, r.decisions, 1)
		r.clk.Advance(time.Second)
		assert.Equal(t, 1, r.rights)
		assert.Zero(t, r.lefts)
	})

	t.Run("Interrupts Snap Back", func(t *testing.T) {
		r := newRig(t)
		r.dragTo(40, 0, 2, 200*time.Millisecond)
		r.eng.PointerUp()
		require.Equal(t, domain.PhaseAborting, r.eng.Phase())

		require.True(t, r.eng.Swipe(domain.Right))
		r.clk.Advance(time.Second)

		assert.Equal(t, 1, r.rights)
		require.Len(t, r.settles, 1)
		assert.Equal(t, domain.OutcomeCommit, r.settles[0].Outcome)
		assert.Equal(t, domain.Transform{X: 1224, Y: 0, Rotation: 30}, r.last(t).Transform)
	})

	t.Run("Ignores Disabled State", func(t *testing.T) {
		r := newRig(t, runtime.WithEnabled(false))
		assert.False(t, r.down(0, 0))
		assert.True(t, r.eng.Swipe(domain.Right))
	})
}

func TestProcessingFlag_Shared(t *testing.T) {
	t.Run("Blocks Input While Busy", func(t *testing.T) {
		flag := &domain.ProcessingFlag{}
		require.True(t, flag.TryAcquire())
		r := newRig(t, runtime.WithProcessingFlag(flag))

		assert.False(t, r.eng.Swipe(domain.Right))
		assert.False(t, r.down(0, 0))
		assert.Empty(t, r.decisions)
		assert.Zero(t, r.rec.Len())

		flag.Release()
		assert.True(t, r.eng.Swipe(domain.Right))
	})

	t.Run("Held Until Released By Caller", func(t *testing.T) {
		flag := &domain.ProcessingFlag{}
		var busyInCallback bool
		r := newRig(t, runtime.WithProcessingFlag(flag))
		r.eng = runtime.NewEngine(r.clk,
			runtime.WithRenderer(r.rec),
			runtime.WithProcessingFlag(flag),
			runtime.WithCallbacks(runtime.Callbacks{
				OnCommitRight: func() {
					r.rights++
					busyInCallback = flag.Busy()
				},
			}),
		)

		require.True(t, r.eng.Swipe(domain.Right))
		r.clk.Advance(time.Second)

		assert.Equal(t, 1, r.rights)
		assert.True(t, busyInCallback)
		assert.True(t, flag.Busy(), "the caller owns the release")
		assert.False(t, r.eng.Swipe(domain.Left))

		flag.Release()
		assert.True(t, r.eng.Swipe(domain.Left))
	})

	t.Run("Dispatch Skipped When Taken Mid Fling", func(t *testing.T) {
		flag := &domain.ProcessingFlag{}
		r := newRig(t, runtime.WithProcessingFlag(flag))

		require.True(t, r.eng.Swipe(domain.Right))
		r.clk.Advance(150 * time.Millisecond)
		require.True(t, flag.TryAcquire())
		r.clk.Advance(time.Second)

		assert.Zero(t, r.rights)
		require.Len(t, r.dispatch, 1)
		assert.True(t, r.dispatch[0].Skipped)
		assert.Equal(t, domain.PhaseIdle, r.eng.Phase())
	})

	t.Run("Private Flag Released After Callback", func(t *testing.T) {
		r := newRig(t)
		require.True(t, r.eng.Swipe(domain.Right))
		r.clk.Advance(time.Second)
		require.True(t, r.eng.Swipe(domain.Right))
		r.clk.Advance(time.Second)
		assert.Equal(t, 2, r.rights)
	})
}

func TestEngine_Teardown(t *testing.T) {
	t.Run("Close Cancels Snap Back", func(t *testing.T) {
		r := newRig(t)
		r.dragTo(40, 0, 2, 200*time.Millisecond)
		r.eng.PointerUp()
		require.Equal(t, domain.PhaseAborting, r.eng.Phase())
		require.Equal(t, 1, r.clk.Pending())

		r.eng.Close()
		assert.Zero(t, r.clk.Pending())
		assert.Equal(t, domain.PhaseIdle, r.eng.Phase())
		assert.False(t, r.eng.Mounted())

		frames := r.rec.Len()
		r.clk.Advance(time.Second)
		assert.Equal(t, frames, r.rec.Len())
		assert.Empty(t, r.settles)
	})

	t.Run("Fling Still Dispatches After Close", func(t *testing.T) {
		r := newRig(t)
		require.True(t, r.eng.Swipe(domain.Left))
		r.eng.Close()

		frames := r.rec.Len()
		r.clk.Advance(time.Second)
		assert.Equal(t, 1, r.lefts)
		assert.Equal(t, frames, r.rec.Len(), "nothing renders after close")
		assert.Equal(t, domain.PhaseIdle, r.eng.Phase())
	})

	t.Run("Closed Card Ignores Input", func(t *testing.T) {
		r := newRig(t)
		r.eng.Close()
		r.eng.Close()

		assert.False(t, r.down(0, 0))
		assert.False(t, r.eng.Swipe(domain.Right))
	})

	t.Run("Disable Mid Drag", func(t *testing.T) {
		r := newRig(t)
		r.dragTo(60, 0, 3, 0)

		r.eng.SetEnabled(false)
		assert.Equal(t, domain.PhaseIdle, r.eng.Phase())
		assert.Equal(t, domain.Rest, r.last(t).Transform)
		assert.Equal(t, domain.CursorGrab, r.last(t).Cursor)

		r.eng.PointerUp()
		assert.Empty(t, r.decisions)
		assert.False(t, r.down(0, 0))

		r.eng.SetEnabled(true)
		assert.True(t, r.eng.Enabled())
		assert.True(t, r.down(0, 0))
	})

	t.Run("Disable Mid Snap Back", func(t *testing.T) {
		r := newRig(t)
		r.dragTo(40, 0, 2, 200*time.Millisecond)
		r.eng.PointerUp()

		r.eng.SetEnabled(false)
		assert.Zero(t, r.clk.Pending())
		assert.Equal(t, domain.Rest, r.last(t).Transform)
	})

	t.Run("Disable Mid Fling", func(t *testing.T) {
		r := newRig(t)
		require.True(t, r.eng.Swipe(domain.Right))
		r.eng.SetEnabled(false)
		assert.Equal(t, domain.PhaseCommitting, r.eng.Phase())

		r.clk.Advance(time.Second)
		assert.Equal(t, 1, r.rights)
	})
}

func TestEngine_GestureStartHook(t *testing.T) {
	var started []*domain.GestureEvent
	r := newRig(t, runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnGestureStart: func(e *domain.GestureEvent) { started = append(started, e) },
	}))

	r.down(12, 34)
	require.Len(t, started, 1)
	assert.Equal(t, 12.0, started[0].Origin.X)
	assert.Equal(t, 34.0, started[0].Origin.Y)
	assert.Equal(t, epoch, started[0].Origin.T)
	assert.Equal(t, domain.EventGestureStart, started[0].Type)
}
