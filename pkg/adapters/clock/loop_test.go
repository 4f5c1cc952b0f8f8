package clock_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/fling/pkg/adapters/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_RunsCallbacksOnLoopGoroutine(t *testing.T) {
	l := clock.NewLoop(clock.WithLoopInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	var frames, timers, posts atomic.Int32
	l.Post(func() {
		posts.Add(1)
		l.RequestFrame(func(time.Time) { frames.Add(1) })
		l.AfterFunc(5*time.Millisecond, func() { timers.Add(1) })
	})

	require.Eventually(t, func() bool {
		return posts.Load() == 1 && frames.Load() == 1 && timers.Load() == 1
	}, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestLoop_CanceledTimerNeverFires(t *testing.T) {
	l := clock.NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	var fired atomic.Bool
	h := l.AfterFunc(10*time.Millisecond, func() { fired.Store(true) })
	h.Cancel()

	_ = l.Run(ctx)
	assert.False(t, fired.Load())
}
