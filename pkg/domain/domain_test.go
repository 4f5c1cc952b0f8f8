package domain_test

import (
	"encoding/json"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_CSS(t *testing.T) {
	tests := []struct {
		in   domain.Transform
		want string
	}{
		{domain.Rest, "translate(0px,0px) rotate(0deg)"},
		{domain.Transform{X: 40, Y: 12.5, Rotation: 4}, "translate(40px,12.5px) rotate(4deg)"},
		{domain.Transform{X: -1224, Y: -3, Rotation: -30}, "translate(-1224px,-3px) rotate(-30deg)"},
		{domain.Transform{X: math.Copysign(0, -1)}, "translate(0px,0px) rotate(0deg)"},
		{domain.Transform{X: 0.1 + 0.2}, "translate(0.30000000000000004px,0px) rotate(0deg)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.CSS())
	}
}

func TestNormalize(t *testing.T) {
	at := time.Unix(10, 0)

	s, ok := domain.Normalize(domain.MouseEvent{ClientX: 3, ClientY: 4, Time: at})
	require.True(t, ok)
	assert.Equal(t, domain.Sample{X: 3, Y: 4, T: at}, s)

	s, ok = domain.Normalize(domain.TouchEvent{Touches: []domain.Point{{X: 1, Y: 2}, {X: 9, Y: 9}}})
	require.True(t, ok)
	assert.Equal(t, 1.0, s.X)
	assert.True(t, s.T.IsZero())

	_, ok = domain.Normalize(domain.TouchEvent{})
	assert.False(t, ok)
	_, ok = domain.Normalize(nil)
	assert.False(t, ok)
}

func TestParseDirection(t *testing.T) {
	for _, in := range []string{"left", "PASS", " l "} {
		d, err := domain.ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, domain.Left, d)
	}
	for _, in := range []string{"right", "like", "R"} {
		d, err := domain.ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, domain.Right, d)
	}
	_, err := domain.ParseDirection("up")
	assert.Error(t, err)
}

func TestDirection_JSON(t *testing.T) {
	rec := domain.NewSwipeRecord("c1", domain.Left, domain.SourceButton, time.Unix(0, 0).UTC())
	assert.Equal(t, "pass", rec.Action)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"direction":"left"`)

	var back domain.SwipeRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec, back)
}

func TestProcessingFlag(t *testing.T) {
	var f domain.ProcessingFlag
	assert.False(t, f.Busy())

	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.TryAcquire() {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won)
	assert.True(t, f.Busy())
	f.Release()
	assert.False(t, f.Busy())
}

func TestThresholds_Validate(t *testing.T) {
	require.NoError(t, domain.DefaultThresholds().Validate())

	th := domain.DefaultThresholds()
	th.DispatchDelay = th.FlingDuration
	assert.ErrorIs(t, th.Validate(), domain.ErrInvalidThresholds)

	th = domain.DefaultThresholds()
	th.VelocityThreshold = 0
	assert.ErrorIs(t, th.Validate(), domain.ErrInvalidThresholds)
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnDispatch: func(*domain.DispatchEvent) { calls = append(calls, "a") },
	}
	b := domain.LifecycleHooks{
		OnDispatch: func(*domain.DispatchEvent) { calls = append(calls, "b") },
		OnSettle:   func(*domain.SettleEvent) { calls = append(calls, "settle") },
	}

	m := a.Merge(b)
	m.OnDispatch(&domain.DispatchEvent{})
	m.OnSettle(&domain.SettleEvent{})

	assert.Equal(t, []string{"a", "b", "settle"}, calls)
	assert.Nil(t, m.OnDecision)
}

func TestPhase(t *testing.T) {
	assert.True(t, domain.PhaseCommitting.Animating())
	assert.True(t, domain.PhaseAborting.Animating())
	assert.False(t, domain.PhaseDragging.Animating())
	assert.Equal(t, "aborting", domain.PhaseAborting.String())
}
