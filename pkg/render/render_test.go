package render_test

import (
	"testing"
	"time"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)

func TestRecorder(t *testing.T) {
	now := t0
	rec := render.NewRecorder(func() time.Time { return now })

	_, ok := rec.Last()
	assert.False(t, ok)

	rec.Render(domain.Frame{Phase: domain.PhaseDragging})
	now = now.Add(time.Second)
	rec.Render(domain.Frame{Phase: domain.PhaseIdle})

	frames := rec.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, t0, frames[0].At)
	assert.Equal(t, t0.Add(time.Second), frames[1].At)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, domain.PhaseIdle, last.Phase)

	rec.Reset()
	assert.Zero(t, rec.Len())
}

func TestTween(t *testing.T) {
	var tw render.Tween
	motion := &domain.Transition{Duration: 600 * time.Millisecond, Easing: domain.EaseOut}

	tw.Apply(domain.Frame{Transform: domain.Transform{X: 100, Rotation: 10}}, t0)
	assert.Equal(t, domain.Transform{X: 100, Rotation: 10}, tw.At(t0))
	assert.False(t, tw.Active(t0))

	tw.Apply(domain.Frame{Transform: domain.Transform{X: 1100, Rotation: 30}, Transition: motion}, t0)
	assert.True(t, tw.Active(t0.Add(300*time.Millisecond)))

	mid := tw.At(t0.Add(300 * time.Millisecond))
	// ease-out at half time covers 87.5% of the distance.
	assert.InDelta(t, 100+0.875*1000, mid.X, 1e-9)
	assert.InDelta(t, 10+0.875*20, mid.Rotation, 1e-9)

	// Re-applying the same target must not restart the transition.
	tw.Apply(domain.Frame{Transform: domain.Transform{X: 1100, Rotation: 30}, Transition: motion}, t0.Add(300*time.Millisecond))
	assert.Equal(t, mid, tw.At(t0.Add(300*time.Millisecond)))

	assert.Equal(t, domain.Transform{X: 1100, Rotation: 30}, tw.At(t0.Add(time.Second)))
	assert.False(t, tw.Active(t0.Add(time.Second)))
}

func TestTween_JumpInterruptsTransition(t *testing.T) {
	var tw render.Tween
	tw.Apply(domain.Frame{Transform: domain.Transform{X: 500}, Transition: &domain.Transition{Duration: time.Second}}, t0)
	tw.Apply(domain.Frame{Transform: domain.Rest}, t0.Add(100*time.Millisecond))

	assert.Equal(t, domain.Rest, tw.At(t0.Add(200*time.Millisecond)))
}

func TestPalette(t *testing.T) {
	p := render.DefaultPalette

	assert.Equal(t, p.Neutral.Hex(), p.Glow(domain.Neutral).Hex())
	assert.Equal(t, p.Right.Hex(), p.Glow(domain.Feedback{Right: 1, Glow: domain.GlowCommitRight}).Hex())
	assert.Equal(t, p.Left.Hex(), p.Glow(domain.Feedback{Left: 1, Glow: domain.GlowCommitLeft}).Hex())

	half := p.Glow(domain.Feedback{Right: 0.5, Glow: domain.GlowCommitRight})
	assert.NotEqual(t, p.Neutral.Hex(), half.Hex())
	assert.NotEqual(t, p.Right.Hex(), half.Hex())

	assert.Equal(t, p.Card.Hex(), p.Indicator(domain.Left, 0).Hex())
	assert.Equal(t, p.Left.Hex(), p.Indicator(domain.Left, 1).Hex())
}
