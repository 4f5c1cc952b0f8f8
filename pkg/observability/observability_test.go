package observability_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/internal/runtime"
	"github.com/aretw0/fling/pkg/adapters/clock"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	clk := clock.NewManual(time.Now())
	eng := runtime.NewEngine(clk, runtime.WithLifecycleHooks(m.Hooks()))

	// A slow drag that snaps back.
	require.True(t, eng.PointerDown(domain.MouseEvent{}))
	clk.Advance(100 * time.Millisecond)
	eng.PointerMove(domain.MouseEvent{ClientX: 20})
	eng.PointerUp()
	clk.Advance(time.Second)

	// A button commit.
	require.True(t, eng.Swipe(domain.Left))
	clk.Advance(time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Gestures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decisions.WithLabelValues("abort", "none", "drag")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decisions.WithLabelValues("commit", "left", "button")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatches.WithLabelValues("left", "false")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.SettleDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ReleaseSpeed))

	expected := `
# HELP fling_dispatches_total Total number of commit actions, including skipped ones
# TYPE fling_dispatches_total counter
fling_dispatches_total{direction="left",skipped="false"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "fling_dispatches_total"))
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, slog.LevelInfo)

	clk := clock.NewManual(time.Now())
	eng := runtime.NewEngine(clk,
		runtime.WithID("card-9"),
		runtime.WithLifecycleHooks(observability.LogHooks(logger)),
	)
	require.True(t, eng.Swipe(domain.Right))
	clk.Advance(time.Second)

	out := buf.String()
	assert.Contains(t, out, "msg=decision")
	assert.Contains(t, out, "card=card-9")
	assert.Contains(t, out, "msg=dispatch")
	assert.Contains(t, out, "action=like")
	assert.Contains(t, out, "msg=settle")
}

func TestHooks_Compose(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	var buf bytes.Buffer

	hooks := m.Hooks().Merge(observability.LogHooks(logging.NewWriter(&buf, slog.LevelInfo)))
	clk := clock.NewManual(time.Now())
	eng := runtime.NewEngine(clk, runtime.WithLifecycleHooks(hooks))
	eng.Swipe(domain.Right)
	clk.Advance(time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatches.WithLabelValues("right", "false")))
	assert.Contains(t, buf.String(), "msg=dispatch")
}
