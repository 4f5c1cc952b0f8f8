package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aretw0/fling/internal/cli"
	"github.com/aretw0/fling/pkg/adapters/memory"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(context.Background(), domain.NewSwipeRecord("ada", domain.Right, domain.SourceDrag, at)))
	require.NoError(t, store.Record(context.Background(), domain.NewSwipeRecord("ken", domain.Left, domain.SourceButton, at)))
	return store
}

func TestListSwipes(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, cli.ListSwipes(ctx, memory.NewStore(), &out))
		assert.Equal(t, "No swipes recorded.\n", out.String())
	})

	t.Run("Table", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, cli.ListSwipes(ctx, seededStore(t), &out))

		text := out.String()
		assert.Contains(t, text, "CARD")
		assert.Regexp(t, `ada\s+like\s+drag\s+2026-03-01T12:00:00Z`, text)
		assert.Regexp(t, `ken\s+pass\s+button`, text)
	})
}

func TestInspectSwipe(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	var out bytes.Buffer
	require.NoError(t, cli.InspectSwipe(ctx, store, "ada", &out))

	var rec domain.SwipeRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, domain.Right, rec.Direction)

	err := cli.InspectSwipe(ctx, store, "nobody", &out)
	assert.ErrorIs(t, err, domain.ErrSwipeNotFound)
}

func TestRemoveSwipes(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	var out bytes.Buffer
	require.NoError(t, cli.RemoveSwipes(ctx, store, []string{"ada", "ken"}, &out))
	assert.Contains(t, out.String(), "Removed swipe 'ada'")

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
