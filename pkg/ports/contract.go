package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSwipeStoreContract runs a suite of tests to verify that a SwipeStore implementation
// adheres to the defined interface contract.
func RunSwipeStoreContract(t *testing.T, store SwipeStore) {
	ctx := context.Background()
	cardID := "contract-card-" + time.Now().Format("20060102150405")
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Record and Load", func(t *testing.T) {
		rec := domain.NewSwipeRecord(cardID, domain.Right, domain.SourceDrag, at)

		err := store.Record(ctx, rec)
		require.NoError(t, err, "Record should not return error")

		loaded, err := store.Load(ctx, cardID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.Right, loaded.Direction)
		assert.Equal(t, "like", loaded.Action)
		assert.Equal(t, domain.SourceDrag, loaded.Source)
		assert.True(t, at.Equal(loaded.RecordedAt), "timestamp must survive persistence")
	})

	t.Run("Record Twice", func(t *testing.T) {
		again := domain.NewSwipeRecord(cardID, domain.Left, domain.SourceButton, at)
		err := store.Record(ctx, again)
		assert.ErrorIs(t, err, domain.ErrAlreadySwiped)

		// The first write wins.
		loaded, err := store.Load(ctx, cardID)
		require.NoError(t, err)
		assert.Equal(t, domain.Right, loaded.Direction)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+cardID)
		assert.ErrorIs(t, err, domain.ErrSwipeNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(ctx, cardID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, cardID)
		assert.ErrorIs(t, err, domain.ErrSwipeNotFound, "Load after Delete should return ErrSwipeNotFound")

		// A deleted card can be swiped again.
		require.NoError(t, store.Record(ctx, domain.NewSwipeRecord(cardID, domain.Left, domain.SourceButton, at)))
		require.NoError(t, store.Delete(ctx, cardID))
	})

	t.Run("List", func(t *testing.T) {
		id1 := cardID + "-1"
		id2 := cardID + "-2"
		_ = store.Record(ctx, domain.NewSwipeRecord(id1, domain.Left, domain.SourceDrag, at))
		_ = store.Record(ctx, domain.NewSwipeRecord(id2, domain.Right, domain.SourceDrag, at))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		cards, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, cards, id1)
		assert.Contains(t, cards, id2)
	})
}
