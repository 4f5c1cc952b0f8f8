package file_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/fling/pkg/adapters/file"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunSwipeStoreContract(t, store)
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "missing"))
	cards, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestFileStore_RejectsUnsafeIDs(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"", "..", ".hidden", ".tmp-c1", "a/b", `a\b`} {
		err := store.Record(ctx, domain.NewSwipeRecord(id, domain.Left, domain.SourceDrag, time.Now()))
		assert.Error(t, err, "id %q", id)
	}
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	rec := domain.NewSwipeRecord("c1", domain.Right, domain.SourceDrag, time.Now())
	require.NoError(t, store.Record(ctx, rec))
	assert.ErrorIs(t, store.Record(ctx, rec), domain.ErrAlreadySwiped)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "c1.json", entries[0].Name())
}

func TestFileStore_ListsTmpLookingIDs(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, domain.NewSwipeRecord("tmp-card", domain.Left, domain.SourceButton, time.Now())))
	// An interrupted write leaves a temp file behind.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tmp-c9-123.json"), []byte("{}"), 0644))

	cards, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tmp-card"}, cards)
}

func TestFileStore_ExactlyOnceAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	const writers = 8
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Separate stores share nothing but the directory.
			rec := domain.NewSwipeRecord("c1", domain.Right, domain.SourceDrag, time.Now())
			errs[i] = file.New(dir).Record(ctx, rec)
		}()
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadySwiped)
	}
	assert.Equal(t, 1, ok)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0644))

	_, err := file.New(dir).Load(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSwipeNotFound)
}
