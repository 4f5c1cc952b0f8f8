package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/fling/pkg/adapters/redis"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newStore(t)
	ports.RunSwipeStoreContract(t, store)
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newStore(t, redis.WithTTL(time.Minute), redis.WithPrefix("test:"))
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, domain.NewSwipeRecord("c1", domain.Left, domain.SourceDrag, time.Now())))
	assert.True(t, mr.Exists("test:c1"))
	assert.Equal(t, time.Minute, mr.TTL("test:c1"))

	mr.FastForward(2 * time.Minute)
	_, err := store.Load(ctx, "c1")
	assert.ErrorIs(t, err, domain.ErrSwipeNotFound)

	// The expired card can be swiped again.
	assert.NoError(t, store.Record(ctx, domain.NewSwipeRecord("c1", domain.Right, domain.SourceDrag, time.Now())))
}
