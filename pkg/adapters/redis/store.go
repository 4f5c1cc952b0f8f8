package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

var _ ports.SwipeStore = (*Store)(nil)

// DefaultPrefix namespaces every key the store writes.
const DefaultPrefix = "fling:swipe:"

// farFuture scores index entries that never expire (2100-01-01).
const farFuture = 4102444800

// Store implements ports.SwipeStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for recorded swipes.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(cardID string) string {
	return s.prefix + cardID
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Record writes the swipe with SETNX, so concurrent dispatches of the same
// card (across processes too) store exactly one record.
func (s *Store) Record(ctx context.Context, rec domain.SwipeRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal swipe: %w", err)
	}

	created, err := s.client.SetNX(ctx, s.key(rec.CardID), data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to record swipe in redis: %w", err)
	}
	if !created {
		return domain.ErrAlreadySwiped
	}

	// Score = Now + TTL, so List can prune entries whose key expired.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = farFuture
	}
	err = s.client.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: rec.CardID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to index swipe: %w", err)
	}
	return nil
}

// Load retrieves the swipe from Redis.
func (s *Store) Load(ctx context.Context, cardID string) (domain.SwipeRecord, error) {
	val, err := s.client.Get(ctx, s.key(cardID)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return domain.SwipeRecord{}, domain.ErrSwipeNotFound
		}
		return domain.SwipeRecord{}, fmt.Errorf("failed to get from redis: %w", err)
	}

	var rec domain.SwipeRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return domain.SwipeRecord{}, fmt.Errorf("failed to unmarshal swipe: %w", err)
	}
	return rec, nil
}

// Delete removes the swipe.
func (s *Store) Delete(ctx context.Context, cardID string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(cardID))
	pipe.ZRem(ctx, s.indexKey(), cardID)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns swiped cards from the index, lazily pruning expired entries.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired swipes: %w", err)
	}

	cards, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list swipes: %w", err)
	}
	return cards, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
