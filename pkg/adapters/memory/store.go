package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
)

var _ ports.SwipeStore = (*Store)(nil)

// Store implements ports.SwipeStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.SwipeRecord
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.SwipeRecord),
	}
}

// Record stores the swipe unless the card already has one.
func (s *Store) Record(ctx context.Context, rec domain.SwipeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[rec.CardID]; exists {
		return domain.ErrAlreadySwiped
	}
	s.data[rec.CardID] = rec
	return nil
}

// Load retrieves the swipe for a card.
func (s *Store) Load(ctx context.Context, cardID string) (domain.SwipeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[cardID]
	if !ok {
		return domain.SwipeRecord{}, domain.ErrSwipeNotFound
	}
	return rec, nil
}

// Delete removes the swipe.
func (s *Store) Delete(ctx context.Context, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, cardID)
	return nil
}

// List returns swiped card IDs in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]string, 0, len(s.data))
	for id := range s.data {
		cards = append(cards, id)
	}
	sort.Strings(cards)
	return cards, nil
}
