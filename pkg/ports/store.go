package ports

import (
	"context"

	"github.com/aretw0/fling/pkg/domain"
)

// SwipeStore persists committed swipes, one per card.
// This is the downstream effect of the commit action.
type SwipeStore interface {
	// Record stores the swipe. It returns domain.ErrAlreadySwiped if the card
	// already has one, so a replayed dispatch never writes twice.
	Record(ctx context.Context, rec domain.SwipeRecord) error

	// Load retrieves the swipe for a card.
	// Returns domain.ErrSwipeNotFound if the card has none.
	Load(ctx context.Context, cardID string) (domain.SwipeRecord, error)

	// Delete removes the swipe for a card (an "undo").
	Delete(ctx context.Context, cardID string) error

	// List returns the IDs of all swiped cards.
	List(ctx context.Context) ([]string, error)
}
