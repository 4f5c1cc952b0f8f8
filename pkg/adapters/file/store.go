package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
)

var _ ports.SwipeStore = (*Store)(nil)

// Store implements ports.SwipeStore using the local filesystem.
// It stores one JSON file per swiped card in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".fling/swipes".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".fling", "swipes")
	}
	return &Store{BasePath: basePath}
}

// Record persists the swipe to a JSON file atomically.
// It writes to a temporary file first, syncs via fsync, and then hard-links
// it into place. The link fails when the record exists, which keeps writes
// exactly-once across processes sharing the directory.
func (s *Store) Record(ctx context.Context, rec domain.SwipeRecord) error {
	if err := validID(rec.CardID); err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure swipe directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal swipe: %w", err)
	}

	// Same directory so the link stays on one filesystem. Card IDs cannot
	// start with a dot, so temp files never collide with records.
	tmpFile, err := os.CreateTemp(s.BasePath, tmpPrefix+rec.CardID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Link(tmpPath, s.path(rec.CardID)); err != nil {
		if errors.Is(err, os.ErrExist) {
			return domain.ErrAlreadySwiped
		}
		return fmt.Errorf("failed to link swipe into place: %w", err)
	}
	return nil
}

// Load retrieves the swipe from its JSON file.
func (s *Store) Load(ctx context.Context, cardID string) (domain.SwipeRecord, error) {
	if err := validID(cardID); err != nil {
		return domain.SwipeRecord{}, err
	}

	data, err := os.ReadFile(s.path(cardID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.SwipeRecord{}, domain.ErrSwipeNotFound
		}
		return domain.SwipeRecord{}, fmt.Errorf("failed to read swipe file: %w", err)
	}

	var rec domain.SwipeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.SwipeRecord{}, fmt.Errorf("failed to unmarshal swipe: %w", err)
	}
	return rec, nil
}

// Delete removes the swipe file.
func (s *Store) Delete(ctx context.Context, cardID string) error {
	if err := validID(cardID); err != nil {
		return err
	}

	err := os.Remove(s.path(cardID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete swipe file: %w", err)
	}
	return nil
}

// List returns all swiped card IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list swipes: %w", err)
	}

	var cards []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, tmpPrefix) {
			continue
		}
		cards = append(cards, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(cards)
	return cards, nil
}

// tmpPrefix marks in-flight writes; validID rejects it as a card ID.
const tmpPrefix = ".tmp-"

func (s *Store) path(cardID string) string {
	return filepath.Join(s.BasePath, cardID+".json")
}

func validID(cardID string) error {
	if cardID == "" {
		return fmt.Errorf("cardID cannot be empty")
	}
	if strings.ContainsAny(cardID, `/\`) || strings.HasPrefix(cardID, ".") {
		return fmt.Errorf("cardID %q is not a valid file name", cardID)
	}
	return nil
}
