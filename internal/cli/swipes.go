package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/aretw0/fling/pkg/ports"
)

// ListSwipes prints one line per recorded swipe.
func ListSwipes(ctx context.Context, store ports.SwipeStore, w io.Writer) error {
	ids, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list swipes: %w", err)
	}
	if len(ids) == 0 {
		fmt.Fprintln(w, "No swipes recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CARD\tACTION\tSOURCE\tRECORDED")
	for _, id := range ids {
		rec, err := store.Load(ctx, id)
		if err != nil {
			// Expired or removed between List and Load.
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rec.CardID, rec.Action, rec.Source, rec.RecordedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

// InspectSwipe prints the record of one card as JSON.
func InspectSwipe(ctx context.Context, store ports.SwipeStore, cardID string, w io.Writer) error {
	rec, err := store.Load(ctx, cardID)
	if err != nil {
		return fmt.Errorf("failed to load swipe '%s': %w", cardID, err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode swipe: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// RemoveSwipes deletes the records of the given cards. Every card is
// attempted; the failures are joined.
func RemoveSwipes(ctx context.Context, store ports.SwipeStore, cardIDs []string, w io.Writer) error {
	var errs []error
	for _, id := range cardIDs {
		if err := store.Delete(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove '%s': %w", id, err))
			continue
		}
		fmt.Fprintf(w, "Removed swipe '%s'\n", id)
	}
	return errors.Join(errs...)
}
