package domain

import "time"

// Source tells how a commit was triggered.
type Source string

const (
	SourceDrag   Source = "drag"
	SourceButton Source = "button"
)

// SwipeRecord is the persisted result of a committed swipe on a card.
type SwipeRecord struct {
	CardID     string    `json:"card_id"`
	Direction  Direction `json:"direction"`
	Action     string    `json:"action"`
	Source     Source    `json:"source"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NewSwipeRecord builds a record for a commit on cardID.
func NewSwipeRecord(cardID string, dir Direction, src Source, at time.Time) SwipeRecord {
	return SwipeRecord{
		CardID:     cardID,
		Direction:  dir,
		Action:     dir.Action(),
		Source:     src,
		RecordedAt: at,
	}
}
