package domain

import "errors"

// ErrInvalidThresholds is returned when a Thresholds value is inconsistent.
var ErrInvalidThresholds = errors.New("invalid thresholds")

// ErrSwipeNotFound is returned when no swipe is recorded for a card.
var ErrSwipeNotFound = errors.New("swipe not found")

// ErrAlreadySwiped is returned when a card already has a recorded swipe.
var ErrAlreadySwiped = errors.New("card already swiped")

// ErrInvalidTrace is returned when a gesture trace cannot be replayed.
var ErrInvalidTrace = errors.New("invalid gesture trace")
