package ports

import "time"

// Handle is a cancellation token for a scheduled callback.
// Cancel is idempotent and a no-op once the callback has run.
type Handle interface {
	Cancel()
}

// Scheduler is the cooperative time source the engine runs on.
// Every callback it invokes, and every Post, runs on the same goroutine,
// which is also where the engine's input methods must be called.
type Scheduler interface {
	// Now returns the scheduler clock.
	Now() time.Time

	// RequestFrame runs fn once on the next frame boundary.
	RequestFrame(fn func(now time.Time)) Handle

	// AfterFunc runs fn once after d has elapsed on the scheduler clock.
	AfterFunc(d time.Duration, fn func()) Handle

	// Post queues fn to run on the scheduler goroutine as soon as possible.
	// It is safe to call from any goroutine.
	Post(fn func())
}
