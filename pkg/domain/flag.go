package domain

import "sync/atomic"

// ProcessingFlag guards the commit action so only one gesture cycle is in
// flight. It is owned by the caller: the engine acquires it right before
// dispatching and the downstream effect releases it on success or failure.
// Release may happen on any goroutine.
type ProcessingFlag struct {
	busy atomic.Bool
}

// TryAcquire marks the flag busy. It returns false if it already was.
func (f *ProcessingFlag) TryAcquire() bool {
	return f.busy.CompareAndSwap(false, true)
}

// Release clears the flag.
func (f *ProcessingFlag) Release() {
	f.busy.Store(false)
}

// Busy reports whether a cycle is in flight.
func (f *ProcessingFlag) Busy() bool {
	return f.busy.Load()
}
