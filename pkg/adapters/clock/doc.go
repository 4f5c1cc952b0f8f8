/*
Package clock provides ports.Scheduler implementations.

Loop runs frames, timers and posted work on a single goroutine against the
wall clock, the way a UI thread does. Manual runs the same contract on a
virtual clock that only moves when Advance is called, which makes animations
reproducible in tests and in trace simulation.
*/
package clock
