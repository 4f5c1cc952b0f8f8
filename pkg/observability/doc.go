/*
Package observability turns card lifecycle events into structured logs and
Prometheus metrics.

Both are exposed as domain.LifecycleHooks, so they compose with each other and
with application hooks through LifecycleHooks.Merge.
*/
package observability
