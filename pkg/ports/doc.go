/*
Package ports defines the driven ports (interfaces) of the fling engine.

These interfaces decouple the gesture core from the runtime it is embedded in:
the frame/timer source, the drawing surface and the persistence of committed
swipes.

# Key Interfaces

  - Scheduler: Frame callbacks, fixed-delay timers and a post queue on one goroutine.
  - Renderer: Receives domain.Frame values; the only way the engine "draws".
  - SwipeStore: Persists the action fired by a committed swipe (memory, file, Redis).
*/
package ports
