/*
Package domain contains the core value types of the fling swipe engine.

It defines pointer input, card transforms, indicator feedback, the interaction
phases and the policy verdict. This package is kept pure and free of external
dependencies like I/O, timers or rendering, following Hexagonal Architecture
principles.

# Key Entities

  - PointerEvent: A closed union of MouseEvent and TouchEvent, normalized into a Sample.
  - Transform: The card displacement, rendered as a CSS transform string.
  - Feedback: Left/right indicator opacities and the glow selector.
  - Frame: A complete render instruction, optionally with a renderer-side Transition.
  - Phase: Idle, Dragging, Committing or Aborting.
  - ProcessingFlag: The caller-owned guard that makes the commit action fire once.
*/
package domain
