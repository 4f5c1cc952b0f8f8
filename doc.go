/*
Package fling is a gesture and physics engine for swipeable cards: drag a card
left or right, let go, and it either flies off screen and fires the matching
action, or springs back to where it started.

It separates input (pointer samples), decision (a pure commit/abort policy)
and output (render frames handed to an injected Renderer). The engine never
touches a display, so the same card runs in a browser bridge, a terminal or a
test with a virtual clock.

# Concept

Every card moves through four phases: Idle, Dragging, Committing and
Aborting. While dragging, the card follows the pointer with a bounded tilt
and left/right indicators that fade in with the offset. On release it commits
when it was dragged past 100 px or thrown faster than 0.8 px/ms; the action
fires 300 ms into the 600 ms fling. Otherwise it eases back to rest in 400 ms.

# Key Features

  - Deterministic Timing: All frames and timers go through a Scheduler; clock.Manual replays gestures exactly.
  - Exactly-Once Commit: A ProcessingFlag, optionally shared across cards, guards the commit action.
  - Button Override: Swipe commits from code regardless of any drag in progress.
  - Observability: LifecycleHooks plus ready-made slog and Prometheus hooks in pkg/observability.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/fling"
		"github.com/aretw0/fling/pkg/domain"
		"github.com/aretw0/fling/pkg/ports"
	)

	func main() {
		card, err := fling.New(
			fling.WithID("profile-42"),
			fling.WithRenderer(ports.RenderFunc(func(f domain.Frame) {
				fmt.Println(f.CSS(), f.Feedback.Left, f.Feedback.Right)
			})),
			fling.WithCallbacks(
				func() { fmt.Println("pass") },
				func() { fmt.Println("like") },
			),
		)
		if err != nil {
			panic(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go card.Run(ctx)

		card.Post(func() { card.SwipeRight() })
		// ...
	}
*/
package fling
