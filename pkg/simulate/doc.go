/*
Package simulate replays scripted gestures against a card on a virtual clock
and reports what happened: the decision, the dispatches and the frame
timeline.

A trace is a list of steps, typically written in YAML:

	name: slow-drag
	viewport: 1024
	steps:
	  - {action: down, x: 0, y: 0}
	  - {action: move, x: 20, after: 200}
	  - {action: move, x: 40, after: 200ms}
	  - {action: up}

Step delays ("after", and "for" on wait steps) accept duration strings or
plain numbers of milliseconds. Runs are deterministic: the same trace always
produces the same report.
*/
package simulate
