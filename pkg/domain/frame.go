package domain

import "time"

// Cursor is the pointer affordance shown over the card.
type Cursor string

const (
	CursorGrab     Cursor = "grab"
	CursorGrabbing Cursor = "grabbing"
)

// Easing names a renderer-side timing function.
type Easing string

const (
	EaseOut Easing = "ease-out"
)

// Transition asks the renderer to interpolate from the previously shown
// transform to the frame's transform over Duration.
type Transition struct {
	Duration time.Duration `json:"duration"`
	Easing   Easing        `json:"easing"`
}

// Frame is everything a renderer needs to draw the card.
// A nil Transition means "apply immediately".
type Frame struct {
	Transform  Transform   `json:"transform"`
	Feedback   Feedback    `json:"feedback"`
	Cursor     Cursor      `json:"cursor"`
	Phase      Phase       `json:"phase"`
	Transition *Transition `json:"transition,omitempty"`
}

// CSS is a shorthand for f.Transform.CSS().
func (f Frame) CSS() string {
	return f.Transform.CSS()
}
