package domain

import "time"

// Point is a position in client (viewport) pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sample is a normalized pointer reading.
type Sample struct {
	X float64   `json:"x"`
	Y float64   `json:"y"`
	T time.Time `json:"t"`
}

// PointerEvent is the closed set of input shapes the engine accepts.
// Use MouseEvent or TouchEvent; Normalize turns either into a Sample.
type PointerEvent interface {
	contact() (Point, bool)
	when() time.Time
}

// MouseEvent carries a single cursor position.
type MouseEvent struct {
	ClientX float64
	ClientY float64
	Time    time.Time
}

func (e MouseEvent) contact() (Point, bool) { return Point{X: e.ClientX, Y: e.ClientY}, true }
func (e MouseEvent) when() time.Time         { return e.Time }

// TouchEvent carries the active touch list. Only the first contact is used.
type TouchEvent struct {
	Touches []Point
	Time    time.Time
}

func (e TouchEvent) contact() (Point, bool) {
	if len(e.Touches) == 0 {
		return Point{}, false
	}
	return e.Touches[0], true
}

func (e TouchEvent) when() time.Time { return e.Time }

// Normalize extracts the first contact point of ev.
// It reports false for a nil event or a touch event without contacts.
// A zero event time is left zero; callers stamp it with their clock.
func Normalize(ev PointerEvent) (Sample, bool) {
	if ev == nil {
		return Sample{}, false
	}
	p, ok := ev.contact()
	if !ok {
		return Sample{}, false
	}
	return Sample{X: p.X, Y: p.Y, T: ev.when()}, true
}
