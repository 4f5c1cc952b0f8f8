package domain

import "math"

// Velocity is a pointer velocity in px/ms.
type Velocity struct {
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// Magnitude returns the Euclidean speed.
func (v Velocity) Magnitude() float64 {
	return math.Hypot(v.VX, v.VY)
}
