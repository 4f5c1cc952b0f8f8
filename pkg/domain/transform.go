package domain

import (
	"math"
	"strconv"
	"strings"
)

// Transform is the card's visual displacement.
type Transform struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"` // degrees
}

// Rest is the transform of a card lying in place.
var Rest = Transform{}

// Scale multiplies every component by k.
func (t Transform) Scale(k float64) Transform {
	return Transform{X: t.X * k, Y: t.Y * k, Rotation: t.Rotation * k}
}

// IsRest reports whether t is exactly the rest transform.
func (t Transform) IsRest() bool {
	return t == Rest
}

// CSS renders t as "translate(Xpx,Ypx) rotate(Rdeg)".
// Numbers use the shortest representation that round-trips, so identical
// transforms always produce identical strings.
func (t Transform) CSS() string {
	var b strings.Builder
	b.WriteString("translate(")
	b.WriteString(formatNumber(t.X))
	b.WriteString("px,")
	b.WriteString(formatNumber(t.Y))
	b.WriteString("px) rotate(")
	b.WriteString(formatNumber(t.Rotation))
	b.WriteString("deg)")
	return b.String()
}

func formatNumber(v float64) string {
	// Avoid "-0" leaking into the wire format.
	if v == 0 || math.IsNaN(v) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
