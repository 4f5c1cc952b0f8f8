package ports

import "github.com/aretw0/fling/pkg/domain"

// Renderer applies frames produced by the engine.
// The engine never touches drawing primitives; it only hands out values.
type Renderer interface {
	Render(frame domain.Frame)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(domain.Frame)

// Render calls f(frame).
func (f RenderFunc) Render(frame domain.Frame) {
	f(frame)
}
