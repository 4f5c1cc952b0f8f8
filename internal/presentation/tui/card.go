package tui

import (
	"math"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/render"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// CardView draws a card on a terminal screen. Terminal cells are roughly
// twice as tall as they are wide, so one row spans 2*PxPerCell pixels.
type CardView struct {
	Palette   render.Palette
	PxPerCell float64
	Width     int
	Height    int
}

// NewCardView returns a view with the default palette and an 8px cell.
func NewCardView() CardView {
	return CardView{
		Palette:   render.DefaultPalette,
		PxPerCell: 8,
		Width:     30,
		Height:    12,
	}
}

// Viewport converts a screen width in cells into viewport pixels.
func (v CardView) Viewport(cols int) float64 {
	return float64(cols) * v.PxPerCell
}

// Pointer converts a cell position into viewport pixels.
func (v CardView) Pointer(col, row int) domain.Point {
	return domain.Point{
		X: float64(col) * v.PxPerCell,
		Y: float64(row) * 2 * v.PxPerCell,
	}
}

// Draw paints the card at t with fb's border glow and indicators.
// Rotation is approximated by shearing rows around the card center.
func (v CardView) Draw(s tcell.Screen, t domain.Transform, fb domain.Feedback, title string) {
	sw, sh := s.Size()
	cx := float64(sw)/2 + t.X/v.PxPerCell
	cy := float64(sh)/2 + t.Y/(2*v.PxPerCell)
	shear := math.Tan(t.Rotation*math.Pi/180) * 2

	bg := tcellColor(v.Palette.Card)
	fill := tcell.StyleDefault.Background(bg)
	border := fill.Foreground(tcellColor(v.Palette.Glow(fb)))
	if fb.Glow != domain.GlowNeutral {
		border = border.Bold(true)
	}

	top := int(math.Round(cy - float64(v.Height)/2))
	for r := 0; r < v.Height; r++ {
		row := top + r
		if row < 0 || row >= sh {
			continue
		}
		dy := float64(row) - cy
		left := int(math.Round(cx - float64(v.Width)/2 - dy*shear))

		for c := 0; c < v.Width; c++ {
			col := left + c
			if col < 0 || col >= sw {
				continue
			}
			ch, style := ' ', fill
			switch {
			case r == 0 && c == 0:
				ch, style = '╭', border
			case r == 0 && c == v.Width-1:
				ch, style = '╮', border
			case r == v.Height-1 && c == 0:
				ch, style = '╰', border
			case r == v.Height-1 && c == v.Width-1:
				ch, style = '╯', border
			case r == 0 || r == v.Height-1:
				ch, style = '─', border
			case c == 0 || c == v.Width-1:
				ch, style = '│', border
			}
			s.SetContent(col, row, ch, nil, style)
		}

		switch r {
		case 1:
			if fb.Left > 0 {
				v.label(s, left+2, row, "PASS", fill.Foreground(tcellColor(v.Palette.Indicator(domain.Left, fb.Left))).Bold(true))
			}
			if fb.Right > 0 {
				v.label(s, left+v.Width-6, row, "LIKE", fill.Foreground(tcellColor(v.Palette.Indicator(domain.Right, fb.Right))).Bold(true))
			}
		case v.Height / 2:
			runes := []rune(title)
			if len(runes) > v.Width-4 {
				runes = runes[:v.Width-4]
			}
			start := left + (v.Width-len(runes))/2
			v.label(s, start, row, string(runes), fill.Foreground(tcell.ColorWhite))
		}
	}
}

func (v CardView) label(s tcell.Screen, col, row int, text string, style tcell.Style) {
	sw, _ := s.Size()
	for i, ch := range []rune(text) {
		if x := col + i; x >= 0 && x < sw {
			s.SetContent(x, row, ch, nil, style)
		}
	}
}

// DrawStatus writes a line of text on the last screen row.
func DrawStatus(s tcell.Screen, text string) {
	sw, sh := s.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	runes := []rune(text)
	for x := 0; x < sw; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		s.SetContent(x, sh-1, ch, nil, style)
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
