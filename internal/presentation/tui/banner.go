package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the fling logo, fading from the "pass" red to the
// "like" green.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text string
		hex  string
	}{
		{`   __ _ _`, "#ef4444"},
		{`  / _| (_)_ __   __ _`, "#f97316"},
		{` | |_| | | '_ \ / _' |`, "#eab308"},
		{` |  _| | | | | | (_| |`, "#84cc16"},
		{` |_| |_|_|_| |_|\__, |`, "#22c55e"},
		{`                |___/ `, "#10b981"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.hex)))
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}
