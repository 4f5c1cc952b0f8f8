package simulate

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/render"
)

// Entry is one visible change of the card.
type Entry struct {
	Offset time.Duration     `json:"offset"`
	CSS    string            `json:"css"`
	Frame  domain.Frame      `json:"frame"`
	Diff   *domain.FrameDiff `json:"diff"`
}

// Report summarizes a run.
type Report struct {
	Name       string                 `json:"name"`
	Outcome    string                 `json:"outcome"` // "commit", "abort" or "none"
	Direction  *domain.Direction      `json:"direction,omitempty"`
	Decision   *domain.Decision       `json:"decision,omitempty"`
	Decisions  []domain.DecisionEvent `json:"decisions"`
	Dispatches []domain.DispatchEvent `json:"dispatches"`
	Settles    []domain.SettleEvent   `json:"settles"`
	Timeline   []Entry                `json:"timeline"`
	Final      domain.Frame           `json:"final"`
	Elapsed    time.Duration          `json:"elapsed"`
}

// Dispatched returns the number of commit actions that actually fired.
func (r *Report) Dispatched() int {
	n := 0
	for _, d := range r.Dispatches {
		if !d.Skipped {
			n++
		}
	}
	return n
}

func (r *Report) finish(frames []render.Stamped, final domain.Frame, elapsed time.Duration) {
	r.Final = final
	r.Elapsed = elapsed
	r.Outcome = "none"
	if n := len(r.Decisions); n > 0 {
		dec := r.Decisions[n-1].Decision
		r.Decision = &dec
		r.Outcome = dec.Outcome.String()
		if dec.Commit() {
			dir := dec.Direction
			r.Direction = &dir
		}
	}

	var prev *domain.Frame
	for _, f := range frames {
		d := domain.Diff(prev, f.Frame)
		frame := f.Frame
		prev = &frame
		if d == nil {
			continue
		}
		r.Timeline = append(r.Timeline, Entry{
			Offset: f.At.Sub(Epoch),
			CSS:    f.Frame.CSS(),
			Frame:  f.Frame,
			Diff:   d,
		})
	}
}

// Markdown renders the report as a markdown document.
func (r *Report) Markdown() string {
	var b strings.Builder

	title := r.Name
	if title == "" {
		title = "gesture"
	}
	fmt.Fprintf(&b, "# Simulation: %s\n\n", title)
	fmt.Fprintf(&b, "- **Outcome:** %s\n", r.Outcome)
	if r.Direction != nil {
		fmt.Fprintf(&b, "- **Direction:** %s (%s)\n", r.Direction, r.Direction.Action())
	}
	if r.Decision != nil {
		fmt.Fprintf(&b, "- **Release:** x=%.1f px, speed=%.3f px/ms\n", r.Decision.X, r.Decision.Velocity.Magnitude())
	}
	fmt.Fprintf(&b, "- **Dispatches:** %d\n", r.Dispatched())
	fmt.Fprintf(&b, "- **Elapsed:** %s\n\n", r.Elapsed)

	b.WriteString("## Timeline\n\n")
	b.WriteString("| t | phase | transform | left | right |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, e := range r.Timeline {
		fmt.Fprintf(&b, "| %s | %s | `%s` | %.2f | %.2f |\n",
			e.Offset, e.Frame.Phase, e.CSS, e.Frame.Feedback.Left, e.Frame.Feedback.Right)
	}
	return b.String()
}
