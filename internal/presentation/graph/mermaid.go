package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/simulate"
)

// Edge is one transition of the card phase machine.
type Edge struct {
	From  domain.Phase
	To    domain.Phase
	Label string
}

// Phases lists the card phases in diagram order.
var Phases = []domain.Phase{
	domain.PhaseIdle,
	domain.PhaseDragging,
	domain.PhaseCommitting,
	domain.PhaseAborting,
}

// Edges are the transitions the engine performs.
var Edges = []Edge{
	{domain.PhaseIdle, domain.PhaseDragging, "pointer down"},
	{domain.PhaseDragging, domain.PhaseCommitting, "release past distance or velocity"},
	{domain.PhaseDragging, domain.PhaseAborting, "release or cancel"},
	{domain.PhaseDragging, domain.PhaseIdle, "disabled"},
	{domain.PhaseIdle, domain.PhaseCommitting, "button"},
	{domain.PhaseDragging, domain.PhaseCommitting, "button"},
	{domain.PhaseAborting, domain.PhaseCommitting, "button"},
	{domain.PhaseAborting, domain.PhaseIdle, "eased to rest"},
	{domain.PhaseCommitting, domain.PhaseIdle, "fling done"},
}

// Overlay contains phases to highlight on the graph.
type Overlay struct {
	Visited []domain.Phase
	Current *domain.Phase
}

// OverlayFromReport marks the phases a simulated gesture went through.
func OverlayFromReport(rep *simulate.Report) *Overlay {
	o := &Overlay{}
	for _, e := range rep.Timeline {
		o.Visited = append(o.Visited, e.Frame.Phase)
	}
	final := rep.Final.Phase
	o.Current = &final
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the card phases.
// It applies semantic styling:
// - Idle: ((Circle))
// - Dragging: [/Parallelogram/], it follows input
// - Committing: [[Subroutine]], it dispatches the action
// - Aborting: [Rectangle]
func GenerateMermaid(overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, p := range Phases {
		opener, closer := "[", "]"
		switch p {
		case domain.PhaseIdle:
			opener, closer = "((", "))"
		case domain.PhaseDragging:
			opener, closer = "[/", "/]"
		case domain.PhaseCommitting:
			opener, closer = "[[", "]]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", p, opener, p, closer)
	}

	for _, e := range Edges {
		label := strings.ReplaceAll(e.Label, "\"", "'")
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", e.From, label, e.To)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.Phase]bool)
		for _, p := range overlay.Visited {
			if !seen[p] {
				seen[p] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", p)
			}
		}
		if overlay.Current != nil {
			fmt.Fprintf(&sb, "    class %s current;\n", *overlay.Current)
		}
	}

	return sb.String()
}
