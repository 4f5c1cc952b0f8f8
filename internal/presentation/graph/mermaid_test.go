package graph_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/fling/internal/presentation/graph"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/simulate"
)

func TestGenerateMermaid(t *testing.T) {
	got := graph.GenerateMermaid(nil)

	for _, want := range []string{
		"graph TD\n",
		`idle(("idle"))`,
		`dragging[/"dragging"/]`,
		`committing[["committing"]]`,
		`aborting["aborting"]`,
		`dragging -- "release or cancel" --> aborting`,
		`aborting -- "button" --> committing`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
		}
	}
	if strings.Contains(got, "classDef") {
		t.Errorf("GenerateMermaid(nil) should not emit overlay styles")
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	tr := simulate.Trace{
		Name: "nudge",
		Steps: []simulate.Step{
			{Action: simulate.ActionDown},
			{Action: simulate.ActionMove, X: 40, After: 200 * time.Millisecond},
			{Action: simulate.ActionUp, After: 200 * time.Millisecond},
		},
	}
	rep, err := simulate.Run(context.Background(), tr, simulate.Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := graph.GenerateMermaid(graph.OverlayFromReport(rep))

	for _, want := range []string{
		"class dragging visited;",
		"class aborting visited;",
		"class idle current;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
		}
	}
	if strings.Contains(got, "class committing") {
		t.Errorf("a snap-back never reaches committing:\n%v", got)
	}
	if n := strings.Count(got, "class dragging visited;"); n != 1 {
		t.Errorf("visited phases should be deduplicated, got %d", n)
	}
}

func TestEdges_CoverEveryPhase(t *testing.T) {
	in := map[domain.Phase]bool{}
	out := map[domain.Phase]bool{}
	for _, e := range graph.Edges {
		out[e.From] = true
		in[e.To] = true
	}
	for _, p := range graph.Phases {
		if !in[p] || !out[p] {
			t.Errorf("phase %s must be reachable and leavable", p)
		}
	}
}
