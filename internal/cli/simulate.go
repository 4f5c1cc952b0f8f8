package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/internal/presentation/tui"
	"github.com/aretw0/fling/pkg/observability"
	"github.com/aretw0/fling/pkg/render"
	"github.com/aretw0/fling/pkg/simulate"
	"github.com/muesli/termenv"
)

// SimulateOptions configures `fling simulate`.
type SimulateOptions struct {
	Traces   []string
	JSON     bool
	Timeline bool
	Rich     bool
	Config   Config
	Logger   *slog.Logger
}

// RunSimulate replays every trace file and writes one report per trace.
func RunSimulate(ctx context.Context, opts SimulateOptions, w io.Writer) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	reports := make([]*simulate.Report, 0, len(opts.Traces))
	for _, path := range opts.Traces {
		tr, err := simulate.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		if tr.Viewport == 0 && opts.Config.ViewportWidth > 0 {
			tr.Viewport = opts.Config.ViewportWidth
		}

		rep, err := simulate.Run(ctx, tr, simulate.Options{
			Logger: logger,
			Hooks:  observability.LogHooks(logger),
		})
		if err != nil {
			return fmt.Errorf("failed to simulate %s: %w", path, err)
		}
		reports = append(reports, rep)
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	profile := termenv.Ascii
	if opts.Rich {
		profile = termenv.ColorProfile()
	}
	md := tui.NewRenderer(opts.Rich)
	for _, rep := range reports {
		printSystemMessage(w, "Trace '%s'", rep.Name)
		fmt.Fprint(w, tui.Summary(profile, rep, render.DefaultPalette))
		if opts.Timeline {
			out, err := md(rep.Markdown())
			if err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}
			fmt.Fprint(w, out)
		}
	}
	return nil
}
