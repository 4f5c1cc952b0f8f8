package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fling/internal/presentation/graph"
	"github.com/aretw0/fling/pkg/simulate"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph [trace]",
	Short: "Export the card phase machine as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph TD) of the card phases. With a trace, the
phases the replayed gesture went through are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var overlay *graph.Overlay
		if len(args) == 1 {
			tr, err := simulate.Load(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading trace: %v\n", err)
				os.Exit(1)
			}
			rep, err := simulate.Run(cmd.Context(), tr, simulate.Options{})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error simulating trace: %v\n", err)
				os.Exit(1)
			}
			overlay = graph.OverlayFromReport(rep)
		}
		fmt.Print(graph.GenerateMermaid(overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
