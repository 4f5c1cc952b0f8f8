package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fling/internal/cli"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <trace>...",
	Short: "Replay gesture traces on a virtual clock",
	Long: `Replays one or more gesture traces (YAML or JSON) deterministically and reports
whether each card commits or snaps back, with the frame timeline on request.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		jsonMode, _ := cmd.Flags().GetBool("json")
		timeline, _ := cmd.Flags().GetBool("timeline")

		logger, err := cli.NewLogger(cfg.LogLevel, debugFlag(cmd), true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		err = cli.RunSimulate(cmd.Context(), cli.SimulateOptions{
			Traces:   args,
			JSON:     jsonMode,
			Timeline: timeline,
			Rich:     !jsonMode && cli.IsTerminal(os.Stdout),
			Config:   cfg,
			Logger:   logger,
		}, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().Bool("json", false, "Print the full reports as JSON")
	simulateCmd.Flags().BoolP("timeline", "t", false, "Render the frame timeline")
}
