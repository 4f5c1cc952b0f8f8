package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fling/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP simulation server",
	Long: `Exposes the gesture simulator, the swipe journal and Prometheus metrics over HTTP.
Frame diffs of simulated traces are streamed to /events subscribers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		if cmd.Flags().Changed("port") {
			cfg.HTTP.Port, _ = cmd.Flags().GetInt("port")
		}

		logger, err := cli.NewLogger(cfg.LogLevel, debugFlag(cmd), false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		store, closeStore, err := cli.OpenStore(cfg.Store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
			os.Exit(1)
		}
		defer closeStore()

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		if err := cli.RunServe(sigCtx, cfg, store, cfg.HTTP.Port, logger); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
		logger.Info("fling server stopped gracefully", "signal", sigCtx.Signal())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (overrides http.port)")
}
