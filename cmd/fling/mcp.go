package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/fling/internal/cli"
	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the gesture simulator as an MCP tool, so agents can check how a drag
would be classified before tuning a UI.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		withStore, _ := cmd.Flags().GetBool("swipes")

		// Logs go to Stderr so they never corrupt JSON-RPC on Stdout.
		logger := logging.New(slog.LevelDebug)
		log.SetOutput(os.Stderr)

		opts := []mcp.Option{mcp.WithLogger(logger)}
		if withStore {
			store, closeStore, err := cli.OpenStore(cfg.Store)
			if err != nil {
				log.Fatalf("Error opening store: %v", err)
			}
			defer closeStore()
			opts = append(opts, mcp.WithStore(store))
		}
		srv := mcp.NewServer(opts...)

		switch transport {
		case "stdio":
			logger.Info("Starting fling MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				logger.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			logger.Info("Starting fling MCP Server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil && err != http.ErrServerClosed {
				logger.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
			logger.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
	mcpCmd.Flags().Bool("swipes", false, "Expose the swipe journal tools (list_swipes, get_swipe)")
}
