package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fling/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fling",
	Short: "fling is a card swipe gesture and physics engine",
	Long: `fling turns pointer drags into swipe decisions, animates the card off screen
or back to rest, and fires the like/pass action exactly once per commit.

The CLI replays gesture traces, plays a deck in the terminal and serves the
simulator over HTTP and MCP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", cli.DefaultConfigPath, "Config file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// loadConfig reads the --config file, exiting on a malformed one.
func loadConfig(cmd *cobra.Command) cli.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := cli.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func debugFlag(cmd *cobra.Command) bool {
	debug, _ := cmd.Flags().GetBool("debug")
	return debug
}
