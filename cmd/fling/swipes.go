package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fling/internal/cli"
	"github.com/aretw0/fling/pkg/ports"
	"github.com/spf13/cobra"
)

var swipesCmd = &cobra.Command{
	Use:   "swipes",
	Short: "Manage the swipe journal",
	Long:  `List, inspect, and remove recorded swipes in the configured store.`,
}

var swipesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all recorded swipes",
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(store ports.SwipeStore) error {
			return cli.ListSwipes(cmd.Context(), store, os.Stdout)
		})
	},
}

var swipesInspectCmd = &cobra.Command{
	Use:   "inspect <card-id>",
	Short: "Show the recorded swipe of a card",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(store ports.SwipeStore) error {
			return cli.InspectSwipe(cmd.Context(), store, args[0], os.Stdout)
		})
	},
}

var swipesRmCmd = &cobra.Command{
	Use:   "rm <card-id>...",
	Short: "Remove one or more swipes",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(store ports.SwipeStore) error {
			return cli.RemoveSwipes(cmd.Context(), store, args, os.Stdout)
		})
	},
}

func init() {
	rootCmd.AddCommand(swipesCmd)
	swipesCmd.AddCommand(swipesLsCmd)
	swipesCmd.AddCommand(swipesInspectCmd)
	swipesCmd.AddCommand(swipesRmCmd)
}

func withStore(cmd *cobra.Command, fn func(ports.SwipeStore) error) {
	cfg := loadConfig(cmd)
	store, closeStore, err := cli.OpenStore(cfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := fn(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeStore()
		os.Exit(1)
	}
}
