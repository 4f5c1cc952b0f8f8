package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/fling"
	"github.com/aretw0/fling/internal/cli"
	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Swipe through a deck in the terminal",
	Long: `Opens the configured deck full screen. Drag a card with the mouse or use the
arrow keys (h/l) to pass or like it. Every swipe is recorded in the configured store.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		if !cli.IsTerminal(os.Stdout) {
			fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
			os.Exit(1)
		}

		// The screen owns stdout and stderr, so debug logs go to a file.
		logger := logging.NewNop()
		if debugFlag(cmd) {
			f, err := os.OpenFile("fling-play.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			logger = logging.NewWriter(f, slog.LevelDebug)
		}

		store, closeStore, err := cli.OpenStore(cfg.Store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
			os.Exit(1)
		}
		defer closeStore()

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		err = cli.RunPlay(sigCtx, cli.PlayOptions{
			Cards:  cfg.DeckCards(),
			Store:  store,
			Logger: logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		tui.PrintBanner(os.Stdout, fling.Version)
		fmt.Println("Swipes saved. Run 'fling swipes ls' to review them.")
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
