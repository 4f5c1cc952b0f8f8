package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/fling"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fling",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fling version %s\n", strings.TrimSpace(fling.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
