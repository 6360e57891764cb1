package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockswap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in rockswap.yaml. Save it to
~/.rockswap/configs/rockswap.yaml or ./configs/rockswap.yaml and edit it
to change the board, rocks, scoring or cascade pacing.

Examples:
  rockswap config > ~/.rockswap/configs/rockswap.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fatalf("Error: %v", err)
		}
	},
}
