// Package main provides the CLI entry point for hitsbatch.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Zuperp/GoogleDataScraper/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "hitsbatch",
		Short: "Fill a keyword spreadsheet with Google hit counts",
		Long: `hitsbatch reads the "Keyword" column of an Excel file, looks up the
number of Google results for each keyword and writes the counts into the
"HITS" column, leaving every other cell as it was.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Settings file")

	rootCmd.AddCommand(newRunCmd(&configPath))
	rootCmd.AddCommand(newConfigCmd(&configPath))

	return rootCmd
}
