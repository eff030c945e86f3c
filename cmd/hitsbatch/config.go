package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zuperp/GoogleDataScraper/internal/config"
)

func newConfigCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change saved settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:                  %s\n", *configPath)
			fmt.Fprintf(out, "api_key:               %s\n", cfg.MaskedAPIKey())
			fmt.Fprintf(out, "domain:                %s\n", cfg.SerpAPI.Domain)
			fmt.Fprintf(out, "language:              %s\n", cfg.SerpAPI.Language)
			fmt.Fprintf(out, "country:               %s\n", cfg.SerpAPI.Country)
			fmt.Fprintf(out, "endpoint:              %s\n", cfg.SerpAPI.Endpoint)
			fmt.Fprintf(out, "timeout:               %s\n", cfg.SerpAPI.Timeout)
			fmt.Fprintf(out, "request_delay:         %s\n", cfg.SerpAPI.RequestDelay)
			fmt.Fprintf(out, "scan_rows:             %d\n", cfg.Batch.ScanRows)
			fmt.Fprintf(out, "max_consecutive_empty: %d\n", cfg.Batch.MaxConsecutiveEmpty)
			fmt.Fprintf(out, "default_output:        %s\n", cfg.Batch.DefaultOutput)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Save a setting",
		Long:  "Save a setting to the settings file. Keys: " + strings.Join(config.Keys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(*configPath)
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(*configPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s to %s\n", args[0], *configPath)
			return nil
		},
	})

	return cmd
}
