package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nextus/censusgen/internal/config"
	"github.com/nextus/censusgen/internal/exitcode"
)

var cfg config.Config

var configFile string

var rootCmd = &cobra.Command{
	Use:   "censusgen",
	Short: "Daily attendance CSVs → monthly census workbook",
	Long:  "Reads a month of daily attendance CSV extracts and synthesizes the formatted census spreadsheet used for billing and utilization review.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.InputDir, "input", "", "Directory holding the daily attendance CSV files (required)")
	pf.IntVar(&cfg.Month, "month", 0, "Target month 1-12 (default: derived from the first input file name)")
	pf.IntVar(&cfg.Year, "year", 0, "Target 4-digit year (default: derived from the first input file name)")
	pf.StringVar(&configFile, "config", "", "Optional YAML file overriding the program-code table and letterhead")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

// loadConfig merges the optional YAML file and fills defaults. Called by
// every subcommand after flag parsing.
func loadConfig() error {
	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			return err
		}
	}
	cfg.ApplyDefaults()
	return cfg.Validate()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
