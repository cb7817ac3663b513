package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nextus/censusgen/internal/aggregate"
	"github.com/nextus/censusgen/internal/census"
	"github.com/nextus/censusgen/internal/exitcode"
	"github.com/nextus/censusgen/internal/logging"
	"github.com/nextus/censusgen/internal/report"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run discovery and aggregation stats (no workbook written)",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	disc, err := census.Discover(log, cfg.InputDir, cfg.Month, cfg.Year)
	if err != nil {
		log.Error().Err(err).Msg("discovery failed")
		os.Exit(exitcode.InputError)
	}

	target := "(none)"
	if disc.Month != 0 {
		target = fmt.Sprintf("%s %d", time.Month(disc.Month).String(), disc.Year)
	}

	fmt.Println("=== censusgen plan ===")
	fmt.Printf("Input:      %s\n", cfg.InputDir)
	fmt.Printf("Target:     %s\n", target)
	fmt.Printf("CSV files:  %d found, %d matched, %d skipped\n",
		disc.FilesFound, len(disc.Files), disc.FilesSkipped)

	if len(disc.Files) == 0 {
		fmt.Println("\nNothing to report: no files matched the target month.")
		return nil
	}

	fmt.Println("\nMatched files:")
	for _, df := range disc.Files {
		fmt.Printf("  day %2d  %s\n", df.Day, filepath.Base(df.Path))
	}

	agg := aggregate.New(log, cfg.Programs)
	for _, df := range disc.Files {
		if err := agg.AddFile(df.Path, df.Day); err != nil {
			log.Warn().Err(err).Str("file", df.Path).Msg("file skipped: unreadable")
		}
	}
	standard, medicaid := agg.Partition()

	daysCovered := make(map[int]bool)
	for _, rec := range append(standard, medicaid...) {
		for day := range rec.Services {
			daysCovered[day] = true
		}
	}

	fmt.Println()
	fmt.Printf("Rows:       %d read, %d skipped\n", agg.RowsRead, agg.RowsSkipped)
	fmt.Printf("Patients:   %d (%d standard, %d medicaid)\n",
		agg.Len(), len(standard), len(medicaid))
	fmt.Printf("Days with service data: %d of %d\n",
		len(daysCovered), report.NewLayout(disc.Month, disc.Year).Days)
	fmt.Printf("\nWould write: %s\n", report.Filename(disc.Month, disc.Year))
	return nil
}
