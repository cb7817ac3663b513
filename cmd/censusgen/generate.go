package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextus/censusgen/internal/census"
	"github.com/nextus/censusgen/internal/exitcode"
	"github.com/nextus/censusgen/internal/logging"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the monthly census workbook",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&cfg.OutputDir, "output", "", "Directory to write the workbook to (default: the input directory)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := census.Run(log, &cfg)
	if err != nil {
		if pe, ok := err.(*census.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("census run failed")
			switch pe.Phase {
			case "discover":
				os.Exit(exitcode.InputError)
			case "render":
				os.Exit(exitcode.RenderError)
			case "save":
				os.Exit(exitcode.WriteError)
			default:
				os.Exit(exitcode.ValidationError)
			}
		}
		log.Error().Err(err).Msg("census run failed")
		os.Exit(exitcode.ValidationError)
	}

	if summary.NoData {
		fmt.Printf("No files matched %d/%d; nothing to report.\n", summary.Month, summary.Year)
		return nil
	}

	fmt.Printf("Census complete: %d patients (%d standard, %d medicaid) from %d files → %s (%.1fs)\n",
		summary.Patients, summary.StandardPatients, summary.MedicaidPatients,
		summary.FilesMatched, summary.OutputPath, summary.DurationTotal.Seconds())
	return nil
}
