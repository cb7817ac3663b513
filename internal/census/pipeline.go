package census

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nextus/censusgen/internal/aggregate"
	"github.com/nextus/censusgen/internal/config"
	"github.com/nextus/censusgen/internal/logging"
	"github.com/nextus/censusgen/internal/model"
	"github.com/nextus/censusgen/internal/report"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full census pipeline: discover → aggregate → render →
// save. A run with zero matching files is not an error; it returns a summary
// with NoData set and no document written.
func Run(log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()
	runID := uuid.New()
	log = logging.ForRun(log, runID)

	summary := &model.RunSummary{RunID: runID.String()}

	// Phase 1: Discover
	disc, err := Discover(log, cfg.InputDir, cfg.Month, cfg.Year)
	if err != nil {
		return nil, &PipelineError{Phase: "discover", Err: err}
	}
	summary.Month = disc.Month
	summary.Year = disc.Year
	summary.FilesFound = disc.FilesFound
	summary.FilesMatched = len(disc.Files)
	summary.FilesSkipped = disc.FilesSkipped

	if len(disc.Files) == 0 {
		summary.NoData = true
		summary.DurationTotal = time.Since(totalStart)
		log.Info().Msg("no files matched the target month; nothing to report")
		return summary, nil
	}

	// Phase 2: Aggregate
	aggStart := time.Now()
	agg := aggregate.New(log, cfg.Programs)
	for _, df := range disc.Files {
		if err := agg.AddFile(df.Path, df.Day); err != nil {
			// An unreadable file drops out of the run; the month report is
			// built from whatever remains.
			summary.FilesMatched--
			summary.FilesSkipped++
			log.Warn().Err(err).Str("file", df.Path).Msg("file skipped: unreadable")
		}
	}
	standard, medicaid := agg.Partition()
	summary.RowsRead = agg.RowsRead
	summary.RowsSkipped = agg.RowsSkipped
	summary.Patients = agg.Len()
	summary.StandardPatients = len(standard)
	summary.MedicaidPatients = len(medicaid)
	summary.DurationAggregate = time.Since(aggStart)

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_skipped", summary.RowsSkipped).
		Int("patients", summary.Patients).
		Int("standard", summary.StandardPatients).
		Int("medicaid", summary.MedicaidPatients).
		Dur("duration", summary.DurationAggregate).
		Msg("aggregation complete")

	// Phase 3: Render
	renderStart := time.Now()
	doc, err := report.Build(standard, medicaid, disc.Month, disc.Year, cfg.Letterhead)
	if err != nil {
		return nil, &PipelineError{Phase: "render", Err: err}
	}
	defer doc.Close()
	summary.DurationRender = time.Since(renderStart)

	// Phase 4: Save
	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = cfg.InputDir
	}
	outPath := filepath.Join(outDir, report.Filename(disc.Month, disc.Year))
	if err := doc.SaveAs(outPath); err != nil {
		return nil, &PipelineError{Phase: "save", Err: err}
	}
	summary.OutputPath = outPath
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Str("output", outPath).
		Str("duration", summary.DurationTotal.String()).
		Msg("census pipeline complete")

	return summary, nil
}
