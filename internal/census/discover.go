package census

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/nextus/censusgen/internal/normalize"
)

// DailyFile is one input CSV admitted to the run, with the day of month
// resolved from its name.
type DailyFile struct {
	Path string
	Day  int
}

// Discovery holds everything resolved while scanning the input directory.
type Discovery struct {
	// Month and Year are the effective targets: the caller's, or the pair
	// derived from the first dated file when the caller passed none.
	Month int
	Year  int
	// Files are the admitted extracts in discovery (sorted glob) order.
	Files []DailyFile

	FilesFound   int
	FilesSkipped int
}

// Discover scans inputDir for daily CSV extracts and gates each one by its
// filename date. month/year of 0 means "derive from the first file that
// yields a date". Files with no parsable date or outside the target month
// are skipped, never fatal; an empty Files slice is the normal "nothing to
// report" result.
func Discover(log zerolog.Logger, inputDir string, month, year int) (*Discovery, error) {
	paths, err := filepath.Glob(filepath.Join(inputDir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("scan input directory: %w", err)
	}

	d := &Discovery{Month: month, Year: year, FilesFound: len(paths)}
	if len(paths) == 0 {
		log.Info().Str("dir", inputDir).Msg("no CSV files found")
		return d, nil
	}

	if d.Month == 0 && d.Year == 0 {
		for _, p := range paths {
			if t, ok := normalize.DateFromFilename(p); ok {
				d.Month, d.Year = int(t.Month()), t.Year()
				log.Info().
					Str("file", filepath.Base(p)).
					Int("month", d.Month).
					Int("year", d.Year).
					Msg("target month derived from filename")
				break
			}
		}
		if d.Month == 0 {
			return nil, fmt.Errorf("no input file name carries a parsable date; pass --month and --year")
		}
	}

	for _, p := range paths {
		t, ok := normalize.DateFromFilename(p)
		if !ok {
			d.FilesSkipped++
			log.Warn().Str("file", filepath.Base(p)).Msg("file skipped: no date in name")
			continue
		}
		if !normalize.InTargetMonth(t, d.Month, d.Year) {
			d.FilesSkipped++
			log.Info().
				Str("file", filepath.Base(p)).
				Str("date", t.Format("2006-01-02")).
				Msg("file skipped: outside target month")
			continue
		}
		d.Files = append(d.Files, DailyFile{Path: p, Day: t.Day()})
	}

	log.Info().
		Int("files_found", d.FilesFound).
		Int("files_matched", len(d.Files)).
		Int("files_skipped", d.FilesSkipped).
		Msg("discovery complete")
	return d, nil
}
