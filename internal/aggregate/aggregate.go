package aggregate

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nextus/censusgen/internal/csvread"
	"github.com/nextus/censusgen/internal/model"
	"github.com/nextus/censusgen/internal/normalize"
)

// Aggregator folds normalized attendance facts from a month's daily files
// into a single identity → PatientRecord mapping. It owns the mapping for
// the whole run; nothing else mutates it.
type Aggregator struct {
	log      zerolog.Logger
	programs map[string]string

	patients map[string]*model.PatientRecord
	order    []string // identities in first-seen order; ties in the sort keep this order

	RowsRead    int64
	RowsSkipped int64
}

// New returns an empty aggregator using the given program label table.
func New(log zerolog.Logger, programs map[string]string) *Aggregator {
	return &Aggregator{
		log:      log,
		programs: programs,
		patients: make(map[string]*model.PatientRecord),
	}
}

// AddFile folds every row of one daily extract into the mapping. day is the
// day of month resolved from the file's name. A malformed row is logged and
// skipped; only an unreadable file returns an error, and callers are expected
// to log it and continue with the next file.
func (a *Aggregator) AddFile(path string, day int) error {
	r, err := csvread.Open(path)
	if err != nil {
		return fmt.Errorf("open daily extract: %w", err)
	}
	defer r.Close()

	var folded int64
	for {
		row, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			a.RowsSkipped++
			a.log.Warn().Err(err).Str("file", path).Msg("row skipped")
			continue
		}
		a.RowsRead++

		fact, ok := normalize.FromRow(row, day, a.programs)
		if !ok {
			a.RowsSkipped++
			continue
		}
		a.fold(fact)
		folded++
	}

	a.log.Info().
		Str("file", path).
		Int("day", day).
		Int64("rows_folded", folded).
		Msg("daily extract processed")
	return nil
}

// fold applies one fact. The first fact for an identity fixes the static
// fields; later facts only touch the day map, where the last write for a day
// wins even across files.
func (a *Aggregator) fold(f *model.AttendanceFact) {
	rec, ok := a.patients[f.ID]
	if !ok {
		rec = model.NewPatientRecord(f)
		a.patients[f.ID] = rec
		a.order = append(a.order, f.ID)
	}
	rec.Services[f.Day] = f.ServiceCode
}

// Len returns the number of distinct patients aggregated so far.
func (a *Aggregator) Len() int {
	return len(a.patients)
}

// Partition splits the mapping into the Standard and Medicaid groups, each in
// first-seen order. Every patient lands in exactly one group: Medicaid when
// the payer source contains "medicaid" case-insensitively, Standard otherwise
// (blank payer included).
func (a *Aggregator) Partition() (standard, medicaid []*model.PatientRecord) {
	for _, id := range a.order {
		rec := a.patients[id]
		if IsMedicaid(rec.PayerSource) {
			medicaid = append(medicaid, rec)
		} else {
			standard = append(standard, rec)
		}
	}
	return standard, medicaid
}

// IsMedicaid reports whether a payer source routes the patient to the
// Medicaid section of the census.
func IsMedicaid(payerSource string) bool {
	return strings.Contains(strings.ToLower(payerSource), "medicaid")
}
