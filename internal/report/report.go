package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nextus/censusgen/internal/model"
)

// Filename returns the deterministic output name for a census document,
// e.g. "Census_March_2025.xlsx".
func Filename(month, year int) string {
	return fmt.Sprintf("Census_%s_%d.xlsx", time.Month(month).String(), year)
}

// Builder assembles one census workbook from the two patient groups and the
// target month metadata. Each region writer appends to the same sheet; the
// workbook is returned as a value and saved once by the caller.
type Builder struct {
	f      *excelize.File
	sheet  string
	layout Layout
	st     *styleSet

	month      int
	year       int
	letterhead []string
	standard   []*model.PatientRecord
	medicaid   []*model.PatientRecord
}

// Build lays the census out into a new workbook. The caller owns the returned
// file and is responsible for SaveAs and Close.
func Build(standard, medicaid []*model.PatientRecord, month, year int, letterhead []string) (*excelize.File, error) {
	f := excelize.NewFile()

	b := &Builder{
		f:          f,
		sheet:      fmt.Sprintf("%s %d Census", time.Month(month).String(), year),
		layout:     NewLayout(month, year),
		month:      month,
		year:       year,
		letterhead: letterhead,
		standard:   sortedByLastName(standard),
		medicaid:   sortedByLastName(medicaid),
	}

	if err := f.SetSheetName("Sheet1", b.sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("name census sheet: %w", err)
	}

	st, err := newStyleSet(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("register styles: %w", err)
	}
	b.st = st

	sections := []func() error{
		b.writeLetterhead,
		b.writeLegend,
		b.writeClaimsLegend,
		b.writeMonthBanner,
		b.writeColumnHeaders,
		b.writePatientRows,
		b.setColumnWidths,
		b.writeFootnotes,
	}
	for _, write := range sections {
		if err := write(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// set writes a value and style to one cell.
func (b *Builder) set(col, row int, v any, style int) error {
	ref := cell(col, row)
	if err := b.f.SetCellValue(b.sheet, ref, v); err != nil {
		return fmt.Errorf("set %s: %w", ref, err)
	}
	if err := b.f.SetCellStyle(b.sheet, ref, ref, style); err != nil {
		return fmt.Errorf("style %s: %w", ref, err)
	}
	return nil
}

// merge merges a horizontal band, writes the value into its first cell, and
// styles the whole band so borders and fills cover every merged column.
func (b *Builder) merge(startCol, endCol, row int, v any, style int) error {
	start, end := cell(startCol, row), cell(endCol, row)
	if err := b.f.MergeCell(b.sheet, start, end); err != nil {
		return fmt.Errorf("merge %s:%s: %w", start, end, err)
	}
	if err := b.f.SetCellValue(b.sheet, start, v); err != nil {
		return fmt.Errorf("set %s: %w", start, err)
	}
	if err := b.f.SetCellStyle(b.sheet, start, end, style); err != nil {
		return fmt.Errorf("style %s:%s: %w", start, end, err)
	}
	return nil
}

// writeLetterhead writes the static facility block into rows 1-5, each line
// merged across the letterhead span. The first line is the organization name.
func (b *Builder) writeLetterhead() error {
	for i, line := range b.letterhead {
		style := b.st.letterhead
		if i == 0 {
			style = b.st.title
		}
		if err := b.merge(1, letterheadSpan, i+1, line, style); err != nil {
			return err
		}
	}
	return nil
}

// writeMonthBanner writes the merged month/year banner and the day-of-week
// cells of row 6. The weekday labels rotate through a fixed 7-element
// sequence from day 1 rather than following the real calendar.
func (b *Builder) writeMonthBanner() error {
	banner := fmt.Sprintf("%s %d", time.Month(b.month).String(), b.year)
	if err := b.merge(1, headerCols, bannerRow, banner, b.st.banner); err != nil {
		return err
	}
	for day := 1; day <= b.layout.Days; day++ {
		label := dayOfWeekLabels[(day-1)%7]
		if err := b.set(b.layout.DayCol(day), bannerRow, label, b.st.dayOfWeek); err != nil {
			return err
		}
	}
	return nil
}

// writeColumnHeaders writes row 7: the seven fixed field headers, one numeric
// header per day, then the two comment columns.
func (b *Builder) writeColumnHeaders() error {
	for i, h := range columnHeaders {
		if err := b.set(i+1, headerRow, h, b.st.columnHeader); err != nil {
			return err
		}
	}
	for day := 1; day <= b.layout.Days; day++ {
		if err := b.set(b.layout.DayCol(day), headerRow, day, b.st.columnHeader); err != nil {
			return err
		}
	}
	if err := b.set(b.layout.URCol(), headerRow, "UR Comments", b.st.columnHeader); err != nil {
		return err
	}
	return b.set(b.layout.BillingCol(), headerRow, "Billing Comments", b.st.columnHeader)
}

// writePatientRows writes the Standard group, then (only when the Medicaid
// group is non-empty) the divider row and the Medicaid group.
func (b *Builder) writePatientRows() error {
	row := firstDataRow
	for _, rec := range b.standard {
		if err := b.writePatientRow(rec, row); err != nil {
			return err
		}
		row++
	}

	if len(b.medicaid) == 0 {
		return nil
	}
	if err := b.merge(1, headerCols, row, medicaidDividerLabel, b.st.divider); err != nil {
		return err
	}
	row++
	for _, rec := range b.medicaid {
		if err := b.writePatientRow(rec, row); err != nil {
			return err
		}
		row++
	}
	return nil
}

func (b *Builder) writePatientRow(rec *model.PatientRecord, row int) error {
	fields := []struct {
		v     string
		style int
	}{
		{rec.LastName, b.st.patientField},
		{rec.FirstName, b.st.patientField},
		{rec.AdmitDate, b.st.patientField},
		{rec.PayerSource, b.st.patientField},
		{rec.Program, b.st.patientField},
		{rec.ICD10, b.st.patientWrap},
		{"", b.st.patientField}, // Fee stays blank; billing fills it in by hand
	}
	for i, fld := range fields {
		if err := b.set(i+1, row, fld.v, fld.style); err != nil {
			return err
		}
	}

	for day := 1; day <= b.layout.Days; day++ {
		code := rec.Services[day]
		style := b.st.dayCell
		if highlightService(code) {
			style = b.st.dayCellHit
		}
		if err := b.set(b.layout.DayCol(day), row, code, style); err != nil {
			return err
		}
	}

	if err := b.set(b.layout.URCol(), row, rec.URReview, b.st.comment); err != nil {
		return err
	}
	return b.set(b.layout.BillingCol(), row, rec.BillingComments, b.st.comment)
}

// setColumnWidths sets the fixed semantic widths: wide name/payer/comment
// columns, narrow day columns.
func (b *Builder) setColumnWidths() error {
	fixed := []struct {
		col   string
		width float64
	}{
		{"A", 15}, {"B", 15}, {"C", 12}, {"D", 20}, {"E", 10}, {"F", 20}, {"G", 8},
	}
	for _, fw := range fixed {
		if err := b.f.SetColWidth(b.sheet, fw.col, fw.col, fw.width); err != nil {
			return fmt.Errorf("set width %s: %w", fw.col, err)
		}
	}

	firstDay, err := excelize.ColumnNumberToName(b.layout.DayCol(1))
	if err != nil {
		return err
	}
	lastDay, err := excelize.ColumnNumberToName(b.layout.DayCol(b.layout.Days))
	if err != nil {
		return err
	}
	if err := b.f.SetColWidth(b.sheet, firstDay, lastDay, 8); err != nil {
		return fmt.Errorf("set day column widths: %w", err)
	}

	urCol, err := excelize.ColumnNumberToName(b.layout.URCol())
	if err != nil {
		return err
	}
	if err := b.f.SetColWidth(b.sheet, urCol, urCol, 40); err != nil {
		return fmt.Errorf("set UR column width: %w", err)
	}
	billingCol, err := excelize.ColumnNumberToName(b.layout.BillingCol())
	if err != nil {
		return err
	}
	if err := b.f.SetColWidth(b.sheet, billingCol, billingCol, 25); err != nil {
		return fmt.Errorf("set billing column width: %w", err)
	}
	return nil
}

// highlightService reports whether a day cell gets the billable-service
// highlight: any non-empty code that is not the no-programming code and does
// not start with it.
func highlightService(code string) bool {
	return code != "" && !strings.HasPrefix(code, model.NoProgrammingCode)
}

// sortedByLastName returns the group sorted ascending by last name. The sort
// is stable, so patients sharing a last name keep their first-seen order.
func sortedByLastName(group []*model.PatientRecord) []*model.PatientRecord {
	out := make([]*model.PatientRecord, len(group))
	copy(out, group)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastName < out[j].LastName
	})
	return out
}
