package report

import (
	"time"

	"github.com/xuri/excelize/v2"
)

// Fixed geometry of the census sheet. Data columns A-G are the per-patient
// fields; the day grid, UR, and billing columns follow and shift with the
// length of the month. The legend band sits to the right of the letterhead.
const (
	headerCols      = 7  // Last Name .. Fee
	letterheadSpan  = 10 // letterhead rows merge A..J
	legendCol       = 12 // L: legend codes
	legendDescCol   = 13 // M: legend descriptions
	legendEndCol    = 14 // N: legend title merge end
	claimsStartCol  = 15 // O: first claims legend column
	claimsEndCol    = 19 // S: last claims legend column
	bannerRow       = 6
	headerRow       = 7
	firstDataRow    = 8
	firstLegendRow  = 2
)

// Layout resolves semantic positions to sheet coordinates for one target
// month. It is pure arithmetic so the grid geometry can be tested apart from
// content population.
type Layout struct {
	Days int // calendar days in the target month
}

// NewLayout returns the layout for the given month and year.
func NewLayout(month, year int) Layout {
	return Layout{Days: daysInMonth(month, year)}
}

// daysInMonth returns the number of calendar days in month/year.
func daysInMonth(month, year int) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayCol returns the 1-based column index of a day-of-month cell.
func (l Layout) DayCol(day int) int {
	return headerCols + day
}

// URCol returns the column index of the UR Comments cell.
func (l Layout) URCol() int {
	return headerCols + l.Days + 1
}

// BillingCol returns the column index of the Billing Comments cell.
func (l Layout) BillingCol() int {
	return headerCols + l.Days + 2
}

// cell converts a (column, row) pair to an A1-style reference. The geometry
// here never produces coordinates excelize rejects, so the error collapses
// to a panic guard.
func cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		panic(err)
	}
	return name
}
