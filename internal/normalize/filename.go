package normalize

import (
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// dateToken matches an 8-digit date anywhere in a file name, with the year,
// month, and day optionally separated by "-" or "_".
var dateToken = regexp.MustCompile(`(\d{4})[-_]?(\d{2})[-_]?(\d{2})`)

// DateFromFilename extracts the calendar date embedded in a daily extract's
// file name, e.g. "attendance_2025-03-05.csv" → 2025-03-05. Returns ok=false
// when no token is present or the token is not a valid calendar date.
func DateFromFilename(name string) (time.Time, bool) {
	m := dateToken.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (month 13, day 32);
	// reject anything that moved.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// InTargetMonth reports whether the date falls in the run's target month/year.
func InTargetMonth(t time.Time, month, year int) bool {
	return int(t.Month()) == month && t.Year() == year
}
