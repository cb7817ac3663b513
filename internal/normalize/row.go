package normalize

import (
	"fmt"
	"strings"

	"github.com/nextus/censusgen/internal/model"
)

// Row is the named-column view of one CSV row. csvread.Row satisfies it.
type Row interface {
	Get(name string) string
}

// FromRow converts one attendance CSV row into an AttendanceFact for the
// given day of month. Returns ok=false when the row carries nothing billable:
// empty name, a name without at least a first and last token, or no derivable
// service code. Each skip is independent and non-fatal.
func FromRow(row Row, day int, programs map[string]string) (*model.AttendanceFact, bool) {
	fullName := strings.TrimSpace(row.Get("Name"))
	if fullName == "" {
		return nil, false
	}

	parts := strings.Fields(fullName)
	if len(parts) < 2 {
		return nil, false
	}
	lastName := parts[len(parts)-1]
	firstName := strings.Join(parts[:len(parts)-1], " ")

	mapped := MapProgram(row.Get("Program"), programs)
	code := ServiceCode(row.Get("Status"), mapped)
	if code == "" {
		return nil, false
	}

	id := strings.TrimSpace(row.Get("MR"))
	if id == "" {
		id = lastName + "_" + firstName
	}

	return &model.AttendanceFact{
		ID:          id,
		LastName:    lastName,
		FirstName:   firstName,
		Day:         day,
		AdmitDate:   row.Get("Admission"),
		PayerSource: row.Get("Payment Method"),
		Program:     mapped,
		ServiceCode: code,

		URReview:        fmt.Sprintf("%s - Next review: %s", row.Get("UR Loc"), row.Get("Next Review")),
		BillingComments: row.Get("Comment"),
	}, true
}

// MapProgram trims the raw program label and maps it through the program
// table. Unknown labels pass through verbatim; blank stays blank.
func MapProgram(label string, programs map[string]string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	if mapped, ok := programs[label]; ok {
		return mapped
	}
	return label
}

// ServiceCode derives the code recorded in a day cell. Status comparison is
// exact: "Present" with a mapped program yields that program, "Absent" yields
// the no-programming code regardless of program, anything else yields "".
func ServiceCode(status, mappedProgram string) string {
	switch {
	case status == string(model.StatusPresent) && mappedProgram != "":
		return mappedProgram
	case status == string(model.StatusAbsent):
		return model.NoProgrammingCode
	}
	return ""
}
