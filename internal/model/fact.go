package model

// AttendanceStatus is the raw attendance disposition reported for one
// patient on one day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// NoProgrammingCode is the service code recorded for an absent day.
const NoProgrammingCode = "X"

// AttendanceFact is one normalized attendance observation: a single CSV row
// resolved against its file's day of month. Facts are transient; they are
// folded into PatientRecords immediately and never retained.
type AttendanceFact struct {
	ID        string // MR number, or "{last}_{first}" when MR is blank
	LastName  string
	FirstName string
	Day       int // day of month, 1-31

	AdmitDate   string // raw admission date string, kept verbatim
	PayerSource string
	Program     string // mapped program code
	ServiceCode string // derived billable code for Day; never empty

	URReview        string // "<loc> - Next review: <date>" annotation
	BillingComments string
}
