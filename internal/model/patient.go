package model

// PatientRecord is the aggregate unit of the census: one patient's static
// billing fields plus a sparse day-of-month → service-code map. Static fields
// are fixed by the first fact that establishes the identity; only Services
// accumulates afterward. A missing day key means no billable service.
type PatientRecord struct {
	LastName    string
	FirstName   string
	AdmitDate   string
	PayerSource string
	Program     string
	ICD10       string // no source column; always empty in the data we receive

	URReview        string
	BillingComments string

	Services map[int]string // day of month → service code
}

// NewPatientRecord creates a record from the fact that first establishes the
// identity. The fact's day is not recorded here; the aggregator owns that.
func NewPatientRecord(f *AttendanceFact) *PatientRecord {
	return &PatientRecord{
		LastName:        f.LastName,
		FirstName:       f.FirstName,
		AdmitDate:       f.AdmitDate,
		PayerSource:     f.PayerSource,
		Program:         f.Program,
		URReview:        f.URReview,
		BillingComments: f.BillingComments,
		Services:        make(map[int]string),
	}
}
