package report

// legendEntry is one service-code row of the LEGEND sub-table.
type legendEntry struct {
	Code string
	Desc string
}

var legendEntries = []legendEntry{
	{"PHP", "Partial Hospitalization"},
	{"IOP", "Intensive Outpatient Program"},
	{"INT", "Intake"},
	{"MHPHP", "Partial Hospitalization primary mental health"},
	{"MHIOP", "Intensive Outpatient Program primary mental health"},
	{"MHINT", "Intake Primary Mental Health"},
	{"OP", "OP Group 45 min"},
	{"FUP15", "Medical Followup - 15min"},
	{"IPEM", "Initial Psych evaluation with medical services"},
	{"IND 45", "OP Individual 45 min"},
	{"FUP25", "Medical Followup - 25min"},
	{"x", "No Programming"},
	{"DIS", "Outpatient Discharge"},
	{"FUP45", "Medical Followup - 45min"},
	{"(Blank)", "No billable service"},
}

const legendNotice = "Process and Template Proprietary Property of Nextus Billing Solutions 1-1-18"

// claimsRows is the static 5x5 claim-status table. Columns alternate between
// status labels and code cells; only the code columns (2nd and 5th) take
// conditional fills.
var claimsRows = [][5]string{
	{"Paid", "PHP/UA", "", "Paid to Patient", "PHP/UA"},
	{"", "PHP/UA (see note) [1]", "Submitted", "", ""},
	{"Needs resubmission", "PHP/UA [2]", "Partial P2P", "PHP/UA", ""},
	{"Final Denial", "PHP/UA", "Partial Payment", "PHP/UA", "Unbillable Service"},
	{"Pending Submission", "PHP [4]", "Partial Final Denial", "PHP/CM", "Auth obtained"},
}

// Claim-code cell values that trigger conditional fills.
const (
	claimsWarnSubstr = "PHP/UA"
	claimsWarnExact  = "PHP [4]"
	claimsAuthorized = "Auth obtained"
	claimsUnbillable = "Unbillable Service"
)

// dayOfWeekLabels is the banner rotation applied positionally from day 1.
// It is deliberately not derived from the real weekday of the 1st; the
// billing template has always labeled the grid this way.
var dayOfWeekLabels = [7]string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}

// columnHeaders are the seven fixed patient-field headers of row 7.
var columnHeaders = [headerCols]string{
	"Last Name", "First Name", "Admit Date", "Payer Source", "Program", "ICD 10", "Fee",
}

const medicaidDividerLabel = "Medicaid Patients Below"

// footnoteLines is the fixed annotation list written to the Footnotes sheet.
var footnoteLines = []string{
	"[1] 1/31/99 - Status note",
	"[2] 1/31/99 - Status note",
	"[3] 1/31/99 - Status note",
	"[4] 1/31/99 - Status note",
	"[5] 3/11/25- Pending auth- GN",
	"[6] 11/18/24- See billing instruction on SCA. - CC",
	"[7] 3/4/25- PENDING LOC CLARIFICATION-GN",
	"[8] 3/4/25- PENDING LOC CLARIFICATION-GN",
	"[9] 3/4/25- PENDING LOC CLARIFICATION-GN",
	"[10] 3/4/25- PENDING LOC CLARIFICATION-GN",
	"[11] 3/4/25- PENDING LOC CLARIFICATION-GN",
	"[12] 3/4/25- PENDING LOC CLARIFICATION-GN",
	"[13] 3/4/25- PENDING LOC CLARIFICATION-GN",
	"[14] 3/11/25- PENDING AUTH- GN",
	"[15] 3/11/25- PENDING AUTH- GN",
	"[16] 3/11/25- PENDING AUTH- GN",
}
