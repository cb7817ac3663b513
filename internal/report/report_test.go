package report

import (
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nextus/censusgen/internal/model"
)

var testLetterhead = []string{
	"Test Clinic LLC",
	"1 Main St",
	"Somewhere, MD 21000",
}

func mkRecord(last, first, payer string, services map[int]string) *model.PatientRecord {
	if services == nil {
		services = map[int]string{}
	}
	return &model.PatientRecord{
		LastName:    last,
		FirstName:   first,
		AdmitDate:   "2/14/25",
		PayerSource: payer,
		Program:     "PHP",
		URReview:    "PHP - Next review: 3/21/25",
		Services:    services,
	}
}

func mustBuild(t *testing.T, standard, medicaid []*model.PatientRecord) *excelize.File {
	t.Helper()
	f, err := Build(standard, medicaid, 3, 2025, testLetterhead)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func getCell(t *testing.T, f *excelize.File, sheet string, col, row int) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell(col, row))
	if err != nil {
		t.Fatalf("GetCellValue %s: %v", cell(col, row), err)
	}
	return v
}

func TestLayout(t *testing.T) {
	tests := []struct {
		month, year, days int
	}{
		{3, 2025, 31},
		{4, 2025, 30},
		{2, 2025, 28},
		{2, 2024, 29},
	}
	for _, tt := range tests {
		if got := NewLayout(tt.month, tt.year).Days; got != tt.days {
			t.Errorf("NewLayout(%d, %d).Days = %d, want %d", tt.month, tt.year, got, tt.days)
		}
	}

	l := NewLayout(3, 2025)
	if l.DayCol(1) != 8 {
		t.Errorf("DayCol(1) = %d, want 8", l.DayCol(1))
	}
	if l.DayCol(31) != 38 {
		t.Errorf("DayCol(31) = %d, want 38", l.DayCol(31))
	}
	if l.URCol() != 39 || l.BillingCol() != 40 {
		t.Errorf("comment cols = %d/%d, want 39/40", l.URCol(), l.BillingCol())
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(3, 2025); got != "Census_March_2025.xlsx" {
		t.Errorf("Filename = %q", got)
	}
}

func TestBuild_SheetsAndLetterhead(t *testing.T) {
	f := mustBuild(t, []*model.PatientRecord{mkRecord("Doe", "Jane", "BCBS", nil)}, nil)

	sheets := f.GetSheetList()
	want := []string{"March 2025 Census", "Footnotes"}
	if !reflect.DeepEqual(sheets, want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}

	sheet := sheets[0]
	for i, line := range testLetterhead {
		if got := getCell(t, f, sheet, 1, i+1); got != line {
			t.Errorf("letterhead row %d = %q, want %q", i+1, got, line)
		}
	}
}

func TestBuild_MonthBannerAndDayRotation(t *testing.T) {
	f := mustBuild(t, nil, nil)
	sheet := "March 2025 Census"

	if got := getCell(t, f, sheet, 1, bannerRow); got != "March 2025" {
		t.Errorf("banner = %q", got)
	}

	// The rotation is positional from day 1, not the real weekday
	// (2025-03-01 was a Saturday only by coincidence of the template).
	wantLabels := []struct {
		day   int
		label string
	}{
		{1, "Sat"}, {2, "Sun"}, {3, "Mon"}, {7, "Fri"}, {8, "Sat"}, {31, "Mon"},
	}
	l := NewLayout(3, 2025)
	for _, wl := range wantLabels {
		if got := getCell(t, f, sheet, l.DayCol(wl.day), bannerRow); got != wl.label {
			t.Errorf("day %d label = %q, want %q", wl.day, got, wl.label)
		}
	}
}

func TestBuild_ColumnHeaders(t *testing.T) {
	f := mustBuild(t, nil, nil)
	sheet := "March 2025 Census"
	l := NewLayout(3, 2025)

	for i, h := range columnHeaders {
		if got := getCell(t, f, sheet, i+1, headerRow); got != h {
			t.Errorf("header col %d = %q, want %q", i+1, got, h)
		}
	}
	if got := getCell(t, f, sheet, l.DayCol(1), headerRow); got != "1" {
		t.Errorf("day header 1 = %q", got)
	}
	if got := getCell(t, f, sheet, l.DayCol(31), headerRow); got != "31" {
		t.Errorf("day header 31 = %q", got)
	}
	if got := getCell(t, f, sheet, l.URCol(), headerRow); got != "UR Comments" {
		t.Errorf("UR header = %q", got)
	}
	if got := getCell(t, f, sheet, l.BillingCol(), headerRow); got != "Billing Comments" {
		t.Errorf("billing header = %q", got)
	}
}

func TestBuild_PatientRowsSortedAndGrouped(t *testing.T) {
	standard := []*model.PatientRecord{
		mkRecord("Zimmer", "Paul", "BCBS", map[int]string{5: "PHP"}),
		mkRecord("Abbot", "Nina", "Aetna", map[int]string{6: "IOP"}),
	}
	medicaid := []*model.PatientRecord{
		mkRecord("Moore", "Tess", "Medicaid HMO", map[int]string{5: "PHP"}),
	}
	f := mustBuild(t, standard, medicaid)
	sheet := "March 2025 Census"
	l := NewLayout(3, 2025)

	// Standard group sorted ascending by last name.
	if got := getCell(t, f, sheet, 1, firstDataRow); got != "Abbot" {
		t.Errorf("row 8 last name = %q, want Abbot", got)
	}
	if got := getCell(t, f, sheet, 1, firstDataRow+1); got != "Zimmer" {
		t.Errorf("row 9 last name = %q, want Zimmer", got)
	}

	// Divider, then the Medicaid group.
	if got := getCell(t, f, sheet, 1, firstDataRow+2); got != medicaidDividerLabel {
		t.Errorf("divider row = %q", got)
	}
	if got := getCell(t, f, sheet, 1, firstDataRow+3); got != "Moore" {
		t.Errorf("medicaid row last name = %q", got)
	}
	if got := getCell(t, f, sheet, l.DayCol(5), firstDataRow+3); got != "PHP" {
		t.Errorf("medicaid day 5 = %q", got)
	}

	// Empty day cells stay blank.
	if got := getCell(t, f, sheet, l.DayCol(1), firstDataRow); got != "" {
		t.Errorf("unpopulated day = %q, want blank", got)
	}
}

func TestBuild_TieOnLastNameKeepsOrder(t *testing.T) {
	standard := []*model.PatientRecord{
		mkRecord("Doe", "Jane", "BCBS", nil),
		mkRecord("Doe", "Adam", "BCBS", nil),
	}
	f := mustBuild(t, standard, nil)
	sheet := "March 2025 Census"

	if got := getCell(t, f, sheet, 2, firstDataRow); got != "Jane" {
		t.Errorf("first Doe = %q, want insertion order preserved", got)
	}
	if got := getCell(t, f, sheet, 2, firstDataRow+1); got != "Adam" {
		t.Errorf("second Doe = %q", got)
	}
}

func TestBuild_NoMedicaidMeansNoDivider(t *testing.T) {
	f := mustBuild(t, []*model.PatientRecord{mkRecord("Doe", "Jane", "BCBS", nil)}, nil)
	sheet := "March 2025 Census"
	if got := getCell(t, f, sheet, 1, firstDataRow+1); got != "" {
		t.Errorf("expected no divider row, got %q", got)
	}
}

func TestBuild_ServiceHighlight(t *testing.T) {
	standard := []*model.PatientRecord{
		mkRecord("Doe", "Jane", "BCBS", map[int]string{1: "PHP", 2: "X"}),
	}
	f := mustBuild(t, standard, nil)
	sheet := "March 2025 Census"
	l := NewLayout(3, 2025)

	hit, err := f.GetCellStyle(sheet, cell(l.DayCol(1), firstDataRow))
	if err != nil {
		t.Fatalf("GetCellStyle: %v", err)
	}
	miss, err := f.GetCellStyle(sheet, cell(l.DayCol(2), firstDataRow))
	if err != nil {
		t.Fatalf("GetCellStyle: %v", err)
	}
	blank, err := f.GetCellStyle(sheet, cell(l.DayCol(3), firstDataRow))
	if err != nil {
		t.Fatalf("GetCellStyle: %v", err)
	}

	if hit == miss {
		t.Error("billable code and X share a style; highlight missing")
	}
	if miss != blank {
		t.Error("X day and blank day should share the plain day style")
	}
}

func TestHighlightService(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"PHP", true},
		{"MHIOP", true},
		{"X", false},
		{"X-late", false}, // prefixed by the no-programming code
		{"", false},
	}
	for _, tt := range tests {
		if got := highlightService(tt.code); got != tt.want {
			t.Errorf("highlightService(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestBuild_LegendBands(t *testing.T) {
	f := mustBuild(t, nil, nil)
	sheet := "March 2025 Census"

	if got := getCell(t, f, sheet, legendCol, 1); got != "LEGEND" {
		t.Errorf("legend banner = %q", got)
	}
	if got := getCell(t, f, sheet, legendCol, firstLegendRow); got != "PHP" {
		t.Errorf("first legend code = %q", got)
	}
	lastRow := firstLegendRow + len(legendEntries) - 1
	if got := getCell(t, f, sheet, legendDescCol, lastRow); got != "No billable service" {
		t.Errorf("last legend description = %q", got)
	}
	if got := getCell(t, f, sheet, legendCol, lastRow+1); got != legendNotice {
		t.Errorf("legend notice = %q", got)
	}

	if got := getCell(t, f, sheet, claimsStartCol, 1); got != "CLAIMS LEGEND" {
		t.Errorf("claims banner = %q", got)
	}
	if got := getCell(t, f, sheet, claimsStartCol, firstLegendRow); got != "Paid" {
		t.Errorf("claims first status = %q", got)
	}

	// Conditional fills mark the code columns only.
	warn, _ := f.GetCellStyle(sheet, cell(claimsStartCol+1, firstLegendRow)) // "PHP/UA"
	plain, _ := f.GetCellStyle(sheet, cell(claimsStartCol, firstLegendRow)) // "Paid"
	if warn == plain {
		t.Error("claims code cell should carry the warning fill")
	}
	ok, _ := f.GetCellStyle(sheet, cell(claimsEndCol, firstLegendRow+4))  // "Auth obtained"
	bad, _ := f.GetCellStyle(sheet, cell(claimsEndCol, firstLegendRow+3)) // "Unbillable Service"
	if ok == bad || ok == plain || bad == plain {
		t.Error("authorized and unbillable cells need distinct fills")
	}
}

func TestBuild_FootnotesSheet(t *testing.T) {
	f := mustBuild(t, nil, nil)

	if got := getCell(t, f, "Footnotes", 1, 1); got != footnoteLines[0] {
		t.Errorf("footnote 1 = %q", got)
	}
	last := len(footnoteLines)
	if got := getCell(t, f, "Footnotes", 1, last); got != footnoteLines[last-1] {
		t.Errorf("footnote %d = %q", last, got)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	standard := []*model.PatientRecord{
		mkRecord("Doe", "Jane", "BCBS", map[int]string{5: "PHP", 12: "X"}),
		mkRecord("Smith", "John", "Aetna", map[int]string{5: "IOP"}),
	}
	medicaid := []*model.PatientRecord{
		mkRecord("Moore", "Tess", "Medicaid HMO", map[int]string{7: "OP"}),
	}

	a := mustBuild(t, standard, medicaid)
	b := mustBuild(t, standard, medicaid)

	rowsA, err := a.GetRows("March 2025 Census")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	rowsB, err := b.GetRows("March 2025 Census")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if !reflect.DeepEqual(rowsA, rowsB) {
		t.Error("two builds from identical input differ")
	}
}
