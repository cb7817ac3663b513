// mkfixture writes a small set of synthetic daily attendance CSVs for local
// runs and tests.
// Usage: go run ./cmd/mkfixture --out testdata/march --month 3 --year 2025 --days 5
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var header = []string{
	"Name", "MR", "Program", "Status", "Payment Method",
	"Admission", "UR Loc", "Next Review", "Comment",
}

// roster is a fixed cast covering the interesting cases: mapped and
// pass-through programs, Medicaid and standard payers, absences, and a
// patient with no MR number.
var roster = [][]string{
	{"Jane Doe", "1001", "SUD-PHP", "Present", "Medicaid HMO", "2/14/25", "PHP", "3/21/25", ""},
	{"John Smith", "1002", "IOP", "Present", "BCBS PPO", "2/20/25", "IOP", "3/18/25", "Auth on file"},
	{"Mary Ann Jones", "1003", "MH-IOP", "Present", "Aetna", "3/1/25", "IOP", "3/25/25", ""},
	{"Robert Brown", "", "OP", "Absent", "Self Pay", "1/30/25", "OP", "3/15/25", ""},
	{"Alice Green", "1005", "SUD-OP", "Present", "Maryland Medicaid", "2/28/25", "OP", "3/20/25", "See SCA"},
}

func main() {
	out := flag.String("out", "testdata/days", "output directory")
	month := flag.Int("month", 3, "month of the generated extracts")
	year := flag.Int("year", 2025, "year of the generated extracts")
	days := flag.Int("days", 5, "number of daily files to write, starting at day 1")
	flag.Parse()

	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	for day := 1; day <= *days; day++ {
		name := fmt.Sprintf("attendance_%04d-%02d-%02d.csv", *year, *month, day)
		path := filepath.Join(*out, name)
		if err := writeDay(path, day); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
	}
}

func writeDay(path string, day int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, row := range roster {
		rec := make([]string, len(row))
		copy(rec, row)
		// Rotate one absence through the roster so day grids differ.
		if (i+day)%len(roster) == 0 {
			rec[3] = "Absent"
		}
		rec[8] = rec[8] + dayTag(day, i)
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// dayTag makes a comment vary by day for one patient so overwrite behavior
// is visible in generated fixtures.
func dayTag(day, patient int) string {
	if patient != 1 {
		return ""
	}
	return " (day " + strconv.Itoa(day) + ")"
}
