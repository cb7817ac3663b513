package csvread

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one data row with named-column access resolved through the file's
// header. Get returns "" for columns the file does not carry, so optional
// columns degrade per row instead of failing the file.
type Row struct {
	fields []string
	colIdx map[string]int
}

// Get returns the value of the named column, or "" when the column is absent
// from the header or the row is too short.
func (r Row) Get(name string) string {
	idx, ok := r.colIdx[strings.ToLower(name)]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return r.fields[idx]
}

// Has reports whether the file's header carries the named column.
func (r Row) Has(name string) bool {
	_, ok := r.colIdx[strings.ToLower(name)]
	return ok
}

// Reader streams a daily attendance CSV file one row at a time.
type Reader struct {
	file   *os.File
	csv    *csv.Reader
	colIdx map[string]int // lowercase header → column index
	rowNum int64
}

// Open opens a CSV file and reads its header row. The reader tolerates a
// UTF-8 BOM, bare quotes, and rows with a field count different from the
// header's.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	bufReader := bufio.NewReaderSize(file, 64*1024)

	// Skip UTF-8 BOM if present
	bom, err := bufReader.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		bufReader.Discard(3)
	}

	reader := csv.NewReader(bufReader)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	r := &Reader{
		file:   file,
		csv:    reader,
		colIdx: make(map[string]int),
	}

	if err := r.readHeader(); err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if err != nil {
		return fmt.Errorf("read header row: %w", err)
	}
	r.rowNum++
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		// First occurrence wins on duplicate headers.
		if _, exists := r.colIdx[key]; !exists {
			r.colIdx[key] = i
		}
	}
	return nil
}

// Next returns the next data row, or io.EOF when the file is exhausted.
// A malformed row surfaces as a non-EOF error; callers may skip it and call
// Next again.
func (r *Reader) Next() (Row, error) {
	fields, err := r.csv.Read()
	if err == io.EOF {
		return Row{}, io.EOF
	}
	r.rowNum++
	if err != nil {
		return Row{}, fmt.Errorf("read row %d: %w", r.rowNum, err)
	}
	return Row{fields: fields, colIdx: r.colIdx}, nil
}

// RowNum returns the 1-based number of the most recently read row,
// counting the header.
func (r *Reader) RowNum() int64 {
	return r.rowNum
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
