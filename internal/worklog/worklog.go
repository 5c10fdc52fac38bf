// Package worklog reads work-log exports into LogRecords.
//
// The export is a CSV file with a header row. Only the Date and Description
// columns are used; everything else is ignored. Absent columns and short rows
// are not errors: they yield the documented defaults.
package worklog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/watchfire-io/logaudit/internal/models"
)

// Column names looked up in the header row.
const (
	DateColumn        = "Date"
	DescriptionColumn = "Description"
)

var (
	// ErrNoHeader is returned for an input with no header row.
	ErrNoHeader = errors.New("worklog: missing header row")

	// ErrEncoding is returned for a field that is not valid UTF-8.
	ErrEncoding = errors.New("worklog: invalid UTF-8")
)

// FieldMap records where the known columns sit in a row. -1 means the column
// is absent.
type FieldMap struct {
	Date        int
	Description int
}

// MapHeader locates the known columns in a header row. A leading UTF-8 BOM
// and surrounding spaces are ignored; the first occurrence of a duplicated
// column wins.
func MapHeader(header []string) FieldMap {
	m := FieldMap{Date: -1, Description: -1}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		switch strings.TrimSpace(name) {
		case DateColumn:
			if m.Date < 0 {
				m.Date = i
			}
		case DescriptionColumn:
			if m.Description < 0 {
				m.Description = i
			}
		}
	}
	return m
}

// Record builds a LogRecord from a row using the map.
func (m FieldMap) Record(row []string) models.LogRecord {
	rec := models.LogRecord{
		Date:        field(row, m.Date),
		Description: field(row, m.Description),
	}
	if strings.TrimSpace(rec.Date) == "" {
		rec.Date = models.UnknownDate
	}
	return rec
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Reader yields LogRecords from CSV input.
type Reader struct {
	csv    *csv.Reader
	fields FieldMap
}

// NewReader reads the header row from r and returns a Reader positioned at
// the first record.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("worklog: read header: %w", err)
	}
	return &Reader{csv: cr, fields: MapHeader(header)}, nil
}

// Fields returns the column mapping found in the header.
func (r *Reader) Fields() FieldMap {
	return r.fields
}

// Next returns the next record, or io.EOF when the input is exhausted.
func (r *Reader) Next() (models.LogRecord, error) {
	row, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return models.LogRecord{}, io.EOF
		}
		return models.LogRecord{}, fmt.Errorf("worklog: %w", err)
	}
	line, _ := r.csv.FieldPos(0)

	rec := r.fields.Record(row)
	rec.Line = line
	if !utf8.ValidString(rec.Date) || !utf8.ValidString(rec.Description) {
		return models.LogRecord{}, fmt.Errorf("%w on line %d", ErrEncoding, line)
	}
	return rec, nil
}

// File is a Reader over an opened export file.
type File struct {
	*Reader
	f *os.File
}

// Open opens the export at path and reads its header.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("worklog: open %s: %w", path, err)
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{Reader: r, f: f}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}
