package deck

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrDataUnavailable reports that a source data file could not be read.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrSchemaMismatch reports required columns missing from a file header.
	ErrSchemaMismatch = errors.New("schema mismatch")
)

// ReadFile loads a data file, mapping any failure to ErrDataUnavailable so
// callers can surface one retryable condition instead of raw IO errors.
func ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, path, err)
	}
	return b, nil
}

// ParseTable tokenizes raw comma-delimited text into rows of fields.
// Quoted fields may contain commas, newlines and doubled-quote escapes.
// CR bytes are ignored, and the final row is kept even without a trailing
// newline. An empty input yields no rows.
func ParseTable(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field.WriteByte(c)
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case ',':
			row = append(row, field.String())
			field.Reset()
		case '\r':
			// ignored
		case '\n':
			row = append(row, field.String())
			rows = append(rows, row)
			row = nil
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}
	return rows
}

// Row maps lowercased header names to field values.
type Row map[string]string

// Table is a parsed tabular file: the header plus field-mapped data rows.
type Table struct {
	Header []string
	Rows   []Row
}

// NewTable zips data rows against the first row's header names. Empty header
// cells drop their column, all-blank rows are skipped, and rows whose
// required identifying field is blank are dropped.
func NewTable(cells [][]string, required string) Table {
	if len(cells) == 0 {
		return Table{}
	}
	header := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	t := Table{Header: header}
	for _, line := range cells[1:] {
		if allBlank(line) {
			continue
		}
		row := Row{}
		for c, key := range header {
			if key == "" || c >= len(line) {
				continue
			}
			row[key] = line[c]
		}
		if strings.TrimSpace(row[required]) == "" {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// HasColumns reports whether every named column appears in the header.
func (t Table) HasColumns(names ...string) bool {
	for _, name := range names {
		found := false
		for _, h := range t.Header {
			if h == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func allBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
