// Package csvio reads delimited export files into ordered rows of named
// string fields.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Record is one data row keyed by column name.
type Record struct {
	values map[string]string
}

// Get returns the raw value for a column, or "" when the column is absent
// or the row was short.
func (r Record) Get(column string) string {
	return r.values[column]
}

// File is a parsed CSV file: the header plus data rows in file order.
type File struct {
	Path    string
	Columns []string
	Records []Record
}

// Read parses a CSV file whose first line is the header. A UTF-8 BOM on
// the first header cell is stripped. Rows may be ragged; short rows read
// as empty fields.
func Read(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file: %s", path)
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	file := &File{Path: path, Columns: header}
	for _, row := range rows[1:] {
		values := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				values[col] = row[i]
			}
		}
		file.Records = append(file.Records, Record{values: values})
	}

	return file, nil
}

// MissingColumns reports which of the required columns are absent from the
// header. An empty result means the file has every required column.
func (f *File) MissingColumns(required ...string) []string {
	var missing []string
	for _, want := range required {
		found := false
		for _, col := range f.Columns {
			if col == want {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	return missing
}

// FindColumn returns the header column matching any of the candidates,
// compared case-insensitively, in candidate order. The second return is
// false when none match.
func (f *File) FindColumn(candidates ...string) (string, bool) {
	for _, cand := range candidates {
		for _, col := range f.Columns {
			if strings.EqualFold(col, cand) {
				return col, true
			}
		}
	}
	return "", false
}
