package fitlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// this file contains the CSV codec for Table. It must stay symmetrical:
// whatever ReadTable accepts, WriteTable writes back in canonical form.

// ReadTable decodes a CSV document into a Table. The first record is the
// header and is mandatory; every following record must have the same number
// of fields. Tracker exports often start with a UTF-8 BOM, it is stripped.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	// Field count is validated here rather than by csv.Reader, to name the
	// offending line in the error.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed csv (%v): %w", err, ErrFormat)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row: %w", ErrFormat)
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := NewTable(header...)
	for n, rec := range records[1:] {
		if err := t.Append(Row(rec)); err != nil {
			return nil, fmt.Errorf("line %d: %w", n+2, err)
		}
	}
	return t, nil
}

// WriteTable encodes the table as CSV, header first, rows in table order.
func WriteTable(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.columns); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for r := range t.Rows() {
		if err := cw.Write(r); err != nil {
			return fmt.Errorf("cannot write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
