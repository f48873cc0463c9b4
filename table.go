package fitlog

import (
	"fmt"
	"iter"
	"slices"
)

// Row is one CSV record. Values are positional, the owning Table's header
// gives them names.
type Row []string

// Table is an ordered sequence of rows sharing one header. The header fixes
// the canonical column order used when the table is written back; rows are
// never reordered, only appended.
type Table struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// NewTable returns an empty table with the given header.
func NewTable(columns ...string) *Table {
	t := &Table{
		columns: slices.Clone(columns),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		t.index[c] = i
	}
	return t
}

// Columns returns a copy of the header, in canonical order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the i-th row.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Rows returns an iterator over all rows, in table order.
func (t *Table) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, r := range t.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Append adds a row at the end of the table. The row must have exactly one
// value per column.
func (t *Table) Append(r Row) error {
	if len(r) != len(t.columns) {
		return fmt.Errorf("row has %d fields, header has %d: %w", len(r), len(t.columns), ErrFormat)
	}
	t.rows = append(t.rows, r)
	return nil
}

// Get returns r's value for the named column, or "" if the column does not
// exist in this table.
func (t *Table) Get(r Row, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(r) {
		return ""
	}
	return r[i]
}
