package fitlog

import (
	"fmt"

	"github.com/mkeller/fitlog/date"
)

// Key returns the canonical identity of a row: its date field normalized to
// ISO form, so that "15-Dec-25" and "2025-12-15" compare equal. Two rows with
// the same key are duplicates regardless of their other fields.
func (t *Table) Key(r Row) (string, error) {
	i := t.canonicalColumn(ColDate)
	if i < 0 {
		return "", fmt.Errorf("header %v has no date column: %w", t.columns, ErrFormat)
	}
	d, err := date.Parse(r[i])
	if err != nil {
		return "", fmt.Errorf("column %q: %v: %w", t.columns[i], err, ErrFormat)
	}
	return d.String(), nil
}

// Merge returns the destination rows, unchanged and in order, followed by
// every source row whose key is not already present, in source order. The
// key set grows as source rows are accepted, so a key repeated within the
// source is only added once (first occurrence wins). Source rows are
// reshaped into the destination schema on the way in. Merge is pure: neither
// input is modified.
func Merge(dst, src *Table) (*Table, int, error) {
	mapping := NewMapping(dst, src)

	out := NewTable(dst.columns...)
	seen := make(map[string]bool, dst.Len())
	for r := range dst.Rows() {
		k, err := dst.Key(r)
		if err != nil {
			return nil, 0, fmt.Errorf("history: %w", err)
		}
		if err := out.Append(r); err != nil {
			return nil, 0, fmt.Errorf("history: %w", err)
		}
		seen[k] = true
	}

	added := 0
	for r := range src.Rows() {
		k, err := src.Key(r)
		if err != nil {
			return nil, 0, fmt.Errorf("source: %w", err)
		}
		if seen[k] {
			continue
		}
		if err := out.Append(mapping.Apply(r)); err != nil {
			return nil, 0, fmt.Errorf("source: %w", err)
		}
		seen[k] = true
		added++
	}
	return out, added, nil
}
