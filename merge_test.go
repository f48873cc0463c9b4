package fitlog

import (
	"errors"
	"slices"
	"testing"
)

// tableOf is a test helper building a table from a header and rows.
func tableOf(t *testing.T, columns []string, rows ...Row) *Table {
	t.Helper()
	table := NewTable(columns...)
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			t.Fatalf("cannot build test table: %v", err)
		}
	}
	return table
}

func TestMergeSkipsExistingDates(t *testing.T) {
	// Destination has 2024-01-01, source carries it again plus a new day.
	dst := tableOf(t, []string{"date", "weight"}, Row{"2024-01-01", "180"})
	src := tableOf(t, []string{"date", "calories"},
		Row{"2024-01-01", "2000"},
		Row{"2024-01-02", "2100"},
	)

	out, added, err := Merge(dst, src)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if added != 1 {
		t.Errorf("Merge() added = %d want 1", added)
	}
	if out.Len() != 2 {
		t.Fatalf("Merge() len = %d want 2", out.Len())
	}
	if !slices.Equal(out.Row(0), Row{"2024-01-01", "180"}) {
		t.Errorf("existing row changed: %v", out.Row(0))
	}
	if got := out.Get(out.Row(1), "date"); got != "2024-01-02" {
		t.Errorf("appended row date = %q want 2024-01-02", got)
	}
}

func TestMergeIntoEmptyHistory(t *testing.T) {
	dst := tableOf(t, []string{"date", "calories"})
	src := tableOf(t, []string{"date", "calories"}, Row{"2024-01-01", "2000"})

	out, added, err := Merge(dst, src)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if added != 1 || out.Len() != 1 {
		t.Fatalf("Merge() added=%d len=%d want 1 and 1", added, out.Len())
	}
	if !slices.Equal(out.Row(0), Row{"2024-01-01", "2000"}) {
		t.Errorf("row = %v", out.Row(0))
	}
}

func TestMergeDuplicateKeysInSource(t *testing.T) {
	// The same date twice with different calories: first occurrence wins.
	dst := tableOf(t, []string{"date", "calories"})
	src := tableOf(t, []string{"date", "calories"},
		Row{"2024-01-01", "2000"},
		Row{"2024-01-01", "2500"},
	)

	out, added, err := Merge(dst, src)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if added != 1 {
		t.Errorf("Merge() added = %d want 1", added)
	}
	if got := out.Get(out.Row(0), "calories"); got != "2000" {
		t.Errorf("kept calories = %q want first occurrence 2000", got)
	}
}

func TestMergeKeysCompareAcrossFormats(t *testing.T) {
	// The destination says 2025-12-15, the source says 15-Dec-25: same day.
	dst := tableOf(t, []string{"date", "weight"}, Row{"2025-12-15", "181"})
	src := tableOf(t, []string{"Date", "Weight"}, Row{"15-Dec-25", "182"})

	out, added, err := Merge(dst, src)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if added != 0 || out.Len() != 1 {
		t.Errorf("Merge() added=%d len=%d want 0 and 1", added, out.Len())
	}
}

func TestMergePreservesDestinationOrder(t *testing.T) {
	dst := tableOf(t, []string{"date", "weight"},
		Row{"2024-01-03", "181"}, // deliberately not sorted
		Row{"2024-01-01", "180"},
	)
	src := tableOf(t, []string{"date", "weight"},
		Row{"2024-01-05", "179"},
		Row{"2024-01-04", "179.5"},
	)

	out, added, err := Merge(dst, src)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if added != 2 {
		t.Errorf("Merge() added = %d want 2", added)
	}
	want := []string{"2024-01-03", "2024-01-01", "2024-01-05", "2024-01-04"}
	for i, w := range want {
		if got := out.Get(out.Row(i), "date"); got != w {
			t.Errorf("row %d date = %q want %q", i, got, w)
		}
	}
}

func TestMergeIsPure(t *testing.T) {
	dst := tableOf(t, []string{"date", "weight"}, Row{"2024-01-01", "180"})
	src := tableOf(t, []string{"date", "weight"}, Row{"2024-01-02", "179"})

	if _, _, err := Merge(dst, src); err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if dst.Len() != 1 || src.Len() != 1 {
		t.Errorf("Merge() modified its inputs: dst=%d src=%d rows", dst.Len(), src.Len())
	}
}

func TestMergeRejectsUnparsableDates(t *testing.T) {
	dst := tableOf(t, []string{"date", "weight"})
	src := tableOf(t, []string{"date", "weight"}, Row{"not a date", "180"})

	if _, _, err := Merge(dst, src); !errors.Is(err, ErrFormat) {
		t.Errorf("Merge() error = %v want ErrFormat", err)
	}
}

func TestMergeRejectsMissingDateColumn(t *testing.T) {
	dst := tableOf(t, []string{"date", "weight"})
	src := tableOf(t, []string{"weight"}, Row{"180"})

	if _, _, err := Merge(dst, src); !errors.Is(err, ErrFormat) {
		t.Errorf("Merge() error = %v want ErrFormat", err)
	}
}

func TestKeyCanonicalizes(t *testing.T) {
	table := NewTable("Date", "Food")
	for _, raw := range []string{"2025-12-15", " 15-Dec-25 ", "12/15/2025"} {
		k, err := table.Key(Row{raw, "2000"})
		if err != nil {
			t.Errorf("Key(%q) error: %v", raw, err)
			continue
		}
		if k != "2025-12-15" {
			t.Errorf("Key(%q) = %q want 2025-12-15", raw, k)
		}
	}
}
