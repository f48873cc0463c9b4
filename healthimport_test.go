package fitlog

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

const healthSample = `{
  "meta": {"app": "scale-sync", "unit": "lbs"},
  "data": [
    {"date": "2025-12-15", "weightLbs": 181.2, "bodyFat": 22.1},
    {"date": "2025-12-16", "weightLbs": 180.8}
  ]
}`

func TestReadHealthExport(t *testing.T) {
	paths := HealthPaths{Entries: "$.data", Date: "$.date", Weight: "$.weightLbs"}
	table, err := ReadHealthExport(strings.NewReader(healthSample), paths)
	if err != nil {
		t.Fatalf("ReadHealthExport() error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("ReadHealthExport() len = %d want 2", table.Len())
	}
	if !slices.Equal(table.Row(0), Row{"2025-12-15", "181.2"}) {
		t.Errorf("row 0 = %v", table.Row(0))
	}
	if !slices.Equal(table.Row(1), Row{"2025-12-16", "180.8"}) {
		t.Errorf("row 1 = %v", table.Row(1))
	}
}

func TestReadHealthExportMergesIntoHistory(t *testing.T) {
	paths := HealthPaths{Entries: "$.data", Date: "$.date", Weight: "$.weightLbs"}
	src, err := ReadHealthExport(strings.NewReader(healthSample), paths)
	if err != nil {
		t.Fatalf("ReadHealthExport() error: %v", err)
	}

	dst := tableOf(t, []string{"date", "weight"}, Row{"2025-12-15", "181.0"})
	out, added, err := Merge(dst, src)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if added != 1 || out.Len() != 2 {
		t.Errorf("Merge() added=%d len=%d want 1 and 2", added, out.Len())
	}
}

func TestReadHealthExportBadPath(t *testing.T) {
	paths := HealthPaths{Entries: "$.nope", Date: "$.date", Weight: "$.weightLbs"}
	if _, err := ReadHealthExport(strings.NewReader(healthSample), paths); !errors.Is(err, ErrFormat) {
		t.Errorf("ReadHealthExport() error = %v want ErrFormat", err)
	}
}

func TestReadHealthExportBadJSON(t *testing.T) {
	paths := HealthPaths{Entries: "$.data", Date: "$.date", Weight: "$.weightLbs"}
	if _, err := ReadHealthExport(strings.NewReader("{"), paths); !errors.Is(err, ErrFormat) {
		t.Errorf("ReadHealthExport() error = %v want ErrFormat", err)
	}
}
