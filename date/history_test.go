package date

import "testing"

func TestHistoryAppendKeepsChronologicalOrder(t *testing.T) {
	h := &History[float64]{}
	h.Append(MustParse("2025-12-17"), 181.2)
	h.Append(MustParse("2025-12-15"), 182.0)
	h.Append(MustParse("2025-12-16"), 181.6)

	first, v := h.First()
	if first != MustParse("2025-12-15") || v != 182.0 {
		t.Errorf("First() = %s %v", first, v)
	}
	last, v := h.Latest()
	if last != MustParse("2025-12-17") || v != 181.2 {
		t.Errorf("Latest() = %s %v", last, v)
	}

	// Appending to an existing day replaces the value, the length is unchanged.
	h.Append(MustParse("2025-12-16"), 180.0)
	if h.Len() != 3 {
		t.Errorf("Len() = %d want 3", h.Len())
	}
	if got, ok := h.Get(MustParse("2025-12-16")); !ok || got != 180.0 {
		t.Errorf("Get() = %v %v want 180.0 true", got, ok)
	}
}
