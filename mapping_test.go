package fitlog

import (
	"slices"
	"testing"
)

func TestCanonicalName(t *testing.T) {
	cases := map[string]string{
		"Date":         ColDate,
		" entry_date ": ColDate,
		"week_start":   ColDate,
		"Food":         ColFood,
		"Calories":     ColFood,
		"kcal":         ColFood,
		"Exer.":        ColExercise,
		"Burned":       ColExercise,
		"Weight":       ColWeight,
		"weight lbs":   ColWeight,
		"avg_net":      "avg_net", // no alias, normalized form
	}
	for in, want := range cases {
		if got := canonicalName(in); got != want {
			t.Errorf("canonicalName(%q) = %q want %q", in, got, want)
		}
	}
}

func TestMappingReshapesRows(t *testing.T) {
	dst := NewTable("date", "food", "exercise", "weight")
	src := NewTable("Date", "Food", "Exer.", "Weight")

	m := NewMapping(dst, src)
	got := m.Apply(Row{"15-Dec-25", " 1,932", "350", "181.2"})
	want := Row{"15-Dec-25", "1,932", "350", "181.2"}
	if !slices.Equal(got, want) {
		t.Errorf("Apply() = %v want %v", got, want)
	}
}

func TestMappingDropsUnknownSourceColumns(t *testing.T) {
	dst := NewTable("date", "weight")
	src := NewTable("Date", "Calories", "Weight")

	m := NewMapping(dst, src)
	got := m.Apply(Row{"2024-01-02", "2100", "179.5"})
	want := Row{"2024-01-02", "179.5"}
	if !slices.Equal(got, want) {
		t.Errorf("Apply() = %v want %v", got, want)
	}
}

func TestMappingLeavesUnmappedDestinationEmpty(t *testing.T) {
	dst := NewTable("date", "weight")
	src := NewTable("Date", "Calories")

	m := NewMapping(dst, src)
	got := m.Apply(Row{"2024-01-02", "2100"})
	want := Row{"2024-01-02", ""}
	if !slices.Equal(got, want) {
		t.Errorf("Apply() = %v want %v", got, want)
	}
}
