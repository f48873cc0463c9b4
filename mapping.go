package fitlog

import "strings"

// Canonical column names used across history files.
const (
	ColDate     = "date"
	ColFood     = "food"
	ColExercise = "exercise"
	ColWeight   = "weight"
)

// aliases relates each canonical column name with the header spellings seen
// in the wild. Matching happens on normalized names, so "Exer." in a LoseIt
// export lands on "exercise".
var aliases = map[string][]string{
	ColDate:     {"date", "day", "entry_date", "log_date", "timestamp", "week_start"},
	ColFood:     {"food", "calories", "cals", "kcal", "intake", "eaten", "caloriesin"},
	ColExercise: {"exercise", "exer", "exer.", "burned", "calories_burned", "activity", "exercisecals"},
	ColWeight:   {"weight", "weight_lbs", "lbs", "bodyweight", "scale_weight", "weightlbs"},
}

// normalizeName lowercases a header and folds whitespace to underscores.
func normalizeName(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
}

// canonicalName resolves a header to its canonical column name, or to its
// normalized form when no alias matches.
func canonicalName(h string) string {
	n := normalizeName(h)
	for canonical, list := range aliases {
		for _, a := range list {
			if normalizeName(a) == n {
				return canonical
			}
		}
	}
	return n
}

// canonicalColumn returns the index of the table column whose canonical name
// is canon, or -1.
func (t *Table) canonicalColumn(canon string) int {
	for i, c := range t.columns {
		if canonicalName(c) == canon {
			return i
		}
	}
	return -1
}

// Mapping is the column correspondence between a destination table and a
// source table, established once at the boundary. The merge itself only ever
// sees rows already reshaped into the destination schema.
type Mapping struct {
	cols []int // source column index per destination column, -1 when unmapped
}

// NewMapping matches the destination header against the source header by
// canonical name. Source columns with no destination counterpart are dropped.
func NewMapping(dst, src *Table) Mapping {
	cols := make([]int, len(dst.columns))
	for i, c := range dst.columns {
		cols[i] = -1
		want := canonicalName(c)
		for j, s := range src.columns {
			if canonicalName(s) == want {
				cols[i] = j
				break
			}
		}
	}
	return Mapping{cols: cols}
}

// Apply reshapes a source row into the destination schema. Unmapped
// destination columns are left empty.
func (m Mapping) Apply(r Row) Row {
	out := make(Row, len(m.cols))
	for i, j := range m.cols {
		if j >= 0 && j < len(r) {
			out[i] = strings.TrimSpace(r[j])
		}
	}
	return out
}
