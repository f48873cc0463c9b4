package fitlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mkeller/fitlog/date"
)

// Workout export column names, matching the app's tab separated export.
const (
	workoutDateCol     = "Date"
	workoutExerciseCol = "Exercise Name"
	workoutWeightCol   = "Weight"
	workoutRepsCol     = "Reps"
)

// Reps outside this range make 1RM formulas meaningless.
const (
	minReps = 1
	maxReps = 20
)

// Set is one logged set of an exercise.
type Set struct {
	Day      date.Date
	Exercise string
	Weight   float64
	Reps     int
}

// Formula selects the 1RM estimation formula.
type Formula string

const (
	Epley   Formula = "epley"
	Brzycki Formula = "brzycki"
)

// ParseFormula validates a formula name.
func ParseFormula(s string) (Formula, error) {
	switch f := Formula(strings.ToLower(s)); f {
	case Epley, Brzycki:
		return f, nil
	default:
		return "", fmt.Errorf("unknown formula %q, want %q or %q", s, Epley, Brzycki)
	}
}

// OneRM estimates the one-rep max for a set. reps must not exceed maxReps,
// which ReadWorkoutLog guarantees; the Brzycki formula diverges at 37.
func (f Formula) OneRM(weight float64, reps int) float64 {
	if reps <= 1 {
		return weight
	}
	switch f {
	case Brzycki:
		return weight * 36.0 / (37.0 - float64(reps))
	default:
		return weight * (1.0 + float64(reps)/30.0)
	}
}

// ReadWorkoutLog parses a tab separated workout export. The header must carry
// the Date, Exercise Name, Weight and Reps columns. Rows with an unparsable
// date or number, or reps outside the sane range, are dropped: exports carry
// notes and bodyweight rows between the working sets.
func ReadWorkoutLog(r io.Reader) ([]Set, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed workout export (%v): %w", err, ErrFormat)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row: %w", ErrFormat)
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, c := range []string{workoutDateCol, workoutExerciseCol, workoutWeightCol, workoutRepsCol} {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns %v in header %v: %w", missing, header, ErrFormat)
	}

	di, xi, wi, ri := index[workoutDateCol], index[workoutExerciseCol], index[workoutWeightCol], index[workoutRepsCol]
	var sets []Set
	for _, rec := range records[1:] {
		if len(rec) <= di || len(rec) <= xi || len(rec) <= wi || len(rec) <= ri {
			continue
		}
		day, err := date.Parse(rec[di])
		if err != nil {
			continue
		}
		exercise := strings.TrimSpace(rec[xi])
		weight, okW := ParseQuantity(rec[wi])
		reps, okR := ParseQuantity(rec[ri])
		if exercise == "" || !okW || !okR {
			continue
		}
		n := int(reps.Float64())
		if n < minReps || n > maxReps {
			continue
		}
		sets = append(sets, Set{Day: day, Exercise: exercise, Weight: weight.Float64(), Reps: n})
	}
	return sets, nil
}

// DailyBest is the best estimated 1RM for one exercise on one day, so that
// multiple sets of a session collapse to a single point.
type DailyBest struct {
	Day      date.Date
	Exercise string
	OneRM    float64
}

// BestPerDay collapses sets to the best estimated 1RM per exercise and day,
// sorted by exercise then day.
func BestPerDay(sets []Set, f Formula) []DailyBest {
	type key struct {
		exercise string
		day      date.Date
	}
	best := make(map[key]float64)
	for _, s := range sets {
		k := key{s.Exercise, s.Day}
		if rm := f.OneRM(s.Weight, s.Reps); rm > best[k] {
			best[k] = rm
		}
	}

	out := make([]DailyBest, 0, len(best))
	for k, rm := range best {
		out = append(out, DailyBest{Day: k.day, Exercise: k.exercise, OneRM: rm})
	}
	slices.SortFunc(out, func(a, b DailyBest) int {
		if c := strings.Compare(a.Exercise, b.Exercise); c != 0 {
			return c
		}
		return a.Day.Sub(b.Day)
	})
	return out
}

// PRGap reports how long an exercise has gone without a new estimated 1RM
// record.
type PRGap struct {
	Exercise  string
	Sessions  int
	PR        float64
	PRDay     date.Date
	LastDay   date.Date
	DaysSince int
}

// PRGaps computes the PR gap for every exercise with at least minSessions
// logged days, longest drought first. daily must be sorted as produced by
// BestPerDay. When an exercise hit the same PR twice, the first day counts.
func PRGaps(daily []DailyBest, minSessions int) []PRGap {
	var out []PRGap
	for start := 0; start < len(daily); {
		end := start
		for end < len(daily) && daily[end].Exercise == daily[start].Exercise {
			end++
		}
		group := daily[start:end]
		start = end

		if len(group) < minSessions {
			continue
		}
		gap := PRGap{Exercise: group[0].Exercise, Sessions: len(group)}
		for _, d := range group {
			if d.OneRM > gap.PR {
				gap.PR = d.OneRM
				gap.PRDay = d.Day
			}
			gap.LastDay = d.Day
		}
		gap.DaysSince = gap.LastDay.Sub(gap.PRDay)
		out = append(out, gap)
	}

	slices.SortFunc(out, func(a, b PRGap) int {
		if c := b.DaysSince - a.DaysSince; c != 0 {
			return c
		}
		return strings.Compare(a.Exercise, b.Exercise)
	})
	return out
}

// HistoryPoint is one session in an exercise's 1RM history. IsPR marks the
// sessions that matched or beat every earlier estimate.
type HistoryPoint struct {
	Day   date.Date
	OneRM float64
	IsPR  bool
}

// ExerciseHistory extracts the day-by-day 1RM history of one exercise,
// matched case-insensitively.
func ExerciseHistory(daily []DailyBest, exercise string) []HistoryPoint {
	var out []HistoryPoint
	var pr float64
	for _, d := range daily {
		if !strings.EqualFold(d.Exercise, exercise) {
			continue
		}
		isPR := d.OneRM >= pr
		if isPR {
			pr = d.OneRM
		}
		out = append(out, HistoryPoint{Day: d.Day, OneRM: d.OneRM, IsPR: isPR})
	}
	return out
}
