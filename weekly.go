package fitlog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mkeller/fitlog/date"
)

// weeklyColumns is the fixed schema of the weekly history file.
var weeklyColumns = []string{"week_start", "avg_weight", "avg_food", "avg_exercise", "avg_net"}

// DailyEntry is one day of a calorie export with its numeric fields parsed.
// Each measurement carries a presence flag: exports leave plenty of cells
// blank.
type DailyEntry struct {
	Day      date.Date
	Weight   Quantity
	Food     Quantity
	Exercise Quantity

	HasWeight   bool
	HasFood     bool
	HasExercise bool
}

// Net returns food minus exercise calories. It is only defined when both
// sides were recorded.
func (e DailyEntry) Net() (Quantity, bool) {
	if !e.HasFood || !e.HasExercise {
		return Quantity{}, false
	}
	return e.Food.Sub(e.Exercise), true
}

// DailyEntries extracts dated entries from an export table through the alias
// mapping. Rows without a parseable date are skipped: exports routinely carry
// totals and separator lines between the data.
func DailyEntries(t *Table) ([]DailyEntry, error) {
	di := t.canonicalColumn(ColDate)
	if di < 0 {
		return nil, fmt.Errorf("header %v has no date column: %w", t.columns, ErrFormat)
	}
	wi := t.canonicalColumn(ColWeight)
	fi := t.canonicalColumn(ColFood)
	ei := t.canonicalColumn(ColExercise)

	var entries []DailyEntry
	for r := range t.Rows() {
		d, err := date.Parse(r[di])
		if err != nil {
			continue
		}
		e := DailyEntry{Day: d}
		if wi >= 0 {
			e.Weight, e.HasWeight = ParseQuantity(r[wi])
		}
		if fi >= 0 {
			e.Food, e.HasFood = ParseQuantity(r[fi])
		}
		if ei >= 0 {
			e.Exercise, e.HasExercise = ParseQuantity(r[ei])
		}
		entries = append(entries, e)
	}
	return entries, nil
}

type weekBucket struct {
	weight, food, exercise, net []Quantity
}

// WeeklySummary aggregates daily entries into one row per week, keyed by the
// Monday of the week, averaging each measurement over the days that recorded
// it. Weights keep one decimal, calories round to integers.
func WeeklySummary(entries []DailyEntry) *Table {
	buckets := make(map[date.Date]*weekBucket)
	for _, e := range entries {
		ws := e.Day.WeekStart()
		b := buckets[ws]
		if b == nil {
			b = &weekBucket{}
			buckets[ws] = b
		}
		if e.HasWeight {
			b.weight = append(b.weight, e.Weight)
		}
		if e.HasFood {
			b.food = append(b.food, e.Food)
		}
		if e.HasExercise {
			b.exercise = append(b.exercise, e.Exercise)
		}
		if net, ok := e.Net(); ok {
			b.net = append(b.net, net)
		}
	}

	weeks := make([]date.Date, 0, len(buckets))
	for w := range buckets {
		weeks = append(weeks, w)
	}
	slices.SortFunc(weeks, func(a, b date.Date) int { return strings.Compare(a.String(), b.String()) })

	out := NewTable(weeklyColumns...)
	for _, w := range weeks {
		b := buckets[w]
		_ = out.Append(Row{w.String(), average(b.weight, 1), average(b.food, 0), average(b.exercise, 0), average(b.net, 0)})
	}
	return out
}

// average formats the mean of vals, or "" when nothing was recorded.
func average(vals []Quantity, places int32) string {
	if len(vals) == 0 {
		return ""
	}
	var sum Quantity
	for _, v := range vals {
		sum = sum.Add(v)
	}
	return sum.DivInt(len(vals)).StringFixed(places)
}

// MergeWeekly folds a fresh weekly summary into the weekly history table.
// Unlike the daily import, an existing week is replaced when its figures
// changed: late log entries revise a week's averages. The result is sorted by
// week start, and counts of added and updated weeks are reported.
func MergeWeekly(history, weekly *Table) (*Table, int, int, error) {
	mapping := NewMapping(history, weekly)

	rows := make(map[string]Row)
	var keys []string
	for r := range history.Rows() {
		k, err := history.Key(r)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("weekly history: %w", err)
		}
		if _, dup := rows[k]; !dup {
			keys = append(keys, k)
		}
		rows[k] = r
	}

	var added, updated int
	for r := range weekly.Rows() {
		k, err := weekly.Key(r)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("weekly summary: %w", err)
		}
		nr := mapping.Apply(r)
		old, ok := rows[k]
		switch {
		case !ok:
			added++
			keys = append(keys, k)
		case !slices.Equal(old, nr):
			updated++
		}
		rows[k] = nr
	}

	// Keys are canonical ISO dates, lexical order is chronological order.
	slices.Sort(keys)
	out := NewTable(history.columns...)
	for _, k := range keys {
		if err := out.Append(rows[k]); err != nil {
			return nil, 0, 0, err
		}
	}
	return out, added, updated, nil
}
