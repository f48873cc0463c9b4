package fitlog

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// HealthPaths points at the interesting pieces of a JSON health export. The
// shape of those exports varies per app, so each piece is selected with a
// jsonpath expression.
type HealthPaths struct {
	Entries string // path to the array of entries, e.g. "$.data"
	Date    string // path to the date inside one entry, e.g. "$.date"
	Weight  string // path to the weight inside one entry, e.g. "$.weightLbs"
}

// ReadHealthExport extracts a date/weight table from a JSON health export.
// The resulting table merges into a history file like any CSV source.
func ReadHealthExport(r io.Reader, paths HealthPaths) (*Table, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("malformed json export (%v): %w", err, ErrFormat)
	}

	entries, err := jsonpath.Get(paths.Entries, doc)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q (%v): %w", paths.Entries, err, ErrFormat)
	}
	list, ok := entries.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list of 1 answer,
		// or a single answer: treat a single object as a list of one entry.
		list = []any{entries}
	}

	t := NewTable(ColDate, ColWeight)
	for i, e := range list {
		day, err := scalarAt(paths.Date, e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		weight, err := scalarAt(paths.Weight, e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		_ = t.Append(Row{day, weight})
	}
	return t, nil
}

// scalarAt evaluates a jsonpath expression expected to yield one scalar, and
// returns it in string form.
func scalarAt(path string, doc any) (string, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("jsonpath %q (%v): %w", path, err, ErrFormat)
	}
	if l, ok := v.([]any); ok && len(l) > 0 {
		v = l[0]
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case json.Number:
		return x.String(), nil
	default:
		return "", fmt.Errorf("jsonpath %q yields a %T, want a scalar: %w", path, v, ErrFormat)
	}
}
