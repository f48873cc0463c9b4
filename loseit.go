package fitlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mkeller/fitlog/date"
)

// DailySummary is one row of the "Daily Summary" section of a LoseIt weekly
// export. Figures are whole calories; blanks and "-" placeholders read as 0.
type DailySummary struct {
	Day      date.Date
	Budget   int
	Food     int
	Exercise int
	Net      int
	Balance  int
}

// ReadDailySummary scans a LoseIt weekly export for its Daily Summary table.
// The export is a multi-section CSV: the section of interest starts after a
// header row like ",Budget,Food,..." and ends at the first row whose leading
// cell is not a date (a totals line, a blank, or the next section).
func ReadDailySummary(r io.Reader) ([]DailySummary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var out []DailySummary
	inDaily := false
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed LoseIt export (%v): %w", err, ErrFormat)
		}
		if len(rec) == 0 {
			continue
		}
		if !inDaily {
			if len(rec) >= 3 &&
				strings.TrimSpace(rec[0]) == "" &&
				strings.TrimSpace(rec[1]) == "Budget" &&
				strings.HasPrefix(strings.TrimSpace(rec[2]), "Food") {
				inDaily = true
			}
			continue
		}

		day, err := date.Parse(rec[0])
		if err != nil {
			break // end of the Daily Summary section
		}
		out = append(out, DailySummary{
			Day:      day,
			Budget:   intField(rec, 1),
			Food:     intField(rec, 2),
			Exercise: intField(rec, 3),
			Net:      intField(rec, 4),
			Balance:  intField(rec, 5),
		})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no Daily Summary section found: %w", ErrFormat)
	}
	return out, nil
}

// intField reads the i-th cell as whole calories, 0 when absent.
func intField(rec []string, i int) int {
	if i >= len(rec) {
		return 0
	}
	q, ok := ParseQuantity(rec[i])
	if !ok {
		return 0
	}
	return int(q.Float64())
}

// LoseitEstimate builds a maintenance estimate for the export period. LoseIt
// exports do not carry weights, so the caller supplies the weight on the
// first and last day.
func LoseitEstimate(days []DailySummary, startWeight, endWeight float64) (*Estimate, error) {
	if len(days) < 2 {
		return nil, fmt.Errorf("not enough days in the export: need at least 2, got %d", len(days))
	}
	var sum float64
	for _, d := range days {
		sum += float64(d.Net)
	}
	from, to := days[0].Day, days[len(days)-1].Day
	return NewEstimate(from, to, len(days), sum/float64(len(days)), startWeight, endWeight), nil
}
