package fitlog

import (
	"errors"
	"strings"
	"testing"
)

// loseitSample mimics the section layout of a real LoseIt weekly export.
const loseitSample = `Weekly Summary,,,,,
,,,,,
,Budget,Food,Exercise,Net,Over/Under
10-Nov-25,"1,800","1,729",250,"1,479",-321
11-Nov-25,"1,800","2,024",-,"2,024",224
12-Nov-25,"1,800",-,-,-,-
,,,,,
Totals,,,,,
Nutrients,,,,,
`

func TestReadDailySummary(t *testing.T) {
	days, err := ReadDailySummary(strings.NewReader(loseitSample))
	if err != nil {
		t.Fatalf("ReadDailySummary() error: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("ReadDailySummary() len = %d want 3", len(days))
	}

	d := days[0]
	if d.Day.String() != "2025-11-10" {
		t.Errorf("day = %s want 2025-11-10", d.Day)
	}
	if d.Budget != 1800 || d.Food != 1729 || d.Exercise != 250 || d.Net != 1479 || d.Balance != -321 {
		t.Errorf("figures = %+v", d)
	}

	// "-" placeholders read as zero.
	if days[1].Exercise != 0 || days[2].Food != 0 {
		t.Errorf("placeholders not zero: %+v %+v", days[1], days[2])
	}
}

func TestReadDailySummaryNoSection(t *testing.T) {
	_, err := ReadDailySummary(strings.NewReader("a,b,c\n1,2,3\n"))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("ReadDailySummary() error = %v want ErrFormat", err)
	}
}

func TestLoseitEstimate(t *testing.T) {
	days, err := ReadDailySummary(strings.NewReader(loseitSample))
	if err != nil {
		t.Fatalf("ReadDailySummary() error: %v", err)
	}

	e, err := LoseitEstimate(days, 182, 181)
	if err != nil {
		t.Fatalf("LoseitEstimate() error: %v", err)
	}
	if e.Days != 3 {
		t.Errorf("Days = %d want 3", e.Days)
	}
	// nets: 1479, 2024, 0
	wantAvg := (1479.0 + 2024.0) / 3
	if !almostEqual(e.AvgNet, wantAvg) {
		t.Errorf("AvgNet = %v want %v", e.AvgNet, wantAvg)
	}
	// gap = -1 lb * 3500 / 3 days
	if !almostEqual(e.DailyGap, -3500.0/3) {
		t.Errorf("DailyGap = %v", e.DailyGap)
	}
	if e.From.String() != "2025-11-10" || e.To.String() != "2025-11-12" {
		t.Errorf("period = %s..%s", e.From, e.To)
	}

	if _, err := LoseitEstimate(days[:1], 182, 181); err == nil {
		t.Errorf("LoseitEstimate() accepted a single day")
	}
}
