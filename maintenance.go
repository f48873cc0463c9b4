package fitlog

import (
	"fmt"

	"github.com/mkeller/fitlog/date"
)

// caloriesPerPound is the classic energy equivalent of one pound of body
// weight.
const caloriesPerPound = 3500.0

// Estimate is a maintenance-calorie estimate derived from a run of logged
// days: the average net intake plus the daily calorie gap that explains the
// observed weight change.
type Estimate struct {
	From, To    date.Date
	Days        int
	AvgNet      float64
	StartWeight float64
	EndWeight   float64
	DailyGap    float64
	Maintenance float64
}

// DeltaWeight returns the weight change over the period, positive for a gain.
func (e *Estimate) DeltaWeight() float64 { return e.EndWeight - e.StartWeight }

// NewEstimate combines an average net intake with the observed weight trend.
func NewEstimate(from, to date.Date, days int, avgNet, startWeight, endWeight float64) *Estimate {
	gap := (endWeight - startWeight) * caloriesPerPound / float64(days)
	return &Estimate{
		From:        from,
		To:          to,
		Days:        days,
		AvgNet:      avgNet,
		StartWeight: startWeight,
		EndWeight:   endWeight,
		DailyGap:    gap,
		Maintenance: avgNet + gap,
	}
}

// EstimateMaintenance derives an estimate from daily log entries. It needs at
// least two days carrying a net intake and two recorded weights; the weight
// trend runs from the earliest to the latest recorded weight.
func EstimateMaintenance(entries []DailyEntry) (*Estimate, error) {
	var nets []float64
	weights := &date.History[float64]{}
	for _, e := range entries {
		if net, ok := e.Net(); ok {
			nets = append(nets, net.Float64())
		}
		if e.HasWeight {
			weights.Append(e.Day, e.Weight.Float64())
		}
	}
	if len(nets) < 2 || weights.Len() < 2 {
		return nil, fmt.Errorf("not enough logged days to estimate maintenance: need at least 2 days with calories and 2 with weights, got %d and %d", len(nets), weights.Len())
	}

	var sum float64
	for _, n := range nets {
		sum += n
	}

	from, start := weights.First()
	to, end := weights.Latest()
	return NewEstimate(from, to, len(nets), sum/float64(len(nets)), start, end), nil
}
