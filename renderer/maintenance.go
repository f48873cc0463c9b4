package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/mkeller/fitlog"
)

// MaintenanceMarkdown renders a maintenance-calorie estimate to a markdown
// report, including the net targets derived from it.
func MaintenanceMarkdown(e *fitlog.Estimate) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Maintenance Estimate %s to %s", e.From, e.To))
	doc.PlainText(fmt.Sprintf("%d days, %s to %s (%+.1f lbs)",
		e.Days, pounds(e.StartWeight), pounds(e.EndWeight), e.DeltaWeight()))

	doc.H2("Figures")
	doc.Table(md.TableSet{
		Header: []string{"Figure", "Value"},
		Rows: [][]string{
			{"Average net intake (food - exercise)", calories(e.AvgNet)},
			{"Daily gap from weight trend", signedCalories(e.DailyGap)},
			{"Estimated maintenance", calories(e.Maintenance)},
		},
	})

	doc.H2("Targets")
	doc.Table(md.TableSet{
		Header: []string{"Goal", "Net target"},
		Rows: [][]string{
			{"Maintain weight", calories(e.Maintenance)},
			{"Lose ~0.5 lb/week", calories(e.Maintenance - 250)},
			{"Lose ~1.0 lb/week", calories(e.Maintenance - 500)},
			{"Gain ~0.5 lb/week", calories(e.Maintenance + 250)},
		},
	})

	return doc.String()
}
