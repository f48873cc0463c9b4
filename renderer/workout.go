package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/mkeller/fitlog"
)

// PRGapsMarkdown renders the days-since-PR report: exercises with the
// longest time since their best estimated 1RM, longest drought first.
func PRGapsMarkdown(gaps []fitlog.PRGap, formula fitlog.Formula) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Days since PR (estimated 1RM, %s)", formula))

	rows := make([][]string, 0, len(gaps))
	for _, g := range gaps {
		rows = append(rows, []string{
			g.Exercise,
			strconv.Itoa(g.Sessions),
			fmt.Sprintf("%.0f", g.PR),
			g.PRDay.String(),
			g.LastDay.String(),
			fmt.Sprintf("%dd", g.DaysSince),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Exercise", "Sessions", "PR 1RM", "PR day", "Last day", "Since PR"},
		Rows:   rows,
	})

	return doc.String()
}

// ExerciseHistoryMarkdown renders one exercise's estimated 1RM history, PR
// sessions marked.
func ExerciseHistoryMarkdown(exercise string, points []fitlog.HistoryPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Estimated 1RM over time, %s", exercise))

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		pr := ""
		if p.IsPR {
			pr = "PR"
		}
		rows = append(rows, []string{p.Day.String(), fmt.Sprintf("%.0f", p.OneRM), pr})
	}
	doc.Table(md.TableSet{Header: []string{"Day", "Est. 1RM", ""}, Rows: rows})

	return doc.String()
}

// PercentMarkdown renders a percentage-of-max table for a given 1RM.
func PercentMarkdown(max float64, percents []int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Percentages of %.1f lbs", max))

	rows := make([][]string, 0, len(percents))
	for _, p := range percents {
		rows = append(rows, []string{
			fmt.Sprintf("%d%%", p),
			fmt.Sprintf("%.1f lbs", max*float64(p)/100),
		})
	}
	doc.Table(md.TableSet{Header: []string{"Percent", "Weight"}, Rows: rows})

	return doc.String()
}
