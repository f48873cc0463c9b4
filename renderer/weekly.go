package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/mkeller/fitlog"
)

// WeeklyMarkdown renders a weekly history table to markdown, newest week
// last, exactly as stored.
func WeeklyMarkdown(t *fitlog.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Weekly History")

	rows := make([][]string, 0, t.Len())
	for r := range t.Rows() {
		rows = append(rows, r)
	}
	doc.Table(md.TableSet{Header: t.Columns(), Rows: rows})

	return doc.String()
}
