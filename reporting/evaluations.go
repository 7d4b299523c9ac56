package reporting

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rustyeddy/advisor/journal"
)

// RenderEvaluations writes journaled evaluation records as a table.
func RenderEvaluations(w io.Writer, recs []journal.EvaluationRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("JOURNALED EVALUATIONS")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"ID", "Time", "Symbol", "Verdict", "Entry", "Stop", "Shares", "Risk $", "Reasons"})
	for _, r := range recs {
		t.AppendRow(table.Row{
			r.ID,
			r.Time.Format("2006-01-02 15:04"),
			r.Symbol,
			r.Verdict,
			fmt.Sprintf("%.2f", r.Entry),
			fmt.Sprintf("%.2f", r.Stop),
			r.Shares,
			fmt.Sprintf("%.2f", r.RiskAmount),
			r.Reasons,
		})
	}

	t.Render()
}
