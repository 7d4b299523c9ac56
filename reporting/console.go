// Package reporting renders scan results and safety reports for humans:
// console tables and an Excel workbook for sharing.
package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rustyeddy/advisor/risk"
	"github.com/rustyeddy/advisor/scan"
)

// RenderScan writes one row per candidate: the verdict, the sized plan
// numbers, and the reasons anything failed.
func RenderScan(w io.Writer, results []scan.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("SCAN RESULTS")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Symbol", "Verdict", "Entry", "Stop", "Shares", "Risk $", "Risk %", "R:R", "Notes"})

	for _, res := range results {
		if res.Err != nil {
			t.AppendRow(table.Row{res.Symbol, "ERROR", "", "", "", "", "", "", res.Err.Error()})
			continue
		}

		p := res.Recommendation.Plan
		t.AppendRow(table.Row{
			res.Symbol,
			string(res.Recommendation.Verdict),
			fmt.Sprintf("%.2f", p.Entry),
			fmt.Sprintf("%.2f", p.Stop),
			p.Shares,
			fmt.Sprintf("%.2f", p.RiskAmount),
			fmt.Sprintf("%.2f%%", 100*p.RiskPctOfAccount),
			rrCell(p),
			notes(res),
		})
	}

	t.Render()
}

// RenderGates writes the full gate checklist for a single candidate,
// including passed and skipped gates.
func RenderGates(w io.Writer, rec risk.Recommendation) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("GATE CHECKLIST")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Gate", "Result", "Explanation"})
	for _, g := range rec.Gates {
		t.AppendRow(table.Row{g.Name, gateStatus(g), g.Explanation})
	}

	t.Render()
}

// RenderSafety writes the strategy safety report.
func RenderSafety(w io.Writer, rep risk.SafetyReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("STRATEGY SAFETY %d/100 (%s)", rep.Score, rep.Level))
	t.SetStyle(table.StyleRounded)

	if len(rep.Warnings) == 0 {
		t.AppendRow(table.Row{"no warnings"})
		t.Render()
		return
	}

	t.AppendHeader(table.Row{"Parameter", "Level", "Message"})
	for _, wrn := range rep.Warnings {
		t.AppendRow(table.Row{wrn.Parameter, string(wrn.Level), wrn.Message})
	}

	t.Render()
}

func gateStatus(g risk.GateResult) string {
	switch {
	case g.Skipped:
		return "SKIP"
	case g.Passed:
		return "PASS"
	default:
		return "FAIL"
	}
}

func rrCell(p risk.TradePlan) string {
	if p.Target <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", p.RewardToRisk)
}

// notes summarizes what moved or blocked the plan: regime cuts first,
// then failed gates.
func notes(res scan.Result) string {
	var parts []string
	parts = append(parts, res.RegimeReasons...)
	for _, g := range res.Recommendation.Gates {
		if !g.Skipped && !g.Passed {
			parts = append(parts, g.Explanation)
		}
	}
	return strings.Join(parts, "; ")
}
