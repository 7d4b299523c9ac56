package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

var csvHeader = []string{
	"id", "time", "symbol", "verdict", "entry", "stop", "target", "shares",
	"position_value", "risk_amount", "risk_pct", "reward_risk", "fee_risk", "reasons",
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{w, f}, nil
}

func (j *CSVJournal) RecordEvaluation(r EvaluationRecord) error {
	j.w.Write([]string{
		r.ID,
		r.Time.Format(time.RFC3339),
		r.Symbol,
		r.Verdict,
		f(r.Entry),
		f(r.Stop),
		f(r.Target),
		strconv.Itoa(r.Shares),
		f(r.PositionValue),
		f(r.RiskAmount),
		f(r.RiskPct),
		f(r.RewardRisk),
		f(r.FeeRisk),
		r.Reasons,
	})
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
