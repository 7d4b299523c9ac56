package journal

import (
	"strings"
	"time"

	"github.com/rustyeddy/advisor/pkg/id"
	"github.com/rustyeddy/advisor/risk"
)

// EvaluationRecord is one journaled recommendation: the verdict, the
// numbers behind it, and the reasons any gate failed.
type EvaluationRecord struct {
	ID      string
	Time    time.Time
	Symbol  string
	Verdict string

	Entry         float64
	Stop          float64
	Target        float64
	Shares        int
	PositionValue float64
	RiskAmount    float64
	RiskPct       float64
	RewardRisk    float64
	FeeRisk       float64

	Reasons string
}

// Journal persists evaluation records.
type Journal interface {
	RecordEvaluation(EvaluationRecord) error
	Close() error
}

// NewEvaluationRecord flattens a recommendation into a record, stamping
// it with a fresh ULID and the given evaluation time. Failed-gate
// explanations are joined into Reasons.
func NewEvaluationRecord(symbol string, rec risk.Recommendation, at time.Time) EvaluationRecord {
	var failed []string
	for _, g := range rec.Gates {
		if !g.Skipped && !g.Passed {
			failed = append(failed, g.Name+": "+g.Explanation)
		}
	}

	p := rec.Plan
	return EvaluationRecord{
		ID:            id.New(),
		Time:          at,
		Symbol:        symbol,
		Verdict:       string(rec.Verdict),
		Entry:         p.Entry,
		Stop:          p.Stop,
		Target:        p.Target,
		Shares:        p.Shares,
		PositionValue: p.PositionValue,
		RiskAmount:    p.RiskAmount,
		RiskPct:       p.RiskPctOfAccount,
		RewardRisk:    p.RewardToRisk,
		FeeRisk:       p.FeeToRiskPct,
		Reasons:       strings.Join(failed, "; "),
	}
}
