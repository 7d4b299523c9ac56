package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/advisor/risk"
)

func sampleRecommendation() risk.Recommendation {
	return risk.Recommendation{
		Verdict: risk.NotRecommended,
		Gates: []risk.GateResult{
			{Name: "valid-stop", Passed: true, Explanation: "stop 95.00 is 5.00 below entry 100.00"},
			{Name: "minimum-shares", Passed: true, Explanation: "100 shares within budget, risking 500.00"},
			{Name: "reward-risk", Passed: false, Explanation: "reward:risk 1.00 below minimum 2.00 (target 105.00, entry 100.00, stop 95.00)"},
			{Name: "fee-risk", Skipped: false, Passed: true, Explanation: "estimated cost 5.00 is 1.0% of risk 500.00, within maximum 5.0%"},
		},
		Plan: risk.TradePlan{
			Entry:            100,
			Stop:             95,
			Target:           105,
			Shares:           100,
			PositionValue:    10000,
			RiskAmount:       500,
			RiskPctOfAccount: 0.01,
			RewardToRisk:     1.0,
			FeeToRiskPct:     0.01,
		},
	}
}

func TestNewEvaluationRecord(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	rec := NewEvaluationRecord("ACME", sampleRecommendation(), at)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, at, rec.Time)
	assert.Equal(t, "ACME", rec.Symbol)
	assert.Equal(t, "NOT_RECOMMENDED", rec.Verdict)
	assert.Equal(t, 100, rec.Shares)
	assert.InDelta(t, 500.0, rec.RiskAmount, 1e-9)

	// Only failed gates land in Reasons.
	assert.Contains(t, rec.Reasons, "reward-risk:")
	assert.NotContains(t, rec.Reasons, "valid-stop")
}

func TestNewEvaluationRecordUniqueIDs(t *testing.T) {
	t.Parallel()

	at := time.Now().UTC()
	a := NewEvaluationRecord("A", sampleRecommendation(), at)
	b := NewEvaluationRecord("B", sampleRecommendation(), at)

	assert.NotEqual(t, a.ID, b.ID)
}
