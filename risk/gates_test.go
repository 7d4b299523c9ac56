package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/advisor/config"
)

func riskConfig() config.RiskConfig {
	return config.RiskConfig{
		AccountSize:    50000,
		RiskPct:        0.01,
		MaxPositionPct: 0.2,
		KAtr:           2,
		MinShares:      1,
		MinRR:          2.0,
		MaxFeeRiskPct:  0.05,
	}
}

func sizedPlan(t *testing.T, entry, stop float64) TradePlan {
	t.Helper()
	cfg := riskConfig()
	plan, err := Size(SizeInputs{
		Entry:          entry,
		Stop:           stop,
		AccountSize:    cfg.AccountSize,
		RiskPct:        cfg.RiskPct,
		MaxPositionPct: cfg.MaxPositionPct,
		MinShares:      cfg.MinShares,
	})
	require.NoError(t, err)
	return plan
}

func TestEvaluateRecommendation_AllGatesPass(t *testing.T) {
	t.Parallel()

	plan := sizedPlan(t, 100, 95)
	rec := EvaluateRecommendation(plan, riskConfig(), 112, 10)

	assert.Equal(t, Recommended, rec.Verdict)
	require.Len(t, rec.Gates, 4)
	for _, g := range rec.Gates {
		assert.True(t, g.Passed, "gate %s: %s", g.Name, g.Explanation)
		assert.False(t, g.Skipped)
	}
	assert.InDelta(t, 2.4, rec.Plan.RewardToRisk, 1e-9)
	assert.InDelta(t, 0.02, rec.Plan.FeeToRiskPct, 1e-9)
}

func TestEvaluateRecommendation_GateOrderIsFixed(t *testing.T) {
	t.Parallel()

	rec := EvaluateRecommendation(sizedPlan(t, 100, 95), riskConfig(), 0, 0)

	want := []string{"valid-stop", "minimum-shares", "reward-risk", "fee-risk"}
	require.Len(t, rec.Gates, len(want))
	for i, g := range rec.Gates {
		assert.Equal(t, want[i], g.Name)
	}
}

func TestEvaluateRecommendation_InvalidStopGeometry(t *testing.T) {
	t.Parallel()

	// Zero risk per share: gate 1 fails and every other gate is still
	// evaluated so the full explanation set is available.
	plan := sizedPlan(t, 100, 100)
	rec := EvaluateRecommendation(plan, riskConfig(), 110, 5)

	assert.Equal(t, NotRecommended, rec.Verdict)
	require.Len(t, rec.Gates, 4)

	assert.False(t, rec.Gates[0].Passed)
	assert.Contains(t, rec.Gates[0].Explanation, "stop must be below entry")

	assert.False(t, rec.Gates[1].Passed)
	assert.False(t, rec.Gates[2].Passed)
	assert.False(t, rec.Gates[3].Passed)
}

func TestEvaluateRecommendation_RewardRiskBelowMinimum(t *testing.T) {
	t.Parallel()

	// target 105: reward:risk 5/5 = 1.0 against a 2.0 minimum.
	plan := sizedPlan(t, 100, 95)
	rec := EvaluateRecommendation(plan, riskConfig(), 105, 5)

	assert.Equal(t, NotRecommended, rec.Verdict)
	rr := rec.Gates[2]
	assert.Equal(t, "reward-risk", rr.Name)
	assert.False(t, rr.Passed)
	assert.Contains(t, rr.Explanation, "1.00")
	assert.Contains(t, rr.Explanation, "2.00")
	assert.InDelta(t, 1.0, rec.Plan.RewardToRisk, 1e-9)
}

func TestEvaluateRecommendation_NoTargetSkipsRewardRisk(t *testing.T) {
	t.Parallel()

	plan := sizedPlan(t, 100, 95)
	rec := EvaluateRecommendation(plan, riskConfig(), 0, 5)

	rr := rec.Gates[2]
	assert.True(t, rr.Skipped)
	assert.Equal(t, "no target supplied", rr.Explanation)

	// A skipped gate does not count against the verdict.
	assert.Equal(t, Recommended, rec.Verdict)
}

func TestEvaluateRecommendation_FeeRiskTooHigh(t *testing.T) {
	t.Parallel()

	// Cost 50 against risk 500 is 10%, above the 5% maximum.
	plan := sizedPlan(t, 100, 95)
	rec := EvaluateRecommendation(plan, riskConfig(), 0, 50)

	assert.Equal(t, NotRecommended, rec.Verdict)
	fee := rec.Gates[3]
	assert.Equal(t, "fee-risk", fee.Name)
	assert.False(t, fee.Passed)
	assert.Contains(t, fee.Explanation, "10.0%")
}

func TestEvaluateRecommendation_ZeroSharesFailsMinimumShares(t *testing.T) {
	t.Parallel()

	cfg := riskConfig()
	cfg.AccountSize = 1000
	cfg.MinShares = 0

	plan, err := Size(SizeInputs{
		Entry:          500,
		Stop:           400,
		AccountSize:    cfg.AccountSize,
		RiskPct:        cfg.RiskPct,
		MaxPositionPct: cfg.MaxPositionPct,
		MinShares:      cfg.MinShares,
	})
	require.NoError(t, err)

	rec := EvaluateRecommendation(plan, cfg, 0, 0)

	assert.Equal(t, NotRecommended, rec.Verdict)
	ms := rec.Gates[1]
	assert.False(t, ms.Passed)
	assert.Contains(t, ms.Explanation, "risk budget")
}

func TestEvaluateRecommendation_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	plan := sizedPlan(t, 100, 95)
	before := plan
	_ = EvaluateRecommendation(plan, riskConfig(), 112, 10)

	assert.Equal(t, before, plan)
}
