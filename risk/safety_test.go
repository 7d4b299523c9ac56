package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/advisor/config"
)

func TestEvaluateStrategySafety_CleanConfig(t *testing.T) {
	t.Parallel()

	rep := EvaluateStrategySafety(*config.Default())

	assert.Equal(t, 100, rep.Score)
	assert.Equal(t, BeginnerSafe, rep.Level)
	assert.Empty(t, rep.Warnings)
}

func TestEvaluateStrategySafety_RiskTiersDoNotStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		riskPct   float64
		wantScore int
		wantLevel WarnLevel
	}{
		{"warning tier", 0.03, 100 - 15, LevelWarning},
		{"danger tier", 0.06, 100 - 35, LevelDanger},
		{"tier boundary", 0.05, 100 - 15, LevelWarning},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			cfg.Risk.RiskPct = tt.riskPct

			rep := EvaluateStrategySafety(*cfg)

			// Only the worse tier penalizes the risk-pct dimension.
			assert.Equal(t, tt.wantScore, rep.Score)
			require.Len(t, rep.Warnings, 1)
			assert.Equal(t, "risk.risk_pct", rep.Warnings[0].Parameter)
			assert.Equal(t, tt.wantLevel, rep.Warnings[0].Level)
		})
	}
}

func TestEvaluateStrategySafety_HighRiskNoStop(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Risk.RiskPct = 0.06
	cfg.Risk.KAtr = 0

	rep := EvaluateStrategySafety(*cfg)

	assert.Equal(t, ExpertOnly, rep.Level)

	var dangers int
	for _, w := range rep.Warnings {
		if w.Level == LevelDanger {
			dangers++
		}
	}
	assert.GreaterOrEqual(t, dangers, 2)
}

func TestEvaluateStrategySafety_WarningOrderIsChecklistOrder(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Risk.RiskPct = 0.06
	cfg.Risk.MaxPositionPct = 0.8
	cfg.Risk.MinRR = 1.0
	cfg.Risk.MaxFeeRiskPct = 0.5
	cfg.Risk.KAtr = 0

	rep := EvaluateStrategySafety(*cfg)

	want := []string{
		"risk.risk_pct",
		"risk.max_position_pct",
		"risk.min_rr",
		"risk.max_fee_risk_pct",
		"risk.k_atr",
	}
	require.Len(t, rep.Warnings, len(want))
	for i, w := range rep.Warnings {
		assert.Equal(t, want[i], w.Parameter)
	}

	// 35 + 10 + 10 + 10 + 30 exceeds 100: score clamps at zero.
	assert.Equal(t, 0, rep.Score)
	assert.Equal(t, ExpertOnly, rep.Level)
}

func TestEvaluateStrategySafety_MonotonicInRiskPct(t *testing.T) {
	t.Parallel()

	prev := 101
	for _, riskPct := range []float64{0.01, 0.02, 0.03, 0.05, 0.051, 0.2} {
		cfg := config.Default()
		cfg.Risk.RiskPct = riskPct

		rep := EvaluateStrategySafety(*cfg)
		assert.LessOrEqual(t, rep.Score, prev, "riskPct=%v", riskPct)
		prev = rep.Score
	}
}

func TestLevelBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  SafetyLevel
	}{
		{100, BeginnerSafe},
		{80, BeginnerSafe},
		{79, RequiresDiscipline},
		{50, RequiresDiscipline},
		{49, ExpertOnly},
		{0, ExpertOnly},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.score), "score=%d", tt.score)
	}
}

func TestEvaluateStrategySafety_ScorePinnedAtBoundaries(t *testing.T) {
	t.Parallel()

	// Two warnings land exactly on the beginner-safe boundary.
	cfg := config.Default()
	cfg.Risk.MinRR = 1.0
	cfg.Risk.MaxFeeRiskPct = 0.5

	rep := EvaluateStrategySafety(*cfg)
	assert.Equal(t, 80, rep.Score)
	assert.Equal(t, BeginnerSafe, rep.Level)

	// Adding the no-stop danger lands exactly on requires-discipline's
	// lower boundary.
	cfg.Risk.KAtr = 0
	rep = EvaluateStrategySafety(*cfg)
	assert.Equal(t, 50, rep.Score)
	assert.Equal(t, RequiresDiscipline, rep.Level)
}
