package risk

import (
	"fmt"

	"github.com/rustyeddy/advisor/config"
)

// WarnLevel grades a safety warning.
type WarnLevel string

const (
	LevelWarning WarnLevel = "warning"
	LevelDanger  WarnLevel = "danger"
)

// SafetyLevel is the discrete grade derived from the safety score.
type SafetyLevel string

const (
	BeginnerSafe       SafetyLevel = "beginner-safe"
	RequiresDiscipline SafetyLevel = "requires-discipline"
	ExpertOnly         SafetyLevel = "expert-only"
)

// SafetyWarning is one triggered heuristic.
type SafetyWarning struct {
	Parameter string
	Level     WarnLevel
	Message   string
}

// SafetyReport grades an entire strategy configuration, independent of
// any candidate. Recomputed fully on every call.
type SafetyReport struct {
	Score    int
	Level    SafetyLevel
	Warnings []SafetyWarning
}

// heuristic is one row of the safety checklist. Rows are evaluated in
// order; each triggered row subtracts its penalty from the base score.
// The two risk-pct rows have disjoint predicates so only the worse tier
// penalizes that dimension.
type heuristic struct {
	parameter string
	level     WarnLevel
	penalty   int
	triggered func(c config.Strategy) bool
	message   func(c config.Strategy) string
}

const (
	penaltyRiskWarning = 15
	penaltyRiskDanger  = 35
	penaltyMaxPosition = 10
	penaltyLowRR       = 10
	penaltyHighFeeRisk = 10
	penaltyNoStop      = 30
)

var heuristics = []heuristic{
	{
		parameter: "risk.risk_pct", level: LevelDanger, penalty: penaltyRiskDanger,
		triggered: func(c config.Strategy) bool { return c.Risk.RiskPct > 0.05 },
		message: func(c config.Strategy) string {
			return fmt.Sprintf("risking %.1f%% of the account per trade; above 5%% a short losing streak is unrecoverable", 100*c.Risk.RiskPct)
		},
	},
	{
		parameter: "risk.risk_pct", level: LevelWarning, penalty: penaltyRiskWarning,
		triggered: func(c config.Strategy) bool { return c.Risk.RiskPct > 0.02 && c.Risk.RiskPct <= 0.05 },
		message: func(c config.Strategy) string {
			return fmt.Sprintf("risking %.1f%% of the account per trade; most position-sizing guides cap this at 2%%", 100*c.Risk.RiskPct)
		},
	},
	{
		parameter: "risk.max_position_pct", level: LevelWarning, penalty: penaltyMaxPosition,
		triggered: func(c config.Strategy) bool { return c.Risk.MaxPositionPct > 0.5 },
		message: func(c config.Strategy) string {
			return fmt.Sprintf("a single position may reach %.0f%% of the account; concentration amplifies gap risk", 100*c.Risk.MaxPositionPct)
		},
	},
	{
		parameter: "risk.min_rr", level: LevelWarning, penalty: penaltyLowRR,
		triggered: func(c config.Strategy) bool { return c.Risk.MinRR < 1.5 },
		message: func(c config.Strategy) string {
			return fmt.Sprintf("minimum reward:risk of %.2f accepts trades that need a high win rate to break even", c.Risk.MinRR)
		},
	},
	{
		parameter: "risk.max_fee_risk_pct", level: LevelWarning, penalty: penaltyHighFeeRisk,
		triggered: func(c config.Strategy) bool { return c.Risk.MaxFeeRiskPct > 0.3 },
		message: func(c config.Strategy) string {
			return fmt.Sprintf("allowing costs up to %.0f%% of risk taken; fees erode the edge on small positions", 100*c.Risk.MaxFeeRiskPct)
		},
	},
	{
		parameter: "risk.k_atr", level: LevelDanger, penalty: penaltyNoStop,
		triggered: func(c config.Strategy) bool { return c.Risk.KAtr == 0 },
		message: func(c config.Strategy) string {
			return "ATR stop multiplier is zero: the strategy has no stop-loss mechanism"
		},
	},
}

// EvaluateStrategySafety scores a strategy configuration from 100 down,
// one penalty per triggered heuristic, clamped to [0, 100]. The warning
// list preserves checklist order.
func EvaluateStrategySafety(cfg config.Strategy) SafetyReport {
	score := 100
	var warnings []SafetyWarning

	for _, h := range heuristics {
		if !h.triggered(cfg) {
			continue
		}
		score -= h.penalty
		warnings = append(warnings, SafetyWarning{
			Parameter: h.parameter,
			Level:     h.level,
			Message:   h.message(cfg),
		})
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return SafetyReport{
		Score:    score,
		Level:    levelFor(score),
		Warnings: warnings,
	}
}

func levelFor(score int) SafetyLevel {
	switch {
	case score >= 80:
		return BeginnerSafe
	case score >= 50:
		return RequiresDiscipline
	default:
		return ExpertOnly
	}
}
