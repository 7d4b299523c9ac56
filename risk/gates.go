package risk

import (
	"fmt"

	"github.com/rustyeddy/advisor/config"
)

// Verdict is the overall recommendation outcome.
type Verdict string

const (
	Recommended    Verdict = "RECOMMENDED"
	NotRecommended Verdict = "NOT_RECOMMENDED"
)

// GateResult is the outcome of one named gate. Skipped gates (a gate
// whose inputs are absent, e.g. no target) do not count against the
// verdict but still carry an explanation.
type GateResult struct {
	Name        string
	Passed      bool
	Skipped     bool
	Explanation string
}

// Recommendation is the full verdict for one sized plan: the plan with
// its derived ratios filled in, plus one result per gate. The verdict is
// RECOMMENDED iff every evaluated (non-skipped) gate passed.
type Recommendation struct {
	Verdict Verdict
	Gates   []GateResult
	Plan    TradePlan
}

// gate is one entry in the fixed checklist. Every gate is always
// evaluated, in order, with no short-circuiting, so the caller always
// has the complete explanation set.
type gate struct {
	name  string
	check func(plan TradePlan, cfg config.RiskConfig) GateResult
}

var gates = []gate{
	{"valid-stop", checkValidStop},
	{"minimum-shares", checkMinimumShares},
	{"reward-risk", checkRewardRisk},
	{"fee-risk", checkFeeRisk},
}

// EvaluateRecommendation runs the gate checklist against a sized plan.
// target (0 = none) and estimatedCost are supplied by the caller; the
// returned Recommendation carries a fresh plan with RewardToRisk and
// FeeToRiskPct computed, leaving the input untouched.
func EvaluateRecommendation(plan TradePlan, cfg config.RiskConfig, target, estimatedCost float64) Recommendation {
	plan.Target = target
	plan.EstimatedCost = estimatedCost
	if target > 0 && plan.RiskPerShare > 0 {
		plan.RewardToRisk = (target - plan.Entry) / plan.RiskPerShare
	}
	if plan.RiskAmount > 0 {
		plan.FeeToRiskPct = estimatedCost / plan.RiskAmount
	}

	rec := Recommendation{Verdict: Recommended, Plan: plan}
	for _, g := range gates {
		res := g.check(plan, cfg)
		res.Name = g.name
		rec.Gates = append(rec.Gates, res)
		if !res.Skipped && !res.Passed {
			rec.Verdict = NotRecommended
		}
	}
	return rec
}

func checkValidStop(plan TradePlan, cfg config.RiskConfig) GateResult {
	if plan.Stop <= 0 {
		return GateResult{Explanation: fmt.Sprintf(
			"stop must be positive, got %.2f", plan.Stop)}
	}
	if plan.Stop >= plan.Entry {
		return GateResult{Explanation: fmt.Sprintf(
			"stop must be below entry: stop %.2f, entry %.2f", plan.Stop, plan.Entry)}
	}
	return GateResult{Passed: true, Explanation: fmt.Sprintf(
		"stop %.2f is %.2f below entry %.2f", plan.Stop, plan.RiskPerShare, plan.Entry)}
}

func checkMinimumShares(plan TradePlan, cfg config.RiskConfig) GateResult {
	if plan.Shares < 1 {
		return GateResult{Explanation: fmt.Sprintf(
			"sized to %d shares: risk budget %.2f does not cover per-share risk %.2f",
			plan.Shares, plan.RiskBudget, plan.RiskPerShare)}
	}
	if plan.MinSharesForced && plan.RiskOverBudget > 0 {
		return GateResult{Passed: true, Explanation: fmt.Sprintf(
			"minimum share floor forced %d shares; risk %.2f exceeds budget by %.2f",
			plan.Shares, plan.RiskAmount, plan.RiskOverBudget)}
	}
	return GateResult{Passed: true, Explanation: fmt.Sprintf(
		"%d shares within budget, risking %.2f", plan.Shares, plan.RiskAmount)}
}

func checkRewardRisk(plan TradePlan, cfg config.RiskConfig) GateResult {
	if plan.Target <= 0 {
		return GateResult{Skipped: true, Explanation: "no target supplied"}
	}
	if plan.RiskPerShare <= 0 {
		return GateResult{Explanation: fmt.Sprintf(
			"reward:risk undefined: stop %.2f not below entry %.2f", plan.Stop, plan.Entry)}
	}
	if plan.RewardToRisk < cfg.MinRR {
		return GateResult{Explanation: fmt.Sprintf(
			"reward:risk %.2f below minimum %.2f (target %.2f, entry %.2f, stop %.2f)",
			plan.RewardToRisk, cfg.MinRR, plan.Target, plan.Entry, plan.Stop)}
	}
	return GateResult{Passed: true, Explanation: fmt.Sprintf(
		"reward:risk %.2f meets minimum %.2f", plan.RewardToRisk, cfg.MinRR)}
}

func checkFeeRisk(plan TradePlan, cfg config.RiskConfig) GateResult {
	if plan.RiskAmount <= 0 {
		return GateResult{Explanation: fmt.Sprintf(
			"risk amount is zero; estimated cost %.2f cannot be bounded", plan.EstimatedCost)}
	}
	if plan.FeeToRiskPct > cfg.MaxFeeRiskPct {
		return GateResult{Explanation: fmt.Sprintf(
			"estimated cost %.2f is %.1f%% of risk %.2f, above maximum %.1f%%",
			plan.EstimatedCost, 100*plan.FeeToRiskPct, plan.RiskAmount, 100*cfg.MaxFeeRiskPct)}
	}
	return GateResult{Passed: true, Explanation: fmt.Sprintf(
		"estimated cost %.2f is %.1f%% of risk %.2f, within maximum %.1f%%",
		plan.EstimatedCost, 100*plan.FeeToRiskPct, plan.RiskAmount, 100*cfg.MaxFeeRiskPct)}
}
