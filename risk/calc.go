package risk

import (
	"fmt"
	"math"

	"github.com/rustyeddy/advisor/config"
)

// SizeInputs are the arguments to Size. Entry and Stop come from the
// candidate snapshot; the rest comes from the strategy risk config.
type SizeInputs struct {
	Entry          float64
	Stop           float64
	AccountSize    float64
	RiskPct        float64
	MaxPositionPct float64
	MinShares      int
}

// TradePlan is the sized output for one candidate. Plans are ephemeral:
// produced fresh on every evaluation and never patched in place.
type TradePlan struct {
	Entry  float64
	Stop   float64
	Target float64 // 0 means no target supplied

	Shares           int
	PositionValue    float64
	RiskPerShare     float64
	RiskBudget       float64
	RiskAmount       float64
	RiskPctOfAccount float64
	AccountPct       float64
	RewardToRisk     float64 // 0 until a target is evaluated

	EstimatedCost float64
	FeeToRiskPct  float64

	// StopValid is false when the stop is not strictly below the entry.
	// The plan is still returned (shares zeroed) so the gate checklist
	// can explain the failure.
	StopValid bool

	// MinSharesForced is true when the minimum-share floor raised the
	// share count, pushing risk above the nominal budget. The excess is
	// in RiskOverBudget.
	MinSharesForced bool
	RiskOverBudget  float64
}

// Size converts an entry/stop pair and account parameters into a sized
// trade plan. Arithmetic is performed in a fixed left-to-right order so
// identical inputs always produce identical plans.
//
// Invalid stop geometry (stop at or above entry) is a normal evaluation
// outcome, signalled on the plan; genuinely invalid inputs the caller
// controls (non-positive entry or account size, risk pct outside (0,1])
// are rejected with an error.
func Size(in SizeInputs) (TradePlan, error) {
	if in.Entry <= 0 {
		return TradePlan{}, fmt.Errorf("entry must be positive, got %v", in.Entry)
	}
	if in.AccountSize <= 0 {
		return TradePlan{}, fmt.Errorf("account size must be positive, got %v", in.AccountSize)
	}
	if in.RiskPct <= 0 || in.RiskPct > 1 {
		return TradePlan{}, fmt.Errorf("risk pct must be in (0, 1], got %v", in.RiskPct)
	}
	if in.MaxPositionPct <= 0 || in.MaxPositionPct > 1 {
		return TradePlan{}, fmt.Errorf("max position pct must be in (0, 1], got %v", in.MaxPositionPct)
	}
	if in.MinShares < 0 {
		return TradePlan{}, fmt.Errorf("min shares must be non-negative, got %d", in.MinShares)
	}

	plan := TradePlan{
		Entry:        in.Entry,
		Stop:         in.Stop,
		RiskPerShare: in.Entry - in.Stop,
		RiskBudget:   in.AccountSize * in.RiskPct,
	}

	if plan.RiskPerShare <= 0 {
		// No downside room: zero shares, gates report the geometry.
		return plan, nil
	}
	plan.StopValid = in.Stop > 0

	shares := int(math.Floor(plan.RiskBudget / plan.RiskPerShare))

	capShares := int(math.Floor(in.AccountSize * in.MaxPositionPct / in.Entry))
	if shares > capShares {
		shares = capShares
	}
	if shares < in.MinShares {
		shares = in.MinShares
		plan.MinSharesForced = true
	}

	plan.Shares = shares
	plan.RiskAmount = float64(shares) * plan.RiskPerShare
	plan.RiskPctOfAccount = plan.RiskAmount / in.AccountSize
	plan.PositionValue = float64(shares) * in.Entry
	plan.AccountPct = plan.PositionValue / in.AccountSize

	if plan.MinSharesForced && plan.RiskAmount > plan.RiskBudget {
		plan.RiskOverBudget = plan.RiskAmount - plan.RiskBudget
	}

	return plan, nil
}

// SizeTrade sizes a trade from a full strategy config.
func SizeTrade(entry, stop float64, cfg config.Strategy) (TradePlan, error) {
	return Size(SizeInputs{
		Entry:          entry,
		Stop:           stop,
		AccountSize:    cfg.Risk.AccountSize,
		RiskPct:        cfg.Risk.RiskPct,
		MaxPositionPct: cfg.Risk.MaxPositionPct,
		MinShares:      cfg.Risk.MinShares,
	})
}
