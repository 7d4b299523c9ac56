package risk

import (
	"fmt"

	"github.com/rustyeddy/advisor/config"
	"github.com/rustyeddy/advisor/market"
)

// AdjustRisk scales the base risk percentage down when the regime filters
// fire. The trend cut is applied first, then the volatility cut; both
// compose multiplicatively. The result is never negative and never above
// the base. Reasons describe every cut that was applied.
func AdjustRisk(baseRiskPct float64, snap market.Snapshot, cfg config.RegimeConfig) (float64, []string) {
	if !cfg.Enabled {
		return baseRiskPct, nil
	}

	eff := baseRiskPct
	var reasons []string

	if snap.TrendSMA > 0 && snap.Close < snap.TrendSMA {
		eff = eff * cfg.TrendMultiplier
		reasons = append(reasons, fmt.Sprintf(
			"trend filter: price %.2f below SMA(%d) %.2f, risk scaled by %.2f",
			snap.Close, cfg.TrendSMA, snap.TrendSMA, cfg.TrendMultiplier))
	}

	if snap.Close > 0 {
		atrPct := snap.ATR / snap.Close
		if atrPct > cfg.VolATRPctThreshold {
			eff = eff * cfg.VolMultiplier
			reasons = append(reasons, fmt.Sprintf(
				"volatility filter: ATR(%d) is %.2f%% of price, above %.2f%%, risk scaled by %.2f",
				cfg.VolATRWindow, 100*atrPct, 100*cfg.VolATRPctThreshold, cfg.VolMultiplier))
		}
	}

	if eff < 0 {
		eff = 0
	}
	return eff, reasons
}
