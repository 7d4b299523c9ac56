package manage

import (
	"fmt"

	"github.com/rustyeddy/advisor/config"
	"github.com/rustyeddy/advisor/market"
)

// Action is the stop engine's proposal for a position.
type Action string

const (
	ActionHold       Action = "HOLD"
	ActionMoveStopUp Action = "MOVE_STOP_UP"
	ActionExit       Action = "EXIT"
)

// StopSuggestion is the engine's proposal for one position on one bar.
// Stop is only meaningful when Action is MOVE_STOP_UP.
type StopSuggestion struct {
	Action Action
	Stop   float64
	RNow   float64
	Reason string
}

// InitialStop computes the ATR-based stop for a new entry. With kAtr of
// zero the stop equals the entry, which the valid-stop gate rejects:
// a strategy without a stop mechanism never produces a recommendable plan.
func InitialStop(entry, atr, kAtr float64) float64 {
	return entry - kAtr*atr
}

// SuggestStop proposes the next stop for an open position given the
// current bar. The function is pure and idempotent; identical inputs
// always yield the identical suggestion. A suggested stop is always
// strictly above the current stop, so a caller applying suggestions in
// bar order gets a monotonically non-decreasing stop.
//
// Rule order: holding-period exit, breakeven, SMA trail, hold.
func SuggestStop(pos Position, bar market.Snapshot, cfg config.ManageConfig) StopSuggestion {
	if exceededHoldingPeriod(pos, bar, cfg) {
		held := int(bar.AsOf.Sub(pos.OpenedAt).Hours() / 24)
		return StopSuggestion{
			Action: ActionExit,
			Reason: fmt.Sprintf("held %d days, beyond maximum %d", held, cfg.MaxHoldingDays),
		}
	}

	initialRisk := pos.EntryPrice - pos.InitialStop
	if initialRisk <= 0 {
		return StopSuggestion{
			Action: ActionHold,
			Reason: fmt.Sprintf("initial risk per share is %.2f; R progress is undefined", initialRisk),
		}
	}

	rNow := (bar.Close - pos.EntryPrice) / initialRisk

	if rNow >= cfg.BreakevenAtR && pos.CurrentStop < pos.EntryPrice {
		return StopSuggestion{
			Action: ActionMoveStopUp,
			Stop:   pos.EntryPrice,
			RNow:   rNow,
			Reason: fmt.Sprintf("breakeven at +%.1fR reached (now %.2fR)", cfg.BreakevenAtR, rNow),
		}
	}

	if rNow >= cfg.TrailAfterR {
		candidate := bar.TrailSMA * (1 - cfg.SMABufferPct)
		if candidate > pos.CurrentStop {
			return StopSuggestion{
				Action: ActionMoveStopUp,
				Stop:   candidate,
				RNow:   rNow,
				Reason: fmt.Sprintf("trailing SMA(%d) %.2f less %.1f%% buffer gives %.2f",
					cfg.TrailSMA, bar.TrailSMA, 100*cfg.SMABufferPct, candidate),
			}
		}
		return StopSuggestion{
			Action: ActionHold,
			RNow:   rNow,
			Reason: fmt.Sprintf("trailing candidate %.2f below current stop %.2f", candidate, pos.CurrentStop),
		}
	}

	return StopSuggestion{
		Action: ActionHold,
		RNow:   rNow,
		Reason: fmt.Sprintf("insufficient R progress: %.2fR, trailing starts at %.1fR", rNow, cfg.TrailAfterR),
	}
}

func exceededHoldingPeriod(pos Position, bar market.Snapshot, cfg config.ManageConfig) bool {
	if pos.OpenedAt.IsZero() || bar.AsOf.IsZero() || cfg.MaxHoldingDays < 1 {
		return false
	}
	return bar.AsOf.Sub(pos.OpenedAt).Hours() > float64(cfg.MaxHoldingDays)*24
}
