package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/rustyeddy/advisor/config"
	"github.com/rustyeddy/advisor/scan"
)

// WriteScanXLSX writes a scan report workbook: one sheet with the per
// candidate results and one with the strategy parameters used.
func WriteScanXLSX(path string, cfg config.Strategy, results []scan.Result) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const scanSheet = "Scan"
	const strategySheet = "Strategy"

	fx.SetSheetName(fx.GetSheetName(0), scanSheet)
	if _, err := fx.NewSheet(strategySheet); err != nil {
		return err
	}

	if err := writeScanSheet(fx, scanSheet, results); err != nil {
		return err
	}
	if err := writeStrategySheet(fx, strategySheet, cfg); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func writeScanSheet(fx *excelize.File, sheet string, results []scan.Result) error {
	header := []any{"Symbol", "Verdict", "Entry", "Stop", "Target", "Shares",
		"Position Value", "Risk Amount", "Risk Pct", "Reward:Risk", "Fee:Risk", "Notes"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, res := range results {
		cell := fmt.Sprintf("A%d", i+2)
		if res.Err != nil {
			row := []any{res.Symbol, "ERROR", nil, nil, nil, nil, nil, nil, nil, nil, nil, res.Err.Error()}
			if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
			continue
		}

		p := res.Recommendation.Plan
		row := []any{
			res.Symbol,
			string(res.Recommendation.Verdict),
			p.Entry,
			p.Stop,
			p.Target,
			p.Shares,
			p.PositionValue,
			p.RiskAmount,
			p.RiskPctOfAccount,
			p.RewardToRisk,
			p.FeeToRiskPct,
			notes(res),
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func writeStrategySheet(fx *excelize.File, sheet string, cfg config.Strategy) error {
	rows := [][]any{
		{"Parameter", "Value"},
		{"account_size", cfg.Risk.AccountSize},
		{"risk_pct", cfg.Risk.RiskPct},
		{"max_position_pct", cfg.Risk.MaxPositionPct},
		{"k_atr", cfg.Risk.KAtr},
		{"min_shares", cfg.Risk.MinShares},
		{"min_rr", cfg.Risk.MinRR},
		{"max_fee_risk_pct", cfg.Risk.MaxFeeRiskPct},
		{"regime.enabled", cfg.Risk.Regime.Enabled},
		{"regime.trend_sma", cfg.Risk.Regime.TrendSMA},
		{"regime.trend_multiplier", cfg.Risk.Regime.TrendMultiplier},
		{"regime.vol_atr_window", cfg.Risk.Regime.VolATRWindow},
		{"regime.vol_atr_pct_threshold", cfg.Risk.Regime.VolATRPctThreshold},
		{"regime.vol_multiplier", cfg.Risk.Regime.VolMultiplier},
		{"manage.breakeven_at_r", cfg.Manage.BreakevenAtR},
		{"manage.trail_after_r", cfg.Manage.TrailAfterR},
		{"manage.trail_sma", cfg.Manage.TrailSMA},
		{"manage.sma_buffer_pct", cfg.Manage.SMABufferPct},
		{"manage.max_holding_days", cfg.Manage.MaxHoldingDays},
	}

	for i, row := range rows {
		if err := fx.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}
	return nil
}
