package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Strategy is the complete advisor configuration: how much to risk per
// trade, when to scale risk down, and how to manage an open position.
// A Strategy is built once (from a file or Default) and passed around by
// value; the engine never mutates it.
type Strategy struct {
	Risk     RiskConfig     `json:"risk" yaml:"risk"`
	Manage   ManageConfig   `json:"manage" yaml:"manage"`
	Universe UniverseConfig `json:"universe" yaml:"universe"`
}

// RiskConfig contains per-trade sizing parameters.
type RiskConfig struct {
	AccountSize    float64 `json:"account_size" yaml:"account_size"`
	RiskPct        float64 `json:"risk_pct" yaml:"risk_pct"`
	MaxPositionPct float64 `json:"max_position_pct" yaml:"max_position_pct"`
	KAtr           float64 `json:"k_atr" yaml:"k_atr"`
	MinShares      int     `json:"min_shares" yaml:"min_shares"`
	MinRR          float64 `json:"min_rr" yaml:"min_rr"`
	MaxFeeRiskPct  float64 `json:"max_fee_risk_pct" yaml:"max_fee_risk_pct"`

	Regime RegimeConfig `json:"regime" yaml:"regime"`
}

// RegimeConfig controls risk scaling under adverse trend or volatility
// conditions. Multipliers are fractions in [0,1]; 1.0 disables the cut.
type RegimeConfig struct {
	Enabled            bool    `json:"enabled" yaml:"enabled"`
	TrendSMA           int     `json:"trend_sma" yaml:"trend_sma"`
	TrendMultiplier    float64 `json:"trend_multiplier" yaml:"trend_multiplier"`
	VolATRWindow       int     `json:"vol_atr_window" yaml:"vol_atr_window"`
	VolATRPctThreshold float64 `json:"vol_atr_pct_threshold" yaml:"vol_atr_pct_threshold"`
	VolMultiplier      float64 `json:"vol_multiplier" yaml:"vol_multiplier"`
}

// ManageConfig contains open-position management parameters.
// TrailAfterR below BreakevenAtR is unusual but allowed; the stop engine
// still produces a deterministic suggestion.
type ManageConfig struct {
	BreakevenAtR   float64 `json:"breakeven_at_r" yaml:"breakeven_at_r"`
	TrailAfterR    float64 `json:"trail_after_r" yaml:"trail_after_r"`
	TrailSMA       int     `json:"trail_sma" yaml:"trail_sma"`
	SMABufferPct   float64 `json:"sma_buffer_pct" yaml:"sma_buffer_pct"`
	MaxHoldingDays int     `json:"max_holding_days" yaml:"max_holding_days"`
}

// UniverseConfig carries the candidate-selection windows and filters.
// The advisor does not compute indicators; these values are consumed by
// the external screener and travel with the strategy so a config file
// round-trips intact.
type UniverseConfig struct {
	TrendWindow     int     `json:"trend_window" yaml:"trend_window"`
	VolWindow       int     `json:"vol_window" yaml:"vol_window"`
	MomWindow       int     `json:"mom_window" yaml:"mom_window"`
	MinPrice        float64 `json:"min_price" yaml:"min_price"`
	MinDollarVolume float64 `json:"min_dollar_volume" yaml:"min_dollar_volume"`
}

// LoadFromFile loads a strategy from a file (YAML or JSON based on content).
func LoadFromFile(path string) (*Strategy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read strategy file: %w", err)
	}

	cfg := &Strategy{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse strategy (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid strategy: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves the strategy to a file (JSON or YAML based on extension).
func (c *Strategy) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal strategy: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write strategy file: %w", err)
	}

	return nil
}

// Validate checks every field against its defined domain. Out-of-range
// values are rejected here, loudly, rather than clamped downstream.
func (c *Strategy) Validate() error {
	r := c.Risk
	if r.AccountSize <= 0 {
		return fmt.Errorf("risk.account_size must be positive, got %v", r.AccountSize)
	}
	if r.RiskPct <= 0 || r.RiskPct > 1 {
		return fmt.Errorf("risk.risk_pct must be in (0, 1], got %v", r.RiskPct)
	}
	if r.MaxPositionPct <= 0 || r.MaxPositionPct > 1 {
		return fmt.Errorf("risk.max_position_pct must be in (0, 1], got %v", r.MaxPositionPct)
	}
	if r.KAtr < 0 {
		return fmt.Errorf("risk.k_atr must be non-negative, got %v", r.KAtr)
	}
	if r.MinShares < 0 {
		return fmt.Errorf("risk.min_shares must be non-negative, got %d", r.MinShares)
	}
	if r.MinRR < 0 {
		return fmt.Errorf("risk.min_rr must be non-negative, got %v", r.MinRR)
	}
	if r.MaxFeeRiskPct < 0 || r.MaxFeeRiskPct > 1 {
		return fmt.Errorf("risk.max_fee_risk_pct must be in [0, 1], got %v", r.MaxFeeRiskPct)
	}

	g := r.Regime
	if g.Enabled {
		if g.TrendSMA < 1 {
			return fmt.Errorf("risk.regime.trend_sma must be at least 1 bar, got %d", g.TrendSMA)
		}
		if g.TrendMultiplier < 0 || g.TrendMultiplier > 1 {
			return fmt.Errorf("risk.regime.trend_multiplier must be in [0, 1], got %v", g.TrendMultiplier)
		}
		if g.VolATRWindow < 1 {
			return fmt.Errorf("risk.regime.vol_atr_window must be at least 1 bar, got %d", g.VolATRWindow)
		}
		if g.VolATRPctThreshold < 0 {
			return fmt.Errorf("risk.regime.vol_atr_pct_threshold must be non-negative, got %v", g.VolATRPctThreshold)
		}
		if g.VolMultiplier < 0 || g.VolMultiplier > 1 {
			return fmt.Errorf("risk.regime.vol_multiplier must be in [0, 1], got %v", g.VolMultiplier)
		}
	}

	m := c.Manage
	if m.BreakevenAtR < 0 {
		return fmt.Errorf("manage.breakeven_at_r must be non-negative, got %v", m.BreakevenAtR)
	}
	if m.TrailAfterR < 0 {
		return fmt.Errorf("manage.trail_after_r must be non-negative, got %v", m.TrailAfterR)
	}
	if m.TrailSMA < 1 {
		return fmt.Errorf("manage.trail_sma must be at least 1 bar, got %d", m.TrailSMA)
	}
	if m.SMABufferPct < 0 || m.SMABufferPct > 1 {
		return fmt.Errorf("manage.sma_buffer_pct must be in [0, 1], got %v", m.SMABufferPct)
	}
	if m.MaxHoldingDays < 1 {
		return fmt.Errorf("manage.max_holding_days must be at least 1, got %d", m.MaxHoldingDays)
	}

	return nil
}

// Default returns a strategy with conservative defaults.
func Default() *Strategy {
	return &Strategy{
		Risk: RiskConfig{
			AccountSize:    50000,
			RiskPct:        0.01,
			MaxPositionPct: 0.2,
			KAtr:           2.0,
			MinShares:      1,
			MinRR:          2.0,
			MaxFeeRiskPct:  0.05,
			Regime: RegimeConfig{
				Enabled:            true,
				TrendSMA:           200,
				TrendMultiplier:    0.5,
				VolATRWindow:       14,
				VolATRPctThreshold: 0.04,
				VolMultiplier:      0.5,
			},
		},
		Manage: ManageConfig{
			BreakevenAtR:   1.0,
			TrailAfterR:    2.0,
			TrailSMA:       20,
			SMABufferPct:   0.02,
			MaxHoldingDays: 60,
		},
		Universe: UniverseConfig{
			TrendWindow:     200,
			VolWindow:       14,
			MomWindow:       90,
			MinPrice:        5,
			MinDollarVolume: 1_000_000,
		},
	}
}
