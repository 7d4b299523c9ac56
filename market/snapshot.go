package market

import "time"

// Snapshot holds the per-instrument indicator values the advisor consumes
// for one evaluation. Values are computed externally (screener, data
// pipeline) as of a single bar; the advisor never computes indicators.
type Snapshot struct {
	Close       float64   `json:"close" yaml:"close"`
	ATR         float64   `json:"atr" yaml:"atr"`
	TrendSMA    float64   `json:"trend_sma" yaml:"trend_sma"`
	TrailSMA    float64   `json:"trail_sma" yaml:"trail_sma"`
	Momentum    float64   `json:"momentum" yaml:"momentum"`
	RelStrength float64   `json:"rel_strength" yaml:"rel_strength"`
	AsOf        time.Time `json:"as_of" yaml:"as_of"`
}
