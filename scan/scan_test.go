package scan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/advisor/config"
	"github.com/rustyeddy/advisor/market"
	"github.com/rustyeddy/advisor/risk"
)

func strategy() config.Strategy {
	cfg := *config.Default()
	cfg.Risk.Regime.Enabled = false
	return cfg
}

func TestNewScannerRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := strategy()
	cfg.Risk.AccountSize = -1

	_, err := NewScanner(cfg, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account_size")
}

func TestEvaluate_RecommendedCandidate(t *testing.T) {
	t.Parallel()

	s, err := NewScanner(strategy(), 1)
	require.NoError(t, err)

	// ATR stop: 100 - 2*2.5 = 95. 100 shares, risk 500, rr 2.4.
	res := s.Evaluate(market.Candidate{
		Symbol:        "ACME",
		Snapshot:      market.Snapshot{Close: 100, ATR: 2.5},
		Target:        112,
		EstimatedCost: 10,
	})

	require.NoError(t, res.Err)
	assert.Equal(t, risk.Recommended, res.Recommendation.Verdict)
	assert.InDelta(t, 95.0, res.Recommendation.Plan.Stop, 1e-9)
	assert.Equal(t, 100, res.Recommendation.Plan.Shares)
}

func TestEvaluate_RegimeCutFlowsIntoSizing(t *testing.T) {
	t.Parallel()

	cfg := strategy()
	cfg.Risk.Regime = config.RegimeConfig{
		Enabled:            true,
		TrendSMA:           200,
		TrendMultiplier:    0.5,
		VolATRWindow:       14,
		VolATRPctThreshold: 0.10,
		VolMultiplier:      0.5,
	}

	s, err := NewScanner(cfg, 1)
	require.NoError(t, err)

	// Price below trend SMA: risk halves, shares halve.
	res := s.Evaluate(market.Candidate{
		Symbol:   "ACME",
		Snapshot: market.Snapshot{Close: 100, ATR: 2.5, TrendSMA: 120},
	})

	require.NoError(t, res.Err)
	assert.InDelta(t, 0.005, res.EffectiveRiskPct, 1e-12)
	assert.Len(t, res.RegimeReasons, 1)
	assert.Equal(t, 50, res.Recommendation.Plan.Shares)
}

func TestEvaluate_BadSnapshotIsIsolated(t *testing.T) {
	t.Parallel()

	s, err := NewScanner(strategy(), 1)
	require.NoError(t, err)

	res := s.Evaluate(market.Candidate{
		Symbol:   "BROKEN",
		Snapshot: market.Snapshot{Close: 0, ATR: 1},
	})

	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "BROKEN")
}

func TestRun_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	var candidates []market.Candidate
	for i := 0; i < 50; i++ {
		candidates = append(candidates, market.Candidate{
			Symbol:   fmt.Sprintf("SYM%03d", i),
			Snapshot: market.Snapshot{Close: 100 + float64(i), ATR: 2.5},
		})
	}

	s, err := NewScanner(strategy(), 8)
	require.NoError(t, err)

	results := s.Run(candidates)
	require.Len(t, results, len(candidates))
	for i, res := range results {
		assert.Equal(t, fmt.Sprintf("SYM%03d", i), res.Symbol)
	}
}

func TestRun_BadCandidateDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	candidates := []market.Candidate{
		{Symbol: "GOOD", Snapshot: market.Snapshot{Close: 100, ATR: 2.5}},
		{Symbol: "BAD", Snapshot: market.Snapshot{Close: -5, ATR: 2.5}},
		{Symbol: "ALSO_GOOD", Snapshot: market.Snapshot{Close: 50, ATR: 1}},
	}

	s, err := NewScanner(strategy(), 2)
	require.NoError(t, err)

	results := s.Run(candidates)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
}

func TestRun_DeterministicAcrossWorkerCounts(t *testing.T) {
	t.Parallel()

	candidates := []market.Candidate{
		{Symbol: "A", Snapshot: market.Snapshot{Close: 100, ATR: 2.5}, Target: 112},
		{Symbol: "B", Snapshot: market.Snapshot{Close: 42, ATR: 1.5}},
		{Symbol: "C", Snapshot: market.Snapshot{Close: 250, ATR: 10}, Target: 300},
	}

	serial, err := NewScanner(strategy(), 1)
	require.NoError(t, err)
	parallel, err := NewScanner(strategy(), 4)
	require.NoError(t, err)

	assert.Equal(t, serial.Run(candidates), parallel.Run(candidates))
}
