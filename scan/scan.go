// Package scan runs the risk engine over a watchlist of candidates.
//
// The engine itself is pure; all concurrency lives here. Each candidate
// is evaluated independently, a bad candidate never aborts the batch,
// and results come back in input order.
package scan

import (
	"fmt"
	"sync"

	"github.com/rustyeddy/advisor/config"
	"github.com/rustyeddy/advisor/manage"
	"github.com/rustyeddy/advisor/market"
	"github.com/rustyeddy/advisor/risk"
)

// Result is the outcome for one candidate. Err is set when the inputs
// were unusable (for example a non-positive close); an unfavorable
// verdict is not an error.
type Result struct {
	Symbol           string
	Recommendation   risk.Recommendation
	EffectiveRiskPct float64
	RegimeReasons    []string
	Err              error
}

// Scanner evaluates candidates against one immutable strategy.
type Scanner struct {
	cfg     config.Strategy
	workers int
}

// NewScanner validates the strategy up front so every later evaluation
// can assume a well-formed config. workers < 1 falls back to 1.
func NewScanner(cfg config.Strategy, workers int) (*Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scanner: %w", err)
	}
	if workers < 1 {
		workers = 1
	}
	return &Scanner{cfg: cfg, workers: workers}, nil
}

// Evaluate runs the full pipeline for one candidate: regime-adjust the
// risk, derive the ATR stop, size the plan, run the gate checklist.
func (s *Scanner) Evaluate(c market.Candidate) Result {
	res := Result{Symbol: c.Symbol}

	effRisk, reasons := risk.AdjustRisk(s.cfg.Risk.RiskPct, c.Snapshot, s.cfg.Risk.Regime)
	res.EffectiveRiskPct = effRisk
	res.RegimeReasons = reasons

	stop := manage.InitialStop(c.Snapshot.Close, c.Snapshot.ATR, s.cfg.Risk.KAtr)

	// A fully-cut risk pct is outside Size's domain; substitute a
	// near-zero budget so sizing stays defined and the minimum-shares
	// gate explains the outcome.
	sizeRisk := effRisk
	if sizeRisk <= 0 {
		sizeRisk = minEffectiveRiskPct
	}

	plan, err := risk.Size(risk.SizeInputs{
		Entry:          c.Snapshot.Close,
		Stop:           stop,
		AccountSize:    s.cfg.Risk.AccountSize,
		RiskPct:        sizeRisk,
		MaxPositionPct: s.cfg.Risk.MaxPositionPct,
		MinShares:      s.cfg.Risk.MinShares,
	})
	if err != nil {
		res.Err = fmt.Errorf("size %s: %w", c.Symbol, err)
		return res
	}

	res.Recommendation = risk.EvaluateRecommendation(plan, s.cfg.Risk, c.Target, c.EstimatedCost)
	return res
}

// minEffectiveRiskPct keeps sizing defined when the regime filters cut
// risk to zero. The ideal share count rounds to zero; whether the plan
// then fails the minimum-shares gate or is floored with the budget
// excess surfaced depends on min_shares.
const minEffectiveRiskPct = 1e-12

// Run evaluates every candidate with a bounded worker pool and returns
// results in the order the candidates were given.
func (s *Scanner) Run(candidates []market.Candidate) []Result {
	results := make([]Result, len(candidates))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.Evaluate(candidates[i])
			}
		}()
	}

	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
