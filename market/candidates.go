package market

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Candidate is one watchlist entry: an instrument plus the snapshot it
// was screened with. Target and EstimatedCost are optional; a zero
// target means "no target supplied".
type Candidate struct {
	Symbol        string   `json:"symbol" yaml:"symbol"`
	Snapshot      Snapshot `json:"snapshot" yaml:"snapshot"`
	Target        float64  `json:"target,omitempty" yaml:"target,omitempty"`
	EstimatedCost float64  `json:"estimated_cost,omitempty" yaml:"estimated_cost,omitempty"`
}

type watchlist struct {
	Candidates []Candidate `yaml:"candidates"`
}

// LoadCandidates reads a YAML watchlist file.
func LoadCandidates(path string) ([]Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read watchlist: %w", err)
	}

	var wl watchlist
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("parse watchlist: %w", err)
	}

	for i, c := range wl.Candidates {
		if c.Symbol == "" {
			return nil, fmt.Errorf("watchlist entry %d: symbol is required", i)
		}
		if c.Snapshot.Close <= 0 {
			return nil, fmt.Errorf("watchlist entry %q: close must be positive, got %v", c.Symbol, c.Snapshot.Close)
		}
	}

	return wl.Candidates, nil
}
