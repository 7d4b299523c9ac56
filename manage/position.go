package manage

import "time"

// Position is a read-only view of an open long position. The advisor
// never opens, persists or closes positions; it only reads this state
// and proposes stop updates.
type Position struct {
	Symbol      string    `json:"symbol" yaml:"symbol"`
	EntryPrice  float64   `json:"entry_price" yaml:"entry_price"`
	InitialStop float64   `json:"initial_stop" yaml:"initial_stop"`
	CurrentStop float64   `json:"current_stop" yaml:"current_stop"`
	Shares      int       `json:"shares" yaml:"shares"`
	OpenedAt    time.Time `json:"opened_at" yaml:"opened_at"`
}
