package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Trade risk sizing, recommendation and position-management engine",
	Long: `Advisor is a deterministic rule engine for swing-trading decisions.

It provides tools for:
  - Risk-based position sizing with exposure caps
  - A pass/fail recommendation checklist with explained reasons
  - Regime-aware risk scaling under adverse trend or volatility
  - Strategy safety scoring for configuration review
  - Stop-adjustment suggestions for open positions
  - Journaling evaluations to SQLite or CSV

Indicator values (ATR, moving averages) are supplied in watchlist
snapshots; advisor never fetches market data.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(loadDotEnv)
}

// loadDotEnv pulls defaults like ADVISOR_JOURNAL_DB from a .env file if
// one exists. Flags always win.
func loadDotEnv() {
	_ = godotenv.Load()
}

// envDefault returns the value of an environment variable, or fallback
// when it is unset or empty.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
