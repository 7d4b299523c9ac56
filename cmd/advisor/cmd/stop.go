package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/advisor/config"
	"github.com/rustyeddy/advisor/manage"
	"github.com/rustyeddy/advisor/market"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Suggest a stop adjustment for an open position",
	Long: `Given an open position and the current bar, propose the next stop:
move to breakeven once enough R has accrued, trail under the management
SMA after that, or hold. A suggested stop is never below the current one.

Example:
  advisor stop -f strategy.yaml --entry 50 --initial-stop 47 --current-stop 47 \
    --price 56 --trail-sma 54`,
	RunE: runStop,
}

var (
	stopConfigPath  string
	stopEntry       float64
	stopInitialStop float64
	stopCurrentStop float64
	stopPrice       float64
	stopTrailSMA    float64
	stopOpened      string
	stopAsOf        string
)

func init() {
	rootCmd.AddCommand(stopCmd)

	stopCmd.Flags().StringVarP(&stopConfigPath, "config", "f", "", "path to strategy file (YAML or JSON) (required)")
	stopCmd.Flags().Float64Var(&stopEntry, "entry", 0, "position entry price (required)")
	stopCmd.Flags().Float64Var(&stopInitialStop, "initial-stop", 0, "initial stop at entry (required)")
	stopCmd.Flags().Float64Var(&stopCurrentStop, "current-stop", 0, "current stop (required)")
	stopCmd.Flags().Float64Var(&stopPrice, "price", 0, "current close price (required)")
	stopCmd.Flags().Float64Var(&stopTrailSMA, "trail-sma", 0, "current trailing-SMA value")
	stopCmd.Flags().StringVar(&stopOpened, "opened", "", "position open date YYYY-MM-DD (enables holding-period check)")
	stopCmd.Flags().StringVar(&stopAsOf, "as-of", "", "current bar date YYYY-MM-DD")
	stopCmd.MarkFlagRequired("config")
	stopCmd.MarkFlagRequired("entry")
	stopCmd.MarkFlagRequired("initial-stop")
	stopCmd.MarkFlagRequired("current-stop")
	stopCmd.MarkFlagRequired("price")
}

func runStop(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(stopConfigPath)
	if err != nil {
		return fmt.Errorf("load strategy: %w", err)
	}

	pos := manage.Position{
		EntryPrice:  stopEntry,
		InitialStop: stopInitialStop,
		CurrentStop: stopCurrentStop,
	}
	bar := market.Snapshot{
		Close:    stopPrice,
		TrailSMA: stopTrailSMA,
	}

	if stopOpened != "" {
		t, err := time.Parse("2006-01-02", stopOpened)
		if err != nil {
			return fmt.Errorf("parse opened date: %w", err)
		}
		pos.OpenedAt = t
	}
	if stopAsOf != "" {
		t, err := time.Parse("2006-01-02", stopAsOf)
		if err != nil {
			return fmt.Errorf("parse as-of date: %w", err)
		}
		bar.AsOf = t
	}

	sug := manage.SuggestStop(pos, bar, cfg.Manage)

	fmt.Printf("Action:  %s\n", sug.Action)
	if sug.Action == manage.ActionMoveStopUp {
		fmt.Printf("Stop:    %.2f (from %.2f)\n", sug.Stop, pos.CurrentStop)
	}
	fmt.Printf("R now:   %.2f\n", sug.RNow)
	fmt.Printf("Reason:  %s\n", sug.Reason)
	return nil
}
