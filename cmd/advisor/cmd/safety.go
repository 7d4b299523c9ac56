package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/advisor/config"
	"github.com/rustyeddy/advisor/reporting"
	"github.com/rustyeddy/advisor/risk"
)

var safetyCmd = &cobra.Command{
	Use:   "safety",
	Short: "Score a strategy configuration for safety",
	Long: `Grade a strategy configuration from 0 to 100 against a fixed
checklist of risk heuristics and print the triggered warnings.

Example:
  advisor safety -f strategy.yaml`,
	RunE: runSafety,
}

var safetyConfigPath string

func init() {
	rootCmd.AddCommand(safetyCmd)

	safetyCmd.Flags().StringVarP(&safetyConfigPath, "config", "f", "", "path to strategy file (YAML or JSON) (required)")
	safetyCmd.MarkFlagRequired("config")
}

func runSafety(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(safetyConfigPath)
	if err != nil {
		return fmt.Errorf("load strategy: %w", err)
	}

	rep := risk.EvaluateStrategySafety(*cfg)
	reporting.RenderSafety(os.Stdout, rep)
	return nil
}
