package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/advisor/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate strategy files",
	Long: `Manage strategy configuration files.

Subcommands:
  init     - Generate a default strategy file
  validate - Validate an existing strategy file

Examples:
  advisor config init -o my-strategy.yaml
  advisor config validate -f my-strategy.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default strategy file",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a strategy file",
	RunE:  runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "strategy.yaml", "output strategy file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to strategy file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save strategy: %w", err)
	}

	fmt.Printf("✓ Created default strategy: %s\n", configInitOutput)
	fmt.Println("\nEdit the file and evaluate a watchlist with:")
	fmt.Printf("  advisor evaluate -f %s -w watchlist.yaml\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Strategy valid: %s\n", configValidatePath)
	fmt.Printf("  Account: $%.2f, risk %.2f%% per trade, max position %.0f%%\n",
		cfg.Risk.AccountSize, 100*cfg.Risk.RiskPct, 100*cfg.Risk.MaxPositionPct)
	fmt.Printf("  Stops: %.1fx ATR, breakeven at +%.1fR, trail after +%.1fR\n",
		cfg.Risk.KAtr, cfg.Manage.BreakevenAtR, cfg.Manage.TrailAfterR)
	return nil
}
