package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/advisor/config"
	"github.com/rustyeddy/advisor/journal"
	"github.com/rustyeddy/advisor/market"
	"github.com/rustyeddy/advisor/reporting"
	"github.com/rustyeddy/advisor/scan"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a watchlist of candidates against a strategy",
	Long: `Size and gate-check every candidate in a watchlist file.

Each candidate's snapshot (close, ATR, SMA values) is sized with the
strategy's risk budget, regime-adjusted if enabled, and run through the
recommendation checklist. Results print as a table; failed candidates
show the gate explanations.

Example:
  advisor evaluate -f strategy.yaml -w watchlist.yaml --xlsx report.xlsx`,
	RunE: runEvaluate,
}

var (
	evalConfigPath    string
	evalWatchlistPath string
	evalWorkers       int
	evalJournalDB     string
	evalJournalCSV    string
	evalXLSXPath      string
	evalExplain       bool
)

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVarP(&evalConfigPath, "config", "f", "", "path to strategy file (YAML or JSON) (required)")
	evaluateCmd.Flags().StringVarP(&evalWatchlistPath, "watchlist", "w", "", "path to watchlist YAML (required)")
	evaluateCmd.Flags().IntVar(&evalWorkers, "workers", 4, "number of parallel evaluations")
	evaluateCmd.Flags().StringVar(&evalJournalDB, "journal-db", "", "record evaluations to a SQLite journal (default $ADVISOR_JOURNAL_DB)")
	evaluateCmd.Flags().StringVar(&evalJournalCSV, "journal-csv", "", "record evaluations to a CSV file")
	evaluateCmd.Flags().StringVar(&evalXLSXPath, "xlsx", "", "write an Excel scan report")
	evaluateCmd.Flags().BoolVar(&evalExplain, "explain", false, "print the full gate checklist for every candidate")
	evaluateCmd.MarkFlagRequired("config")
	evaluateCmd.MarkFlagRequired("watchlist")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(evalConfigPath)
	if err != nil {
		return fmt.Errorf("load strategy: %w", err)
	}

	candidates, err := market.LoadCandidates(evalWatchlistPath)
	if err != nil {
		return fmt.Errorf("load watchlist: %w", err)
	}

	scanner, err := scan.NewScanner(*cfg, evalWorkers)
	if err != nil {
		return err
	}

	results := scanner.Run(candidates)

	reporting.RenderScan(os.Stdout, results)

	if evalExplain {
		for _, res := range results {
			if res.Err != nil {
				continue
			}
			fmt.Printf("\n%s\n", res.Symbol)
			reporting.RenderGates(os.Stdout, res.Recommendation)
		}
	}

	if err := journalResults(results); err != nil {
		return err
	}

	if evalXLSXPath != "" {
		if err := reporting.WriteScanXLSX(evalXLSXPath, *cfg, results); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		fmt.Printf("\n✓ Wrote Excel report: %s\n", evalXLSXPath)
	}

	return nil
}

func journalResults(results []scan.Result) error {
	dbPath := evalJournalDB
	if dbPath == "" {
		dbPath = envDefault("ADVISOR_JOURNAL_DB", "")
	}

	var journals []journal.Journal
	if dbPath != "" {
		j, err := journal.NewSQLite(dbPath)
		if err != nil {
			return fmt.Errorf("open journal db: %w", err)
		}
		journals = append(journals, j)
	}
	if evalJournalCSV != "" {
		j, err := journal.NewCSV(evalJournalCSV)
		if err != nil {
			return fmt.Errorf("open journal csv: %w", err)
		}
		journals = append(journals, j)
	}
	if len(journals) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		rec := journal.NewEvaluationRecord(res.Symbol, res.Recommendation, now)
		for _, j := range journals {
			if err := j.RecordEvaluation(rec); err != nil {
				return fmt.Errorf("record %s: %w", res.Symbol, err)
			}
		}
	}

	for _, j := range journals {
		if err := j.Close(); err != nil {
			return err
		}
	}
	return nil
}
