package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/advisor/journal"
	"github.com/rustyeddy/advisor/reporting"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query journaled evaluations",
	Long: `Query and display evaluation records from the SQLite journal.

Subcommands:
  get      - Get a specific evaluation by ID
  today    - List evaluations recorded today
  day      - List evaluations recorded on a specific day
  verdict  - List evaluations with a given verdict

Examples:
  advisor journal get <id>
  advisor journal today
  advisor journal day 2026-08-28
  advisor journal verdict RECOMMENDED`,
}

var journalGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a specific evaluation",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalGet,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List evaluations recorded today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List evaluations recorded on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalVerdictCmd = &cobra.Command{
	Use:   "verdict <RECOMMENDED|NOT_RECOMMENDED>",
	Short: "List evaluations with a given verdict",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalVerdict,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalGetCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)
	journalCmd.AddCommand(journalVerdictCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default $ADVISOR_JOURNAL_DB or ./advisor.sqlite)")
}

func openJournal() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		path = envDefault("ADVISOR_JOURNAL_DB", "./advisor.sqlite")
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	return j, nil
}

func runJournalGet(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetEvaluation(args[0])
	if err != nil {
		return fmt.Errorf("get evaluation: %w", err)
	}

	reporting.RenderEvaluations(os.Stdout, []journal.EvaluationRecord{rec})
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	return listDay(time.Now().UTC().Format("2006-01-02"))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listDay(args[0])
}

func listDay(day string) error {
	start, end, err := dayBounds(day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListEvaluationsBetween(start, end)
	if err != nil {
		return fmt.Errorf("query evaluations: %w", err)
	}

	reporting.RenderEvaluations(os.Stdout, recs)
	return nil
}

func runJournalVerdict(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListEvaluationsByVerdict(args[0])
	if err != nil {
		return fmt.Errorf("query evaluations: %w", err)
	}

	reporting.RenderEvaluations(os.Stdout, recs)
	return nil
}

func dayBounds(day string) (time.Time, time.Time, error) {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour), nil
}
