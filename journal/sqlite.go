package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordEvaluation(r EvaluationRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO evaluations
		(id, time, symbol, verdict, entry, stop, target, shares, position_value, risk_amount, risk_pct, reward_risk, fee_risk, reasons)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Time, r.Symbol, r.Verdict, r.Entry, r.Stop, r.Target, r.Shares,
		r.PositionValue, r.RiskAmount, r.RiskPct, r.RewardRisk, r.FeeRisk, r.Reasons,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
