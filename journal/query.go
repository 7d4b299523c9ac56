package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const selectColumns = `id, time, symbol, verdict, entry, stop, target, shares, position_value, risk_amount, risk_pct, reward_risk, fee_risk, reasons`

// GetEvaluation returns a single evaluation record by ID.
func (j *SQLite) GetEvaluation(id string) (EvaluationRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+selectColumns+`
		FROM evaluations
		WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return EvaluationRecord{}, fmt.Errorf("evaluation %q not found", id)
		}
		return EvaluationRecord{}, err
	}
	return rec, nil
}

// ListEvaluationsBetween returns records whose time is within [start, end).
func (j *SQLite) ListEvaluationsBetween(start, end time.Time) ([]EvaluationRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+selectColumns+`
		FROM evaluations
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

// ListEvaluationsByVerdict returns all records with the given verdict,
// newest first.
func (j *SQLite) ListEvaluationsByVerdict(verdict string) ([]EvaluationRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+selectColumns+`
		FROM evaluations
		WHERE verdict = ?
		ORDER BY time DESC`, verdict)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRecord(row scannable) (EvaluationRecord, error) {
	var rec EvaluationRecord
	err := row.Scan(
		&rec.ID,
		&rec.Time,
		&rec.Symbol,
		&rec.Verdict,
		&rec.Entry,
		&rec.Stop,
		&rec.Target,
		&rec.Shares,
		&rec.PositionValue,
		&rec.RiskAmount,
		&rec.RiskPct,
		&rec.RewardRisk,
		&rec.FeeRisk,
		&rec.Reasons,
	)
	return rec, err
}

func collect(rows *sql.Rows) ([]EvaluationRecord, error) {
	var out []EvaluationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
