package journal

const Schema = `
CREATE TABLE IF NOT EXISTS evaluations (
	id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	symbol TEXT NOT NULL,
	verdict TEXT NOT NULL,
	entry REAL NOT NULL,
	stop REAL NOT NULL,
	target REAL NOT NULL,
	shares INTEGER NOT NULL,
	position_value REAL NOT NULL,
	risk_amount REAL NOT NULL,
	risk_pct REAL NOT NULL,
	reward_risk REAL NOT NULL,
	fee_risk REAL NOT NULL,
	reasons TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evaluations_time ON evaluations(time);
CREATE INDEX IF NOT EXISTS idx_evaluations_symbol ON evaluations(symbol);
`
