package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockDashboard/internal/panel"
)

// SQLiteRecorder persists analysis snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT,
			source      TEXT,
			generation  INTEGER,
			records     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS analysis_metrics (
			run_id    INTEGER NOT NULL REFERENCES analysis_runs(id),
			position  INTEGER NOT NULL,
			name      TEXT NOT NULL,
			value     REAL,
			display   TEXT,
			PRIMARY KEY (run_id, name)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSnapshot(snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := snap.RecordedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO analysis_runs
		(timestamp, symbol, source, generation, records)
		VALUES (?,?,?,?,?)`,
		ts.Unix(), snap.Symbol, snap.Source, int64(snap.Generation), snap.Records,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for i, m := range snap.Metrics {
		var value sql.NullFloat64
		if f, ok := numeric(m.Value); ok {
			value = sql.NullFloat64{Float64: f, Valid: true}
		}
		if _, err := tx.Exec(`INSERT INTO analysis_metrics
			(run_id, position, name, value, display)
			VALUES (?,?,?,?,?)`,
			runID, i, m.Name, value, panel.Value(m.Value),
		); err != nil {
			return fmt.Errorf("insert metric %s: %w", m.Name, err)
		}
	}
	return tx.Commit()
}

// LatestSnapshot loads the most recent run for symbol. Metric values come back as float64,
// or as their display text when not numeric.
func (r *SQLiteRecorder) LatestSnapshot(symbol string) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := &Snapshot{Symbol: symbol}
	var (
		runID int64
		ts    int64
		gen   int64
	)
	err := r.db.QueryRow(`SELECT id, timestamp, source, generation, records
		FROM analysis_runs WHERE symbol = ? ORDER BY id DESC LIMIT 1`, symbol).
		Scan(&runID, &ts, &snap.Source, &gen, &snap.Records)
	if err != nil {
		return nil, fmt.Errorf("query latest run: %w", err)
	}
	snap.RecordedAt = time.Unix(ts, 0)
	snap.Generation = uint64(gen)

	rows, err := r.db.Query(`SELECT name, value, display FROM analysis_metrics
		WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query metrics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name    string
			value   sql.NullFloat64
			display string
		)
		if err := rows.Scan(&name, &value, &display); err != nil {
			return nil, fmt.Errorf("scan metric: %w", err)
		}
		if value.Valid {
			snap.Metrics = snap.Metrics.With(name, value.Float64)
		} else {
			snap.Metrics = snap.Metrics.With(name, display)
		}
	}
	return snap, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	}
	return 0, false
}

var (
	_ Recorder = (*SQLiteRecorder)(nil)
	_ Recorder = (*NoopRecorder)(nil)
)
