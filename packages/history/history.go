// Package history persists scenario run outcomes so regressions can be
// spotted across invocations. It is backed by SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/resultspec/packages/scenario"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	file        TEXT NOT NULL,
	name        TEXT NOT NULL,
	passed      INTEGER NOT NULL,
	failed      INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS failures (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	family  TEXT NOT NULL,
	target  TEXT NOT NULL,
	message TEXT NOT NULL
);
`

// Entry is one stored run.
type Entry struct {
	ID        string
	File      string
	Name      string
	Passed    int
	Failed    int
	Duration  time.Duration
	CreatedAt time.Time
}

// Store is a run-history store.
type Store struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// Open opens (and if needed initializes) a history store from a
// connection string.
// Supported formats:
// - sqlite://path/to/history.sqlite
// - sqlite:./history.db
// - a bare file path
func Open(connectionString string) (*Store, error) {
	dsn := parseConnectionString(connectionString)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{
		db:           db,
		queryTimeout: 30 * time.Second,
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores one scenario run and its failed checks.
func (s *Store) Record(run *scenario.RunResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, file, name, passed, failed, duration_ms) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.File, run.Name, run.Passed, run.Failed, run.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	for _, o := range run.Outcomes {
		if o.Passed {
			continue
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO failures (run_id, family, target, message) VALUES (?, ?, ?, ?)`,
			run.ID, o.Family, o.Target, o.Message)
		if err != nil {
			return fmt.Errorf("failed to record failure: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}

	return nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, file, name, passed, failed, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMs int64
		if err := rows.Scan(&e.ID, &e.File, &e.Name, &e.Passed, &e.Failed, &durationMs, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

// Failures returns the failed checks stored for a run.
func (s *Store) Failures(runID string) ([]scenario.Outcome, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT family, target, message FROM failures WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var outcomes []scenario.Outcome
	for rows.Next() {
		var o scenario.Outcome
		if err := rows.Scan(&o.Family, &o.Target, &o.Message); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		outcomes = append(outcomes, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return outcomes, nil
}

// parseConnectionString strips the sqlite scheme prefixes, leaving the
// file path the driver expects.
func parseConnectionString(connStr string) string {
	connStr = strings.TrimSpace(connStr)

	if strings.HasPrefix(connStr, "sqlite://") {
		return strings.TrimPrefix(connStr, "sqlite://")
	}
	if strings.HasPrefix(connStr, "sqlite:") {
		return strings.TrimPrefix(connStr, "sqlite:")
	}

	return connStr
}
