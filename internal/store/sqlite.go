// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Bootstrapping the reports schema (idempotent).
//   - Insert/list helpers for solve reports.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/aetimmes/wordle-minimax/internal/solver"
)

// DefaultDBPath is where the CLI keeps its report history.
const DefaultDBPath = "./data/reports.db"

const schema = `
CREATE TABLE IF NOT EXISTS reports (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    prefix       TEXT NOT NULL,
    worst_case   INTEGER NOT NULL,
    example_line TEXT NOT NULL,
    secret       TEXT NOT NULL,
    answer_count INTEGER NOT NULL,
    guess_count  INTEGER NOT NULL,
    unsolvable   INTEGER NOT NULL,
    elapsed_ms   INTEGER NOT NULL,
    created_at   TEXT NOT NULL
);`

// sqlite implements Store on a *sql.DB.
type sqlite struct {
	db *sql.DB
}

// Open opens (and creates if missing) a SQLite report store.
//
// - Ensures the parent directory exists for relative DSNs (e.g. ./data/reports.db).
// - Configures busy timeout and WAL journaling mode.
// - Enforces foreign keys and bootstraps the schema.
func Open(dsn string) (Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	log.Debug().Str("dsn", dsn).Msg("report store opened")
	return &sqlite{db: db}, nil
}

func (s *sqlite) SaveReport(ctx context.Context, rep *solver.Report) (int64, error) {
	r := fromReport(rep)
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO reports
            (prefix, worst_case, example_line, secret, answer_count, guess_count, unsolvable, elapsed_ms, created_at)
        VALUES (?,?,?,?,?,?,?,?,?)`,
		r.Prefix, r.WorstCase, r.ExampleLine, r.Secret,
		r.AnswerCount, r.GuessCount, r.Unsolvable, r.ElapsedMs, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	return res.LastInsertId()
}

func (s *sqlite) ListReports(ctx context.Context, limit int) ([]SavedReport, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, prefix, worst_case, example_line, secret,
               answer_count, guess_count, unsolvable, elapsed_ms, created_at
        FROM reports
        ORDER BY id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SavedReport, 0, limit)
	for rows.Next() {
		var r SavedReport
		var created string
		if err := rows.Scan(&r.ID, &r.Prefix, &r.WorstCase, &r.ExampleLine, &r.Secret,
			&r.AnswerCount, &r.GuessCount, &r.Unsolvable, &r.ElapsedMs, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *sqlite) Close() error { return s.db.Close() }
