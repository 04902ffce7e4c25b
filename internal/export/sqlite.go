package export

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/days/internal/event"
	"github.com/roach88/days/internal/store"
)

//go:embed schema.sql
var schemaSQL string

// SQLite is an export target holding an events table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at path and applies the
// events schema. Safe to call on an existing export.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Replace swaps the table content for rows in a single transaction and
// returns the number of rows written.
func (s *SQLite) Replace(ctx context.Context, rows []store.Row) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("replace events: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return 0, fmt.Errorf("replace events: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO events (line, date, category, description)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("replace events: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.Line, r.Date.String(), r.Category, r.Description); err != nil {
			return 0, fmt.Errorf("replace events: insert line %d: %w", r.Line, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("replace events: commit: %w", err)
	}
	return len(rows), nil
}

// Rows reads the exported events back in their original file order.
func (s *SQLite) Rows(ctx context.Context) ([]store.Row, error) {
	return s.query(ctx, "1 = 1")
}

func (s *SQLite) query(ctx context.Context, where string, params ...any) ([]store.Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT line, date, category, description
		FROM events
		WHERE `+where+`
		ORDER BY line ASC, id ASC
	`, params...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []store.Row
	for rows.Next() {
		var (
			r    store.Row
			date string
		)
		if err := rows.Scan(&r.Line, &date, &r.Category, &r.Description); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		d, err := event.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("scan event line %d: %w", r.Line, err)
		}
		r.Date = d
		out = append(out, r)
	}
	return out, rows.Err()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
