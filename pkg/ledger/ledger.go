// Package ledger journals recognition runs in a local SQLite database.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("entry not found")

const schema = `
CREATE TABLE IF NOT EXISTS recognitions (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	status      TEXT NOT NULL,
	pages       INTEGER NOT NULL DEFAULT 0,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	error       TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS recognitions_created_at ON recognitions(created_at);
`

type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

type Entry struct {
	ID   string
	Name string

	Status Status

	Pages    int
	Duration time.Duration

	Error string

	Created time.Time
}

type Ledger struct {
	db *sql.DB
}

func Open(path string) (*Ledger, error) {
	if path == "" {
		return nil, errors.New("invalid path")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)

	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Ledger{
		db: db,
	}, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) Record(ctx context.Context, entry Entry) error {
	if entry.Created.IsZero() {
		entry.Created = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO recognitions (id, name, status, pages, duration_ms, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Name, string(entry.Status), entry.Pages,
		entry.Duration.Milliseconds(), entry.Error,
		entry.Created.Format(time.RFC3339Nano))

	return err
}

func (l *Ledger) Get(ctx context.Context, id string) (*Entry, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT id, name, status, pages, duration_ms, error, created_at
		 FROM recognitions WHERE id = ?`, id)

	entry, err := scanEntry(row)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	return entry, err
}

func (l *Ledger) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT id, name, status, pages, duration_ms, error, created_at
		 FROM recognitions ORDER BY created_at DESC LIMIT ?`, limit)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var entries []Entry

	for rows.Next() {
		entry, err := scanEntry(rows)

		if err != nil {
			return nil, err
		}

		entries = append(entries, *entry)
	}

	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var entry Entry
	var status, created string
	var duration int64

	if err := row.Scan(&entry.ID, &entry.Name, &status, &entry.Pages, &duration, &entry.Error, &created); err != nil {
		return nil, err
	}

	entry.Status = Status(status)
	entry.Duration = time.Duration(duration) * time.Millisecond

	if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
		entry.Created = t
	}

	return &entry, nil
}
