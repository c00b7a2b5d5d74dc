// Package store persists history and the reading list in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	url          TEXT PRIMARY KEY,
	title        TEXT NOT NULL DEFAULT '',
	visit_count  INTEGER NOT NULL DEFAULT 0,
	last_visited INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_last_visited ON history(last_visited DESC);

CREATE TABLE IF NOT EXISTS reading_list (
	url      TEXT PRIMARY KEY,
	title    TEXT NOT NULL DEFAULT '',
	unread   INTEGER NOT NULL DEFAULT 1,
	added_at INTEGER NOT NULL
);
`

// DB wraps the SQLite connection shared by the repositories.
type DB struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens the database at path and applies the schema.
// Use ":memory:" for an in-memory database.
func Open(path string) (*DB, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	slog.Debug("database opened", "path", path)
	return &DB{db: db}, nil
}

// Close closes the underlying connection.
func (s *DB) Close() error {
	return s.db.Close()
}

// History returns the history repository backed by s.
func (s *DB) History() *HistoryRepo {
	return &HistoryRepo{store: s}
}

// ReadingList returns the reading list repository backed by s.
func (s *DB) ReadingList() *ReadingListRepo {
	return &ReadingListRepo{store: s}
}
