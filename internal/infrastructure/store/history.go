package store

import (
	"fmt"
	"time"

	"github.com/tesso57/readmode/internal/domain/browsing"
)

// HistoryRepo implements usecase.HistoryRepository.
type HistoryRepo struct {
	store *DB
}

// Record upserts a visit, keeping one row per URL.
func (r *HistoryRepo) Record(url, title string, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, err := r.store.db.Exec(`
		INSERT INTO history (url, title, visit_count, last_visited) VALUES (?, ?, 1, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = CASE WHEN excluded.title <> '' THEN excluded.title ELSE history.title END,
			visit_count = history.visit_count + 1,
			last_visited = excluded.last_visited`,
		url, title, at.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// List returns history entries, most recently visited first.
func (r *HistoryRepo) List() ([]browsing.HistoryEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := r.store.db.Query(`SELECT url, title, visit_count, last_visited FROM history ORDER BY last_visited DESC, url ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []browsing.HistoryEntry
	for rows.Next() {
		var e browsing.HistoryEntry
		var visited int64
		if err := rows.Scan(&e.URL, &e.Title, &e.VisitCount, &visited); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		e.LastVisited = time.Unix(0, visited)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes every history entry.
func (r *HistoryRepo) Clear() error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, err := r.store.db.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
