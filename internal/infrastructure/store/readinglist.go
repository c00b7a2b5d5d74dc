package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tesso57/readmode/internal/domain/readinglist"
)

// ReadingListRepo implements usecase.ReadingListRepository.
type ReadingListRepo struct {
	store *DB
}

// Get returns the saved article for url, or nil when it is not saved.
func (r *ReadingListRepo) Get(url string) (*readinglist.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var item readinglist.Item
	var unread int
	var added int64
	err := r.store.db.QueryRow(`SELECT url, title, unread, added_at FROM reading_list WHERE url = ?`, url).
		Scan(&item.URL, &item.Title, &unread, &added)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reading list item: %w", err)
	}
	item.Unread = unread != 0
	item.AddedAt = time.Unix(0, added)
	return &item, nil
}

// Upsert inserts or replaces a saved article.
func (r *ReadingListRepo) Upsert(item readinglist.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, err := r.store.db.Exec(`
		INSERT INTO reading_list (url, title, unread, added_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET title = excluded.title, unread = excluded.unread, added_at = excluded.added_at`,
		item.URL, item.Title, boolInt(item.Unread), item.AddedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save reading list item: %w", err)
	}
	return nil
}

// Delete removes a saved article. Deleting a missing article is not an error.
func (r *ReadingListRepo) Delete(url string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, err := r.store.db.Exec(`DELETE FROM reading_list WHERE url = ?`, url); err != nil {
		return fmt.Errorf("failed to delete reading list item: %w", err)
	}
	return nil
}

// SetUnread updates the read state of a saved article.
func (r *ReadingListRepo) SetUnread(url string, unread bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, err := r.store.db.Exec(`UPDATE reading_list SET unread = ? WHERE url = ?`, boolInt(unread), url); err != nil {
		return fmt.Errorf("failed to update reading list item: %w", err)
	}
	return nil
}

// List returns saved articles, newest first.
func (r *ReadingListRepo) List() ([]readinglist.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := r.store.db.Query(`SELECT url, title, unread, added_at FROM reading_list ORDER BY added_at DESC, url ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reading list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []readinglist.Item
	for rows.Next() {
		var item readinglist.Item
		var unread int
		var added int64
		if err := rows.Scan(&item.URL, &item.Title, &unread, &added); err != nil {
			return nil, fmt.Errorf("failed to scan reading list: %w", err)
		}
		item.Unread = unread != 0
		item.AddedAt = time.Unix(0, added)
		items = append(items, item)
	}
	return items, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
