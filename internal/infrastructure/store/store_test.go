package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/readmode/internal/domain/readinglist"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "readmode.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestHistoryRepo_OneRowPerURL(t *testing.T) {
	repo := openTestDB(t).History()
	t0 := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record("http://a/", "A", t0))
	require.NoError(t, repo.Record("http://b/", "B", t0.Add(time.Minute)))
	require.NoError(t, repo.Record("http://a/", "", t0.Add(2*time.Minute)))

	entries, err := repo.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "http://a/", entries[0].URL, "most recent first")
	assert.Equal(t, "A", entries[0].Title, "empty title keeps the stored one")
	assert.Equal(t, 2, entries[0].VisitCount)
	assert.True(t, entries[0].LastVisited.Equal(t0.Add(2*time.Minute)))

	require.NoError(t, repo.Clear())
	entries, err = repo.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadingListRepo_CRUD(t *testing.T) {
	repo := openTestDB(t).ReadingList()
	added := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	got, err := repo.Get("http://a/")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Upsert(readinglist.Item{URL: "http://a/", Title: "A", Unread: true, AddedAt: added}))
	require.NoError(t, repo.Upsert(readinglist.Item{URL: "http://b/", Title: "B", Unread: true, AddedAt: added.Add(time.Hour)}))

	got, err = repo.Get("http://a/")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Unread)
	assert.True(t, got.AddedAt.Equal(added))

	require.NoError(t, repo.SetUnread("http://a/", false))
	got, err = repo.Get("http://a/")
	require.NoError(t, err)
	assert.False(t, got.Unread)

	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "http://b/", items[0].URL)

	require.NoError(t, repo.Delete("http://a/"))
	require.NoError(t, repo.Delete("http://missing/"))
	items, err = repo.List()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestOpen_InMemory(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, db.History().Record("http://a/", "A", time.Now()))
	entries, err := db.History().List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
