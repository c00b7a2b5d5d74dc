package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/readmode/internal/domain/readerbar"
	"github.com/tesso57/readmode/internal/domain/readinglist"
)

type memoryReadingListRepo struct {
	items map[string]readinglist.Item
	err   error
}

func (m *memoryReadingListRepo) Get(url string) (*readinglist.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	item, ok := m.items[url]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *memoryReadingListRepo) Upsert(item readinglist.Item) error {
	if m.items == nil {
		m.items = make(map[string]readinglist.Item)
	}
	m.items[item.URL] = item
	return nil
}

func (m *memoryReadingListRepo) Delete(url string) error {
	delete(m.items, url)
	return nil
}

func (m *memoryReadingListRepo) SetUnread(url string, unread bool) error {
	item := m.items[url]
	item.Unread = unread
	m.items[url] = item
	return nil
}

func (m *memoryReadingListRepo) List() ([]readinglist.Item, error) {
	out := make([]readinglist.Item, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, nil
}

func newTestReadingList(repo ReadingListRepository) ReadingListService {
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return NewReadingListService(repo, func() time.Time { return now })
}

func TestReadingListService_StatusLifecycle(t *testing.T) {
	svc := newTestReadingList(&memoryReadingListRepo{})
	const url = "http://example.com/a"

	unread, added, err := svc.Status(url)
	require.NoError(t, err)
	assert.True(t, unread)
	assert.False(t, added)

	require.NoError(t, svc.Add(url, "A"))
	unread, added, err = svc.Status(url)
	require.NoError(t, err)
	assert.True(t, unread)
	assert.True(t, added)

	require.NoError(t, svc.MarkRead(url))
	unread, _, err = svc.Status(url)
	require.NoError(t, err)
	assert.False(t, unread)

	require.NoError(t, svc.Add(url, "A again"))
	unread, _, _ = svc.Status(url)
	assert.False(t, unread, "re-adding keeps read state")

	require.NoError(t, svc.MarkUnread(url))
	require.NoError(t, svc.Remove(url))
	_, added, _ = svc.Status(url)
	assert.False(t, added)
}

func TestReadingListService_MarkMissing(t *testing.T) {
	svc := newTestReadingList(&memoryReadingListRepo{})
	assert.ErrorIs(t, svc.MarkRead("http://missing"), ErrNotInReadingList)
	assert.ErrorIs(t, svc.MarkUnread("http://missing"), ErrNotInReadingList)
	assert.Error(t, svc.Add("  ", "blank"))
}

func TestReadingListService_Apply(t *testing.T) {
	tests := []struct {
		name       string
		kind       readerbar.ButtonKind
		seed       *readinglist.Item
		wantAdded  bool
		wantUnread bool
		wantErr    error
	}{
		{name: "add", kind: readerbar.AddToReadingList, wantAdded: true, wantUnread: true},
		{name: "remove", kind: readerbar.RemoveFromReadingList, seed: &readinglist.Item{Unread: true}, wantAdded: false, wantUnread: true},
		{name: "mark read", kind: readerbar.MarkAsRead, seed: &readinglist.Item{Unread: true}, wantAdded: true, wantUnread: false},
		{name: "mark unread", kind: readerbar.MarkAsUnread, seed: &readinglist.Item{Unread: false}, wantAdded: true, wantUnread: true},
		{name: "settings", kind: readerbar.Settings, wantErr: ErrNotListAction, wantUnread: true},
	}
	const url = "http://example.com/a"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryReadingListRepo{}
			if tt.seed != nil {
				seed := *tt.seed
				seed.URL = url
				require.NoError(t, repo.Upsert(seed))
			}
			svc := newTestReadingList(repo)

			err := svc.Apply(tt.kind, url, "A")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			unread, added, err := svc.Status(url)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantUnread, unread)
		})
	}
}

func TestReadingListService_Import(t *testing.T) {
	repo := &memoryReadingListRepo{}
	svc := newTestReadingList(repo)
	require.NoError(t, svc.Add("http://example.com/a", "A"))

	added, err := svc.Import([]readinglist.Item{
		{URL: "http://example.com/a", Title: "dup"},
		{URL: " http://example.com/b ", Title: "B"},
		{URL: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	items, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.True(t, repo.items["http://example.com/b"].Unread)

	repo.err = errors.New("db locked")
	_, err = svc.Import([]readinglist.Item{{URL: "http://example.com/c"}})
	assert.Error(t, err)
	_, _, err = svc.Status("http://example.com/c")
	assert.Error(t, err)
}
