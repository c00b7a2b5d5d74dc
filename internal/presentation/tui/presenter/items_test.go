package presenter

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/readmode/internal/domain/browsing"
	"github.com/tesso57/readmode/internal/domain/readinglist"
)

func TestBuildTabItems(t *testing.T) {
	ids := []string{"t1", "t2"}
	set := browsing.NewTabSet(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	})
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first := set.Add(browsing.Normal, now)
	first.Visit("http://localhost/numberedPage.html?page=1", "Page 1", now)
	set.Add(browsing.Normal, now)

	items := BuildTabItems(set.InMode(browsing.Normal), "t2")
	require.Len(t, items, 2)

	i1 := items[0].(*Item)
	assert.Equal(t, "Page 1", i1.Title())
	assert.Equal(t, "t1", i1.TabID)
	assert.False(t, i1.IsCurrent())

	i2 := items[1].(*Item)
	assert.Equal(t, browsing.HomeTitle, i2.Title())
	assert.Equal(t, browsing.HomeURL, i2.URL())
	assert.True(t, i2.IsCurrent())
}

func TestApplyTabList_SelectsCurrent(t *testing.T) {
	set := browsing.NewTabSet(nil)
	now := time.Now()
	set.Add(browsing.Private, now)
	current := set.Add(browsing.Private, now)

	model := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	ApplyTabList(&model, set.InMode(browsing.Private), current.ID)

	assert.Len(t, model.Items(), 2)
	assert.Equal(t, 1, model.Index())
	assert.True(t, model.SelectedItem().(*Item).Private)
}

func TestBuildHistoryItems(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)
	items := BuildHistoryItems([]browsing.HistoryEntry{
		{URL: "http://a.test/", Title: "A", VisitCount: 2, LastVisited: at},
		{URL: "http://b.test/"},
	})
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].(*Item).Title())
	assert.Equal(t, "2026-01-02 03:04 - http://a.test/", items[0].(*Item).Description())
	assert.Equal(t, "http://b.test/", items[1].(*Item).Title(), "title falls back to URL")
}

func TestBuildReadingListItems(t *testing.T) {
	items := BuildReadingListItems([]readinglist.Item{
		{URL: "http://a.test/", Title: "A", Unread: true},
		{URL: "http://b.test/", Unread: false},
	})
	require.Len(t, items, 2)
	assert.False(t, items[0].(*Item).IsRead())
	assert.True(t, items[1].(*Item).IsRead())
	assert.Equal(t, "http://b.test/", items[1].(*Item).Title())
}
