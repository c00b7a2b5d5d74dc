// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/readmode/internal/domain/browsing"
	"github.com/tesso57/readmode/internal/domain/readinglist"
)

// Item is a view model for list items.
type Item struct {
	TitleText string
	Desc      string
	Link      string
	TabID     string
	Unread    bool
	Current   bool
	Private   bool
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the item title.
func (i *Item) Title() string { return i.TitleText }

// URL returns the item's URL.
func (i *Item) URL() string { return i.Link }

// IsRead reports whether the item has been read.
func (i *Item) IsRead() bool { return !i.Unread }

// IsCurrent reports whether the item is the selected tab.
func (i *Item) IsCurrent() bool { return i.Current }

// Description returns a formatted description for list display.
func (i *Item) Description() string { return i.Desc }

// BuildTabItems builds list items for the tab tray.
func BuildTabItems(tabs []*browsing.Tab, currentID string) []list.Item {
	items := make([]list.Item, len(tabs))
	for i, tab := range tabs {
		visit := tab.Current()
		items[i] = &Item{
			TitleText: tab.Title(),
			Desc:      visit.URL,
			Link:      visit.URL,
			TabID:     tab.ID,
			Unread:    true,
			Current:   tab.ID == currentID,
			Private:   tab.Mode == browsing.Private,
		}
	}
	return items
}

// ApplyTabList updates the list model with tab items and selects the current tab.
func ApplyTabList(model *list.Model, tabs []*browsing.Tab, currentID string) {
	items := BuildTabItems(tabs, currentID)
	model.SetItems(items)
	for idx, it := range items {
		if it.(*Item).Current {
			model.Select(idx)
			return
		}
	}
	model.ResetSelected()
}

// BuildHistoryItems builds list items for history entries.
func BuildHistoryItems(entries []browsing.HistoryEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		title := e.Title
		if title == "" {
			title = e.URL
		}
		desc := e.URL
		if !e.LastVisited.IsZero() {
			desc = fmt.Sprintf("%s - %s", e.LastVisited.Format("2006-01-02 15:04"), e.URL)
		}
		items[i] = &Item{
			TitleText: title,
			Desc:      desc,
			Link:      e.URL,
		}
	}
	return items
}

// ApplyHistoryList updates the list model with history entries.
func ApplyHistoryList(model *list.Model, entries []browsing.HistoryEntry) {
	model.SetItems(BuildHistoryItems(entries))
	model.ResetSelected()
}

// BuildReadingListItems builds list items for saved articles.
func BuildReadingListItems(articles []readinglist.Item) []list.Item {
	items := make([]list.Item, len(articles))
	for i, a := range articles {
		title := a.Title
		if title == "" {
			title = a.URL
		}
		items[i] = &Item{
			TitleText: title,
			Desc:      a.URL,
			Link:      a.URL,
			Unread:    a.Unread,
		}
	}
	return items
}

// ApplyReadingList updates the list model with saved articles.
func ApplyReadingList(model *list.Model, articles []readinglist.Item) {
	model.SetItems(BuildReadingListItems(articles))
	model.ResetSelected()
}
