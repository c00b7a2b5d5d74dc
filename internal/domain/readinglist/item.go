// Package readinglist defines saved-article models.
package readinglist

import "time"

// Item is an article saved to the reading list.
type Item struct {
	URL     string
	Title   string
	Unread  bool
	AddedAt time.Time
}

// Status returns the reader bar flags for an article. A missing item is unread and not added.
func Status(item *Item) (unread, added bool) {
	if item == nil {
		return true, false
	}
	return item.Unread, true
}
