// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntryItem interface for items that can be rendered by EntryDelegate.
type EntryItem interface {
	list.Item
	Title() string
	IsRead() bool
}

// EntryDelegate renders history and reading list rows.
type EntryDelegate struct {
	Styles list.DefaultItemStyles
	// MarkUnread prefixes unread rows with a dot and fades read rows.
	MarkUnread bool
}

// NewEntryDelegate creates a new EntryDelegate.
func NewEntryDelegate(markUnread bool) *EntryDelegate {
	return &EntryDelegate{
		Styles:     paddedStyles(),
		MarkUnread: markUnread,
	}
}

// Height returns the height of the item.
func (d *EntryDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *EntryDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *EntryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *EntryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(EntryItem)
	if !ok {
		return
	}

	title := i.Title()
	if d.MarkUnread {
		title = marked(title, "• ", !i.IsRead())
	}

	style, _ := rowStyles(d.Styles, m, index)
	title = fit(m, style, title)
	if d.MarkUnread && i.IsRead() {
		title = lipgloss.NewStyle().Faint(true).Render(title)
	}

	writeRow(w, style, title)
}
