package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TabItem interface for items that can be rendered by TabDelegate.
type TabItem interface {
	list.Item
	Title() string
	URL() string
	IsCurrent() bool
}

// TabDelegate renders tab tray cells.
type TabDelegate struct {
	Styles list.DefaultItemStyles
	Theme  lipgloss.Color
}

// NewTabDelegate creates a new TabDelegate.
func NewTabDelegate(themeColor lipgloss.Color) *TabDelegate {
	styles := paddedStyles()
	styles.SelectedTitle = styles.SelectedTitle.Foreground(themeColor).BorderForeground(themeColor)
	styles.SelectedDesc = styles.SelectedDesc.Foreground(themeColor).BorderForeground(themeColor)
	return &TabDelegate{
		Styles: styles,
		Theme:  themeColor,
	}
}

// Height returns the height of the item.
func (d *TabDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d *TabDelegate) Spacing() int {
	return 1
}

// Update handles messages for the delegate.
func (d *TabDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *TabDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(TabItem)
	if !ok {
		return
	}

	titleStyle, descStyle := rowStyles(d.Styles, m, index)
	title := fit(m, titleStyle, marked(i.Title(), "● ", i.IsCurrent()))
	link := fit(m, descStyle, "  "+i.URL())

	writeRow(w, titleStyle, title)
	_, _ = io.WriteString(w, "\n")
	writeRow(w, descStyle, link)
}
