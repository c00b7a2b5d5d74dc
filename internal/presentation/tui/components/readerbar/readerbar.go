// Package readerbarview provides the reader-mode toolbar component.
package readerbarview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/readmode/internal/domain/readerbar"
)

// Delegate receives the action a tapped button asks for.
type Delegate interface {
	ReaderBarDidSelect(kind readerbar.ButtonKind)
}

// DelegateFunc adapts a function to Delegate.
type DelegateFunc func(kind readerbar.ButtonKind)

// ReaderBarDidSelect implements Delegate.
func (f DelegateFunc) ReaderBarDidSelect(kind readerbar.ButtonKind) {
	f(kind)
}

const minButtonWidth = 12

var glyphs = map[string]string{
	"MarkAsRead":            "◉",
	"MarkAsUnread":          "○",
	"SettingsSerif":         "Aa",
	"addToReadingList":      "+",
	"removeFromReadingList": "−",
}

// Bar is a horizontal three-button toolbar shown in reader mode.
// The host owns the flags: taps only notify, and the host calls SetUnread/SetAdded once the change is persisted.
type Bar struct {
	delegate Delegate
	unread   bool
	added    bool
	display  readerbar.Display

	Width  int
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

// New creates a bar for an unread article that is not in the reading list.
func New(delegate Delegate) *Bar {
	b := &Bar{
		delegate: delegate,
		unread:   true,
		Accent:   lipgloss.Color("205"),
		Muted:    lipgloss.Color("240"),
	}
	b.refresh()
	return b
}

// Unread reports the unread flag.
func (b *Bar) Unread() bool { return b.unread }

// Added reports whether the article is in the reading list.
func (b *Bar) Added() bool { return b.added }

// Display returns the currently derived button appearance.
func (b *Bar) Display() readerbar.Display { return b.display }

// SetUnread updates the unread flag and re-derives the buttons.
func (b *Bar) SetUnread(unread bool) {
	b.unread = unread
	b.refresh()
}

// SetAdded updates the reading list flag and re-derives the buttons.
func (b *Bar) SetAdded(added bool) {
	b.added = added
	b.refresh()
}

// Tap notifies the delegate for a button press. A disabled button delivers nothing.
// It reports whether a notification was sent.
func (b *Bar) Tap(button readerbar.Button) bool {
	if !b.display.Enabled(button) {
		return false
	}
	if b.delegate == nil {
		return false
	}
	b.delegate.ReaderBarDidSelect(readerbar.TapKind(button, b.unread, b.added))
	return true
}

func (b *Bar) refresh() {
	b.display = readerbar.Derive(b.unread, b.added)
}

// View renders the buttons with a thin separator along the bottom edge.
func (b *Bar) View() string {
	buttonWidth := b.Width / len(readerbar.Buttons)
	if buttonWidth < minButtonWidth {
		buttonWidth = minButtonWidth
	}

	cells := make([]string, 0, len(readerbar.Buttons))
	for _, button := range readerbar.Buttons {
		kind := b.display.Kind(button)
		style := lipgloss.NewStyle().Width(buttonWidth).Foreground(b.Accent)
		switch button {
		case readerbar.SettingsButton:
			style = style.Align(lipgloss.Center)
		case readerbar.ListStatusButton:
			style = style.Align(lipgloss.Right)
		}
		if !b.display.Enabled(button) {
			style = style.Foreground(b.Muted).Faint(true)
		}
		cells = append(cells, style.Render(Glyph(kind)+" "+kind.Label()))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render(strings.Repeat("─", lipgloss.Width(row)))
	return row + "\n" + separator
}

// Glyph returns the terminal icon for a button kind.
func Glyph(kind readerbar.ButtonKind) string {
	return glyphs[kind.Icon()]
}
