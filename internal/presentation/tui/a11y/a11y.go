// Package a11y describes the accessibility tree the TUI exposes for automation.
package a11y

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Element is one addressable control or container in the current view.
type Element struct {
	// Label is the human-readable name, e.g. "Show Tabs" or a page title.
	Label string
	// Identifier is a stable name independent of the displayed text, e.g. "url".
	Identifier string
	// Container names the element that holds this one, e.g. "Tabs Tray".
	Container string
	// Value is the element's displayed value, e.g. the tab count on "Show Tabs".
	Value string
	// Count is the number of rows for list containers.
	Count   int
	Enabled bool
	Focused bool
	// Activate is delivered to the model on tap. Nil means the element is not tappable.
	Activate tea.Msg
	// Dismiss is delivered on a swipe-to-dismiss gesture.
	Dismiss tea.Msg
}

// Tappable reports whether the element accepts taps.
func (e Element) Tappable() bool {
	return e.Enabled && e.Activate != nil
}

// Find returns the first element whose label matches.
func Find(elements []Element, label string) (Element, bool) {
	for _, e := range elements {
		if e.Label == label {
			return e, true
		}
	}
	return Element{}, false
}

// FindByIdentifier returns the first element whose identifier matches.
func FindByIdentifier(elements []Element, identifier string) (Element, bool) {
	for _, e := range elements {
		if e.Identifier == identifier {
			return e, true
		}
	}
	return Element{}, false
}

// Lookup finds an element by label, then by identifier.
func Lookup(elements []Element, name string) (Element, bool) {
	if e, ok := Find(elements, name); ok {
		return e, true
	}
	return FindByIdentifier(elements, name)
}

// Children returns the elements held by the container label, in order.
func Children(elements []Element, container string) []Element {
	var out []Element
	for _, e := range elements {
		if e.Container == container {
			out = append(out, e)
		}
	}
	return out
}

// KeyPress builds the key message for a binding name such as "t", "enter" or "ctrl+r".
func KeyPress(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case " ", "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if letter, ok := strings.CutPrefix(name, "ctrl+"); ok && len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
		return tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(letter[0]-'a')}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
