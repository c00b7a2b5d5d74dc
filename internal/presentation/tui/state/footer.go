package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// FooterText returns the footer content for the current session.
func FooterText(loading bool, status, helpText string) string {
	status = strings.TrimSpace(status)
	if loading || status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

// FooterHelpText renders two help lines: global keys, then the keys of the session.
func FooterHelpText(h help.Model, keys KeyMap, session Session) string {
	global := h.ShortHelpView(keys.ShortHelp())
	local := h.ShortHelpView(SessionBindings(keys, session))
	if local == "" {
		return global
	}
	return global + "\n" + local
}

// SessionBindings lists the bindings that act in session.
func SessionBindings(keys KeyMap, session Session) []key.Binding {
	switch session {
	case BrowseView:
		return []key.Binding{keys.Home, keys.History, keys.ReadingList, keys.ReadStatus, keys.ReaderSettings, keys.ListStatus}
	case TabTrayView:
		return []key.Binding{keys.Open, keys.AddTab, keys.PrivateMode, keys.CloseTab, keys.Back}
	case HistoryView, ReadingListView:
		return []key.Binding{keys.Up, keys.Down, keys.Open, keys.Back}
	case URLInputView:
		return []key.Binding{keys.Open, keys.History, keys.Back}
	default:
		return nil
	}
}
