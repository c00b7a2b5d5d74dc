// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/readmode/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	BrowseView Session = iota
	URLInputView
	HistoryView
	ReadingListView
	TabTrayView
	ReaderSettingsView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	UpPage         key.Binding
	DownPage       key.Binding
	Open           key.Binding
	Back           key.Binding
	Quit           key.Binding
	URL            key.Binding
	ShowTabs       key.Binding
	History        key.Binding
	ReadingList    key.Binding
	Home           key.Binding
	ReaderMode     key.Binding
	ReadStatus     key.Binding
	ReaderSettings key.Binding
	ListStatus     key.Binding
	AddTab         key.Binding
	PrivateMode    key.Binding
	CloseTab       key.Binding
	OpenExternal   key.Binding
	Help           key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.URL, k.ShowTabs, k.ReaderMode}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.UpPage, k.DownPage},
		{k.Open, k.Back, k.Quit, k.Help},
		{k.URL, k.Home, k.History, k.ReadingList, k.OpenExternal},
		{k.ShowTabs, k.AddTab, k.PrivateMode, k.CloseTab},
		{k.ReaderMode, k.ReadStatus, k.ReaderSettings, k.ListStatus},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:             binding(cfg.Up, "up"),
		Down:           binding(cfg.Down, "down"),
		UpPage:         binding(cfg.UpPage, "pgup"),
		DownPage:       binding(cfg.DownPage, "pgdn"),
		Open:           binding(cfg.Open, "open"),
		Back:           binding(cfg.Back, "back"),
		Quit:           binding(cfg.Quit, "quit"),
		URL:            binding(cfg.URL, "url"),
		ShowTabs:       binding(cfg.ShowTabs, "tabs"),
		History:        binding(cfg.History, "history"),
		ReadingList:    binding(cfg.ReadingList, "reading list"),
		Home:           binding(cfg.Home, "home"),
		ReaderMode:     binding(cfg.ReaderMode, "reader mode"),
		ReadStatus:     binding(cfg.ReadStatus, "read/unread"),
		ReaderSettings: binding(cfg.ReaderSettings, "display settings"),
		ListStatus:     binding(cfg.ListStatus, "save/remove"),
		AddTab:         binding(cfg.AddTab, "add tab"),
		PrivateMode:    binding(cfg.PrivateMode, "private mode"),
		CloseTab:       binding(cfg.CloseTab, "close tab"),
		OpenExternal:   binding(cfg.OpenExternal, "open in browser"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(keys, help),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
