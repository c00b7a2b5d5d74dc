// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/readmode/internal/domain/readerbar"
	"github.com/tesso57/readmode/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ConfirmQuit
	ToggleHelp
	Open
	Back
	FocusURL
	OpenURL
	ShowTabs
	ShowHistory
	ShowReadingList
	Home
	ToggleReaderMode
	ReaderBarTap
	AddTab
	TogglePrivateMode
	SelectTab
	CloseTab
	OpenExternal
	CycleReaderStyle
	NarrowerReader
	WiderReader
	Reset
)

// Intent represents a parsed user intent. Intents are also delivered as
// messages when an accessibility element is activated.
type Intent struct {
	Type   Type
	TabID  string
	URL    string
	Button readerbar.Button
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.URL):
		return Intent{Type: FocusURL}
	case key.Matches(msg, keys.ShowTabs):
		return Intent{Type: ShowTabs}
	case key.Matches(msg, keys.History):
		return Intent{Type: ShowHistory}
	case key.Matches(msg, keys.ReadingList):
		return Intent{Type: ShowReadingList}
	case key.Matches(msg, keys.Home):
		return Intent{Type: Home}
	case key.Matches(msg, keys.ReaderMode):
		return Intent{Type: ToggleReaderMode}
	case key.Matches(msg, keys.ReadStatus):
		return Intent{Type: ReaderBarTap, Button: readerbar.ReadStatusButton}
	case key.Matches(msg, keys.ReaderSettings):
		return Intent{Type: ReaderBarTap, Button: readerbar.SettingsButton}
	case key.Matches(msg, keys.ListStatus):
		return Intent{Type: ReaderBarTap, Button: readerbar.ListStatusButton}
	case key.Matches(msg, keys.AddTab):
		return Intent{Type: AddTab}
	case key.Matches(msg, keys.PrivateMode):
		return Intent{Type: TogglePrivateMode}
	case key.Matches(msg, keys.CloseTab):
		return Intent{Type: CloseTab}
	case key.Matches(msg, keys.OpenExternal):
		return Intent{Type: OpenExternal}
	default:
		return Intent{Type: None}
	}
}
