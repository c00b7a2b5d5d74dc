package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/readmode/internal/application/settings"
	"github.com/tesso57/readmode/internal/domain/browsing"
	readerbarview "github.com/tesso57/readmode/internal/presentation/tui/components/readerbar"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session      Session
	Previous     Session
	TabList      list.Model
	HistoryList  list.Model
	ReadingList  list.Model
	TextInput    textinput.Model
	Viewport     viewport.Model
	Help         help.Model
	Spinner      spinner.Model
	Loading      bool
	LoadingTabID string
	LoadingURL   string
	Keys         KeyMap
	Width        int
	Height       int
	Theme        settings.ThemeConfig
	Reader       settings.ReaderConfig
	// Pages caches the last loaded page per tab ID.
	Pages map[string]browsing.Page
	// Navigations numbers the latest navigation per tab ID. Older loads are dropped.
	Navigations map[string]int
	// ReaderBar is non-nil only while reader mode is shown.
	ReaderBar     *readerbarview.Bar
	ReaderURL     string
	Err           error
	StatusMessage string
}

// InReaderMode reports whether reader mode is active.
func (s *ModelState) InReaderMode() bool {
	return s.ReaderBar != nil
}
