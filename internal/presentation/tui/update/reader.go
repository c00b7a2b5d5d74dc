package update

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/readmode/internal/application/settings"
	"github.com/tesso57/readmode/internal/domain/readerbar"
	readerbarview "github.com/tesso57/readmode/internal/presentation/tui/components/readerbar"
	"github.com/tesso57/readmode/internal/presentation/tui/intent"
	"github.com/tesso57/readmode/internal/presentation/tui/state"
)

// readerBarDelegate persists reader bar actions and pushes the new status back into the bar.
type readerBarDelegate struct {
	s    *state.ModelState
	deps Deps
}

func (d readerBarDelegate) ReaderBarDidSelect(kind readerbar.ButtonKind) {
	applyReaderBarAction(d.s, d.deps, kind)
}

func enterReaderMode(s *state.ModelState, deps Deps) {
	page, ok := CurrentPage(s, deps)
	if !ok || !page.Readable() {
		s.StatusMessage = "Reader mode is not available for this page"
		return
	}

	bar := readerbarview.New(readerBarDelegate{s: s, deps: deps})
	bar.Accent = lipgloss.Color(s.Theme.Accent)
	bar.Muted = lipgloss.Color(s.Theme.Muted)
	s.ReaderBar = bar
	s.ReaderURL = page.URL
	s.StatusMessage = ""
	SyncReaderBar(s, deps)
	UpdateListSizes(s)
	RefreshContent(s, deps)
	slog.Debug("reader mode entered", "url", page.URL)
}

func exitReaderMode(s *state.ModelState) {
	if s.ReaderBar == nil {
		return
	}
	s.ReaderBar = nil
	s.ReaderURL = ""
	UpdateListSizes(s)
}

// SyncReaderBar reloads the reading list status of the reader page into the bar.
func SyncReaderBar(s *state.ModelState, deps Deps) {
	if s.ReaderBar == nil {
		return
	}
	unread, added, err := deps.ReadingList.Status(s.ReaderURL)
	if err != nil {
		slog.Warn("reading list status", "url", s.ReaderURL, "err", err)
		s.Err = err
	}
	s.ReaderBar.SetAdded(added)
	s.ReaderBar.SetUnread(unread)
}

func applyReaderBarAction(s *state.ModelState, deps Deps, kind readerbar.ButtonKind) {
	if kind == readerbar.Settings {
		s.Previous = s.Session
		s.Session = state.ReaderSettingsView
		return
	}

	title := s.ReaderURL
	if page, ok := CurrentPage(s, deps); ok && page.Title != "" {
		title = page.Title
	}
	if err := deps.ReadingList.Apply(kind, s.ReaderURL, title); err != nil {
		slog.Warn("reader bar action failed", "action", kind, "url", s.ReaderURL, "err", err)
		s.Err = err
		s.StatusMessage = fmt.Sprintf("%s failed", kind.Label())
	} else {
		slog.Info("reading list updated", "action", kind, "url", s.ReaderURL)
		s.Err = nil
		s.StatusMessage = actionStatus(kind)
	}
	SyncReaderBar(s, deps)
}

func actionStatus(kind readerbar.ButtonKind) string {
	switch kind {
	case readerbar.MarkAsRead:
		return "Marked as read"
	case readerbar.MarkAsUnread:
		return "Marked as unread"
	case readerbar.AddToReadingList:
		return "Added to Reading List"
	case readerbar.RemoveFromReadingList:
		return "Removed from Reading List"
	default:
		return ""
	}
}

var (
	nextStyleKeys = key.NewBinding(key.WithKeys("right", "l", "tab"))
	prevStyleKeys = key.NewBinding(key.WithKeys("left", "h", "shift+tab"))
	narrowerKeys  = key.NewBinding(key.WithKeys("-", "_"))
	widerKeys     = key.NewBinding(key.WithKeys("+", "="))
	closeKeys     = key.NewBinding(key.WithKeys("esc", "enter", "q"))
)

func handleReaderSettingsKey(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, nextStyleKeys):
		return handleReaderSettingsIntent(s, intent.Intent{Type: intent.CycleReaderStyle}, deps)
	case key.Matches(msg, prevStyleKeys):
		s.Reader.Style = settings.NextReaderStyle(s.Reader.Style, -1)
		saveReader(s, deps)
		return nil, true
	case key.Matches(msg, narrowerKeys):
		return handleReaderSettingsIntent(s, intent.Intent{Type: intent.NarrowerReader}, deps)
	case key.Matches(msg, widerKeys):
		return handleReaderSettingsIntent(s, intent.Intent{Type: intent.WiderReader}, deps)
	case key.Matches(msg, closeKeys):
		return handleReaderSettingsIntent(s, intent.Intent{Type: intent.Back}, deps)
	}
	return nil, true
}

// readerWidthStep is how many columns one narrower/wider press changes.
const readerWidthStep = 4

func handleReaderSettingsIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.CycleReaderStyle:
		s.Reader.Style = settings.NextReaderStyle(s.Reader.Style, 1)
	case intent.NarrowerReader:
		s.Reader.Width = settings.ClampReaderWidth(s.Reader.Width - readerWidthStep)
	case intent.WiderReader:
		s.Reader.Width = settings.ClampReaderWidth(s.Reader.Width + readerWidthStep)
	case intent.Back:
		s.Session = state.BrowseView
		return nil, true
	default:
		return nil, false
	}
	saveReader(s, deps)
	return nil, true
}

func saveReader(s *state.ModelState, deps Deps) {
	if deps.SaveReader != nil {
		if err := deps.SaveReader(s.Reader); err != nil {
			slog.Warn("save reader settings", "err", err)
			s.Err = err
		}
	}
	RefreshContent(s, deps)
}
