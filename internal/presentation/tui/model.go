package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/readmode/internal/application/settings"
	"github.com/tesso57/readmode/internal/application/usecase"
	"github.com/tesso57/readmode/internal/domain/browsing"
	"github.com/tesso57/readmode/internal/presentation/tui/intent"
	"github.com/tesso57/readmode/internal/presentation/tui/state"
	"github.com/tesso57/readmode/internal/presentation/tui/update"
	"github.com/tesso57/readmode/internal/presentation/tui/view"
	listview "github.com/tesso57/readmode/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings    settings.Settings
	browsing    *usecase.BrowsingService
	readingList usecase.ReadingListService
	saveReader  func(settings.ReaderConfig) error
	state       *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, browsingSvc *usecase.BrowsingService, readingListSvc usecase.ReadingListService) *Model {
	return NewModelWithReaderSaver(cfg, browsingSvc, readingListSvc, nil)
}

// NewModelWithReaderSaver creates a new application model that persists reader
// display settings through saveReader.
func NewModelWithReaderSaver(cfg settings.Settings, browsingSvc *usecase.BrowsingService, readingListSvc usecase.ReadingListService, saveReader func(settings.ReaderConfig) error) *Model {
	m := &Model{
		settings:    cfg,
		browsing:    browsingSvc,
		readingList: readingListSvc,
		saveReader:  saveReader,
		state:       newModelState(cfg),
	}
	update.RefreshContent(m.state, m.deps())
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	if m.settings.HomePage != "" && m.settings.HomePage != browsing.HomeURL {
		cmd, _ := update.HandleIntent(m.state, intent.Intent{Type: intent.OpenURL, URL: m.settings.HomePage}, m.deps())
		return cmd
	}
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case intent.Intent:
		cmd, _ := update.HandleIntent(m.state, msg, m.deps())
		update.UpdateListSizes(m.state)
		return m, cmd
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg, m.deps())
	case update.PageLoadedMsg:
		update.HandlePageLoadedMsg(m.state, msg, m.deps())
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Session {
	case state.BrowseView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	case state.URLInputView:
		m.state.TextInput, cmd = m.state.TextInput.Update(msg)
		cmds = append(cmds, cmd)
	case state.TabTrayView, state.HistoryView, state.ReadingListView:
		if l, ok := update.ActiveList(m.state); ok {
			*l, cmd = l.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Browsing:    m.browsing,
		ReadingList: m.readingList,
		SaveReader:  m.saveReader,
		OpenBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Session:     state.BrowseView,
		TabList:     newList("Tabs", listview.NewTabDelegate(lipgloss.Color(cfg.Theme.Accent))),
		HistoryList: newList("History", listview.NewEntryDelegate(false)),
		ReadingList: newList("Reading List", listview.NewEntryDelegate(true)),
		TextInput:   newTextInput(),
		Viewport:    newViewport(),
		Help:        help.New(),
		Spinner:     newSpinner(cfg.Theme.Accent),
		Keys:        state.NewKeyMap(cfg.KeyMap),
		Theme:       cfg.Theme,
		Reader:      cfg.Reader,
		Pages:       make(map[string]browsing.Page),
		Navigations: make(map[string]int),
	}

	for _, l := range []*list.Model{&st.TabList, &st.HistoryList, &st.ReadingList} {
		l.KeyMap.PrevPage = st.Keys.UpPage
		l.KeyMap.NextPage = st.Keys.DownPage
	}
	st.Viewport.KeyMap.Up = st.Keys.Up
	st.Viewport.KeyMap.Down = st.Keys.Down
	st.Viewport.KeyMap.HalfPageUp = st.Keys.UpPage
	st.Viewport.KeyMap.HalfPageDown = st.Keys.DownPage

	return st
}

func newList(title string, delegate list.ItemDelegate) list.Model {
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search or enter address"
	ti.CharLimit = 2048
	ti.Width = 40
	return ti
}

func newSpinner(accent string) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingRight(1)
	return vp
}
