// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/readmode/internal/application/settings"
	"github.com/tesso57/readmode/internal/application/usecase"
	"github.com/tesso57/readmode/internal/domain/browsing"
	"github.com/tesso57/readmode/internal/presentation/tui/intent"
	"github.com/tesso57/readmode/internal/presentation/tui/presenter"
	"github.com/tesso57/readmode/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Browsing    *usecase.BrowsingService
	ReadingList usecase.ReadingListService
	SaveReader  func(settings.ReaderConfig) error
	OpenBrowser func(string) error
}

// PageLoadedMsg is emitted after a page load finishes.
type PageLoadedMsg struct {
	TabID string
	URL   string
	// Seq is the tab's navigation number when the load started.
	Seq  int
	Page browsing.Page
	Err  error
}

// LoadPageCmd creates a command that fetches url for the seq-th navigation of a tab.
func LoadPageCmd(svc *usecase.BrowsingService, tabID, url string, seq int) tea.Cmd {
	return func() tea.Msg {
		page, err := svc.LoadPage(context.Background(), url)
		return PageLoadedMsg{TabID: tabID, URL: url, Seq: seq, Page: page, Err: err}
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch s.Session {
	case state.URLInputView:
		return handleURLInputKey(s, msg, deps)
	case state.QuitView:
		return handleQuitView(s, msg)
	case state.ReaderSettingsView:
		return handleReaderSettingsKey(s, msg, deps)
	}
	if l, ok := activeList(s); ok && l.FilterState() == list.Filtering {
		return nil, false
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.None {
		return nil, false
	}
	return HandleIntent(s, parsed, deps)
}

// HandleIntent applies an intent from a key press or an activated element.
func HandleIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Quit:
		if s.Session != state.QuitView {
			s.Previous = s.Session
			s.Session = state.QuitView
		}
		return nil, true
	case intent.ConfirmQuit:
		return tea.Quit, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	case intent.Reset:
		resetState(s, deps)
		return nil, true
	}

	switch s.Session {
	case state.BrowseView:
		return handleBrowseIntent(s, in, deps)
	case state.URLInputView:
		return handleURLInputIntent(s, in, deps)
	case state.TabTrayView:
		return handleTabTrayIntent(s, in, deps)
	case state.HistoryView, state.ReadingListView:
		return handleEntryListIntent(s, in, deps)
	case state.ReaderSettingsView:
		return handleReaderSettingsIntent(s, in, deps)
	case state.QuitView:
		if in.Type == intent.Back {
			s.Session = s.Previous
			return nil, true
		}
	}
	return nil, false
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg, deps Deps) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
	RefreshContent(s, deps)
}

// HandlePageLoadedMsg commits a loaded page to its tab.
func HandlePageLoadedMsg(s *state.ModelState, msg PageLoadedMsg, deps Deps) {
	if msg.Seq != s.Navigations[msg.TabID] {
		slog.Debug("discarding superseded page", "url", msg.URL, "tab", msg.TabID)
		return
	}
	if msg.TabID == s.LoadingTabID {
		s.Loading = false
		s.LoadingTabID = ""
		s.LoadingURL = ""
	}
	defer UpdateListSizes(s)

	if msg.Err != nil {
		slog.Warn("page load failed", "url", msg.URL, "tab", msg.TabID, "err", msg.Err)
		s.Err = msg.Err
		return
	}

	if err := deps.Browsing.Commit(msg.TabID, msg.Page); err != nil {
		if errors.Is(err, usecase.ErrTabNotFound) {
			slog.Debug("discarding page for closed tab", "url", msg.URL, "tab", msg.TabID)
			return
		}
		slog.Error("commit page", "url", msg.URL, "err", err)
		s.Err = err
	}
	slog.Debug("page loaded", "url", msg.Page.URL, "title", msg.Page.Title, "tab", msg.TabID)
	s.Pages[msg.TabID] = msg.Page

	if current := deps.Browsing.Current(); current != nil && current.ID == msg.TabID {
		RefreshContent(s, deps)
	}
}

// RefreshContent renders the current tab's page into the viewport.
func RefreshContent(s *state.ModelState, deps Deps) {
	page, ok := CurrentPage(s, deps)
	if !ok {
		exitReaderMode(s)
		s.Viewport.SetContent("")
		return
	}
	if s.ReaderBar != nil && (page.URL != s.ReaderURL || !page.Readable()) {
		exitReaderMode(s)
	}

	width := s.Viewport.Width - s.Viewport.Style.GetHorizontalFrameSize()
	if s.ReaderBar != nil {
		s.Viewport.SetContent(buildReaderContent(page, s.Reader, width))
	} else {
		s.Viewport.SetContent(buildPageContent(page, width))
	}
	s.Viewport.GotoTop()
}

// CurrentPage returns the page shown in the current tab.
func CurrentPage(s *state.ModelState, deps Deps) (browsing.Page, bool) {
	tab := deps.Browsing.Current()
	if tab == nil {
		return browsing.Page{}, false
	}
	if page, ok := s.Pages[tab.ID]; ok {
		return page, true
	}
	visit := tab.Current()
	if visit.URL == browsing.HomeURL {
		return browsing.HomePage(), true
	}
	return browsing.Page{URL: visit.URL, Title: visit.Title}, true
}

func handleBrowseIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.FocusURL:
		return enterURLInput(s, deps), true
	case intent.ShowTabs:
		openTabTray(s, deps)
		return nil, true
	case intent.ShowHistory:
		openHistory(s, deps)
		return nil, true
	case intent.ShowReadingList:
		openReadingList(s, deps)
		return nil, true
	case intent.Home:
		return navigate(s, deps, browsing.HomeURL), true
	case intent.OpenURL:
		return navigate(s, deps, in.URL), true
	case intent.ToggleReaderMode:
		if s.ReaderBar != nil {
			exitReaderMode(s)
			RefreshContent(s, deps)
		} else {
			enterReaderMode(s, deps)
		}
		return nil, true
	case intent.ReaderBarTap:
		if s.ReaderBar == nil {
			return nil, false
		}
		s.ReaderBar.Tap(in.Button)
		return nil, true
	case intent.OpenExternal:
		page, ok := CurrentPage(s, deps)
		if !ok || page.URL == browsing.HomeURL || deps.OpenBrowser == nil {
			return nil, true
		}
		if err := deps.OpenBrowser(page.URL); err != nil {
			s.Err = fmt.Errorf("open %s: %w", page.URL, err)
		}
		return nil, true
	case intent.Back:
		if s.ReaderBar != nil {
			exitReaderMode(s)
			RefreshContent(s, deps)
			return nil, true
		}
		s.Err = nil
		s.StatusMessage = ""
		return nil, true
	}
	return nil, false
}

func enterURLInput(s *state.ModelState, deps Deps) tea.Cmd {
	s.Previous = state.BrowseView
	s.Session = state.URLInputView
	s.Err = nil
	s.StatusMessage = ""
	s.TextInput.Reset()
	if page, ok := CurrentPage(s, deps); ok && page.URL != browsing.HomeURL {
		s.TextInput.SetValue(page.URL)
	}
	s.TextInput.CursorEnd()
	s.TextInput.Focus()
	return textinput.Blink
}

func handleURLInputKey(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return handleURLInputIntent(s, intent.Intent{Type: intent.Open}, deps)
	case tea.KeyEsc:
		return handleURLInputIntent(s, intent.Intent{Type: intent.Back}, deps)
	}
	if key.Matches(msg, s.Keys.History) {
		return handleURLInputIntent(s, intent.Intent{Type: intent.ShowHistory}, deps)
	}

	var cmd tea.Cmd
	s.TextInput, cmd = s.TextInput.Update(msg)
	return cmd, true
}

func handleURLInputIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Open:
		url, err := usecase.NormalizeURL(s.TextInput.Value())
		if err != nil {
			s.Err = err
			return nil, true
		}
		s.TextInput.Blur()
		s.Session = state.BrowseView
		return navigate(s, deps, url), true
	case intent.Back:
		s.TextInput.Blur()
		s.Err = nil
		s.Session = state.BrowseView
		return nil, true
	case intent.ShowHistory:
		s.TextInput.Blur()
		openHistory(s, deps)
		return nil, true
	case intent.FocusURL:
		return nil, true
	}
	return nil, false
}

func navigate(s *state.ModelState, deps Deps, url string) tea.Cmd {
	tab := deps.Browsing.Current()
	if tab == nil {
		tab = deps.Browsing.OpenTab()
	}
	exitReaderMode(s)
	s.Session = state.BrowseView
	s.Loading = true
	s.LoadingTabID = tab.ID
	s.LoadingURL = url
	s.Err = nil
	s.StatusMessage = ""
	if s.Navigations == nil {
		s.Navigations = make(map[string]int)
	}
	s.Navigations[tab.ID]++
	slog.Debug("loading page", "url", url, "tab", tab.ID, "mode", tab.Mode)
	return tea.Batch(s.Spinner.Tick, LoadPageCmd(deps.Browsing, tab.ID, url, s.Navigations[tab.ID]))
}

func openTabTray(s *state.ModelState, deps Deps) {
	s.Previous = s.Session
	s.Session = state.TabTrayView
	refreshTabList(s, deps)
}

func refreshTabList(s *state.ModelState, deps Deps) {
	currentID := ""
	if tab := deps.Browsing.Current(); tab != nil {
		currentID = tab.ID
	}
	presenter.ApplyTabList(&s.TabList, deps.Browsing.Tabs(), currentID)
	if deps.Browsing.Mode() == browsing.Private {
		s.TabList.Title = "Private Tabs"
	} else {
		s.TabList.Title = "Tabs"
	}
}

func handleTabTrayIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.AddTab:
		tab := deps.Browsing.OpenTab()
		s.Pages[tab.ID] = browsing.HomePage()
		slog.Debug("tab opened", "tab", tab.ID, "mode", tab.Mode)
		leaveTabTray(s, deps)
		return nil, true
	case intent.TogglePrivateMode:
		if deps.Browsing.Mode() == browsing.Private {
			deps.Browsing.SwitchMode(browsing.Normal)
		} else {
			deps.Browsing.SwitchMode(browsing.Private)
		}
		exitReaderMode(s)
		refreshTabList(s, deps)
		return nil, true
	case intent.Open, intent.SelectTab:
		id := in.TabID
		if id == "" {
			id = selectedTabID(s)
		}
		if id == "" {
			return nil, true
		}
		if err := deps.Browsing.Select(id); err != nil {
			s.Err = err
			return nil, true
		}
		leaveTabTray(s, deps)
		return nil, true
	case intent.CloseTab:
		id := in.TabID
		if id == "" {
			id = selectedTabID(s)
		}
		if id == "" {
			return nil, true
		}
		if err := deps.Browsing.CloseTab(id); err != nil {
			s.Err = err
			return nil, true
		}
		delete(s.Pages, id)
		delete(s.Navigations, id)
		if s.LoadingTabID == id {
			s.Loading = false
			s.LoadingTabID = ""
			s.LoadingURL = ""
		}
		slog.Debug("tab closed", "tab", id)
		refreshTabList(s, deps)
		return nil, true
	case intent.Back, intent.ShowTabs:
		leaveTabTray(s, deps)
		return nil, true
	}
	return nil, false
}

func leaveTabTray(s *state.ModelState, deps Deps) {
	if deps.Browsing.Current() == nil {
		deps.Browsing.SwitchMode(browsing.Normal)
	}
	s.Session = state.BrowseView
	RefreshContent(s, deps)
}

func selectedTabID(s *state.ModelState) string {
	if item, ok := s.TabList.SelectedItem().(*presenter.Item); ok && item != nil {
		return item.TabID
	}
	return ""
}

func openHistory(s *state.ModelState, deps Deps) {
	entries, err := deps.Browsing.History()
	if err != nil {
		slog.Warn("load history", "err", err)
		s.Err = err
	}
	presenter.ApplyHistoryList(&s.HistoryList, entries)
	s.Previous = state.BrowseView
	s.Session = state.HistoryView
}

func openReadingList(s *state.ModelState, deps Deps) {
	items, err := deps.ReadingList.List()
	if err != nil {
		slog.Warn("load reading list", "err", err)
		s.Err = err
	}
	presenter.ApplyReadingList(&s.ReadingList, items)
	s.Previous = state.BrowseView
	s.Session = state.ReadingListView
}

func handleEntryListIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Open:
		l, _ := activeList(s)
		item, ok := l.SelectedItem().(*presenter.Item)
		if !ok || item == nil {
			return nil, true
		}
		return navigate(s, deps, item.Link), true
	case intent.OpenURL:
		return navigate(s, deps, in.URL), true
	case intent.Back:
		s.Session = state.BrowseView
		return nil, true
	case intent.ShowHistory:
		openHistory(s, deps)
		return nil, true
	case intent.ShowReadingList:
		openReadingList(s, deps)
		return nil, true
	}
	return nil, false
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func resetState(s *state.ModelState, deps Deps) {
	deps.Browsing.Reset()
	exitReaderMode(s)
	s.Pages = make(map[string]browsing.Page)
	s.Navigations = make(map[string]int)
	s.Session = state.BrowseView
	s.Previous = state.BrowseView
	s.Loading = false
	s.LoadingTabID = ""
	s.LoadingURL = ""
	s.Err = nil
	s.StatusMessage = ""
	s.Help.ShowAll = false
	s.TextInput.Reset()
	s.TextInput.Blur()
	RefreshContent(s, deps)
}

func activeList(s *state.ModelState) (*list.Model, bool) {
	switch s.Session {
	case state.TabTrayView:
		return &s.TabList, true
	case state.HistoryView:
		return &s.HistoryList, true
	case state.ReadingListView:
		return &s.ReadingList, true
	default:
		return nil, false
	}
}

// ActiveList returns the list widget of the current session.
func ActiveList(s *state.ModelState) (*list.Model, bool) {
	return activeList(s)
}
