package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/readmode/internal/application/settings"
	"github.com/tesso57/readmode/internal/application/usecase"
	"github.com/tesso57/readmode/internal/domain/browsing"
	"github.com/tesso57/readmode/internal/infrastructure/store"
	"github.com/tesso57/readmode/internal/presentation/tui/update"
)

// stubFetcher serves pages from memory. Unknown URLs fail.
type stubFetcher struct {
	mock.Mock
	mu    sync.Mutex
	pages map[string]browsing.Page
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (browsing.Page, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(url)
		page, _ := args.Get(0).(browsing.Page)
		return page, args.Error(1)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	page, ok := s.pages[url]
	if !ok {
		return browsing.Page{}, fmt.Errorf("no page at %s", url)
	}
	return page, nil
}

type readerSaverSpy struct {
	saved []settings.ReaderConfig
	err   error
}

func (s *readerSaverSpy) save(cfg settings.ReaderConfig) error {
	s.saved = append(s.saved, cfg)
	return s.err
}

func testSettings() settings.Settings {
	return settings.Settings{
		HomePage:            browsing.HomeURL,
		FetchTimeoutSeconds: 5,
		KeyMap: settings.KeyMapConfig{
			Up:             "k",
			Down:           "j",
			UpPage:         "ctrl+u",
			DownPage:       "ctrl+d",
			Open:           "enter",
			Back:           "esc",
			Quit:           "q",
			URL:            "o",
			ShowTabs:       "t",
			History:        "ctrl+r",
			ReadingList:    "L",
			Home:           "~",
			ReaderMode:     "R",
			ReadStatus:     "u",
			ReaderSettings: "s",
			ListStatus:     "b",
			AddTab:         "a",
			PrivateMode:    "p",
			CloseTab:       "x",
			OpenExternal:   "O",
		},
		Theme:  settings.ThemeConfig{Accent: "205", Muted: "240", Private: "99"},
		Reader: settings.ReaderConfig{Style: "light", Width: 72},
	}
}

type testEnv struct {
	model       *Model
	fetcher     *stubFetcher
	db          *store.DB
	browsing    *usecase.BrowsingService
	readingList usecase.ReadingListService
	saver       *readerSaverSpy
}

func newTestEnv(t *testing.T, pages ...browsing.Page) *testEnv {
	t.Helper()

	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	fetcher := &stubFetcher{pages: make(map[string]browsing.Page)}
	for _, p := range pages {
		fetcher.pages[p.URL] = p
	}

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now := func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	ids := 0
	newID := func() string {
		ids++
		return fmt.Sprintf("tab-%d", ids)
	}

	browsingSvc := usecase.NewBrowsingService(fetcher, db.History(), now, newID)
	readingListSvc := usecase.NewReadingListService(db.ReadingList(), now)
	saver := &readerSaverSpy{}
	m := NewModelWithReaderSaver(testSettings(), browsingSvc, readingListSvc, saver.save)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	return &testEnv{
		model:       m,
		fetcher:     fetcher,
		db:          db,
		browsing:    browsingSvc,
		readingList: readingListSvc,
		saver:       saver,
	}
}

func articlePage(url, title string) browsing.Page {
	return browsing.Page{
		URL:   url,
		Title: title,
		Text:  []string{title + " opens with a paragraph.", "A second paragraph follows."},
	}
}

// settle runs cmd synchronously and feeds page loads back into the model.
// Timer-driven messages (spinner ticks, cursor blinks) are dropped.
func (e *testEnv) settle(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			e.settle(c)
		}
	case update.PageLoadedMsg:
		_, next := e.model.Update(msg)
		e.settle(next)
	}
}

func (e *testEnv) press(keys ...string) {
	for _, k := range keys {
		_, cmd := e.model.Update(keyMsg(k))
		e.settle(cmd)
	}
}

func (e *testEnv) send(msg tea.Msg) {
	_, cmd := e.model.Update(msg)
	e.settle(cmd)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// typeURL opens the address bar, replaces its contents and submits.
func (e *testEnv) typeURL(url string) {
	e.press("o")
	e.model.state.TextInput.SetValue(url)
	e.press("enter")
}
