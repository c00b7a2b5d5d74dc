package update

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/readmode/internal/application/settings"
	readerbarview "github.com/tesso57/readmode/internal/presentation/tui/components/readerbar"
	"github.com/tesso57/readmode/internal/presentation/tui/metrics"
	"github.com/tesso57/readmode/internal/presentation/tui/state"
)

func TestFooterHeight_GrowsWithStatus(t *testing.T) {
	s := newLayoutTestState()

	base := footerHeight(s)
	s.StatusMessage = "Added to Reading List"
	withStatus := footerHeight(s)
	if withStatus <= base {
		t.Fatalf("footer height should grow with a status line: base=%d with=%d", base, withStatus)
	}
}

func TestFooterStatus_PrefersMessageOverError(t *testing.T) {
	s := newLayoutTestState()
	s.Err = errors.New("boom")
	if got := FooterStatus(s); got != "Error: boom" {
		t.Fatalf("status = %q, want error text", got)
	}

	s.StatusMessage = "Marked as read"
	if got := FooterStatus(s); got != "Marked as read" {
		t.Fatalf("status = %q, want message", got)
	}
}

func TestBuildLayoutMetrics_PanelMainWidthSubtractsBorder(t *testing.T) {
	s := newLayoutTestState()
	s.Width = 120
	s.Height = 40

	layout := buildLayoutMetrics(s)
	panelWidth := s.Width / 3
	want := clampMin(s.Width-panelWidth-metrics.PanelRightBorderWidth, 1)
	if layout.panelMainWidth != want {
		t.Fatalf("panel main width = %d, want %d", layout.panelMainWidth, want)
	}
	if PanelMainWidth(s) != want {
		t.Fatalf("PanelMainWidth = %d, want %d", PanelMainWidth(s), want)
	}
}

func TestBuildLayoutMetrics_ReaderBarTakesViewportLines(t *testing.T) {
	s := newLayoutTestState()
	without := buildLayoutMetrics(s).viewportHeight

	s.ReaderBar = readerbarview.New(nil)
	with := buildLayoutMetrics(s).viewportHeight

	if without-with != metrics.ReaderBarLines {
		t.Fatalf("reader bar should take %d lines, got %d", metrics.ReaderBarLines, without-with)
	}
}

func TestUpdateListSizes(t *testing.T) {
	s := newLayoutTestState()
	s.ReaderBar = readerbarview.New(nil)

	UpdateListSizes(s)

	if s.TabList.Width() != s.Width/3 {
		t.Errorf("tab list width = %d, want %d", s.TabList.Width(), s.Width/3)
	}
	if s.Viewport.Width != s.Width-metrics.MainLeftPadding {
		t.Errorf("viewport width = %d", s.Viewport.Width)
	}
	if s.ReaderBar.Width != s.Viewport.Width {
		t.Errorf("reader bar width = %d, want %d", s.ReaderBar.Width, s.Viewport.Width)
	}
	if s.TextInput.Width != 60 {
		t.Errorf("text input width = %d, want 60", s.TextInput.Width)
	}
}

func TestUpdateListSizes_IgnoresZeroSize(t *testing.T) {
	s := newLayoutTestState()
	s.Width = 0
	s.Viewport.Width = 7

	UpdateListSizes(s)

	if s.Viewport.Width != 7 {
		t.Fatalf("viewport should be untouched before the first resize, got %d", s.Viewport.Width)
	}
}

func TestReservePaginationSpace(t *testing.T) {
	items := make([]list.Item, 10)
	for i := range items {
		items[i] = testItem("row")
	}
	l := list.New(items, list.NewDefaultDelegate(), 20, 20)

	if got := reservePaginationSpace(l, 5); got != 4 {
		t.Fatalf("overflowing list should reserve a pagination line, got %d", got)
	}
	if got := reservePaginationSpace(l, 30); got != 30 {
		t.Fatalf("fitting list should keep its height, got %d", got)
	}
	if got := reservePaginationSpace(l, 1); got != 1 {
		t.Fatalf("height 1 should be kept, got %d", got)
	}
}

type testItem string

func (i testItem) FilterValue() string { return string(i) }

func newLayoutTestState() *state.ModelState {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up: "k", Down: "j", UpPage: "ctrl+u", DownPage: "ctrl+d",
		Open: "enter", Back: "esc", Quit: "q", URL: "o",
		ShowTabs: "t", History: "ctrl+r", ReadingList: "L", Home: "~",
		ReaderMode: "R", ReadStatus: "u", ReaderSettings: "s", ListStatus: "b",
		AddTab: "a", PrivateMode: "p", CloseTab: "x", OpenExternal: "O",
	})
	return &state.ModelState{
		Session:     state.BrowseView,
		Help:        help.New(),
		Keys:        keys,
		TabList:     list.New(nil, list.NewDefaultDelegate(), 0, 0),
		HistoryList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		ReadingList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		TextInput:   textinput.New(),
		Viewport:    viewport.New(0, 0),
		Width:       100,
		Height:      40,
	}
}
