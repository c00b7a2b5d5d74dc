// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tesso57/readmode/internal/domain/browsing"
)

// ErrTabNotFound is returned when an operation names an unknown tab.
var ErrTabNotFound = errors.New("tab not found")

// PageFetcher abstracts loading a document.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (browsing.Page, error)
}

// HistoryRepository abstracts history persistence.
type HistoryRepository interface {
	Record(url, title string, at time.Time) error
	List() ([]browsing.HistoryEntry, error)
	Clear() error
}

// BrowsingService owns the open tabs and records normal-mode history.
type BrowsingService struct {
	Fetcher     PageFetcher
	HistoryRepo HistoryRepository
	Now         func() time.Time

	tabs     *browsing.TabSet
	mode     browsing.Mode
	selected map[browsing.Mode]string
}

// NewBrowsingService constructs a BrowsingService with one normal home tab.
// A nil newID uses random tab IDs.
func NewBrowsingService(fetcher PageFetcher, historyRepo HistoryRepository, now func() time.Time, newID func() string) *BrowsingService {
	s := &BrowsingService{
		Fetcher:     fetcher,
		HistoryRepo: historyRepo,
		Now:         now,
		tabs:        browsing.NewTabSet(newID),
		selected:    make(map[browsing.Mode]string),
	}
	s.OpenTab()
	return s
}

// Mode returns the active browsing mode.
func (s *BrowsingService) Mode() browsing.Mode {
	return s.mode
}

// SwitchMode changes the active mode without touching either tab set.
func (s *BrowsingService) SwitchMode(mode browsing.Mode) {
	s.mode = mode
}

// Tabs returns the tabs of the active mode.
func (s *BrowsingService) Tabs() []*browsing.Tab {
	return s.tabs.InMode(s.mode)
}

// TabCount returns the number of tabs open in mode.
func (s *BrowsingService) TabCount(mode browsing.Mode) int {
	return s.tabs.Count(mode)
}

// Current returns the selected tab of the active mode, or nil when the mode has no tabs.
func (s *BrowsingService) Current() *browsing.Tab {
	if tab, ok := s.tabs.Get(s.selected[s.mode]); ok {
		return tab
	}
	tabs := s.tabs.InMode(s.mode)
	if len(tabs) == 0 {
		return nil
	}
	last := tabs[len(tabs)-1]
	s.selected[s.mode] = last.ID
	return last
}

// OpenTab opens and selects a new home tab in the active mode.
func (s *BrowsingService) OpenTab() *browsing.Tab {
	tab := s.tabs.Add(s.mode, s.now())
	s.selected[s.mode] = tab.ID
	return tab
}

// Select makes the tab current, switching to its mode.
func (s *BrowsingService) Select(id string) error {
	tab, ok := s.tabs.Get(id)
	if !ok {
		return fmt.Errorf("select %s: %w", id, ErrTabNotFound)
	}
	s.mode = tab.Mode
	s.selected[tab.Mode] = tab.ID
	return nil
}

// CloseTab closes a tab. The normal set is never left empty; the private set may be.
func (s *BrowsingService) CloseTab(id string) error {
	tab, ok := s.tabs.Get(id)
	if !ok {
		return fmt.Errorf("close %s: %w", id, ErrTabNotFound)
	}
	s.tabs.Remove(id)
	if s.selected[tab.Mode] == id {
		delete(s.selected, tab.Mode)
	}
	if tab.Mode == browsing.Normal && s.tabs.Count(browsing.Normal) == 0 {
		prev := s.mode
		s.mode = browsing.Normal
		s.OpenTab()
		s.mode = prev
	}
	return nil
}

// Reset closes every tab and returns to a single normal home tab.
func (s *BrowsingService) Reset() {
	s.tabs.Clear()
	s.selected = make(map[browsing.Mode]string)
	s.mode = browsing.Normal
	s.OpenTab()
}

// LoadPage resolves a URL to a page. The home page never hits the network.
func (s *BrowsingService) LoadPage(ctx context.Context, rawURL string) (browsing.Page, error) {
	if rawURL == browsing.HomeURL {
		return browsing.HomePage(), nil
	}
	if s.Fetcher == nil {
		return browsing.Page{}, errors.New("page fetcher is not configured")
	}
	return s.Fetcher.Fetch(ctx, rawURL)
}

// Commit appends a loaded page to a tab and records it in history for normal tabs.
func (s *BrowsingService) Commit(tabID string, page browsing.Page) error {
	tab, ok := s.tabs.Get(tabID)
	if !ok {
		return fmt.Errorf("commit %s: %w", tabID, ErrTabNotFound)
	}
	now := s.now()
	tab.Visit(page.URL, page.Title, now)
	if !browsing.Recordable(tab.Mode, page.URL) || s.HistoryRepo == nil {
		return nil
	}
	if err := s.HistoryRepo.Record(page.URL, page.Title, now); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

// History lists normal-mode history, most recent first.
func (s *BrowsingService) History() ([]browsing.HistoryEntry, error) {
	if s.HistoryRepo == nil {
		return nil, nil
	}
	return s.HistoryRepo.List()
}

// ClearHistory removes every history entry.
func (s *BrowsingService) ClearHistory() error {
	if s.HistoryRepo == nil {
		return nil
	}
	return s.HistoryRepo.Clear()
}

// NormalizeURL validates user input from the URL bar.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("url is empty")
	}
	if strings.ContainsAny(trimmed, " \t\r\n") {
		return "", errors.New("url contains whitespace")
	}
	if trimmed == browsing.HomeURL {
		return trimmed, nil
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid url %q: missing host", raw)
	}
	return u.String(), nil
}

func (s *BrowsingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
