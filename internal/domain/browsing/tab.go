// Package browsing defines tabs, browsing modes and history entries.
package browsing

import (
	"time"

	"github.com/google/uuid"
)

// HomeURL is the internal start page. It is never recorded in history.
const HomeURL = "about:home"

// HomeTitle is the title shown for HomeURL.
const HomeTitle = "Home"

// Mode partitions tabs into normal and private browsing.
type Mode int

const (
	Normal Mode = iota
	Private
)

func (m Mode) String() string {
	if m == Private {
		return "private"
	}
	return "normal"
}

// Visit is one step of a tab's navigation trail.
type Visit struct {
	URL   string
	Title string
	At    time.Time
}

// Tab is a single browsing context.
type Tab struct {
	ID    string
	Mode  Mode
	Trail []Visit
}

// Current returns the most recent visit, or a home visit for a fresh tab.
func (t *Tab) Current() Visit {
	if t == nil || len(t.Trail) == 0 {
		return Visit{URL: HomeURL, Title: HomeTitle}
	}
	return t.Trail[len(t.Trail)-1]
}

// Title returns the title of the current page.
func (t *Tab) Title() string {
	v := t.Current()
	if v.Title != "" {
		return v.Title
	}
	return v.URL
}

// Visit appends a page to the trail.
func (t *Tab) Visit(url, title string, at time.Time) {
	t.Trail = append(t.Trail, Visit{URL: url, Title: title, At: at})
}

// TabSet is an ordered collection of tabs across both modes.
type TabSet struct {
	tabs  []*Tab
	newID func() string
}

// NewTabSet constructs an empty TabSet. A nil newID uses random UUIDs.
func NewTabSet(newID func() string) *TabSet {
	if newID == nil {
		newID = uuid.NewString
	}
	return &TabSet{newID: newID}
}

// Add opens a new tab in mode positioned on the home page.
func (s *TabSet) Add(mode Mode, now time.Time) *Tab {
	tab := &Tab{ID: s.newID(), Mode: mode}
	tab.Visit(HomeURL, HomeTitle, now)
	s.tabs = append(s.tabs, tab)
	return tab
}

// Remove deletes the tab with id. Returns true if it existed.
func (s *TabSet) Remove(id string) bool {
	for i, tab := range s.tabs {
		if tab.ID == id {
			s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a tab by id.
func (s *TabSet) Get(id string) (*Tab, bool) {
	for _, tab := range s.tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return nil, false
}

// InMode returns the tabs of a mode in opening order.
func (s *TabSet) InMode(mode Mode) []*Tab {
	tabs := make([]*Tab, 0, len(s.tabs))
	for _, tab := range s.tabs {
		if tab.Mode == mode {
			tabs = append(tabs, tab)
		}
	}
	return tabs
}

// Count returns the number of tabs open in mode.
func (s *TabSet) Count(mode Mode) int {
	n := 0
	for _, tab := range s.tabs {
		if tab.Mode == mode {
			n++
		}
	}
	return n
}

// Clear removes every tab.
func (s *TabSet) Clear() {
	s.tabs = nil
}
