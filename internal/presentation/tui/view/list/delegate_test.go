package listview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type mockTabItem struct {
	title   string
	url     string
	current bool
}

func (m mockTabItem) Title() string       { return m.title }
func (m mockTabItem) Description() string { return m.url }
func (m mockTabItem) FilterValue() string { return m.title }
func (m mockTabItem) URL() string         { return m.url }
func (m mockTabItem) IsCurrent() bool     { return m.current }

type mockEntryItem struct {
	title string
	read  bool
}

func (m mockEntryItem) Title() string       { return m.title }
func (m mockEntryItem) Description() string { return "" }
func (m mockEntryItem) FilterValue() string { return m.title }
func (m mockEntryItem) IsRead() bool        { return m.read }

func TestNewTabDelegate(t *testing.T) {
	d := NewTabDelegate(lipgloss.Color("205"))
	if d.Height() != 2 {
		t.Errorf("Expected Height 2, got %d", d.Height())
	}
	if d.Spacing() != 1 {
		t.Errorf("Expected Spacing 1, got %d", d.Spacing())
	}
	if cmd := d.Update(nil, nil); cmd != nil {
		t.Error("Update should return nil")
	}
}

func TestTabDelegate_Render(t *testing.T) {
	d := NewTabDelegate(lipgloss.Color("205"))

	tests := []struct {
		name     string
		item     list.Item
		index    int
		mdlIndex int
		contains []string
	}{
		{
			name:     "current tab",
			item:     mockTabItem{title: "Page 1", url: "http://localhost/numberedPage.html?page=1", current: true},
			mdlIndex: 0,
			contains: []string{"● Page 1", "numberedPage"},
		},
		{
			name:     "other tab",
			item:     mockTabItem{title: "Home", url: "about:home"},
			mdlIndex: 1,
			contains: []string{"Home", "about:home"},
		},
		{
			name: "invalid item",
			item: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			l := list.New([]list.Item{}, d, 80, 10)
			l.Select(tc.mdlIndex)

			d.Render(buf, l, tc.index, tc.item)

			if len(tc.contains) == 0 && buf.Len() > 0 {
				t.Errorf("Expected empty output, got %q", buf.String())
			}
			for _, want := range tc.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("Expected output to contain %q, got %q", want, buf.String())
				}
			}
			if len(tc.contains) > 0 && strings.Count(buf.String(), "\n") != 1 {
				t.Errorf("Expected two lines, got %q", buf.String())
			}
		})
	}
}

func TestEntryDelegate_Render(t *testing.T) {
	tests := []struct {
		name       string
		markUnread bool
		item       list.Item
		contains   string
		excludes   string
	}{
		{name: "history row", item: mockEntryItem{title: "Page 1", read: true}, contains: "Page 1", excludes: "•"},
		{name: "unread article", markUnread: true, item: mockEntryItem{title: "Saved"}, contains: "• Saved"},
		{name: "read article", markUnread: true, item: mockEntryItem{title: "Done", read: true}, contains: "Done", excludes: "•"},
		{name: "invalid item", item: mockTabItem{title: "x"}, contains: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewEntryDelegate(tc.markUnread)
			buf := &bytes.Buffer{}
			l := list.New([]list.Item{}, d, 80, 10)

			d.Render(buf, l, 0, tc.item)

			if tc.contains == "" {
				if _, ok := tc.item.(EntryItem); !ok && buf.Len() > 0 {
					t.Errorf("Expected empty output, got %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tc.contains) {
				t.Errorf("Expected output to contain %q, got %q", tc.contains, buf.String())
			}
			if tc.excludes != "" && strings.Contains(buf.String(), tc.excludes) {
				t.Errorf("Expected output without %q, got %q", tc.excludes, buf.String())
			}
		})
	}
}

func TestEntryDelegate_Truncates(t *testing.T) {
	d := NewEntryDelegate(false)
	buf := &bytes.Buffer{}
	l := list.New([]list.Item{}, d, 20, 10)

	d.Render(buf, l, 0, mockEntryItem{title: strings.Repeat("long title ", 10)})

	if lipgloss.Width(buf.String()) > 20 {
		t.Errorf("Expected width <= 20, got %d (%q)", lipgloss.Width(buf.String()), buf.String())
	}
	if !strings.Contains(buf.String(), "...") {
		t.Errorf("Expected ellipsis, got %q", buf.String())
	}
}
