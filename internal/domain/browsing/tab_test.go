package browsing

import (
	"fmt"
	"testing"
	"time"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("tab-%d", n)
	}
}

func TestTabSet_CountsPartitionedByMode(t *testing.T) {
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	s := NewTabSet(sequentialIDs())

	s.Add(Normal, now)
	s.Add(Normal, now)
	p := s.Add(Private, now)

	if got := s.Count(Normal); got != 2 {
		t.Fatalf("Count(Normal) = %d, want 2", got)
	}
	if got := s.Count(Private); got != 1 {
		t.Fatalf("Count(Private) = %d, want 1", got)
	}

	if !s.Remove(p.ID) {
		t.Fatal("Remove should report existing tab")
	}
	if s.Remove(p.ID) {
		t.Fatal("Remove should report missing tab")
	}
	if got := s.Count(Private); got != 0 {
		t.Fatalf("Count(Private) = %d, want 0", got)
	}
	if got := len(s.InMode(Normal)); got != 2 {
		t.Fatalf("InMode(Normal) = %d tabs, want 2", got)
	}
}

func TestTab_Current(t *testing.T) {
	var nilTab *Tab
	if nilTab.Current().URL != HomeURL {
		t.Fatal("nil tab should be on the home page")
	}

	s := NewTabSet(sequentialIDs())
	tab := s.Add(Normal, time.Time{})
	if tab.Title() != HomeTitle {
		t.Fatalf("Title() = %q, want %q", tab.Title(), HomeTitle)
	}
	tab.Visit("http://x/a", "", time.Time{})
	if tab.Title() != "http://x/a" {
		t.Fatalf("Title() should fall back to URL, got %q", tab.Title())
	}
	if got, ok := s.Get(tab.ID); !ok || got != tab {
		t.Fatal("Get should return the opened tab")
	}
}

func TestRecordable(t *testing.T) {
	tests := []struct {
		mode Mode
		url  string
		want bool
	}{
		{Normal, "http://example.com", true},
		{Private, "http://example.com", false},
		{Normal, HomeURL, false},
		{Normal, "", false},
	}
	for _, tt := range tests {
		if got := Recordable(tt.mode, tt.url); got != tt.want {
			t.Errorf("Recordable(%v, %q) = %v, want %v", tt.mode, tt.url, got, tt.want)
		}
	}
}
