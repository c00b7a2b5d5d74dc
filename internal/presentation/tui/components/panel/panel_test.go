package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		props    Props
		want     string
		excluded string
	}{
		{
			name: "Active",
			props: Props{
				View:   "TAB LIST",
				Title:  "Tabs",
				Width:  30,
				Height: 10,
				Active: true,
				Accent: lipgloss.Color("205"),
			},
			want: "TAB LIST",
		},
		{
			name: "Empty state replaces view",
			props: Props{
				View:   "TAB LIST",
				Title:  "Private Tabs",
				Empty:  "Private Browsing",
				Width:  30,
				Height: 10,
			},
			want:     "Private Browsing",
			excluded: "TAB LIST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Render() = %q, want content %q", got, tt.want)
			}
			if !strings.Contains(got, tt.props.Title) {
				t.Errorf("Render() = %q, want title %q", got, tt.props.Title)
			}
			if tt.excluded != "" && strings.Contains(got, tt.excluded) {
				t.Errorf("Render() = %q, should not contain %q", got, tt.excluded)
			}
		})
	}
}
