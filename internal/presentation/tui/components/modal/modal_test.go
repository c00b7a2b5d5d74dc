package modal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		props    Props
		wantBody []string
		wantVis  bool
	}{
		{
			name:    "Hidden",
			props:   Props{Visible: false},
			wantVis: false,
		},
		{
			name: "Help Modal",
			props: Props{
				Visible: true,
				Kind:    Help,
				Body:    "HELP INFO",
				Width:   100,
				Height:  50,
			},
			wantBody: []string{"HELP INFO"},
			wantVis:  true,
		},
		{
			name: "URL Modal",
			props: Props{
				Visible: true,
				Kind:    URLInput,
				Title:   "Open URL",
				Body:    "INPUT URL",
				Width:   100,
				Height:  50,
				Accent:  lipgloss.Color("205"),
			},
			wantBody: []string{"Open URL", "INPUT URL"},
			wantVis:  true,
		},
		{
			name: "Reader Settings Modal",
			props: Props{
				Visible: true,
				Kind:    ReaderSettings,
				Title:   "Display Settings",
				Body:    "Style: sepia",
				Width:   30,
				Height:  20,
			},
			wantBody: []string{"Display Settings", "sepia"},
			wantVis:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if !tt.wantVis {
				if got != "" {
					t.Errorf("Render() = %q, want empty", got)
				}
				return
			}
			for _, want := range tt.wantBody {
				if !strings.Contains(got, want) {
					t.Errorf("Render() = %q, want body %q", got, want)
				}
			}
		})
	}
}

func TestDialogWidth(t *testing.T) {
	if got := dialogWidth(0, 60); got != 60 {
		t.Errorf("unknown screen width should keep preferred, got %d", got)
	}
	if got := dialogWidth(30, 60); got != 26 {
		t.Errorf("narrow screen should shrink dialog, got %d", got)
	}
	if got := dialogWidth(8, 60); got != 10 {
		t.Errorf("dialog width has a floor, got %d", got)
	}
}
