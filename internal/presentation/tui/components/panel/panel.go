// Package panel provides the bordered list panel used by the tab tray,
// history and reading list.
package panel

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the panel component.
type Props struct {
	View   string
	Width  int
	Height int
	Title  string
	// Empty replaces View when the list has no rows.
	Empty  string
	Active bool
	Accent lipgloss.Color
}

// Render renders the panel component.
func Render(p Props) string {
	panelStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("63"))

	if p.Active {
		panelStyle = panelStyle.BorderForeground(p.Accent)
	}

	titleStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingBottom(1).
		Foreground(p.Accent)

	body := p.View
	if p.Empty != "" {
		body = lipgloss.NewStyle().
			Width(p.Width).
			Align(lipgloss.Center).
			PaddingTop(1).
			Foreground(lipgloss.Color("245")).
			Render(p.Empty)
	}

	return panelStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(p.Title),
		body,
	))
}
