// Package layout provides the main layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	// Panel is rendered to the left of Main when set.
	Panel  string
	Main   string
	Footer string
}

// Render renders the layout component.
func Render(p Props) string {
	content := p.Main
	if p.Panel != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, p.Panel, p.Main)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, p.Footer)
}
