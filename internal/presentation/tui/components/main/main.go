// Package mainview provides the main content area component.
package mainview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	// Toolbar sits between the header and the body, e.g. the reader bar.
	Toolbar string
	Body    string
}

// Render renders the main view component.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1)

	parts := make([]string, 0, 3)
	for _, part := range []string{p.Header, p.Toolbar, p.Body} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return mainStyle.Render(strings.Join(parts, "\n"))
}
