// Package header provides the browser chrome header component.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible  bool
	URL      string
	Title    string
	Private  bool
	TabCount int
	Accent   lipgloss.Color
	Muted    lipgloss.Color
	Badge    lipgloss.Color
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	muted := lipgloss.NewStyle().Foreground(p.Muted)
	tabs := lipgloss.NewStyle().Foreground(p.Accent).Render(fmt.Sprintf("[%d]", p.TabCount))

	badge := ""
	if p.Private {
		badge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(p.Badge).
			Padding(0, 1).
			Render("private") + " "
	}

	return fmt.Sprintf("%s%s %s\n%s",
		badge,
		tabs,
		muted.Render("🔗 "+p.URL),
		muted.Render("🏷️  "+p.Title),
	)
}
