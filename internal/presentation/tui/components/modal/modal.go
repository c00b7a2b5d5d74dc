// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// URLInput shows the address bar dialog.
	URLInput
	// Help shows the help dialog.
	Help
	// Quit asks for confirmation before exiting.
	Quit
	// ReaderSettings shows the reader display settings.
	ReaderSettings
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Width   int
	Height  int
	Accent  lipgloss.Color
}

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	borderColor := lipgloss.Color("63")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	switch p.Kind {
	case URLInput:
		borderColor = p.Accent
		box = box.Width(dialogWidth(p.Width, 60))
	case Quit, ReaderSettings:
		borderColor = p.Accent
		box = box.Width(dialogWidth(p.Width, 40))
	}

	body := p.Body
	if p.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Render(p.Title) + "\n\n" + body
	}
	content := box.BorderForeground(borderColor).Render(body)

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}

func dialogWidth(screen, preferred int) int {
	if screen > 0 && screen-4 < preferred {
		return max(screen-4, 10)
	}
	return preferred
}
