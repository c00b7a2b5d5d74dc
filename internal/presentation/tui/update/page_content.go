package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/readmode/internal/application/settings"
	"github.com/tesso57/readmode/internal/domain/browsing"
	"github.com/tesso57/readmode/internal/presentation/tui/textutil"
)

const pageSectionDivider = "----------------------------------------"

type readerPalette struct {
	text    lipgloss.Color
	heading lipgloss.Color
}

var readerPalettes = map[string]readerPalette{
	"light": {text: lipgloss.Color("252"), heading: lipgloss.Color("255")},
	"dark":  {text: lipgloss.Color("244"), heading: lipgloss.Color("39")},
	"sepia": {text: lipgloss.Color("180"), heading: lipgloss.Color("137")},
}

func buildHomeContent() string {
	return strings.Join([]string{
		"Welcome to readmode",
		pageSectionDivider,
		"Press o to open a URL, t to manage tabs, ctrl+r for history.",
		"Press R on an article to switch to reader mode.",
	}, "\n")
}

func buildPageContent(page browsing.Page, width int) string {
	if page.URL == browsing.HomeURL {
		return buildHomeContent()
	}
	title := strings.TrimSpace(page.Title)
	if title == "" {
		title = page.URL
	}
	body := "(This page has no readable text. Open it in the browser.)"
	if len(page.Text) > 0 {
		body = textutil.Paragraphs(page.Text, width)
	}
	return fmt.Sprintf("%s\n%s\n%s", title, pageSectionDivider, body)
}

func buildReaderContent(page browsing.Page, reader settings.ReaderConfig, width int) string {
	palette, ok := readerPalettes[reader.Style]
	if !ok {
		palette = readerPalettes["light"]
	}
	column := settings.ClampReaderWidth(reader.Width)
	if width > 0 && column > width {
		column = width
	}

	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.heading).
		Width(column).
		Render(page.Title)
	textStyle := lipgloss.NewStyle().Foreground(palette.text).Width(column)

	paragraphs := make([]string, 0, len(page.Text)+1)
	paragraphs = append(paragraphs, heading)
	for _, p := range page.Text {
		paragraphs = append(paragraphs, textStyle.Render(p))
	}
	content := strings.Join(paragraphs, "\n\n")

	if width > column {
		content = lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
	}
	return content
}
