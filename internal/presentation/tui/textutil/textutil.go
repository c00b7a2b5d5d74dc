// Package textutil provides width-aware text helpers for pages and list rows.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SingleLine collapses whitespace, including newlines, into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims text to width cells with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

// Paragraphs word-wraps each paragraph to width and separates them with a blank line.
// Words longer than width are broken. A non-positive width leaves lines unwrapped.
func Paragraphs(paragraphs []string, width int) string {
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = SingleLine(p)
		if p == "" {
			continue
		}
		if width > 0 {
			p = ansi.Wrap(p, width, "")
		}
		out = append(out, p)
	}
	return strings.Join(out, "\n\n")
}
