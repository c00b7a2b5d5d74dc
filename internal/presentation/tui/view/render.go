// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/readmode/internal/presentation/tui/components/header"
	"github.com/tesso57/readmode/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/readmode/internal/presentation/tui/components/main"
	"github.com/tesso57/readmode/internal/presentation/tui/components/modal"
	"github.com/tesso57/readmode/internal/presentation/tui/components/panel"
)

// Props aggregates properties for all UI components.
type Props struct {
	Panel     panel.Props
	ShowPanel bool
	Header    header.Props
	Main      mainview.Props
	Modal     modal.Props
	Footer    string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	panelStr := ""
	if p.ShowPanel {
		panelStr = panel.Render(p.Panel)
	}

	p.Main.Header = header.Render(p.Header)
	mainStr := mainview.Render(p.Main)

	return layout.Render(layout.Props{
		Panel:  panelStr,
		Main:   mainStr,
		Footer: p.Footer,
	})
}
