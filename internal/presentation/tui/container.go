// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/readmode/internal/application/settings"
	"github.com/tesso57/readmode/internal/domain/browsing"
	"github.com/tesso57/readmode/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/readmode/internal/presentation/tui/components/main"
	"github.com/tesso57/readmode/internal/presentation/tui/components/modal"
	"github.com/tesso57/readmode/internal/presentation/tui/components/panel"
	"github.com/tesso57/readmode/internal/presentation/tui/metrics"
	"github.com/tesso57/readmode/internal/presentation/tui/presenter"
	"github.com/tesso57/readmode/internal/presentation/tui/state"
	"github.com/tesso57/readmode/internal/presentation/tui/textutil"
	"github.com/tesso57/readmode/internal/presentation/tui/update"
	"github.com/tesso57/readmode/internal/presentation/tui/view"
)

// PrivateBrowsingLabel is the empty-state title of the private tab tray.
const PrivateBrowsingLabel = "Private Browsing"

func (m *Model) buildProps() view.Props {
	footer := m.buildFooterProps()
	return view.Props{
		Panel:     m.buildPanelProps(),
		ShowPanel: panelVisible(m.state),
		Header:    m.buildHeaderProps(),
		Main:      m.buildMainProps(lipgloss.Height(footer)),
		Modal:     m.buildModalProps(),
		Footer:    footer,
	}
}

func (m *Model) buildPanelProps() panel.Props {
	l, ok := update.ActiveList(m.state)
	if !ok {
		return panel.Props{}
	}
	return panel.Props{
		View:   l.View(),
		Width:  l.Width(),
		Height: l.Height(),
		Title:  l.Title,
		Empty:  m.emptyState(l),
		Active: true,
		Accent: m.accent(),
	}
}

func (m *Model) emptyState(l *list.Model) string {
	if len(l.Items()) > 0 {
		return ""
	}
	switch m.state.Session {
	case state.TabTrayView:
		if m.browsing.Mode() == browsing.Private {
			return PrivateBrowsingLabel + "\n\nTabs opened here leave no history."
		}
		return "No tabs"
	case state.HistoryView:
		return "No history yet"
	case state.ReadingListView:
		return "Your reading list is empty"
	}
	return ""
}

func (m *Model) buildHeaderProps() header.Props {
	visible := m.state.Session != state.QuitView
	props := header.Props{
		Visible:  visible,
		Private:  m.browsing.Mode() == browsing.Private,
		TabCount: m.browsing.TabCount(m.browsing.Mode()),
		Accent:   m.accent(),
		Muted:    lipgloss.Color(m.state.Theme.Muted),
		Badge:    lipgloss.Color(m.state.Theme.Private),
	}
	if !visible {
		return props
	}

	width := m.state.Width - metrics.MainLeftPadding - 12
	if page, ok := update.CurrentPage(m.state, m.deps()); ok {
		props.URL = headerLine(page.URL, width)
		props.Title = headerLine(page.Title, width)
	}
	if m.state.Loading {
		props.URL = headerLine(m.state.LoadingURL, width)
	}
	return props
}

func (m *Model) buildMainProps(footerHeight int) mainview.Props {
	height := m.state.Height - footerHeight
	if height < 1 {
		height = 1
	}

	if panelVisible(m.state) {
		return mainview.Props{
			Width:  update.PanelMainWidth(m.state),
			Height: height,
			Body:   m.selectionPreview(),
		}
	}

	var body, toolbar string
	switch {
	case m.state.Loading:
		body = fmt.Sprintf("\n\n   %s Loading %s...", m.state.Spinner.View(), m.state.LoadingURL)
	case m.browsing.Current() == nil:
		body = ""
	default:
		body = m.state.Viewport.View()
	}
	if m.state.ReaderBar != nil && !m.state.Loading {
		toolbar = m.state.ReaderBar.View()
	}

	return mainview.Props{
		Width:   m.state.Width,
		Height:  height,
		Toolbar: toolbar,
		Body:    body,
	}
}

func (m *Model) selectionPreview() string {
	l, ok := update.ActiveList(m.state)
	if !ok {
		return ""
	}
	item, ok := l.SelectedItem().(*presenter.Item)
	if !ok || item == nil {
		return ""
	}
	width := update.PanelMainWidth(m.state) - metrics.MainLeftPadding
	lines := []string{
		headerLine(item.Title(), width),
		headerLine(item.URL(), width),
	}
	if desc := item.Description(); desc != "" && desc != item.URL() {
		lines = append(lines, "", headerLine(desc, width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) buildModalProps() modal.Props {
	props := modal.Props{
		Visible: true,
		Width:   m.state.Width,
		Height:  m.state.Height,
		Accent:  m.accent(),
	}
	switch {
	case m.state.Session == state.URLInputView:
		props.Kind = modal.URLInput
		props.Title = "Open URL"
		body := m.state.TextInput.View()
		if m.state.Err != nil {
			body += "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.state.Err.Error())
		}
		props.Body = body + "\n\n(enter to open, " + m.state.Keys.History.Help().Key + " for history, esc to cancel)"
	case m.state.Session == state.QuitView:
		props.Kind = modal.Quit
		props.Body = "Are you sure you want to quit?\n\n(y/n)"
	case m.state.Session == state.ReaderSettingsView:
		props.Kind = modal.ReaderSettings
		props.Title = "Display Settings"
		props.Body = readerSettingsBody(m.state.Reader)
	case m.state.Help.ShowAll:
		props.Kind = modal.Help
		props.Body = m.state.Help.View(&m.state.Keys)
	default:
		return modal.Props{Visible: false}
	}
	return props
}

func readerSettingsBody(reader settings.ReaderConfig) string {
	styles := make([]string, len(settings.ReaderStyles))
	for i, style := range settings.ReaderStyles {
		if style == reader.Style {
			styles[i] = "[" + style + "]"
		} else {
			styles[i] = " " + style + " "
		}
	}
	return fmt.Sprintf(
		"Style  %s\nWidth  %d columns\n\n(←/→ style, -/+ width, esc to close)",
		strings.Join(styles, " "),
		reader.Width,
	)
}

func (m *Model) buildFooterProps() string {
	m.state.Help.Width = m.state.Width
	helpText := state.FooterHelpText(m.state.Help, m.state.Keys, m.state.Session)
	return state.FooterText(m.state.Loading, update.FooterStatus(m.state), helpText)
}

func (m *Model) accent() lipgloss.Color {
	if m.browsing.Mode() == browsing.Private {
		return lipgloss.Color(m.state.Theme.Private)
	}
	return lipgloss.Color(m.state.Theme.Accent)
}

func panelVisible(st *state.ModelState) bool {
	_, ok := update.ActiveList(st)
	return ok
}

func headerLine(text string, width int) string {
	if width <= 0 {
		return textutil.SingleLine(text)
	}
	return textutil.Truncate(textutil.SingleLine(text), width)
}
