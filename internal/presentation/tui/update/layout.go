package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/readmode/internal/presentation/tui/metrics"
	"github.com/tesso57/readmode/internal/presentation/tui/state"
)

type layoutMetrics struct {
	panelWidth      int
	mainWidth       int
	panelMainWidth  int
	panelListHeight int
	viewportHeight  int
}

// UpdateListSizes recomputes widget sizes from the terminal size.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	for _, l := range []*list.Model{&s.TabList, &s.HistoryList, &s.ReadingList} {
		l.SetSize(layout.panelWidth, reservePaginationSpace(*l, layout.panelListHeight))
	}
	s.Viewport.Width = layout.mainWidth
	s.Viewport.Height = layout.viewportHeight
	s.TextInput.Width = clampMin(min(s.Width-12, 60), 10)
	if s.ReaderBar != nil {
		s.ReaderBar.Width = layout.mainWidth
	}
}

// PanelMainWidth returns the width left for the main area next to a panel.
func PanelMainWidth(s *state.ModelState) int {
	return buildLayoutMetrics(s).panelMainWidth
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	availableHeight := clampMin(s.Height-footerHeight(s), 1)

	viewportHeight := availableHeight - metrics.HeaderLines
	if s.ReaderBar != nil {
		viewportHeight -= metrics.ReaderBarLines
	}

	panelWidth := s.Width / 3
	return layoutMetrics{
		panelWidth:      panelWidth,
		mainWidth:       clampMin(s.Width-metrics.MainLeftPadding, 1),
		panelMainWidth:  clampMin(s.Width-panelWidth-metrics.PanelRightBorderWidth, 1),
		panelListHeight: clampMin(availableHeight-metrics.PanelTitleLines, 1),
		viewportHeight:  clampMin(viewportHeight, 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	helpText := state.FooterHelpText(s.Help, s.Keys, s.Session)
	return lipgloss.Height(state.FooterText(s.Loading, footerStatus(s), helpText))
}

// FooterStatus returns the status line shown above the help keys.
func FooterStatus(s *state.ModelState) string {
	return footerStatus(s)
}

func footerStatus(s *state.ModelState) string {
	if s.StatusMessage != "" {
		return s.StatusMessage
	}
	if s.Err != nil {
		return "Error: " + s.Err.Error()
	}
	return ""
}

func reservePaginationSpace(m list.Model, height int) int {
	if height <= 1 || !m.ShowPagination() {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems()) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
