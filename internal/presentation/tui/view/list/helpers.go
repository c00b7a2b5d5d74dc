package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/readmode/internal/presentation/tui/metrics"
	"github.com/tesso57/readmode/internal/presentation/tui/textutil"
)

// paddedStyles keeps row text off the panel border.
func paddedStyles() list.DefaultItemStyles {
	styles := list.NewDefaultItemStyles()
	for _, s := range []*lipgloss.Style{
		&styles.NormalTitle, &styles.SelectedTitle, &styles.DimmedTitle,
		&styles.NormalDesc, &styles.SelectedDesc, &styles.DimmedDesc,
	} {
		*s = s.PaddingRight(metrics.ItemRightPadding)
	}
	return styles
}

// rowStyles returns the title and description styles for the row at index.
func rowStyles(styles list.DefaultItemStyles, m list.Model, index int) (title, desc lipgloss.Style) {
	if index == m.Index() {
		return styles.SelectedTitle, styles.SelectedDesc
	}
	return styles.NormalTitle, styles.NormalDesc
}

// marked prefixes text with marker, or with blanks of the same width.
func marked(text, marker string, on bool) string {
	if on {
		return marker + text
	}
	return "  " + text
}

// fit truncates text so the styled row stays inside the list width.
func fit(m list.Model, style lipgloss.Style, text string) string {
	return textutil.Truncate(text, m.Width()-style.GetHorizontalFrameSize()-metrics.ItemSafetyPadding)
}

func writeRow(w io.Writer, style lipgloss.Style, text string) {
	_, _ = io.WriteString(w, style.Render(text))
}
