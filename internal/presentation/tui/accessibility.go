package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/readmode/internal/application/settings"
	"github.com/tesso57/readmode/internal/domain/browsing"
	"github.com/tesso57/readmode/internal/domain/readerbar"
	"github.com/tesso57/readmode/internal/presentation/tui/a11y"
	"github.com/tesso57/readmode/internal/presentation/tui/intent"
	"github.com/tesso57/readmode/internal/presentation/tui/presenter"
	"github.com/tesso57/readmode/internal/presentation/tui/state"
	"github.com/tesso57/readmode/internal/presentation/tui/update"
)

// Accessibility labels and identifiers of the browser chrome.
const (
	ShowTabsLabel    = "Show Tabs"
	URLIdentifier    = "url"
	HomeLabel        = "home"
	WebViewID        = "web view"
	HistoryLabel     = "History"
	HistoryListLabel = "History List"
	ReadingListLabel = "Reading List"
	ReaderModeLabel  = "Reader Mode"
	CancelLabel      = "Cancel"
	TabsTrayLabel    = "Tabs Tray"
	PrivateModeLabel = "Private Mode"
	AddTabLabel      = "Add Tab"
	DoneLabel        = "Done"
	LoadingLabel     = "Loading"
)

var readerBarIdentifiers = map[readerbar.Button]string{
	readerbar.ReadStatusButton: "ReaderModeBar.readStatusButton",
	readerbar.SettingsButton:   "ReaderModeBar.settingsButton",
	readerbar.ListStatusButton: "ReaderModeBar.listStatusButton",
}

// Accessibility describes the addressable elements of the current screen.
func (m *Model) Accessibility() []a11y.Element {
	switch m.state.Session {
	case state.URLInputView:
		return m.urlInputElements()
	case state.HistoryView:
		return entryListElements(HistoryListLabel, &m.state.HistoryList)
	case state.ReadingListView:
		return entryListElements(ReadingListLabel, &m.state.ReadingList)
	case state.TabTrayView:
		return m.tabTrayElements()
	case state.ReaderSettingsView:
		return readerSettingsElements(m.state.Reader)
	case state.QuitView:
		return []a11y.Element{
			{Label: "Quit", Enabled: true, Activate: intent.Intent{Type: intent.ConfirmQuit}},
			{Label: CancelLabel, Enabled: true, Activate: intent.Intent{Type: intent.Back}},
		}
	default:
		return m.browseElements()
	}
}

func (m *Model) browseElements() []a11y.Element {
	mode := m.browsing.Mode()
	elements := []a11y.Element{
		{
			Label:    ShowTabsLabel,
			Value:    strconv.Itoa(m.browsing.TabCount(mode)),
			Enabled:  true,
			Activate: intent.Intent{Type: intent.ShowTabs},
		},
	}

	page, ok := update.CurrentPage(m.state, m.deps())
	urlLabel := "Search or enter address"
	if ok && page.URL != browsing.HomeURL {
		urlLabel = page.URL
	}
	elements = append(elements,
		a11y.Element{Label: urlLabel, Identifier: URLIdentifier, Enabled: true, Activate: intent.Intent{Type: intent.FocusURL}},
		a11y.Element{Label: HomeLabel, Enabled: true, Activate: intent.Intent{Type: intent.Home}},
		a11y.Element{Label: ReadingListLabel, Enabled: true, Activate: intent.Intent{Type: intent.ShowReadingList}},
		a11y.Element{
			Label:    ReaderModeLabel,
			Value:    onOff(m.state.InReaderMode()),
			Enabled:  ok && page.Readable(),
			Activate: intent.Intent{Type: intent.ToggleReaderMode},
		},
	)

	if m.state.Loading {
		elements = append(elements, a11y.Element{Label: LoadingLabel, Value: m.state.LoadingURL, Enabled: true})
	}
	if tab := m.browsing.Current(); tab != nil {
		elements = append(elements, a11y.Element{
			Label:      tab.Title(),
			Identifier: WebViewID,
			Value:      tab.Current().URL,
			Enabled:    true,
		})
	}

	if bar := m.state.ReaderBar; bar != nil {
		display := bar.Display()
		for _, button := range readerbar.Buttons {
			elements = append(elements, a11y.Element{
				Label:      display.Kind(button).Label(),
				Identifier: readerBarIdentifiers[button],
				Container:  "Reader Bar",
				Enabled:    display.Enabled(button),
				Activate:   intent.Intent{Type: intent.ReaderBarTap, Button: button},
			})
		}
	}
	return elements
}

func (m *Model) urlInputElements() []a11y.Element {
	return []a11y.Element{
		{
			Label:      "Address",
			Identifier: URLIdentifier,
			Value:      m.state.TextInput.Value(),
			Enabled:    true,
			Focused:    m.state.TextInput.Focused(),
			Activate:   intent.Intent{Type: intent.FocusURL},
		},
		{Label: HistoryLabel, Enabled: true, Activate: intent.Intent{Type: intent.ShowHistory}},
		{Label: CancelLabel, Enabled: true, Activate: intent.Intent{Type: intent.Back}},
	}
}

func entryListElements(container string, l *list.Model) []a11y.Element {
	items := l.Items()
	elements := make([]a11y.Element, 0, len(items)+2)
	elements = append(elements, a11y.Element{
		Label:      container,
		Identifier: container,
		Count:      len(items),
		Enabled:    true,
	})
	for _, it := range items {
		item, ok := it.(*presenter.Item)
		if !ok {
			continue
		}
		elements = append(elements, a11y.Element{
			Label:     item.Title(),
			Container: container,
			Value:     item.URL(),
			Enabled:   true,
			Activate:  intent.Intent{Type: intent.OpenURL, URL: item.URL()},
		})
	}
	return append(elements, a11y.Element{Label: CancelLabel, Enabled: true, Activate: intent.Intent{Type: intent.Back}})
}

func (m *Model) tabTrayElements() []a11y.Element {
	items := m.state.TabList.Items()
	elements := make([]a11y.Element, 0, len(items)+4)
	elements = append(elements, a11y.Element{
		Label:      TabsTrayLabel,
		Identifier: TabsTrayLabel,
		Count:      len(items),
		Enabled:    true,
	})
	for _, it := range items {
		item, ok := it.(*presenter.Item)
		if !ok {
			continue
		}
		elements = append(elements, a11y.Element{
			Label:      item.Title(),
			Identifier: item.TabID,
			Container:  TabsTrayLabel,
			Value:      item.URL(),
			Enabled:    true,
			Focused:    item.IsCurrent(),
			Activate:   intent.Intent{Type: intent.SelectTab, TabID: item.TabID},
			Dismiss:    intent.Intent{Type: intent.CloseTab, TabID: item.TabID},
		})
	}

	private := m.browsing.Mode() == browsing.Private
	if private && len(items) == 0 {
		elements = append(elements, a11y.Element{Label: PrivateBrowsingLabel, Enabled: true})
	}
	return append(elements,
		a11y.Element{Label: PrivateModeLabel, Value: onOff(private), Enabled: true, Activate: intent.Intent{Type: intent.TogglePrivateMode}},
		a11y.Element{Label: AddTabLabel, Enabled: true, Activate: intent.Intent{Type: intent.AddTab}},
		a11y.Element{Label: DoneLabel, Enabled: true, Activate: intent.Intent{Type: intent.Back}},
	)
}

func readerSettingsElements(reader settings.ReaderConfig) []a11y.Element {
	return []a11y.Element{
		{Label: "Display Settings", Enabled: true},
		{Label: "Style", Value: reader.Style, Enabled: true, Activate: intent.Intent{Type: intent.CycleReaderStyle}},
		{Label: "Narrower", Value: strconv.Itoa(reader.Width), Enabled: reader.Width > settings.MinReaderWidth, Activate: intent.Intent{Type: intent.NarrowerReader}},
		{Label: "Wider", Value: strconv.Itoa(reader.Width), Enabled: reader.Width < settings.MaxReaderWidth, Activate: intent.Intent{Type: intent.WiderReader}},
		{Label: DoneLabel, Enabled: true, Activate: intent.Intent{Type: intent.Back}},
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
