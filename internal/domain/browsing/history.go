package browsing

import "time"

// HistoryEntry is one distinct URL visited from a normal tab.
type HistoryEntry struct {
	URL         string
	Title       string
	VisitCount  int
	LastVisited time.Time
}

// Recordable reports whether a visit from a tab in mode may enter history.
func Recordable(mode Mode, url string) bool {
	return mode == Normal && url != "" && url != HomeURL
}
