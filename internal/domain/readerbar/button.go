// Package readerbar defines the reader-mode toolbar model.
package readerbar

// ButtonKind identifies the action a reader bar button represents.
type ButtonKind int

const (
	MarkAsRead ButtonKind = iota
	MarkAsUnread
	Settings
	AddToReadingList
	RemoveFromReadingList
)

// Button identifies one of the three physical buttons on the bar.
type Button int

const (
	ReadStatusButton Button = iota
	SettingsButton
	ListStatusButton
)

// Buttons lists the bar buttons in display order.
var Buttons = []Button{ReadStatusButton, SettingsButton, ListStatusButton}

// Label returns the user-facing name of the kind.
func (k ButtonKind) Label() string {
	switch k {
	case MarkAsRead:
		return "Mark as Read"
	case MarkAsUnread:
		return "Mark as Unread"
	case Settings:
		return "Display Settings"
	case AddToReadingList:
		return "Add to Reading List"
	case RemoveFromReadingList:
		return "Remove from Reading List"
	default:
		return ""
	}
}

// Icon returns the icon resource name for the kind.
func (k ButtonKind) Icon() string {
	switch k {
	case MarkAsRead:
		return "MarkAsRead"
	case MarkAsUnread:
		return "MarkAsUnread"
	case Settings:
		return "SettingsSerif"
	case AddToReadingList:
		return "addToReadingList"
	case RemoveFromReadingList:
		return "removeFromReadingList"
	default:
		return ""
	}
}

func (k ButtonKind) String() string {
	return k.Label()
}
