package readerbar

// Display is the derived appearance of the bar for a pair of flags.
type Display struct {
	ReadStatus        ButtonKind
	ListStatus        ButtonKind
	ReadStatusEnabled bool
}

// Derive maps the unread/added flags to the bar's displayed kinds.
// An article outside the reading list always shows a disabled "Mark as Unread".
func Derive(unread, added bool) Display {
	d := Display{
		ReadStatus:        MarkAsUnread,
		ListStatus:        AddToReadingList,
		ReadStatusEnabled: added,
	}
	if added {
		d.ListStatus = RemoveFromReadingList
		if unread {
			d.ReadStatus = MarkAsRead
		}
	}
	return d
}

// Kind returns the kind currently displayed on the given button.
func (d Display) Kind(b Button) ButtonKind {
	switch b {
	case ReadStatusButton:
		return d.ReadStatus
	case ListStatusButton:
		return d.ListStatus
	default:
		return Settings
	}
}

// Enabled reports whether the given button accepts taps.
func (d Display) Enabled(b Button) bool {
	if b == ReadStatusButton {
		return d.ReadStatusEnabled
	}
	return true
}

// TapKind returns the notification a tap on b should emit for the given flags.
// The read-status kind follows unread alone; it is the intended toggle, not the resulting state.
func TapKind(b Button, unread, added bool) ButtonKind {
	switch b {
	case ReadStatusButton:
		if unread {
			return MarkAsRead
		}
		return MarkAsUnread
	case ListStatusButton:
		if added {
			return RemoveFromReadingList
		}
		return AddToReadingList
	default:
		return Settings
	}
}
