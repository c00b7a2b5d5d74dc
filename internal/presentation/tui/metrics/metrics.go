// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines           = 2
	ReaderBarLines        = 2
	PanelTitleLines       = 2
	PanelRightBorderWidth = 1
	MainLeftPadding       = 1

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)
