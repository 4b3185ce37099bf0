package ui

// ResizeMsg tells a panel view its new content dimensions after a layout pass.
type ResizeMsg struct {
	Width  int
	Height int
}

// FocusNextMsg moves focus to the next tab group.
type FocusNextMsg struct{}

// FocusPrevMsg moves focus to the previous tab group.
type FocusPrevMsg struct{}

// NextTabMsg selects the next tab in the focused group.
type NextTabMsg struct{}

// PrevTabMsg selects the previous tab in the focused group.
type PrevTabMsg struct{}

// CloseTabMsg closes the focused group's current tab, if the panel allows it.
type CloseTabMsg struct{}

// SplitRightMsg moves the focused panel into a new slot beside its group.
type SplitRightMsg struct{}

// SplitDownMsg moves the focused panel into a new slot below its group.
type SplitDownMsg struct{}

// ShowSwitcherMsg opens the panel switcher overlay.
type ShowSwitcherMsg struct{}

// DismissOverlayMsg is sent when the user cancels an overlay (Esc).
type DismissOverlayMsg struct{}

// FocusPanelMsg focuses the panel with the given label (from the switcher).
type FocusPanelMsg struct {
	Label string
}
