package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, focused borders
	ColorHighlight = "205" // Magenta - active tabs, drop indicator
	ColorDanger    = "196" // Red - errors in the status line
	ColorMuted     = "241" // Gray - dimmed text, inactive tabs
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across the workspace.
var Styles = struct {
	TabActive   lipgloss.Style // Current tab in a focused group
	TabInactive lipgloss.Style // Other tabs
	TabStrip    lipgloss.Style // Strip background fill

	PanelBorder   lipgloss.Style // Unfocused panel frame
	PanelFocused  lipgloss.Style // Focused panel frame
	Indicator     lipgloss.Style // Drop-region preview box
	IndicatorText lipgloss.Style // Zone name inside the indicator

	Title  lipgloss.Style
	Muted  lipgloss.Style
	Hint   lipgloss.Style
	Error  lipgloss.Style
	Empty  lipgloss.Style
	Select lipgloss.Style // Highlighted row in pickers
	Box    lipgloss.Style // Overlay box
}{
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TabStrip: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	PanelBorder: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	PanelFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)),
	Indicator: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	IndicatorText: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Select: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
}
