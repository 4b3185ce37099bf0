package ui

import (
	"github.com/charmbracelet/lipgloss"

	"dockgrid/internal/dock"
)

// indicatorView renders the drop-region preview box for a classified hit,
// sized exactly to the indicator rect. Too-small rects render nothing
// rather than a broken border.
func indicatorView(r dock.Rect, z dock.Zone) string {
	if r.W < 4 || r.H < 3 {
		return ""
	}
	label := Styles.IndicatorText.Render(z.String())
	inner := lipgloss.Place(r.W-2, r.H-2, lipgloss.Center, lipgloss.Center, label)
	return Styles.Indicator.Render(inner)
}
