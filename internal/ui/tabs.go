package ui

import (
	"strings"

	"dockgrid/internal/dock"
	"dockgrid/internal/ui/textutil"
)

// Tab cells: " label ×" for closable panels, " label " otherwise. The strip
// is one row tall and sits inside the panel frame, so hit-testing and
// rendering must agree on widths exactly.

// tabLabel returns the unstyled text of one tab cell.
func tabLabel(it dock.Item) string {
	if it.Closable() {
		return " " + it.Label() + " ×"
	}
	return " " + it.Label() + " "
}

// renderTabStrip renders a group's tabs into a single line of exactly width
// columns. The current tab is highlighted; the whole strip dims when the
// group is not focused.
func renderTabStrip(g *dock.Group, focused bool, width int) string {
	var b strings.Builder
	used := 0
	for i := 0; i < g.Len(); i++ {
		cell := tabLabel(g.At(i))
		w := textutil.VisualWidth(cell)
		if used+w > width {
			cell = textutil.Truncate(cell, width-used)
			w = textutil.VisualWidth(cell)
		}
		if i == g.Current() && focused {
			b.WriteString(Styles.TabActive.Render(cell))
		} else if i == g.Current() {
			b.WriteString(Styles.Select.Render(cell))
		} else {
			b.WriteString(Styles.TabInactive.Render(cell))
		}
		used += w
		if used >= width {
			break
		}
	}
	if used < width {
		b.WriteString(Styles.TabStrip.Render(strings.Repeat(" ", width-used)))
	}
	return b.String()
}

// tabAt returns the index of the tab at column x (relative to the strip's
// left edge), or -1 when x falls past the last tab.
func tabAt(g *dock.Group, x int) int {
	if x < 0 {
		return -1
	}
	used := 0
	for i := 0; i < g.Len(); i++ {
		used += textutil.VisualWidth(tabLabel(g.At(i)))
		if x < used {
			return i
		}
	}
	return -1
}
