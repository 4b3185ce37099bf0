package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// blankCanvas returns h lines of w spaces. Panels are composited onto it at
// their laid-out bounds, so splitter geometry never has to be re-derived
// from join calls.
func blankCanvas(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// composite draws over onto base with its top-left corner at (x, y).
// Styled text survives on both sides of the spliced region.
func composite(base, over string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(over, "\n")
	for i, ol := range overLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		line := baseLines[row]
		lineW := ansi.StringWidth(line)
		ow := ansi.StringWidth(ol)

		left := ""
		if x > 0 {
			left = ansi.Cut(line, 0, x)
			if lw := ansi.StringWidth(left); lw < x {
				left += strings.Repeat(" ", x-lw)
			}
		}
		right := ""
		if x+ow < lineW {
			right = ansi.Cut(line, x+ow, lineW)
		}
		baseLines[row] = left + ol + right
	}
	return strings.Join(baseLines, "\n")
}
