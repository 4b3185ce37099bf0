// Package textutil provides unicode-aware text helpers for TUI rendering.
package textutil

import "github.com/mattn/go-runewidth"

// ellipsis is appended when a string is cut to fit.
const ellipsis = "…"

// VisualWidth returns the number of terminal columns a string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visual columns, appending an ellipsis
// when anything was removed. Double-width runes never straddle the cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	avail := maxWidth - runewidth.StringWidth(ellipsis)
	if avail < 0 {
		return ellipsis
	}
	var (
		out  []rune
		used int
	)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > avail {
			break
		}
		out = append(out, r)
		used += w
	}
	return string(out) + ellipsis
}
