package ui

import (
	"testing"

	"dockgrid/internal/dock"

	"github.com/charmbracelet/lipgloss"
)

func tabGroup(t *testing.T, names ...string) *dock.Group {
	t.Helper()
	tr := dock.NewTree()
	var first dock.Item
	for i, n := range names {
		p := &pane{name: n}
		if i == 0 {
			if err := tr.InsertSplit(p, nil, dock.Horizontal, true); err != nil {
				t.Fatal(err)
			}
			first = p
		} else if err := tr.InsertTab(p, first, true); err != nil {
			t.Fatal(err)
		}
	}
	g, err := tr.GroupOf(first)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestTabAt_MatchesRenderedWidths(t *testing.T) {
	g := tabGroup(t, "log", "shell", "tmux")

	// Cells are " log ×", " shell ×", " tmux ×": 6, 8, 7 columns.
	cases := []struct {
		x    int
		want int
	}{
		{0, 0}, {5, 0},
		{6, 1}, {13, 1},
		{14, 2}, {20, 2},
		{21, -1}, {50, -1}, {-1, -1},
	}
	for _, c := range cases {
		if got := tabAt(g, c.x); got != c.want {
			t.Errorf("tabAt(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestRenderTabStrip_ExactWidth(t *testing.T) {
	g := tabGroup(t, "log", "shell")

	for _, width := range []int{5, 14, 40} {
		strip := renderTabStrip(g, true, width)
		if got := lipgloss.Width(strip); got != width {
			t.Errorf("strip width %d: got %d columns", width, got)
		}
	}
}

func TestTabLabel_ClosableMarker(t *testing.T) {
	closable := &pane{name: "shell"}
	if got := tabLabel(closable); got != " shell ×" {
		t.Errorf("closable label: %q", got)
	}
}
