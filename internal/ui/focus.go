package ui

import "dockgrid/internal/dock"

// FocusRing tracks and rotates focus across the tree's tab groups.
// Group order is the tree's walk order, so focus cycling follows the
// visual layout left-to-right, top-to-bottom.
type FocusRing struct {
	Current  *dock.Group
	OnChange func(from, to *dock.Group)
}

// Sync repairs focus after a mutation: if the current group left the tree
// (collapsed away), focus falls to the first group. Call after every
// tree-shape change.
func (f *FocusRing) Sync(t *dock.Tree) {
	groups := t.Groups()
	if len(groups) == 0 {
		f.set(nil)
		return
	}
	for _, g := range groups {
		if g == f.Current {
			return
		}
	}
	f.set(groups[0])
}

// Next advances focus to the next group in walk order.
func (f *FocusRing) Next(t *dock.Tree) *dock.Group {
	return f.step(t, 1)
}

// Prev advances focus to the previous group in walk order.
func (f *FocusRing) Prev(t *dock.Tree) *dock.Group {
	return f.step(t, -1)
}

// Set moves focus to g directly (mouse click, switcher jump).
func (f *FocusRing) Set(g *dock.Group) {
	f.set(g)
}

func (f *FocusRing) step(t *dock.Tree, dir int) *dock.Group {
	groups := t.Groups()
	if len(groups) == 0 {
		f.set(nil)
		return nil
	}
	idx := -1
	for i, g := range groups {
		if g == f.Current {
			idx = i
			break
		}
	}
	next := (idx + dir + len(groups)) % len(groups)
	f.set(groups[next])
	return f.Current
}

func (f *FocusRing) set(g *dock.Group) {
	from := f.Current
	f.Current = g
	if f.OnChange != nil && from != g {
		f.OnChange(from, g)
	}
}
