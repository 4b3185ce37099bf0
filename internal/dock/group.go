package dock

// Item is an opaque handle to a content panel hosted by the dock. The tree
// relies only on handle identity; rendering and input are the caller's
// concern. Implementations must be comparable (pointers work).
type Item interface {
	// Label is the display text for the item's tab.
	Label() string
	// Closable reports whether the item's tab shows a close affordance.
	Closable() bool
}

// Group is a leaf of the dock tree: an ordered sequence of items behind a
// tab selector. A group with zero items is structurally removed from the
// tree as soon as the mutation that emptied it completes (drag gestures
// defer this until the gesture ends).
type Group struct {
	items   []Item
	current int // index of the selected item, -1 when empty
	bounds  Rect
	parent  *Splitter // weak link, nil at root or while detached
}

func newGroup() *Group {
	return &Group{current: -1}
}

// Len returns the number of items.
func (g *Group) Len() int { return len(g.items) }

// At returns the item at index i.
func (g *Group) At(i int) Item { return g.items[i] }

// IndexOf returns the tab index of it, or -1.
func (g *Group) IndexOf(it Item) int {
	for i, other := range g.items {
		if other == it {
			return i
		}
	}
	return -1
}

// Current returns the selected tab index, -1 when the group is empty.
func (g *Group) Current() int { return g.current }

// CurrentItem returns the selected item, nil when the group is empty.
func (g *Group) CurrentItem() Item {
	if g.current < 0 || g.current >= len(g.items) {
		return nil
	}
	return g.items[g.current]
}

// Select makes index i current, clamped to the valid range.
func (g *Group) Select(i int) {
	if len(g.items) == 0 {
		g.current = -1
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(g.items) {
		i = len(g.items) - 1
	}
	g.current = i
}

// SelectItem makes it current and reports whether it was found.
func (g *Group) SelectItem(it Item) bool {
	i := g.IndexOf(it)
	if i < 0 {
		return false
	}
	g.current = i
	return true
}

// Bounds returns the group's rectangle from the last layout pass.
func (g *Group) Bounds() Rect { return g.bounds }

// insertAt places it at index i (clamped to [0, Len]), keeping the current
// selection pointing at the same item. An insert into an empty group selects
// the new item.
func (g *Group) insertAt(i int, it Item) {
	if i < 0 {
		i = 0
	}
	if i > len(g.items) {
		i = len(g.items)
	}
	g.items = append(g.items, nil)
	copy(g.items[i+1:], g.items[i:])
	g.items[i] = it
	switch {
	case g.current < 0:
		g.current = i
	case i <= g.current:
		g.current++
	}
}

// removeAt removes and returns the item at index i. If the removed item was
// current, selection moves to the item that slid into its slot (or the new
// last item).
func (g *Group) removeAt(i int) Item {
	it := g.items[i]
	g.items = append(g.items[:i], g.items[i+1:]...)
	switch {
	case len(g.items) == 0:
		g.current = -1
	case i < g.current:
		g.current--
	case g.current >= len(g.items):
		g.current = len(g.items) - 1
	}
	return it
}
