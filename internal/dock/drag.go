package dock

// Drag coordinates a single drag-to-redock gesture:
//
//	Idle -> Dragging -> committed or cancelled -> Idle
//
// Start detaches the dragged item from its group immediately (the group
// stays in the tree even if emptied, so the structure under the pointer
// does not shift mid-gesture). Move is pure preview; only Drop and Cancel
// mutate the tree. At most one gesture may be active per tree; starting a
// second is a caller error.
type Drag struct {
	tree    *Tree
	active  bool
	item    Item
	source  *Group
	index   int
	prevSel Item // selected sibling at gesture start, restored afterwards
	last    Hit  // last classified hit, for redraw suppression
}

// NewDrag returns an idle drag session for t.
func NewDrag(t *Tree) *Drag {
	return &Drag{tree: t}
}

// Active reports whether a gesture is in flight.
func (d *Drag) Active() bool { return d.active }

// Item returns the item being dragged, nil when idle.
func (d *Drag) Item() Item {
	if !d.active {
		return nil
	}
	return d.item
}

// Start begins a gesture for it, capturing its origin and detaching it from
// its group. Returns ErrDragActive if a gesture is already in flight and
// ErrNotFound if it is not attached to the tree.
func (d *Drag) Start(it Item) error {
	if d.active {
		return ErrDragActive
	}
	g, err := d.tree.GroupOf(it)
	if err != nil {
		return err
	}
	d.index = g.IndexOf(it)
	before := g.CurrentItem()
	d.tree.removeItem(it, false)
	if before != nil && before != it {
		d.prevSel = before
	} else {
		d.prevSel = g.CurrentItem() // the neighbor the removal selected
	}
	d.item = it
	d.source = g
	d.active = true
	d.last = Hit{}
	return nil
}

// Move classifies the pointer position and reports whether the hit changed
// since the last call, so callers can skip redundant indicator redraws. It
// never mutates the tree.
func (d *Drag) Move(x, y int) (Hit, bool) {
	if !d.active {
		return Hit{}, false
	}
	h := d.tree.Locate(x, y)
	if h == d.last {
		return h, false
	}
	d.last = h
	return h, true
}

// Drop ends the gesture at the release position. An invalid zone, or a
// drop back onto the source group's center (or onto the source group after
// it emptied), restores the original position; everything else commits the
// implied tree mutation.
func (d *Drag) Drop(x, y int) error {
	if !d.active {
		return nil
	}
	defer d.reset()

	h := d.tree.Locate(x, y)
	noop := h.Zone == ZoneInvalid ||
		(h.Group == d.source && h.Zone == ZoneCenter) ||
		(h.Group == d.source && d.source.Len() == 0)
	if noop {
		d.restore()
		return nil
	}

	var err error
	switch {
	case h.Edge:
		o, after := h.Zone.Placement()
		err = d.tree.InsertSplit(d.item, nil, o, after)
	case h.Zone == ZoneCenter:
		n := h.Group.Len()
		err = d.tree.InsertTab(d.item, h.Group.At(n-1), true)
		if err == nil {
			h.Group.SelectItem(d.item)
		}
	default:
		o, after := h.Zone.Placement()
		err = d.tree.InsertSplit(d.item, d.anchor(h.Group), o, after)
	}
	if err != nil {
		// Commit failed; put the item back where it came from so the
		// gesture still ends in a consistent tree.
		d.restore()
		return err
	}
	d.finishSource()
	return nil
}

// Cancel aborts the gesture and restores the original position without any
// zone evaluation.
func (d *Drag) Cancel() {
	if !d.active {
		return
	}
	d.restore()
	d.reset()
}

// anchor picks the reference item for a panel-edge split: the target's last
// item, or the one before it if the last is the dragged item itself.
func (d *Drag) anchor(g *Group) Item {
	n := g.Len()
	if n == 0 {
		return nil
	}
	ref := g.At(n - 1)
	if ref == d.item && n > 1 {
		ref = g.At(n - 2)
	}
	return ref
}

// restore re-inserts the dragged item at its original index and brings back
// the captured selection.
func (d *Drag) restore() {
	g := d.source
	i := d.index
	if i > g.Len() {
		i = g.Len()
	}
	g.insertAt(i, d.item)
	d.tree.owner[d.item] = g
	if d.prevSel == nil || !g.SelectItem(d.prevSel) {
		g.SelectItem(d.item)
	}
}

// finishSource runs the cleanup the gesture deferred: collapse the source
// group if the drag emptied it, otherwise restore its selection.
func (d *Drag) finishSource() {
	g := d.source
	if g.Len() == 0 {
		if d.tree.reachable(g) {
			d.tree.removeEmptyGroup(g)
		}
		return
	}
	if d.prevSel != nil {
		g.SelectItem(d.prevSel)
	}
}

func (d *Drag) reset() {
	d.active = false
	d.item = nil
	d.source = nil
	d.prevSel = nil
	d.index = 0
	d.last = Hit{}
}
