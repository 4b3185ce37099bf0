package dock

// Tree owns the dock layout: a root (none, a single tab group, or a
// splitter) and the mapping from each attached item to its owning group.
// The ownership map is tree state, not a process-wide side table, so two
// trees can coexist without interfering.
type Tree struct {
	root   Child
	owner  map[Item]*Group
	bounds Rect // root rectangle from the last Layout call
}

// NewTree returns an empty dock tree.
func NewTree() *Tree {
	return &Tree{owner: make(map[Item]*Group)}
}

// Root returns the root child. A zero Child means the tree is empty.
func (t *Tree) Root() Child { return t.root }

// Empty reports whether the tree holds no content.
func (t *Tree) Empty() bool { return t.root.None() }

// Contains reports whether it is attached to this tree: its owning group
// exists and is reachable from the root through splitters only.
func (t *Tree) Contains(it Item) bool {
	return t.reachable(t.owner[it])
}

// GroupOf returns the group owning it, or ErrNotFound when it is not
// currently attached.
func (t *Tree) GroupOf(it Item) (*Group, error) {
	g := t.owner[it]
	if !t.reachable(g) {
		return nil, ErrNotFound
	}
	return g, nil
}

// Groups returns all tab groups in traversal order (depth-first, children
// in splitter order). Useful for focus rings and tab strips.
func (t *Tree) Groups() []*Group {
	var out []*Group
	var walk func(Child)
	walk = func(c Child) {
		switch {
		case c.group != nil:
			out = append(out, c.group)
		case c.split != nil:
			for _, cc := range c.split.children {
				walk(cc)
			}
		}
	}
	walk(t.root)
	return out
}

// Items returns every attached item in traversal order.
func (t *Tree) Items() []Item {
	var out []Item
	for _, g := range t.Groups() {
		out = append(out, g.items...)
	}
	return out
}

func (t *Tree) reachable(g *Group) bool {
	if g == nil {
		return false
	}
	if g.parent == nil {
		return t.root.group == g
	}
	p := g.parent
	for p.parent != nil {
		p = p.parent
	}
	return t.root.split == p
}

// InsertSplit inserts it as a new single-item tab group positioned as a
// sibling split of ref's group along orientation o; after selects which side
// of the reference the new group lands on. A nil ref splits at the tree
// root (the new group becomes a full-width/height edge panel). Returns
// ErrInvalidReference when ref is non-nil and not attached. Inserting an
// item next to itself is a no-op.
func (t *Tree) InsertSplit(it, ref Item, o Orientation, after bool) error {
	if it == nil {
		return ErrInvalidReference
	}
	if ref != nil && !t.Contains(ref) {
		return ErrInvalidReference
	}
	if it == ref {
		return nil
	}
	t.removeItem(it, true)

	ng := newGroup()
	ng.insertAt(0, it)
	t.owner[it] = ng

	if t.root.None() {
		t.root = leaf(ng)
		return nil
	}
	if ref == nil {
		s := t.ensureRootSplitter(o)
		i := 0
		if after {
			i = s.Len()
		}
		s.insertChild(i, leaf(ng), -1)
		return nil
	}

	tg := t.owner[ref]
	p := tg.parent
	if p == nil {
		// ref's group is the root itself: wrap it and split its space.
		s := t.wrapRoot(o)
		i := 0
		if after {
			i = 1
		}
		s.insertChild(i, leaf(ng), 0)
		return nil
	}

	ti := p.indexOf(leaf(tg))
	if ti < 0 {
		invariantf("group missing from its parent splitter")
	}
	switch {
	case p.orient == o:
		// Common case: slot in next to the reference group, taking exactly
		// half of its share so unrelated siblings keep their proportions.
		i := ti
		if after {
			i = ti + 1
		}
		p.insertChild(i, leaf(ng), ti)
	case p.Len() == 1:
		// Degenerate single-child splitter (root only in steady state):
		// reorient it in place and pair the two groups 1:1.
		p.orient = o
		i := 0
		if after {
			i = 1
		}
		p.insertChild(i, leaf(ng), 0)
		if gp := p.parent; gp != nil && gp.orient == o {
			t.flattenInto(gp, p)
		}
	default:
		// Orthogonal parent with several children: sub-split the reference
		// group in a new splitter occupying its old slot.
		ns := &Splitter{orient: o, shares: []float64{0.5, 0.5}}
		if after {
			ns.children = []Child{leaf(tg), leaf(ng)}
		} else {
			ns.children = []Child{leaf(ng), leaf(tg)}
		}
		tg.parent = ns
		ng.parent = ns
		ns.parent = p
		p.children[ti] = branch(ns) // keeps the slot's share
	}
	return nil
}

// InsertTab inserts it as a sibling tab next to ref within ref's group. A
// nil ref targets the first group in traversal order, inserting at the
// start or end per after. Returns ErrInvalidReference when ref is non-nil
// and not attached. Inserting an item next to itself is a no-op.
func (t *Tree) InsertTab(it, ref Item, after bool) error {
	if it == nil {
		return ErrInvalidReference
	}
	if ref != nil && !t.Contains(ref) {
		return ErrInvalidReference
	}
	if it == ref {
		return nil
	}
	t.removeItem(it, true)

	if t.root.None() {
		g := newGroup()
		g.insertAt(0, it)
		t.owner[it] = g
		t.root = leaf(g)
		return nil
	}

	var g *Group
	var i int
	if ref == nil {
		g = t.Groups()[0]
		if after {
			i = g.Len()
		}
	} else {
		g = t.owner[ref]
		i = g.IndexOf(ref)
		if after {
			i++
		}
	}
	g.insertAt(i, it)
	t.owner[it] = g
	return nil
}

// Detach removes it from the tree, collapsing any structure the removal
// leaves degenerate. Returns ErrNotFound when it is not attached.
func (t *Tree) Detach(it Item) error {
	if _, ok := t.owner[it]; !ok {
		return ErrNotFound
	}
	t.removeItem(it, true)
	return nil
}

// removeItem detaches it from its current group, if any. When collapse is
// set, a group emptied by the removal is removed from the tree immediately;
// drag gestures pass false and run the collapse at gesture end instead.
func (t *Tree) removeItem(it Item, collapse bool) {
	g := t.owner[it]
	if g == nil {
		return
	}
	i := g.IndexOf(it)
	if i < 0 {
		invariantf("ownership map points at a group that lacks the item")
	}
	g.removeAt(i)
	delete(t.owner, it)
	if collapse && g.Len() == 0 {
		t.removeEmptyGroup(g)
	}
}

// removeEmptyGroup drops an emptied group from the tree and restores the
// structural invariants: single-child splitters are replaced by their child
// and same-orientation nestings are spliced into the grandparent, walking
// upward as far as the damage reaches.
func (t *Tree) removeEmptyGroup(g *Group) {
	if g.Len() != 0 {
		invariantf("removeEmptyGroup on a non-empty group")
	}
	p := g.parent
	if p == nil {
		if t.root.group != g {
			invariantf("empty group has no parent and is not the root")
		}
		t.root = Child{}
		return
	}
	i := p.indexOf(leaf(g))
	if i < 0 {
		invariantf("group missing from its parent splitter")
	}
	removed := p.removeChild(i)
	returnShare(p, i, removed)
	t.collapse(p)
}

// returnShare hands the share of a removed child back to the sibling it was
// split from, so a split followed by a detach restores the pre-split
// proportions. A split leaves its partner adjacent with an equal share, so
// prefer the matching neighbor; fall back to the previous sibling.
func returnShare(p *Splitter, i int, removed float64) {
	if p.Len() == 0 {
		return
	}
	switch {
	case i > 0 && p.shares[i-1] == removed:
		p.shares[i-1] += removed
	case i < p.Len() && p.shares[i] == removed:
		p.shares[i] += removed
	case i > 0:
		p.shares[i-1] += removed
	default:
		p.shares[0] += removed
	}
}

// collapse restores invariants upward from p after a child removal.
func (t *Tree) collapse(p *Splitter) {
	for p != nil {
		switch p.Len() {
		case 0:
			// Only reachable when the root splitter held a single child.
			if t.root.split != p {
				invariantf("splitter emptied below the root")
			}
			t.root = Child{}
			return
		case 1:
			// Promote the only child into the grandparent (or the root).
			c := p.children[0]
			gp := p.parent
			if gp == nil {
				if t.root.split != p {
					invariantf("parentless splitter is not the root")
				}
				t.root = c
				c.setParent(nil)
				return
			}
			pi := gp.indexOf(branch(p))
			if pi < 0 {
				invariantf("splitter missing from its parent")
			}
			if cs := c.split; cs != nil && cs.orient == gp.orient {
				t.flattenInto(gp, p)
			} else {
				gp.children[pi] = c
				c.setParent(gp)
			}
			p = gp
		default:
			return
		}
	}
}

// flattenInto splices the children of p's sole remaining-or-matching child
// splitter directly into gp at p's slot, scaling the grandchild shares by
// the share the collapsed subtree occupied so its visual proportion is
// preserved.
func (t *Tree) flattenInto(gp, p *Splitter) {
	pi := gp.indexOf(branch(p))
	if pi < 0 {
		invariantf("splitter missing from its parent")
	}
	var cs *Splitter
	switch {
	case p.Len() == 1 && p.children[0].split != nil:
		cs = p.children[0].split
	case p.orient == gp.orient:
		cs = p
	default:
		invariantf("flatten of an orthogonal splitter")
	}
	shares, slot := removeShare(gp.shares, pi)
	children := append(gp.children[:pi:pi], gp.children[pi+1:]...)

	sub := make([]float64, len(cs.shares))
	total := 0.0
	for _, sh := range cs.shares {
		total += sh
	}
	if total <= 0 {
		invariantf("splitter with non-positive share mass")
	}
	for i, sh := range cs.shares {
		sub[i] = sh / total * slot
	}

	out := make([]Child, 0, len(children)+len(cs.children))
	outShares := make([]float64, 0, len(shares)+len(sub))
	out = append(out, children[:pi]...)
	outShares = append(outShares, shares[:pi]...)
	out = append(out, cs.children...)
	outShares = append(outShares, sub...)
	out = append(out, children[pi:]...)
	outShares = append(outShares, shares[pi:]...)

	gp.children = out
	gp.shares = outShares
	for _, cc := range cs.children {
		cc.setParent(gp)
	}
}

// ensureRootSplitter makes the root a splitter of orientation o: reusing it
// when the orientation already matches, reorienting in place when it has at
// most one child, and otherwise wrapping the existing root.
func (t *Tree) ensureRootSplitter(o Orientation) *Splitter {
	if s := t.root.split; s != nil {
		if s.orient == o {
			return s
		}
		if s.Len() <= 1 {
			s.orient = o
			return s
		}
	}
	return t.wrapRoot(o)
}

// wrapRoot wraps the current root in a new splitter of orientation o. The
// old content keeps the full share mass (1.0); an adjacent insert halves it
// and an edge insert adds a flat 0.5 beside it.
func (t *Tree) wrapRoot(o Orientation) *Splitter {
	s := &Splitter{orient: o, children: []Child{t.root}, shares: []float64{1.0}}
	t.root.setParent(s)
	t.root = branch(s)
	return s
}
