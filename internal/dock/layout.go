package dock

// Layout assigns bounds to every node in the tree: each splitter divides
// its rectangle among its children along its orientation, proportionally to
// their shares. Integer cell division rounds down per child; the last child
// absorbs the remainder so the children always tile the parent exactly.
func (t *Tree) Layout(r Rect) {
	t.bounds = r
	layoutChild(t.root, r)
}

func layoutChild(c Child, r Rect) {
	if g := c.group; g != nil {
		g.bounds = r
		return
	}
	s := c.split
	if s == nil {
		return
	}
	s.bounds = r

	total := 0.0
	for _, sh := range s.shares {
		total += sh
	}
	if total <= 0 {
		invariantf("splitter with non-positive share mass")
	}

	size := r.W
	if s.orient == Vertical {
		size = r.H
	}
	offset := 0
	for i, cc := range s.children {
		span := int(float64(size) * (s.shares[i] / total))
		if i == len(s.children)-1 {
			span = size - offset
		}
		cr := r
		if s.orient == Horizontal {
			cr.X = r.X + offset
			cr.W = span
		} else {
			cr.Y = r.Y + offset
			cr.H = span
		}
		layoutChild(cc, cr)
		offset += span
	}
}
