package dock

// Splitter is a branch of the dock tree: it divides its rectangle among an
// ordered sequence of children along one axis, proportionally to a parallel
// sequence of relative shares.
//
// Invariants (holding between any two public Tree calls):
//   - at least one child, except a splitter that is being collapsed;
//   - a single-child splitter only ever appears at the root;
//   - no child splitter shares its parent's orientation (such nestings are
//     flattened into the parent during collapse).
type Splitter struct {
	children []Child
	shares   []float64
	orient   Orientation
	bounds   Rect
	parent   *Splitter // weak link, nil at root
}

// Len returns the number of children.
func (s *Splitter) Len() int { return len(s.children) }

// At returns the child at index i.
func (s *Splitter) At(i int) Child { return s.children[i] }

// Orientation returns the axis this splitter divides along.
func (s *Splitter) Orientation() Orientation { return s.orient }

// Shares returns a copy of the relative size shares, one per child.
func (s *Splitter) Shares() []float64 {
	out := make([]float64, len(s.shares))
	copy(out, s.shares)
	return out
}

// Bounds returns the splitter's rectangle from the last layout pass.
func (s *Splitter) Bounds() Rect { return s.bounds }

// insertChild places c at index i. splitIndex selects the sibling whose
// share is halved to make room; pass -1 for a flat 0.5 share (edge inserts).
func (s *Splitter) insertChild(i int, c Child, splitIndex int) {
	s.shares = insertShare(s.shares, i, splitIndex)
	s.children = append(s.children, Child{})
	copy(s.children[i+1:], s.children[i:])
	s.children[i] = c
	c.setParent(s)
}

// removeChild removes the child at index i and returns its share.
func (s *Splitter) removeChild(i int) float64 {
	c := s.children[i]
	s.children = append(s.children[:i], s.children[i+1:]...)
	var removed float64
	s.shares, removed = removeShare(s.shares, i)
	c.setParent(nil)
	return removed
}

// indexOf returns the index of c among the children, or -1.
func (s *Splitter) indexOf(c Child) int {
	for i, other := range s.children {
		if other == c {
			return i
		}
	}
	return -1
}

// Child is a tagged reference to a splitter child: a leaf tab group or a
// nested splitter. At most one field is set; the zero Child means "none"
// (an empty tree root). The tag makes tree walks exhaustive without dynamic
// type tests.
type Child struct {
	group *Group
	split *Splitter
}

func leaf(g *Group) Child     { return Child{group: g} }
func branch(s *Splitter) Child { return Child{split: s} }

// None reports whether c references nothing.
func (c Child) None() bool { return c.group == nil && c.split == nil }

// Group returns the tab group, or nil when c is a splitter or none.
func (c Child) Group() *Group { return c.group }

// Split returns the nested splitter, or nil when c is a group or none.
func (c Child) Split() *Splitter { return c.split }

// Bounds returns the referenced node's rectangle.
func (c Child) Bounds() Rect {
	switch {
	case c.group != nil:
		return c.group.bounds
	case c.split != nil:
		return c.split.bounds
	}
	return Rect{}
}

func (c Child) setParent(p *Splitter) {
	switch {
	case c.group != nil:
		c.group.parent = p
	case c.split != nil:
		c.split.parent = p
	}
}

func (c Child) parentOf() *Splitter {
	switch {
	case c.group != nil:
		return c.group.parent
	case c.split != nil:
		return c.split.parent
	}
	return nil
}
