package dock

// Zone names the region a drop at a given point maps to: one of the four
// edges (of the root or of a panel) or a panel's center.
type Zone uint8

const (
	ZoneInvalid Zone = iota
	ZoneLeft
	ZoneRight
	ZoneTop
	ZoneBottom
	ZoneCenter
)

func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	case ZoneCenter:
		return "center"
	}
	return "invalid"
}

// Placement translates a zone into the InsertSplit arguments it implies:
// top and bottom split vertically, left and right horizontally; bottom and
// right insert after their reference.
func (z Zone) Placement() (o Orientation, after bool) {
	switch z {
	case ZoneTop:
		return Vertical, false
	case ZoneBottom:
		return Vertical, true
	case ZoneRight:
		return Horizontal, true
	default:
		return Horizontal, false
	}
}

// EdgeMargin is the width in cells of the band along the root rectangle's
// sides that maps to root-edge docking.
const EdgeMargin = 3

// Hit is the result of classifying a pointer position. Edge marks a root
// edge band hit; Group is the leaf under the pointer for panel zones and
// nil otherwise.
type Hit struct {
	Zone  Zone
	Edge  bool
	Group *Group
}

// Locate classifies the position (x, y) against the bounds assigned by the
// last Layout call. Outside the root rectangle the zone is invalid; inside
// the edge band the hit names a root edge; inside a leaf's rectangle the
// hit is one of the five panel zones, never invalid. Locate never mutates
// the tree, so it is safe to call on every pointer update during a drag.
func (t *Tree) Locate(x, y int) Hit {
	r := t.bounds
	if !r.Contains(x, y) {
		return Hit{}
	}

	// Distances in from each side. Corners of two overlapping bands break
	// the tie by the smaller perpendicular distance, producing diagonal
	// corner splits rather than a fixed priority order.
	dl, dr := x-r.X, r.X+r.W-1-x
	dt, db := y-r.Y, r.Y+r.H-1-y
	minH, hz := dl, ZoneLeft
	if dr < dl {
		minH, hz = dr, ZoneRight
	}
	minV, vz := dt, ZoneTop
	if db < dt {
		minV, vz = db, ZoneBottom
	}
	switch {
	case minH < EdgeMargin && minV < EdgeMargin:
		if minV < minH {
			return Hit{Zone: vz, Edge: true}
		}
		return Hit{Zone: hz, Edge: true}
	case minV < EdgeMargin:
		return Hit{Zone: vz, Edge: true}
	case minH < EdgeMargin:
		return Hit{Zone: hz, Edge: true}
	}

	g := descend(t.root, x, y)
	if g == nil {
		return Hit{}
	}
	return Hit{Zone: panelZone(g.bounds, x, y), Group: g}
}

// descend walks splitters to the leaf whose rectangle contains the point.
func descend(c Child, x, y int) *Group {
	switch {
	case c.group != nil:
		if c.group.bounds.Contains(x, y) {
			return c.group
		}
	case c.split != nil:
		for _, cc := range c.split.children {
			if cc.Bounds().Contains(x, y) {
				return descend(cc, x, y)
			}
		}
	}
	return nil
}

// panelZone partitions a leaf rectangle into a 3x3 grid of cells: the
// center cell is a tab drop, the edge-center cells map to their edge, and
// the corner cells resolve to the nearer of their two edges by the same
// diagonal tie-break used for the root band.
func panelZone(b Rect, x, y int) Zone {
	tx := (x - b.X) * 3 / b.W
	ty := (y - b.Y) * 3 / b.H
	if tx > 2 {
		tx = 2
	}
	if ty > 2 {
		ty = 2
	}
	if tx == 1 && ty == 1 {
		return ZoneCenter
	}
	if tx == 1 {
		if ty == 0 {
			return ZoneTop
		}
		return ZoneBottom
	}
	if ty == 1 {
		if tx == 0 {
			return ZoneLeft
		}
		return ZoneRight
	}
	dh, hz := x-b.X, ZoneLeft
	if tx == 2 {
		dh, hz = b.X+b.W-1-x, ZoneRight
	}
	dv, vz := y-b.Y, ZoneTop
	if ty == 2 {
		dv, vz = b.Y+b.H-1-y, ZoneBottom
	}
	if dv < dh {
		return vz
	}
	return hz
}

// IndicatorRect returns the region a hit would occupy if committed, for
// drawing a drop indicator: the half of the root or panel rectangle on the
// hit's side, or the whole panel rectangle for a center hit. ok is false
// for invalid hits or before any layout pass.
func (t *Tree) IndicatorRect(h Hit) (Rect, bool) {
	var r Rect
	switch {
	case h.Zone == ZoneInvalid:
		return Rect{}, false
	case h.Edge:
		r = t.bounds
	case h.Group != nil:
		r = h.Group.bounds
	default:
		return Rect{}, false
	}
	if r.Empty() {
		return Rect{}, false
	}
	switch h.Zone {
	case ZoneLeft:
		r.W = (r.W + 1) / 2
	case ZoneRight:
		w := (r.W + 1) / 2
		r.X += r.W - w
		r.W = w
	case ZoneTop:
		r.H = (r.H + 1) / 2
	case ZoneBottom:
		hh := (r.H + 1) / 2
		r.Y += r.H - hh
		r.H = hh
	}
	return r, true
}
