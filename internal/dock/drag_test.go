package dock

import "testing"

// dragTree builds H[a | b] with c tabbed behind b, laid out over 90x30.
func dragTree(t *testing.T) (*Tree, *testItem, *testItem, *testItem) {
	t.Helper()
	tr := NewTree()
	a, b, c := item("a"), item("b"), item("c")
	for _, step := range []func() error{
		func() error { return tr.InsertSplit(a, nil, Horizontal, false) },
		func() error { return tr.InsertSplit(b, a, Horizontal, true) },
		func() error { return tr.InsertTab(c, b, true) },
	} {
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}
	tr.Layout(Rect{X: 0, Y: 0, W: 90, H: 30})
	return tr, a, b, c
}

func TestDrag_NoOpDropOnOwnCenter(t *testing.T) {
	tr := NewTree()
	w := item("w")
	if err := tr.InsertSplit(w, nil, Horizontal, false); err != nil {
		t.Fatal(err)
	}
	tr.Layout(Rect{X: 0, Y: 0, W: 60, H: 20})

	d := NewDrag(tr)
	if err := d.Start(w); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := d.Drop(30, 10); err != nil {
		t.Fatalf("Drop: %v", err)
	}

	g := tr.Root().Group()
	if g == nil || g.Len() != 1 || g.At(0) != w || g.Current() != 0 {
		t.Errorf("tree changed by no-op drop: %+v", g)
	}
	if d.Active() {
		t.Error("session still active after drop")
	}
}

func TestDrag_CancelRestoresPositionAndSelection(t *testing.T) {
	tr, _, b, c := dragTree(t)
	gb, _ := tr.GroupOf(b)
	gb.SelectItem(b)

	d := NewDrag(tr)
	if err := d.Start(c); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if tr.Contains(c) {
		t.Error("dragged item should be detached during the gesture")
	}
	if gb.Len() != 1 {
		t.Errorf("source group should have 1 item mid-drag, has %d", gb.Len())
	}
	d.Cancel()

	if gb.Len() != 2 || gb.At(1) != c {
		t.Errorf("cancel did not restore c at its original index: %v", gb.items)
	}
	if gb.CurrentItem() != b {
		t.Errorf("cancel should restore the previously selected sibling, got %v", gb.CurrentItem())
	}
	if d.Active() {
		t.Error("session still active after cancel")
	}
}

func TestDrag_MoveIsPurePreview(t *testing.T) {
	tr, a, _, c := dragTree(t)
	d := NewDrag(tr)
	if err := d.Start(c); err != nil {
		t.Fatal(err)
	}

	groupsBefore := len(tr.Groups())
	h, changed := d.Move(22, 15)
	if !changed || h.Zone == ZoneInvalid {
		t.Fatalf("first move: got %+v changed=%v", h, changed)
	}
	if _, changed := d.Move(22, 15); changed {
		t.Error("identical hit should suppress redraw")
	}
	if _, changed := d.Move(1, 15); !changed {
		t.Error("new zone should report a change")
	}
	if len(tr.Groups()) != groupsBefore {
		t.Error("Move mutated the tree")
	}
	if !tr.Contains(a) {
		t.Error("Move disturbed unrelated items")
	}
	d.Cancel()
}

func TestDrag_EdgeDropSplitsRoot(t *testing.T) {
	tr, _, _, c := dragTree(t)
	d := NewDrag(tr)
	if err := d.Start(c); err != nil {
		t.Fatal(err)
	}
	// Top edge band: new group splits the root vertically, before.
	if err := d.Drop(45, 0); err != nil {
		t.Fatalf("Drop: %v", err)
	}

	s := tr.Root().Split()
	if s == nil || s.Orientation() != Vertical {
		t.Fatalf("root should be a vertical splitter, got %+v", tr.Root())
	}
	first := s.At(0).Group()
	if first == nil || first.Len() != 1 || first.At(0) != c {
		t.Errorf("dropped item should be the first (top) child, got %+v", s.At(0))
	}
}

func TestDrag_CenterDropJoinsTargetGroup(t *testing.T) {
	tr, a, b, c := dragTree(t)
	ga, _ := tr.GroupOf(a)

	d := NewDrag(tr)
	if err := d.Start(c); err != nil {
		t.Fatal(err)
	}
	// Center of a's panel.
	if err := d.Drop(22, 15); err != nil {
		t.Fatalf("Drop: %v", err)
	}

	if got, _ := tr.GroupOf(c); got != ga {
		t.Fatalf("c should have joined a's group")
	}
	if ga.At(ga.Len()-1) != c {
		t.Errorf("c should be the last tab, got %v", ga.items)
	}
	if ga.CurrentItem() != c {
		t.Errorf("dropped item should be selected, got %v", ga.CurrentItem())
	}
	if gb, _ := tr.GroupOf(b); gb.CurrentItem() != b {
		t.Errorf("source selection not restored, got %v", gb.CurrentItem())
	}
}

func TestDrag_PanelEdgeDropSplitsTarget(t *testing.T) {
	tr, a, _, c := dragTree(t)
	ga, _ := tr.GroupOf(a)

	d := NewDrag(tr)
	if err := d.Start(c); err != nil {
		t.Fatal(err)
	}
	// Bottom third of a's panel, horizontally centered, clear of the
	// root edge band.
	if err := d.Drop(22, 22); err != nil {
		t.Fatalf("Drop: %v", err)
	}

	sub := tr.Root().Split().At(0).Split()
	if sub == nil || sub.Orientation() != Vertical {
		t.Fatalf("a's slot should hold a vertical sub-split, got %+v", tr.Root().Split().At(0))
	}
	if sub.At(0).Group() != ga || sub.At(1).Group().At(0) != c {
		t.Errorf("c should sit below a's group")
	}
}

func TestDrag_EmptiedSourceCollapsesAfterCommit(t *testing.T) {
	tr, a, b, _ := dragTree(t)
	gb, _ := tr.GroupOf(b)
	if err := tr.Detach(a); err != nil { // leave b's group [b, c] as the sole group
		t.Fatal(err)
	}
	_ = gb
	tr.Layout(Rect{X: 0, Y: 0, W: 90, H: 30})

	// Now drag b out so its old group keeps only c, then drop b on the
	// right edge; afterwards drag c somewhere that empties its group.
	d := NewDrag(tr)
	if err := d.Start(b); err != nil {
		t.Fatal(err)
	}
	if err := d.Drop(89, 15); err != nil {
		t.Fatal(err)
	}
	tr.Layout(Rect{X: 0, Y: 0, W: 90, H: 30})

	c := tr.Groups()[0].At(0)
	if err := d.Start(c); err != nil {
		t.Fatal(err)
	}
	// Drop c onto b's center: c's source group empties and must vanish.
	gbNew, _ := tr.GroupOf(b)
	hit := tr.Locate(gbNew.Bounds().X+gbNew.Bounds().W/2, gbNew.Bounds().Y+gbNew.Bounds().H/2)
	if hit.Group != gbNew || hit.Zone != ZoneCenter {
		t.Fatalf("test geometry wrong: %+v", hit)
	}
	if err := d.Drop(gbNew.Bounds().X+gbNew.Bounds().W/2, gbNew.Bounds().Y+gbNew.Bounds().H/2); err != nil {
		t.Fatal(err)
	}

	if got := len(tr.Groups()); got != 1 {
		t.Fatalf("emptied source group should collapse away, %d groups remain", got)
	}
	if g := tr.Root().Group(); g == nil || g.Len() != 2 {
		t.Errorf("root should be the merged group, got %+v", tr.Root())
	}
}

func TestDrag_DropOnEmptiedSourceIsNoOp(t *testing.T) {
	tr := NewTree()
	a, w := item("a"), item("w")
	if err := tr.InsertSplit(a, nil, Horizontal, false); err != nil {
		t.Fatal(err)
	}
	if err := tr.InsertSplit(w, a, Horizontal, true); err != nil {
		t.Fatal(err)
	}
	tr.Layout(Rect{X: 0, Y: 0, W: 90, H: 30})

	d := NewDrag(tr)
	if err := d.Start(w); err != nil {
		t.Fatal(err)
	}
	gw := d.source
	// Drop on the emptied source panel's edge region: still a no-op.
	x := gw.Bounds().X + gw.Bounds().W/2
	if err := d.Drop(x, gw.Bounds().Y+gw.Bounds().H-EdgeMargin-2); err != nil {
		t.Fatal(err)
	}

	s := tr.Root().Split()
	if s == nil || s.Len() != 2 {
		t.Fatalf("tree shape changed: %+v", tr.Root())
	}
	if got, err := tr.GroupOf(w); err != nil || got != gw {
		t.Errorf("w should be back in its original group")
	}
}

func TestDrag_StartErrors(t *testing.T) {
	tr, a, _, c := dragTree(t)
	d := NewDrag(tr)

	if err := d.Start(item("loose")); err != ErrNotFound {
		t.Errorf("starting with an unattached item: got %v, want ErrNotFound", err)
	}
	if err := d.Start(c); err != nil {
		t.Fatal(err)
	}
	if err := d.Start(a); err != ErrDragActive {
		t.Errorf("second Start: got %v, want ErrDragActive", err)
	}
	d.Cancel()
	if err := d.Start(a); err != nil {
		t.Errorf("Start after cancel: %v", err)
	}
	d.Cancel()
}

func TestDrag_InvalidDropRestores(t *testing.T) {
	tr, _, b, c := dragTree(t)
	d := NewDrag(tr)
	if err := d.Start(c); err != nil {
		t.Fatal(err)
	}
	if err := d.Drop(-10, -10); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	gb, _ := tr.GroupOf(b)
	if gb.Len() != 2 || gb.At(1) != c {
		t.Errorf("invalid drop should restore the original index, got %v", gb.items)
	}
}
