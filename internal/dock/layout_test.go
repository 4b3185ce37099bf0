package dock

import "testing"

func TestLayout_ProportionalDivision(t *testing.T) {
	tr := NewTree()
	a, b := item("a"), item("b")
	if err := tr.InsertSplit(a, nil, Horizontal, false); err != nil {
		t.Fatal(err)
	}
	if err := tr.InsertSplit(b, a, Horizontal, true); err != nil {
		t.Fatal(err)
	}
	tr.Root().Split().shares = []float64{1, 3}
	tr.Layout(Rect{X: 0, Y: 0, W: 80, H: 24})

	ga, _ := tr.GroupOf(a)
	gb, _ := tr.GroupOf(b)
	if ga.Bounds() != (Rect{X: 0, Y: 0, W: 20, H: 24}) {
		t.Errorf("a bounds: %+v", ga.Bounds())
	}
	if gb.Bounds() != (Rect{X: 20, Y: 0, W: 60, H: 24}) {
		t.Errorf("b bounds: %+v", gb.Bounds())
	}
}

func TestLayout_ChildrenTileParentExactly(t *testing.T) {
	tr := NewTree()
	prev := item("0")
	if err := tr.InsertSplit(prev, nil, Vertical, false); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		next := item("x")
		if err := tr.InsertSplit(next, prev, Vertical, true); err != nil {
			t.Fatal(err)
		}
		prev = next
	}
	// 3 children with shares that do not divide 25 evenly.
	tr.Layout(Rect{X: 0, Y: 0, W: 40, H: 25})

	s := tr.Root().Split()
	sum := 0
	for i := 0; i < s.Len(); i++ {
		b := s.At(i).Bounds()
		if b.W != 40 {
			t.Errorf("child %d width: got %d, want full width", i, b.W)
		}
		if b.Y != sum {
			t.Errorf("child %d y: got %d, want %d (children must abut)", i, b.Y, sum)
		}
		sum += b.H
	}
	if sum != 25 {
		t.Errorf("children cover %d rows, want 25", sum)
	}
}

func TestLayout_NestedSplitters(t *testing.T) {
	tr := NewTree()
	a, b, c := item("a"), item("b"), item("c")
	if err := tr.InsertSplit(a, nil, Horizontal, false); err != nil {
		t.Fatal(err)
	}
	if err := tr.InsertSplit(b, a, Horizontal, true); err != nil {
		t.Fatal(err)
	}
	if err := tr.InsertSplit(c, b, Vertical, true); err != nil {
		t.Fatal(err)
	}
	tr.Layout(Rect{X: 0, Y: 0, W: 100, H: 40})

	gb, _ := tr.GroupOf(b)
	gc, _ := tr.GroupOf(c)
	if gb.Bounds() != (Rect{X: 50, Y: 0, W: 50, H: 20}) {
		t.Errorf("b bounds: %+v", gb.Bounds())
	}
	if gc.Bounds() != (Rect{X: 50, Y: 20, W: 50, H: 20}) {
		t.Errorf("c bounds: %+v", gc.Bounds())
	}
}
