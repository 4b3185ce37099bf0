package dock

import "testing"

func sharesEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInsertShare_SplitsSiblingInHalf(t *testing.T) {
	got := insertShare([]float64{0.4, 0.6}, 1, 0)
	want := []float64{0.2, 0.2, 0.6}
	if !sharesEqual(got, want) {
		t.Errorf("insertShare split: got %v, want %v", got, want)
	}
}

func TestInsertShare_SplitIndexReadBeforeInsert(t *testing.T) {
	// Inserting before the split sibling: the half must come from the
	// sibling's pre-insert slot.
	got := insertShare([]float64{0.4, 0.6}, 1, 1)
	want := []float64{0.4, 0.3, 0.3}
	if !sharesEqual(got, want) {
		t.Errorf("insertShare before sibling: got %v, want %v", got, want)
	}
}

func TestInsertShare_EdgeInsertLeavesNeighborsAlone(t *testing.T) {
	got := insertShare([]float64{1.0, 2.0}, 0, -1)
	want := []float64{0.5, 1.0, 2.0}
	if !sharesEqual(got, want) {
		t.Errorf("insertShare edge: got %v, want %v", got, want)
	}

	got = insertShare([]float64{1.0}, 1, -1)
	want = []float64{1.0, 0.5}
	if !sharesEqual(got, want) {
		t.Errorf("insertShare edge at end: got %v, want %v", got, want)
	}
}

func TestRemoveShare(t *testing.T) {
	got, removed := removeShare([]float64{0.2, 0.3, 0.5}, 1)
	if removed != 0.3 {
		t.Errorf("removed share: got %v, want 0.3", removed)
	}
	if !sharesEqual(got, []float64{0.2, 0.5}) {
		t.Errorf("remaining shares: got %v, want [0.2 0.5]", got)
	}
}
