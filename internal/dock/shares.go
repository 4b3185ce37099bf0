package dock

// Share arithmetic for splitter children. Shares are relative weights: they
// need not sum to any fixed total, only their ratios matter. Keeping edits
// local (halving one sibling instead of renormalizing the container) is what
// keeps unrelated panels visually stable when a split is inserted nearby.

// insertShare returns shares with a new entry inserted at index.
//
// If splitIndex >= 0 the new child takes half of that sibling's space: the
// sibling's share is halved and the same half is inserted at index (read
// before insertion, so splitIndex refers to the incoming slice). Otherwise
// the new child gets a flat 0.5 and no neighbor is touched; callers that
// want an equal division must pre-normalize.
func insertShare(shares []float64, index, splitIndex int) []float64 {
	share := 0.5
	if splitIndex >= 0 {
		share = shares[splitIndex] / 2
		shares[splitIndex] = share
	}
	out := make([]float64, 0, len(shares)+1)
	out = append(out, shares[:index]...)
	out = append(out, share)
	out = append(out, shares[index:]...)
	return out
}

// removeShare returns shares without the entry at index, plus the removed
// value. Merge logic multiplies a spliced grandchild's own sub-shares by the
// removed value to preserve the visual proportion the subtree occupied.
func removeShare(shares []float64, index int) ([]float64, float64) {
	removed := shares[index]
	out := append(shares[:index:index], shares[index+1:]...)
	return out, removed
}
