package dock

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReference is returned when a caller-supplied reference item
	// is not currently attached to the tree.
	ErrInvalidReference = errors.New("dock: reference item not in tree")

	// ErrNotFound is returned when an item's owning group cannot be found.
	ErrNotFound = errors.New("dock: item not in tree")

	// ErrDragActive is returned when a drag gesture is started while another
	// one is still in flight.
	ErrDragActive = errors.New("dock: drag already active")
)

// invariantf panics with a structural-consistency fault. This class of
// failure indicates a bug in the mutation logic itself and is never
// user-triggerable, so it is not part of the error return surface.
func invariantf(format string, args ...any) {
	panic(fmt.Sprintf("dock: invariant violated: "+format, args...))
}
