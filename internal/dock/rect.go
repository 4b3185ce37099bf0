package dock

// Orientation is the axis a splitter divides space along.
type Orientation uint8

const (
	// Horizontal places children side by side (divides width).
	Horizontal Orientation = iota
	// Vertical stacks children (divides height).
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Point is a position in terminal cells.
type Point struct {
	X, Y int
}

// Rect is a rectangle in terminal cells. W and H are extents, so the rect
// covers [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
