// Package geometry provides the rectangle and axis-aligned split arithmetic
// used by the tiling engine.
package geometry

// Orientation is the axis along which a container's area is divided.
// The split line runs along the named axis, so a Horizontal split stacks its
// halves top/bottom and a Vertical split places them left/right.
type Orientation int

const (
	// Horizontal splits an area into a top and a bottom half.
	Horizontal Orientation = iota
	// Vertical splits an area into a left and a right half.
	Vertical
)

// String returns the orientation name for logging.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}

// Rect is an axis-aligned rectangle in integer pixel coordinates with a
// top-left origin.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (x, y) lies inside r. The right and
// bottom edges are exclusive, so the two halves of a split never both claim
// a point on the shared edge.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Shrink returns r reduced by n pixels on every side.
func (r Rect) Shrink(n int) Rect {
	return Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  r.Width - 2*n,
		Height: r.Height - 2*n,
	}
}

// Expand returns r grown by n pixels on every side.
func (r Rect) Expand(n int) Rect {
	return r.Shrink(-n)
}

// Area returns the surface of r in square pixels.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Insets are user-configured margins reserved on each side of a monitor and
// excluded from tiling.
type Insets struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Split divides area along the axis implied by o. The primary half spans
// size pixels along the split axis when size is positive, otherwise half of
// the area. The secondary half gets the remainder, offset past the primary.
// Growing the tree and projecting it both go through this function so that
// tree shape and on-screen geometry cannot diverge.
func Split(area Rect, o Orientation, size int) (primary, secondary Rect) {
	switch o {
	case Horizontal:
		h := size
		if h <= 0 {
			h = area.Height / 2
		}
		primary = Rect{X: area.X, Y: area.Y, Width: area.Width, Height: h}
		secondary = Rect{X: area.X, Y: area.Y + h, Width: area.Width, Height: area.Height - h}
	case Vertical:
		w := size
		if w <= 0 {
			w = area.Width / 2
		}
		primary = Rect{X: area.X, Y: area.Y, Width: w, Height: area.Height}
		secondary = Rect{X: area.X + w, Y: area.Y, Width: area.Width - w, Height: area.Height}
	}
	return primary, secondary
}
