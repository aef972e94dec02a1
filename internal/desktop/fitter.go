package desktop

import (
	"github.com/mondrian-wm/mondrian/internal/geometry"
	"github.com/mondrian-wm/mondrian/internal/layout"
)

// Fitter projects a tiling tree onto concrete window rectangles. It walks
// the tree with the same Split arithmetic the tree was grown with, so the
// produced cells always match the tree shape.
type Fitter struct {
	Prefs    Prefs
	Animator Animator
}

// Fit maps node onto area and applies each leaf's cell to its window.
// windows is the live, already filtered window list for the target
// workspace/monitor pair. A tile whose id has no match is skipped and
// logged: window churn can race the event that triggered the fit, and a
// stale leaf is removed by the next window-left event anyway.
func (f *Fitter) Fit(node layout.Node, area geometry.Rect, windows []Window) {
	switch n := node.(type) {
	case *layout.Container:
		if n.Left == nil && n.Right == nil {
			// Empty tree, nothing to place.
			return
		}
		if n.Left == nil || n.Right == nil {
			panic("desktop: container with a single child")
		}
		primary, secondary := geometry.Split(area, n.Orientation, n.Size)
		f.Fit(n.Left, primary, windows)
		f.Fit(n.Right, secondary, windows)
	case *layout.Tile:
		w := findWindow(windows, n.Window)
		if w == nil {
			logger.Warn("window vanished before fit, skipping leaf", "id", n.Window)
			return
		}
		f.place(w, area)
	}
}

// place moves w into its cell, deducting the spacing that the work-area
// resolver added around the whole area.
func (f *Fitter) place(w Window, cell geometry.Rect) {
	target := cell.Shrink(f.Prefs.Spacing())
	prev := w.FrameRect()
	if prev == target {
		return
	}

	// A plain move is issued first: some windows ignore the position part
	// of a combined move+resize.
	w.MoveFrame(target.X, target.Y)
	w.MoveResizeFrame(target)

	if f.Animator != nil {
		f.Animator.Transition(w, prev, target)
	}
}

func findWindow(windows []Window, id string) Window {
	for _, w := range windows {
		if w.ID() == id {
			return w
		}
	}
	return nil
}
