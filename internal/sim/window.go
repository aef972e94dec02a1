// Package sim provides a self-contained demo desktop for the tiling engine.
// It implements the desktop host interfaces against an in-memory window set
// and renders the result as a terminal UI, so the engine can be exercised
// without a real compositor.
package sim

import (
	"github.com/google/uuid"

	"github.com/mondrian-wm/mondrian/internal/desktop"
	"github.com/mondrian-wm/mondrian/internal/geometry"
)

// Window is an in-memory toplevel window. The committed frame geometry is
// what the tiling engine manages; the visual rect is what gets drawn and
// trails the frame during animated transitions.
type Window struct {
	id        string
	title     string
	frameType desktop.FrameType
	monitor   int
	minimized bool
	maximized bool

	frame  geometry.Rect
	visual geometry.Rect
}

// NewWindow creates a window with a fresh unique ID at the given position.
func NewWindow(title string, frameType desktop.FrameType, monitor int, at geometry.Rect) *Window {
	return &Window{
		id:        uuid.NewString(),
		title:     title,
		frameType: frameType,
		monitor:   monitor,
		frame:     at,
		visual:    at,
	}
}

// ID returns the window's unique identifier.
func (w *Window) ID() string { return w.id }

// Title returns the window's title.
func (w *Window) Title() string { return w.title }

// Minimized reports whether the window is minimized.
func (w *Window) Minimized() bool { return w.minimized }

// Monitor returns the index of the monitor the window is on.
func (w *Window) Monitor() int { return w.monitor }

// FrameType returns the window's frame classification.
func (w *Window) FrameType() desktop.FrameType { return w.frameType }

// FrameRect returns the committed frame geometry.
func (w *Window) FrameRect() geometry.Rect { return w.frame }

// Unmaximize clears the maximized state.
func (w *Window) Unmaximize() { w.maximized = false }

// MoveFrame commits a new frame origin, keeping the current size.
func (w *Window) MoveFrame(x, y int) {
	w.frame.X = x
	w.frame.Y = y
}

// MoveResizeFrame commits a new frame geometry.
func (w *Window) MoveResizeFrame(r geometry.Rect) {
	w.frame = r
}

// Maximize sets the maximized state.
func (w *Window) Maximize() { w.maximized = true }

// Maximized reports whether the window is maximized.
func (w *Window) Maximized() bool { return w.maximized }

// SetMinimized toggles the minimized state.
func (w *Window) SetMinimized(min bool) { w.minimized = min }

// VisualRect returns the geometry the window is currently drawn at.
func (w *Window) VisualRect() geometry.Rect { return w.visual }

// SetVisualRect moves the drawn geometry. Called by the animator; the
// committed frame is untouched.
func (w *Window) SetVisualRect(r geometry.Rect) { w.visual = r }
