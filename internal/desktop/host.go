// Package desktop connects the tiling tree to a desktop environment host.
// It owns one tree per workspace/monitor pair, reacts to window lifecycle
// events, and projects trees back onto concrete window geometry.
//
// The desktop environment itself is consumed through the narrow interfaces
// in this file; the engine never talks to a compositor directly.
package desktop

import (
	"github.com/mondrian-wm/mondrian/internal/geometry"
)

// FrameType classifies a window's frame. Only normal windows are tiled.
type FrameType int

const (
	// FrameNormal is a regular application window.
	FrameNormal FrameType = iota
	// FrameDialog is a transient dialog.
	FrameDialog
	// FrameDock is a panel, dock or desktop component.
	FrameDock
	// FrameOther covers every remaining frame kind.
	FrameOther
)

// Window is the capability surface the engine needs from one toplevel
// window. Implementations wrap whatever handle the host environment uses.
type Window interface {
	ID() string
	Title() string
	Minimized() bool
	Monitor() int
	FrameType() FrameType
	FrameRect() geometry.Rect

	Unmaximize()
	MoveFrame(x, y int)
	MoveResizeFrame(r geometry.Rect)
}

// Disposer releases one event subscription. Running a disposer more than
// once is the caller's bug; the Router only ever runs each exactly once.
type Disposer func()

// Host is the engine's view of the desktop environment: workspace and
// monitor queries, the pointer, and lifecycle event subscriptions. Every
// subscription returns a Disposer that detaches the handler.
type Host interface {
	ActiveWorkspace() int
	CurrentMonitor() int

	// Windows enumerates every window of the given workspace, unfiltered.
	Windows(workspace int) []Window

	// MonitorBounds returns the raw bounds of a monitor as seen from the
	// given workspace, before insets and spacing are applied.
	MonitorBounds(workspace, monitor int) geometry.Rect

	// Pointer returns the current pointer position in global coordinates.
	Pointer() (x, y int)

	OnWorkspaceChanged(fn func()) Disposer
	OnWindowEntered(fn func(w Window, monitor int)) Disposer
	OnWindowLeft(fn func(w Window, monitor int)) Disposer
	OnDragBegin(fn func(w Window)) Disposer
	OnDragEnd(fn func(w Window)) Disposer
}

// Prefs supplies the user-configured tiling preferences. Implementations
// may change their answers at any time (hot reload); the engine reads them
// fresh on every layout pass.
type Prefs interface {
	Spacing() int
	Insets() geometry.Insets

	// IgnoredTitle reports whether windows with this title are excluded
	// from tiling.
	IgnoredTitle(title string) bool
}

// Animator starts the cosmetic transition that accompanies a fitted move.
// The model geometry is already committed when Transition is called, so
// implementations must treat the animation as visual-only and never feed it
// back into tiling decisions.
type Animator interface {
	Transition(w Window, from, to geometry.Rect)
}
