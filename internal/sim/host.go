package sim

import (
	"github.com/mondrian-wm/mondrian/internal/desktop"
	"github.com/mondrian-wm/mondrian/internal/geometry"
)

// Desktop is the in-memory desktop environment the demo runs against. It
// keeps one window list per workspace on a single monitor and delivers
// lifecycle events synchronously to its subscribers.
type Desktop struct {
	workspaces int
	workspace  int
	monitor    int
	bounds     geometry.Rect

	windows map[int][]*Window

	pointerX int
	pointerY int

	nextSub          int
	workspaceChanged map[int]func()
	windowEntered    map[int]func(w desktop.Window, monitor int)
	windowLeft       map[int]func(w desktop.Window, monitor int)
	dragBegin        map[int]func(w desktop.Window)
	dragEnd          map[int]func(w desktop.Window)
}

// NewDesktop creates a desktop with the given number of workspaces and one
// monitor covering bounds. The first workspace is active.
func NewDesktop(workspaces int, bounds geometry.Rect) *Desktop {
	return &Desktop{
		workspaces:       workspaces,
		workspace:        1,
		bounds:           bounds,
		windows:          make(map[int][]*Window),
		workspaceChanged: make(map[int]func()),
		windowEntered:    make(map[int]func(w desktop.Window, monitor int)),
		windowLeft:       make(map[int]func(w desktop.Window, monitor int)),
		dragBegin:        make(map[int]func(w desktop.Window)),
		dragEnd:          make(map[int]func(w desktop.Window)),
	}
}

// ActiveWorkspace returns the current workspace index.
func (d *Desktop) ActiveWorkspace() int { return d.workspace }

// CurrentMonitor returns the monitor the pointer is on. The demo desktop
// has a single monitor.
func (d *Desktop) CurrentMonitor() int { return d.monitor }

// Windows enumerates every window of the given workspace, unfiltered.
func (d *Desktop) Windows(workspace int) []desktop.Window {
	wins := d.windows[workspace]
	out := make([]desktop.Window, len(wins))
	for i, w := range wins {
		out[i] = w
	}
	return out
}

// MonitorBounds returns the monitor's raw bounds.
func (d *Desktop) MonitorBounds(workspace, monitor int) geometry.Rect {
	return d.bounds
}

// Pointer returns the current pointer position.
func (d *Desktop) Pointer() (x, y int) { return d.pointerX, d.pointerY }

// OnWorkspaceChanged subscribes to workspace switches.
func (d *Desktop) OnWorkspaceChanged(fn func()) desktop.Disposer {
	id := d.subscribe()
	d.workspaceChanged[id] = fn
	return func() { delete(d.workspaceChanged, id) }
}

// OnWindowEntered subscribes to windows becoming visible.
func (d *Desktop) OnWindowEntered(fn func(w desktop.Window, monitor int)) desktop.Disposer {
	id := d.subscribe()
	d.windowEntered[id] = fn
	return func() { delete(d.windowEntered, id) }
}

// OnWindowLeft subscribes to windows going away.
func (d *Desktop) OnWindowLeft(fn func(w desktop.Window, monitor int)) desktop.Disposer {
	id := d.subscribe()
	d.windowLeft[id] = fn
	return func() { delete(d.windowLeft, id) }
}

// OnDragBegin subscribes to window drags starting.
func (d *Desktop) OnDragBegin(fn func(w desktop.Window)) desktop.Disposer {
	id := d.subscribe()
	d.dragBegin[id] = fn
	return func() { delete(d.dragBegin, id) }
}

// OnDragEnd subscribes to window drags ending.
func (d *Desktop) OnDragEnd(fn func(w desktop.Window)) desktop.Disposer {
	id := d.subscribe()
	d.dragEnd[id] = fn
	return func() { delete(d.dragEnd, id) }
}

func (d *Desktop) subscribe() int {
	d.nextSub++
	return d.nextSub
}

// SetPointer moves the pointer.
func (d *Desktop) SetPointer(x, y int) {
	d.pointerX = x
	d.pointerY = y
}

// Resize changes the monitor bounds, e.g. when the hosting terminal resizes.
func (d *Desktop) Resize(bounds geometry.Rect) {
	d.bounds = bounds
}

// Workspaces returns the number of workspaces.
func (d *Desktop) Workspaces() int { return d.workspaces }

// SwitchWorkspace activates workspace n and notifies subscribers. Out of
// range or already-active switches are ignored.
func (d *Desktop) SwitchWorkspace(n int) {
	if n < 1 || n > d.workspaces || n == d.workspace {
		return
	}
	d.workspace = n
	for _, fn := range d.workspaceChanged {
		fn()
	}
}

// AddWindow places a new window on the active workspace and announces it.
func (d *Desktop) AddWindow(title string, frameType desktop.FrameType, at geometry.Rect) *Window {
	w := NewWindow(title, frameType, d.monitor, at)
	d.windows[d.workspace] = append(d.windows[d.workspace], w)
	for _, fn := range d.windowEntered {
		fn(w, w.Monitor())
	}
	return w
}

// CloseWindow removes the window with the given id from the active
// workspace and announces its departure.
func (d *Desktop) CloseWindow(id string) {
	wins := d.windows[d.workspace]
	for i, w := range wins {
		if w.ID() == id {
			d.windows[d.workspace] = append(wins[:i], wins[i+1:]...)
			for _, fn := range d.windowLeft {
				fn(w, w.Monitor())
			}
			return
		}
	}
}

// BeginDrag announces that w is being dragged.
func (d *Desktop) BeginDrag(w *Window) {
	for _, fn := range d.dragBegin {
		fn(w)
	}
}

// EndDrag announces that the drag of w finished.
func (d *Desktop) EndDrag(w *Window) {
	for _, fn := range d.dragEnd {
		fn(w)
	}
}

// WindowAt returns the topmost window of the active workspace whose drawn
// geometry contains the point, or nil.
func (d *Desktop) WindowAt(x, y int) *Window {
	wins := d.windows[d.workspace]
	for i := len(wins) - 1; i >= 0; i-- {
		if wins[i].VisualRect().Contains(x, y) {
			return wins[i]
		}
	}
	return nil
}

// LastWindow returns the most recently added window of the active
// workspace, or nil when the workspace is empty.
func (d *Desktop) LastWindow() *Window {
	wins := d.windows[d.workspace]
	if len(wins) == 0 {
		return nil
	}
	return wins[len(wins)-1]
}

// SimWindows returns the active workspace's windows with their concrete
// type, for rendering.
func (d *Desktop) SimWindows() []*Window {
	return d.windows[d.workspace]
}
