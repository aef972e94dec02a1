package desktop

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/mondrian-wm/mondrian/internal/geometry"
	"github.com/mondrian-wm/mondrian/internal/layout"
)

// Package-level logger
var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "desktop",
	})
}

// SetLogLevel sets the logging level for the desktop package.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}

// Pair identifies one independent tiling tree: a workspace index combined
// with a monitor index.
type Pair struct {
	Workspace int
	Monitor   int
}

// Options control which pairs Autotile reflows.
type Options struct {
	// Specific retiles the given pair instead of the active one. The
	// active pair is saved and restored around the call.
	Specific *Pair

	// All retiles every pair a tree exists for. Used when a global
	// setting such as the gap size changes and every desktop must reflow.
	All bool
}

// Router owns the tiling trees and drives them from desktop lifecycle
// events. All mutation runs synchronously inside the host's event delivery;
// the router itself holds no locks.
type Router struct {
	host   Host
	prefs  Prefs
	fitter *Fitter

	// Trees are created lazily on first visit to a pair and kept for the
	// router's lifetime as the last known layout of that desktop.
	trees  map[Pair]*layout.Tree
	active Pair

	disposers []Disposer
	released  bool
}

// NewRouter subscribes to the host's lifecycle events and returns a router
// ready to tile. Release must be called to detach the subscriptions.
func NewRouter(host Host, prefs Prefs, animator Animator) *Router {
	r := &Router{
		host:   host,
		prefs:  prefs,
		fitter: &Fitter{Prefs: prefs, Animator: animator},
		trees:  make(map[Pair]*layout.Tree),
	}
	r.active = Pair{Workspace: host.ActiveWorkspace(), Monitor: host.CurrentMonitor()}
	r.ensureTree(r.active)

	r.disposers = append(r.disposers,
		host.OnWorkspaceChanged(r.workspaceChanged),
		host.OnWindowEntered(r.windowEntered),
		host.OnWindowLeft(r.windowLeft),
		// A drag takes the window out of the layout; dropping it
		// re-inserts it at the pointer.
		host.OnDragBegin(func(w Window) { r.windowLeft(w, w.Monitor()) }),
		host.OnDragEnd(func(w Window) { r.windowEntered(w, w.Monitor()) }),
	)

	logger.Info("router attached", "workspace", r.active.Workspace, "monitor", r.active.Monitor)
	return r
}

// Release detaches every event subscription. It is idempotent; only the
// first call runs the disposers.
func (r *Router) Release() {
	if r.released {
		return
	}
	r.released = true
	for _, dispose := range r.disposers {
		dispose()
	}
	r.disposers = nil
	logger.Info("router released")
}

// Autotile reflows windows according to opts: the active pair by default,
// one specific pair, or every known pair.
func (r *Router) Autotile(opts Options) {
	switch {
	case opts.All:
		for pair := range r.trees {
			r.retile(pair)
		}
	case opts.Specific != nil:
		saved := r.active
		r.active = *opts.Specific
		r.retile(r.active)
		r.active = saved
	default:
		r.retile(r.active)
	}
}

// Tree returns the tree for pair, or nil if the pair has not been visited.
// Exposed for inspection; callers must not mutate the tree.
func (r *Router) Tree(pair Pair) *layout.Tree {
	return r.trees[pair]
}

// ActivePair returns the pair the router currently tiles by default.
func (r *Router) ActivePair() Pair {
	return r.active
}

// workspaceChanged recomputes the active pair, builds a tree for it on
// first visit, and reflows it.
func (r *Router) workspaceChanged() {
	r.active = Pair{Workspace: r.host.ActiveWorkspace(), Monitor: r.host.CurrentMonitor()}
	r.ensureTree(r.active)
	r.retile(r.active)
}

// windowEntered inserts a newly visible window into the pair's tree, placed
// at the side of the pointer, then reflows.
func (r *Router) windowEntered(w Window, monitor int) {
	if !r.eligible(w, monitor) {
		return
	}
	pair := Pair{Workspace: r.host.ActiveWorkspace(), Monitor: monitor}
	tree := r.ensureTree(pair)
	if !tree.Exists(w.ID()) {
		w.Unmaximize()
		area := r.workArea(pair)
		px, py := r.host.Pointer()
		tree.Insert(&layout.Tile{Window: w.ID()}, area, px, py)
		logger.Debug("window entered", "id", w.ID(), "workspace", pair.Workspace, "monitor", pair.Monitor)
	}
	r.retile(pair)
}

// windowLeft removes a window from the pair's tree and reflows the
// remaining windows.
func (r *Router) windowLeft(w Window, monitor int) {
	pair := Pair{Workspace: r.host.ActiveWorkspace(), Monitor: monitor}
	tree := r.trees[pair]
	if tree == nil || !tree.Exists(w.ID()) {
		return
	}
	tree.Remove(w.ID())
	logger.Debug("window left", "id", w.ID(), "workspace", pair.Workspace, "monitor", pair.Monitor)
	r.retile(pair)
}

// ensureTree returns the pair's tree, building one from the currently
// visible eligible windows on first visit.
func (r *Router) ensureTree(pair Pair) *layout.Tree {
	if tree := r.trees[pair]; tree != nil {
		return tree
	}
	ids := make([]string, 0, 4)
	for _, w := range r.eligibleWindows(pair) {
		ids = append(ids, w.ID())
	}
	tree := layout.NewTree(ids, r.workArea(pair))
	r.trees[pair] = tree
	logger.Debug("tree created", "workspace", pair.Workspace, "monitor", pair.Monitor, "windows", len(ids))
	return tree
}

// retile projects the pair's tree onto its current work area.
func (r *Router) retile(pair Pair) {
	tree := r.trees[pair]
	if tree == nil {
		return
	}
	r.fitter.Fit(tree.Root, r.workArea(pair), r.eligibleWindows(pair))
}

func (r *Router) workArea(pair Pair) geometry.Rect {
	return ResolveWorkArea(
		r.host.MonitorBounds(pair.Workspace, pair.Monitor),
		r.prefs.Insets(),
		r.prefs.Spacing(),
	)
}

// eligible reports whether w takes part in tiling on the given monitor.
func (r *Router) eligible(w Window, monitor int) bool {
	return w.Monitor() == monitor &&
		!w.Minimized() &&
		w.FrameType() == FrameNormal &&
		!r.prefs.IgnoredTitle(w.Title())
}

// eligibleWindows filters the pair's window list down to the tileable ones.
func (r *Router) eligibleWindows(pair Pair) []Window {
	var out []Window
	for _, w := range r.host.Windows(pair.Workspace) {
		if r.eligible(w, pair.Monitor) {
			out = append(out, w)
		}
	}
	return out
}
