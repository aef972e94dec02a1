package desktop_test

import (
	"testing"

	"github.com/mondrian-wm/mondrian/internal/desktop"
	"github.com/mondrian-wm/mondrian/internal/geometry"
	"github.com/mondrian-wm/mondrian/internal/layout"
)

// TestFitSpacing tests the per-cell spacing deduction: a leaf fitted into a
// 960x1080 cell with spacing 8 lands at {8,8,944,1064}.
func TestFitSpacing(t *testing.T) {
	w := normalWindow("a")
	f := &desktop.Fitter{Prefs: &fakePrefs{spacing: 8}}

	cell := geometry.Rect{X: 0, Y: 0, Width: 960, Height: 1080}
	f.Fit(&layout.Tile{Window: "a"}, cell, []desktop.Window{w})

	want := geometry.Rect{X: 8, Y: 8, Width: 944, Height: 1064}
	if w.rect != want {
		t.Errorf("fitted rect = %v, want %v", w.rect, want)
	}
}

// TestFitMovesBeforeResizing tests the move-then-move-resize ordering that
// works around windows ignoring the position part of a combined call.
func TestFitMovesBeforeResizing(t *testing.T) {
	w := normalWindow("a")
	f := &desktop.Fitter{Prefs: &fakePrefs{}}

	f.Fit(&layout.Tile{Window: "a"}, geometry.Rect{Width: 800, Height: 600}, []desktop.Window{w})

	if len(w.moves) != 1 || len(w.moveResizes) != 1 {
		t.Fatalf("moves = %d, moveResizes = %d, want 1 each", len(w.moves), len(w.moveResizes))
	}
	if w.moves[0].X != 0 || w.moves[0].Y != 0 {
		t.Errorf("move went to (%d, %d), want cell origin", w.moves[0].X, w.moves[0].Y)
	}
}

// TestFitSkipsWhenGeometryMatches tests that a window already at its target
// is left alone, with no transition fired.
func TestFitSkipsWhenGeometryMatches(t *testing.T) {
	target := geometry.Rect{X: 8, Y: 8, Width: 944, Height: 1064}
	w := normalWindow("a")
	w.rect = target
	anim := &fakeAnimator{}
	f := &desktop.Fitter{Prefs: &fakePrefs{spacing: 8}, Animator: anim}

	f.Fit(&layout.Tile{Window: "a"}, geometry.Rect{Width: 960, Height: 1080}, []desktop.Window{w})

	if len(w.moveResizes) != 0 {
		t.Errorf("moveResizes = %d for an already placed window, want 0", len(w.moveResizes))
	}
	if anim.transitions != 0 {
		t.Errorf("transitions = %d for an already placed window, want 0", anim.transitions)
	}
}

// TestFitContainerRecursion tests that a container fits its children into
// the two split halves.
func TestFitContainerRecursion(t *testing.T) {
	a := normalWindow("a")
	b := normalWindow("b")
	f := &desktop.Fitter{Prefs: &fakePrefs{}}

	node := &layout.Container{
		Orientation: geometry.Vertical,
		Left:        &layout.Tile{Window: "a"},
		Right:       &layout.Tile{Window: "b"},
	}
	f.Fit(node, geometry.Rect{Width: 1920, Height: 1080}, []desktop.Window{a, b})

	if want := (geometry.Rect{X: 0, Y: 0, Width: 960, Height: 1080}); a.rect != want {
		t.Errorf("a.rect = %v, want %v", a.rect, want)
	}
	if want := (geometry.Rect{X: 960, Y: 0, Width: 960, Height: 1080}); b.rect != want {
		t.Errorf("b.rect = %v, want %v", b.rect, want)
	}
}

// TestFitConstrainedContainer tests that a fixed primary size is honored.
func TestFitConstrainedContainer(t *testing.T) {
	a := normalWindow("a")
	b := normalWindow("b")
	f := &desktop.Fitter{Prefs: &fakePrefs{}}

	node := &layout.Container{
		Orientation: geometry.Vertical,
		Size:        600,
		Left:        &layout.Tile{Window: "a"},
		Right:       &layout.Tile{Window: "b"},
	}
	f.Fit(node, geometry.Rect{Width: 1920, Height: 1080}, []desktop.Window{a, b})

	if a.rect.Width != 600 {
		t.Errorf("a.rect.Width = %d, want the fixed 600", a.rect.Width)
	}
	if b.rect.X != 600 || b.rect.Width != 1320 {
		t.Errorf("b.rect = %v, want offset past the fixed primary", b.rect)
	}
}

// TestFitEmptyTreeIsNoop tests that the empty placeholder fits nothing.
func TestFitEmptyTreeIsNoop(t *testing.T) {
	w := normalWindow("a")
	f := &desktop.Fitter{Prefs: &fakePrefs{}}

	f.Fit(&layout.Container{}, geometry.Rect{Width: 100, Height: 100}, []desktop.Window{w})

	if len(w.moveResizes) != 0 {
		t.Errorf("empty tree moved a window: %v", w.moveResizes)
	}
}

// TestFitVanishedWindowSkipsLeaf tests the lookup-failure policy: a leaf
// whose window disappeared is skipped rather than crashing the pass.
func TestFitVanishedWindowSkipsLeaf(t *testing.T) {
	b := normalWindow("b")
	f := &desktop.Fitter{Prefs: &fakePrefs{}}

	node := &layout.Container{
		Orientation: geometry.Vertical,
		Left:        &layout.Tile{Window: "vanished"},
		Right:       &layout.Tile{Window: "b"},
	}
	f.Fit(node, geometry.Rect{Width: 1920, Height: 1080}, []desktop.Window{b})

	// The surviving sibling is still placed in its half.
	if want := (geometry.Rect{X: 960, Y: 0, Width: 960, Height: 1080}); b.rect != want {
		t.Errorf("b.rect = %v, want %v", b.rect, want)
	}
}

// TestFitPanicsOnSingleChild tests the fail-fast reaction to a structural
// invariant violation.
func TestFitPanicsOnSingleChild(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a container with a single child")
		}
	}()

	f := &desktop.Fitter{Prefs: &fakePrefs{}}
	f.Fit(&layout.Container{Left: &layout.Tile{Window: "a"}},
		geometry.Rect{Width: 100, Height: 100}, nil)
}
