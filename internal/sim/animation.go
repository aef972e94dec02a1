package sim

import (
	"math"
	"time"

	"github.com/mondrian-wm/mondrian/internal/config"
	"github.com/mondrian-wm/mondrian/internal/desktop"
	"github.com/mondrian-wm/mondrian/internal/geometry"
)

// Animation is one in-flight visual transition of a window's drawn geometry.
type Animation struct {
	Window    *Window
	StartTime time.Time
	Duration  time.Duration
	From      geometry.Rect
	To        geometry.Rect
	Progress  float64
	Complete  bool
}

// Animator eases window visuals toward their committed frames. It implements
// the engine's animator interface; the engine commits geometry first and the
// animator only ever touches the drawn rect.
type Animator struct {
	store      *config.Store
	animations []*Animation
}

// NewAnimator creates an animator whose transition length follows the
// store's configuration. A nil store falls back to the built-in durations.
func NewAnimator(store *config.Store) *Animator {
	return &Animator{store: store}
}

// duration picks the transition length: the configured duration for resizes,
// the fast one for pure moves. Zero when animations are off.
func (a *Animator) duration(from, to geometry.Rect) time.Duration {
	if !config.AnimationsEnabled {
		return 0
	}
	if from.Width == to.Width && from.Height == to.Height {
		return config.GetFastAnimationDuration()
	}
	if a.store != nil {
		return a.store.AnimationDuration()
	}
	return config.GetAnimationDuration()
}

// Transition starts easing w's drawn geometry from one rect to the other.
// With animations disabled the visual snaps to the target immediately.
func (a *Animator) Transition(w desktop.Window, from, to geometry.Rect) {
	win, ok := w.(*Window)
	if !ok {
		return
	}

	duration := a.duration(from, to)
	if duration == 0 {
		win.SetVisualRect(to)
		return
	}

	// Restarting a transition for the same window supersedes the old one.
	for i, anim := range a.animations {
		if anim.Window == win {
			a.animations = append(a.animations[:i], a.animations[i+1:]...)
			break
		}
	}

	win.SetVisualRect(from)
	a.animations = append(a.animations, &Animation{
		Window:    win,
		StartTime: time.Now(),
		Duration:  duration,
		From:      from,
		To:        to,
	})
}

// Update advances all active animations and applies their effects. It
// returns true while any animation is still running.
func (a *Animator) Update() bool {
	now := time.Now()

	for i := len(a.animations) - 1; i >= 0; i-- {
		anim := a.animations[i]

		elapsed := now.Sub(anim.StartTime)
		progress := float64(elapsed) / float64(anim.Duration)

		if progress >= 1.0 {
			progress = 1.0
			anim.Complete = true
		}

		// Apply easing function (smooth in/out)
		anim.Progress = easeInOutCubic(progress)

		anim.Window.SetVisualRect(geometry.Rect{
			X:      interpolate(anim.From.X, anim.To.X, anim.Progress),
			Y:      interpolate(anim.From.Y, anim.To.Y, anim.Progress),
			Width:  interpolate(anim.From.Width, anim.To.Width, anim.Progress),
			Height: interpolate(anim.From.Height, anim.To.Height, anim.Progress),
		})

		if anim.Complete {
			anim.Window.SetVisualRect(anim.To)
			a.animations = append(a.animations[:i], a.animations[i+1:]...)
		}
	}

	return len(a.animations) > 0
}

// HasActiveAnimations returns true if there are any active animations.
func (a *Animator) HasActiveAnimations() bool {
	return len(a.animations) > 0
}

// Easing function for smooth animation
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	p := 2*t - 2
	return 1 + p*p*p/2
}

// Linear interpolation
func interpolate(start, end int, progress float64) int {
	return start + int(math.Round(float64(end-start)*progress))
}
