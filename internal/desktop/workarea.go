package desktop

import "github.com/mondrian-wm/mondrian/internal/geometry"

// ResolveWorkArea computes the rectangle used for tree subdivision on one
// monitor. Each inset is clamped into [0, dimension/2] first, so extreme
// configured values can never produce a negative or degenerate area.
//
// The inset-reduced rectangle is then expanded outward by the spacing on all
// sides. Fitting later shrinks every window cell by the same spacing, which
// leaves spacing pixels between siblings and against the true monitor edge,
// while the expansion cancels exactly at edges governed by an inset.
func ResolveWorkArea(monitor geometry.Rect, insets geometry.Insets, spacing int) geometry.Rect {
	top := clampInset(insets.Top, monitor.Height)
	bottom := clampInset(insets.Bottom, monitor.Height)
	left := clampInset(insets.Left, monitor.Width)
	right := clampInset(insets.Right, monitor.Width)

	area := geometry.Rect{
		X:      monitor.X + left,
		Y:      monitor.Y + top,
		Width:  monitor.Width - left - right,
		Height: monitor.Height - top - bottom,
	}
	return area.Expand(spacing)
}

func clampInset(v, dimension int) int {
	return max(0, min(v, dimension/2))
}
