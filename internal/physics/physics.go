// Package physics provides collision detection and integration helpers.
package physics

// Rect is an axis-aligned bounding box. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// CircleBounds returns the bounding box of a circle.
func CircleBounds(cx, cy, radius float64) Rect {
	return Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}
}

// Step advances a position by one Euler step.
func Step(x, y *float64, vx, vy float64) {
	*x += vx
	*y += vy
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
