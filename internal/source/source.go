// Package source decides where the tracked point is on each frame, either
// from live pointer input or from a recorded path.
package source

// Point is a grid coordinate on the canvas.
type Point struct {
	X, Y int
}

// Bounds is the canvas size. Valid points satisfy 0 <= X < W and 0 <= Y < H.
type Bounds struct {
	W, H int
}

// Clamp pulls p inside b.
func (b Bounds) Clamp(p Point) Point {
	return Point{X: clampInt(p.X, 0, b.W-1), Y: clampInt(p.Y, 0, b.H-1)}
}

// Center returns the middle of the canvas.
func (b Bounds) Center() Point {
	return Point{X: b.W / 2, Y: b.H / 2}
}

// Source yields the next sample. ok is false when the source has nothing to
// offer this frame, in which case the caller keeps the previous point.
type Source interface {
	Next() (p Point, ok bool)
}

// Pointer reports the current pointer position in canvas coordinates.
type Pointer interface {
	Position() (x, y int)
}

// PointerFunc adapts a function to Pointer.
type PointerFunc func() (x, y int)

func (f PointerFunc) Position() (int, int) { return f() }

// Live samples a Pointer.
type Live struct {
	Pointer Pointer
	Bounds  Bounds
}

func (l *Live) Next() (Point, bool) {
	if l.Pointer == nil {
		return Point{}, false
	}
	x, y := l.Pointer.Position()
	return l.Bounds.Clamp(Point{X: x, Y: y}), true
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
