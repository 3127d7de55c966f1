package vmath

// Rect is an axis-aligned bounding box anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround returns a box of the given size centered on c
func RectAround(c Vec2, width, height float64) Rect {
	return Rect{
		X:      c.X - width/2,
		Y:      c.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Center returns the midpoint of r
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Overlaps is the AABB test: both horizontal and vertical intervals intersect
// Touching edges do not count as overlap
// Symmetric: Overlaps(a, b) == Overlaps(b, a)
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}
