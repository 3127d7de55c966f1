package vmath

import "math"

// EllipsePoint returns the point at parametric angle on an axis-aligned ellipse
// a is the horizontal (semi-major) radius, b the vertical (semi-minor) radius
func EllipsePoint(center Vec2, a, b, angle float64) Vec2 {
	return Vec2{
		X: center.X + a*math.Cos(angle),
		Y: center.Y + b*math.Sin(angle),
	}
}
