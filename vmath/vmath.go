package vmath

import (
	"math"
	"math/rand"
)

// Vec2 is a point or direction in arena space (pixels)
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Distance between two points
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// --- Scalar helpers ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual reports whether a and b differ by at most eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// --- Randomness ---

// RandRange returns a uniform value in [lo, hi)
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandAngle returns a uniform angle in [0, 2π)
func RandAngle(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// RandPoint returns a uniform point inside r
func RandPoint(rng *rand.Rand, r Rect) Vec2 {
	return Vec2{
		X: r.X + rng.Float64()*r.Width,
		Y: r.Y + rng.Float64()*r.Height,
	}
}

// RandPick returns a uniform index in [0, n), 0 for n <= 0
func RandPick(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}
