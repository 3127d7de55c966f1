package physics

import (
	"math"

	"github.com/lixenwraith/orbit-sweeper/vmath"
)

// MinorAxisRatio is the fixed semi-minor / semi-major ratio of every orbit
const MinorAxisRatio = 0.7

// Orbit is a kinematic elliptical path: position is a closed-form function of Angle
// No velocity or acceleration is carried; Advance only moves the angle
type Orbit struct {
	Center    vmath.Vec2 // Fixed at creation
	SemiMajor float64    // Horizontal radius
	Speed     float64    // Angular velocity, radians per frame
	Angle     float64    // Current parametric angle, unbounded
}

// SemiMinor returns the vertical radius (0.7 × semi-major)
func (o *Orbit) SemiMinor() float64 {
	return o.SemiMajor * MinorAxisRatio
}

// Position returns the point on the ellipse at the current angle
func (o *Orbit) Position() vmath.Vec2 {
	return vmath.EllipsePoint(o.Center, o.SemiMajor, o.SemiMinor(), o.Angle)
}

// Advance steps the angle by one frame and returns the new position
// No wraparound: cos/sin are periodic
func (o *Orbit) Advance() vmath.Vec2 {
	o.Angle += o.Speed
	return o.Position()
}

// PeriodFrames returns the number of frames for one full revolution, +Inf when stationary
func (o *Orbit) PeriodFrames() float64 {
	if o.Speed == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(o.Speed)
}
