package debris

import (
	"github.com/lixenwraith/orbit-sweeper/physics"
	"github.com/lixenwraith/orbit-sweeper/vmath"
)

// Kind tags an orbiting object
type Kind uint8

const (
	KindDebris Kind = iota
	KindSatellite
)

func (k Kind) String() string {
	if k == KindSatellite {
		return "satellite"
	}
	return "debris"
}

// DebrisType is cosmetic: it selects shape and color only
type DebrisType uint8

const (
	DebrisNut DebrisType = iota
	DebrisScrew
	DebrisBolt
	DebrisSwitch
	DebrisGlass
	DebrisMetal
	debrisTypeCount
)

var debrisTypeNames = [debrisTypeCount]string{"nut", "screw", "bolt", "switch", "glass", "metal"}

func (t DebrisType) String() string {
	if t < debrisTypeCount {
		return debrisTypeNames[t]
	}
	return "unknown"
}

// Object is a debris fragment or satellite on a kinematic elliptical orbit
type Object struct {
	ID         uint64
	Kind       Kind
	DebrisType DebrisType // Meaningful for KindDebris only
	Pos        vmath.Vec2
	Width      float64
	Height     float64
	Orbit      physics.Orbit
}

// Advance moves the object one frame along its orbit
func (o *Object) Advance() {
	o.Pos = o.Orbit.Advance()
}

// Bounds returns the collision box centered on the current position
func (o *Object) Bounds() vmath.Rect {
	return vmath.RectAround(o.Pos, o.Width, o.Height)
}
