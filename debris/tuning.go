package debris

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/orbit-sweeper/vmath"
)

// Range is a closed-open interval for randomized parameters
type Range struct {
	Min, Max float64
}

// Rand returns a uniform value in [Min, Max)
func (r Range) Rand(rng *rand.Rand) float64 {
	return vmath.RandRange(rng, r.Min, r.Max)
}

// Tuning holds every gameplay constant of the collection phase
type Tuning struct {
	ArenaWidth  float64
	ArenaHeight float64

	InitialSatellites int
	InitialDebris     int
	MaxObjects        int // Spawn is skipped at this population, 0 = unbounded

	SatelliteRadius Range
	SatelliteSpeed  Range
	SatelliteWidth  float64
	SatelliteHeight float64

	DebrisRadius Range
	DebrisSpeed  Range
	DebrisSize   Range // Width and height drawn independently

	CollectorSize   float64 // Square box, same for every tool
	CollectorSpeed  float64 // Pixels per move tick per axis
	CollectorMargin float64 // Distance kept from arena edges

	FrameInterval     time.Duration
	MoveInterval      time.Duration
	SpawnInterval     time.Duration
	CountdownInterval time.Duration
	CountdownStart    int
	WarningDuration   time.Duration
}

// DefaultTuning returns the reference arena constants
func DefaultTuning() Tuning {
	return Tuning{
		ArenaWidth:  800,
		ArenaHeight: 600,

		InitialSatellites: 3,
		InitialDebris:     8,
		MaxObjects:        64,

		SatelliteRadius: Range{80, 140},
		SatelliteSpeed:  Range{0.01, 0.02},
		SatelliteWidth:  40,
		SatelliteHeight: 20,

		DebrisRadius: Range{60, 160},
		DebrisSpeed:  Range{0.008, 0.02},
		DebrisSize:   Range{12, 20},

		CollectorSize:   30,
		CollectorSpeed:  3,
		CollectorMargin: 20,

		FrameInterval:     16 * time.Millisecond,
		MoveInterval:      16 * time.Millisecond,
		SpawnInterval:     3 * time.Second,
		CountdownInterval: time.Second,
		CountdownStart:    55,
		WarningDuration:   time.Second,
	}
}

// Arena returns the drawable area as a rect at the origin
func (t Tuning) Arena() vmath.Rect {
	return vmath.Rect{Width: t.ArenaWidth, Height: t.ArenaHeight}
}
