package debris

import "github.com/lixenwraith/orbit-sweeper/vmath"

// Collector is the player-controlled tool in the arena
// Discrete per-tick displacement, no momentum
type Collector struct {
	Pos vmath.Vec2

	arena  vmath.Rect
	size   float64
	speed  float64
	margin float64
}

// NewCollector places a collector at the arena center
func NewCollector(t Tuning) *Collector {
	arena := t.Arena()
	return &Collector{
		Pos:    arena.Center(),
		arena:  arena,
		size:   t.CollectorSize,
		speed:  t.CollectorSpeed,
		margin: t.CollectorMargin,
	}
}

// Move displaces the collector by speed along each non-zero axis and clamps to the arena
// dx and dy are signs: -1, 0 or 1
func (c *Collector) Move(dx, dy int) {
	step := vmath.Vec2{X: float64(sign(dx)), Y: float64(sign(dy))}
	c.Pos = c.Pos.Add(step.Scale(c.speed))

	c.Pos.X = vmath.Clamp(c.Pos.X, c.arena.X+c.margin, c.arena.X+c.arena.Width-c.margin)
	c.Pos.Y = vmath.Clamp(c.Pos.Y, c.arena.Y+c.margin, c.arena.Y+c.arena.Height-c.margin)
}

// Bounds returns the fixed-size collision box around the collector
func (c *Collector) Bounds() vmath.Rect {
	return vmath.RectAround(c.Pos, c.size, c.size)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
