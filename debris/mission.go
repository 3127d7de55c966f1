package debris

import (
	"time"

	"github.com/lixenwraith/orbit-sweeper/engine"
)

// AxisSource reports the held movement directions at a point in time
type AxisSource interface {
	Axis(now time.Time) (dx, dy int)
}

// Mission binds a simulation and its countdown to scheduler-driven tasks
type Mission struct {
	Sim       *Simulation
	Countdown *Countdown
	input     AxisSource
}

// NewMission creates a mission; input may be nil (collector stays put)
func NewMission(sim *Simulation, countdown *Countdown, input AxisSource) *Mission {
	return &Mission{Sim: sim, Countdown: countdown, input: input}
}

// Mount seeds the population and registers the four independent drivers
// The scheduler's Stop is the single release point for all of them
func (m *Mission) Mount(s *engine.Scheduler) {
	t := m.Sim.Tuning()
	m.Sim.Populate()

	s.Every("frame", t.FrameInterval, func(now time.Time) {
		m.Sim.Step(now)
	})
	s.Every("collector", t.MoveInterval, func(now time.Time) {
		if m.input == nil {
			return
		}
		dx, dy := m.input.Axis(now)
		m.Sim.MoveCollector(dx, dy)
	})
	s.Every("countdown", t.CountdownInterval, func(time.Time) {
		m.Countdown.Tick()
	})
	s.Every("spawn", t.SpawnInterval, func(time.Time) {
		m.Sim.Spawn()
	})
}
