package debris

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/orbit-sweeper/physics"
	"github.com/lixenwraith/orbit-sweeper/vmath"
)

// Tally receives scoring events; the store owns the counters
type Tally interface {
	IncrementDebris()
	IncrementSatellites()
}

// Cues is the audio collaborator; calls are fire-and-forget
type Cues interface {
	PlayHit()
	PlaySuccess()
}

type Config struct {
	Tuning Tuning
	Seed   int64 // Optional (0 = Random)

	// SatellitesImmune makes satellite contact a no-op (magnetic collector)
	SatellitesImmune bool
}

// StepResult summarizes the collisions resolved in one frame
type StepResult struct {
	Collected     int
	SatelliteHits int
}

// Simulation owns the live object set and the collector for one collection phase
// Not safe for concurrent use; all drivers run on the scheduler goroutine
type Simulation struct {
	tuning    Tuning
	immune    bool
	rng       *rand.Rand
	objects   []*Object
	collector *Collector
	nextID    uint64
	frame     uint64

	warningUntil time.Time

	tally Tally
	cues  Cues
	log   *slog.Logger
}

// NewSimulation creates an empty simulation; call Populate to seed the initial set
// tally and cues may be nil
func NewSimulation(cfg Config, tally Tally, cues Cues) *Simulation {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulation{
		tuning:    cfg.Tuning,
		immune:    cfg.SatellitesImmune,
		rng:       rand.New(rand.NewSource(seed)),
		collector: NewCollector(cfg.Tuning),
		tally:     tally,
		cues:      cues,
		log:       slog.With("component", "debris"),
	}
}

// Populate adds the fixed initial satellites and debris
func (s *Simulation) Populate() {
	for i := 0; i < s.tuning.InitialSatellites; i++ {
		s.objects = append(s.objects, s.newSatellite())
	}
	for i := 0; i < s.tuning.InitialDebris; i++ {
		s.objects = append(s.objects, s.newDebris())
	}
	s.log.Debug("population seeded", "satellites", s.tuning.InitialSatellites, "debris", s.tuning.InitialDebris)
}

// Spawn appends one debris object unless the population cap is reached
func (s *Simulation) Spawn() bool {
	if s.tuning.MaxObjects > 0 && len(s.objects) >= s.tuning.MaxObjects {
		return false
	}
	o := s.newDebris()
	s.objects = append(s.objects, o)
	s.log.Debug("debris spawned", "id", o.ID, "type", o.DebrisType, "period_frames", math.Round(o.Orbit.PeriodFrames()))
	return true
}

func (s *Simulation) newSatellite() *Object {
	t := s.tuning
	o := &Object{
		ID:     s.allocID(),
		Kind:   KindSatellite,
		Width:  t.SatelliteWidth,
		Height: t.SatelliteHeight,
		Orbit:  s.randomOrbit(t.SatelliteRadius, t.SatelliteSpeed),
	}
	o.Pos = o.Orbit.Position()
	return o
}

func (s *Simulation) newDebris() *Object {
	t := s.tuning
	o := &Object{
		ID:         s.allocID(),
		Kind:       KindDebris,
		DebrisType: DebrisType(vmath.RandPick(s.rng, int(debrisTypeCount))),
		Width:      t.DebrisSize.Rand(s.rng),
		Height:     t.DebrisSize.Rand(s.rng),
		Orbit:      s.randomOrbit(t.DebrisRadius, t.DebrisSpeed),
	}
	o.Pos = o.Orbit.Position()
	return o
}

func (s *Simulation) randomOrbit(radius, speed Range) physics.Orbit {
	return physics.Orbit{
		Center:    vmath.RandPoint(s.rng, s.tuning.Arena()),
		SemiMajor: radius.Rand(s.rng),
		Speed:     speed.Rand(s.rng),
		Angle:     vmath.RandAngle(s.rng),
	}
}

func (s *Simulation) allocID() uint64 {
	s.nextID++
	return s.nextID
}

// MoveCollector applies one movement tick from the held directions
func (s *Simulation) MoveCollector(dx, dy int) {
	s.collector.Move(dx, dy)
}

// Step runs one frame: advance every orbit, then resolve collisions against the collector
// Removals are collected during the pass and applied after it, so no object is skipped or scored twice
func (s *Simulation) Step(now time.Time) StepResult {
	s.frame++
	var res StepResult

	player := s.collector.Bounds()
	var removed map[uint64]struct{}

	for _, o := range s.objects {
		o.Advance()

		if !vmath.Overlaps(player, o.Bounds()) {
			continue
		}

		switch o.Kind {
		case KindDebris:
			if removed == nil {
				removed = make(map[uint64]struct{})
			}
			removed[o.ID] = struct{}{}
			res.Collected++
			if s.tally != nil {
				s.tally.IncrementDebris()
			}
			if s.cues != nil {
				s.cues.PlaySuccess()
			}

		case KindSatellite:
			if s.immune {
				continue
			}
			res.SatelliteHits++
			s.log.Debug("satellite hit", "id", o.ID, "distance", vmath.Distance(player.Center(), o.Pos))
			s.warningUntil = now.Add(s.tuning.WarningDuration)
			if s.tally != nil {
				s.tally.IncrementSatellites()
			}
			if s.cues != nil {
				s.cues.PlayHit()
			}
		}
	}

	if len(removed) > 0 {
		live := s.objects[:0]
		for _, o := range s.objects {
			if _, gone := removed[o.ID]; !gone {
				live = append(live, o)
			}
		}
		for i := len(live); i < len(s.objects); i++ {
			s.objects[i] = nil
		}
		s.objects = live
	}

	if res.Collected > 0 || res.SatelliteHits > 0 {
		s.log.Debug("collisions resolved", "frame", s.frame, "collected", res.Collected, "satellite_hits", res.SatelliteHits)
	}
	return res
}

// WarningActive reports whether the satellite warning banner should be shown at now
func (s *Simulation) WarningActive(now time.Time) bool {
	return now.Before(s.warningUntil)
}

// Snapshot returns a copy of the live objects in population order
func (s *Simulation) Snapshot() []Object {
	out := make([]Object, len(s.objects))
	for i, o := range s.objects {
		out[i] = *o
	}
	return out
}

// Collector returns the collector position
func (s *Simulation) Collector() vmath.Vec2 { return s.collector.Pos }

// CollectorBounds returns the collector collision box
func (s *Simulation) CollectorBounds() vmath.Rect { return s.collector.Bounds() }

func (s *Simulation) Len() int       { return len(s.objects) }
func (s *Simulation) Frame() uint64  { return s.frame }
func (s *Simulation) Tuning() Tuning { return s.tuning }
