package debris

import (
	"testing"
	"time"

	"github.com/lixenwraith/orbit-sweeper/engine"
	"github.com/lixenwraith/orbit-sweeper/physics"
	"github.com/lixenwraith/orbit-sweeper/vmath"
)

type fakeTally struct {
	debris, satellites int
}

func (f *fakeTally) IncrementDebris()     { f.debris++ }
func (f *fakeTally) IncrementSatellites() { f.satellites++ }

type fakeCues struct {
	hits, successes int
}

func (f *fakeCues) PlayHit()     { f.hits++ }
func (f *fakeCues) PlaySuccess() { f.successes++ }

type fakeTimer struct {
	values []int
}

func (f *fakeTimer) SetTimeRemaining(n int) { f.values = append(f.values, n) }

// parkedAt returns an object that stays exactly on p (zero-radius orbit)
func parkedAt(id uint64, kind Kind, p vmath.Vec2, w, h float64) *Object {
	return &Object{
		ID:     id,
		Kind:   kind,
		Pos:    p,
		Width:  w,
		Height: h,
		Orbit:  physics.Orbit{Center: p, SemiMajor: 0, Speed: 0.05},
	}
}

func newTestSim(immune bool) (*Simulation, *fakeTally, *fakeCues) {
	tally := &fakeTally{}
	cues := &fakeCues{}
	sim := NewSimulation(Config{Tuning: DefaultTuning(), Seed: 17, SatellitesImmune: immune}, tally, cues)
	return sim, tally, cues
}

func TestPopulateInitialSet(t *testing.T) {
	sim, _, _ := newTestSim(false)
	sim.Populate()
	tune := sim.Tuning()

	if sim.Len() != tune.InitialSatellites+tune.InitialDebris {
		t.Fatalf("population = %d", sim.Len())
	}

	sats, debris := 0, 0
	arena := tune.Arena()
	for _, o := range sim.Snapshot() {
		if c := o.Orbit.Center; c.X < arena.X || c.X > arena.X+arena.Width || c.Y < arena.Y || c.Y > arena.Y+arena.Height {
			t.Errorf("orbit center outside arena: %+v", o.Orbit.Center)
		}
		switch o.Kind {
		case KindSatellite:
			sats++
			if o.Width != 40 || o.Height != 20 {
				t.Errorf("satellite size %fx%f", o.Width, o.Height)
			}
			if o.Orbit.SemiMajor < 80 || o.Orbit.SemiMajor >= 140 {
				t.Errorf("satellite radius %f", o.Orbit.SemiMajor)
			}
		case KindDebris:
			debris++
			if o.Width < 12 || o.Width >= 20 || o.Height < 12 || o.Height >= 20 {
				t.Errorf("debris size %fx%f", o.Width, o.Height)
			}
			if o.Orbit.Speed < 0.008 || o.Orbit.Speed >= 0.02 {
				t.Errorf("debris speed %f", o.Orbit.Speed)
			}
			if o.DebrisType >= debrisTypeCount {
				t.Errorf("debris type %d", o.DebrisType)
			}
		}
		if p := o.Orbit.Position(); p != o.Pos {
			t.Errorf("initial position %+v not on orbit %+v", o.Pos, p)
		}
	}
	if sats != 3 || debris != 8 {
		t.Errorf("satellites=%d debris=%d", sats, debris)
	}
}

func TestDebrisPickupScoresExactlyOnce(t *testing.T) {
	sim, tally, cues := newTestSim(false)
	sim.objects = []*Object{parkedAt(1, KindDebris, sim.Collector(), 16, 16)}

	now := time.Unix(0, 0)
	for i := 0; i < 120; i++ {
		sim.Step(now.Add(time.Duration(i) * 16 * time.Millisecond))
	}

	if tally.debris != 1 || cues.successes != 1 {
		t.Fatalf("debris=%d successes=%d, want 1 each", tally.debris, cues.successes)
	}
	if sim.Len() != 0 {
		t.Errorf("collected debris still live")
	}
}

func TestAdjacentRemovalsInOneFrame(t *testing.T) {
	sim, tally, _ := newTestSim(false)
	c := sim.Collector()
	far := vmath.Vec2{X: 10, Y: 10}
	sim.objects = []*Object{
		parkedAt(1, KindDebris, c, 14, 14),
		parkedAt(2, KindDebris, c.Add(vmath.Vec2{X: 5}), 14, 14),
		parkedAt(3, KindDebris, far, 14, 14),
		parkedAt(4, KindDebris, c.Add(vmath.Vec2{Y: -5}), 14, 14),
	}

	res := sim.Step(time.Unix(0, 0))
	if res.Collected != 3 || tally.debris != 3 {
		t.Fatalf("collected=%d tally=%d, want 3", res.Collected, tally.debris)
	}
	snap := sim.Snapshot()
	if len(snap) != 1 || snap[0].ID != 3 {
		t.Fatalf("survivors = %+v", snap)
	}
}

func TestSatelliteImmunityWithMagneticCollector(t *testing.T) {
	sim, tally, cues := newTestSim(true)
	sim.objects = []*Object{parkedAt(1, KindSatellite, sim.Collector(), 40, 20)}

	now := time.Unix(0, 0)
	res := sim.Step(now)

	if res.SatelliteHits != 0 || tally.satellites != 0 || tally.debris != 0 {
		t.Fatalf("counters changed: %+v %+v", res, tally)
	}
	if cues.hits != 0 {
		t.Errorf("hit cue played %d times", cues.hits)
	}
	if sim.Len() != 1 {
		t.Errorf("satellite removed")
	}
	if sim.WarningActive(now) {
		t.Errorf("warning shown for immune contact")
	}
}

func TestSatelliteHitPersistsAndWarns(t *testing.T) {
	sim, tally, cues := newTestSim(false)
	sim.objects = []*Object{parkedAt(1, KindSatellite, sim.Collector(), 40, 20)}

	now := time.Unix(100, 0)
	sim.Step(now)
	sim.Step(now.Add(16 * time.Millisecond))

	if tally.satellites != 2 || cues.hits != 2 {
		t.Fatalf("satellites=%d hits=%d, want 2 (repeatable)", tally.satellites, cues.hits)
	}
	if sim.Len() != 1 {
		t.Fatal("satellite must never be removed")
	}
	if !sim.WarningActive(now.Add(500 * time.Millisecond)) {
		t.Error("warning should be active within its duration")
	}
	if sim.WarningActive(now.Add(2 * time.Second)) {
		t.Error("warning should expire")
	}
}

func TestMixedCollisionsToolIndependentForDebris(t *testing.T) {
	for _, immune := range []bool{false, true} {
		sim, tally, _ := newTestSim(immune)
		sim.objects = []*Object{parkedAt(1, KindDebris, sim.Collector(), 12, 12)}
		sim.Step(time.Unix(0, 0))
		if tally.debris != 1 {
			t.Errorf("immune=%v: debris=%d", immune, tally.debris)
		}
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	tune := DefaultTuning()
	tune.MaxObjects = 5
	sim := NewSimulation(Config{Tuning: tune, Seed: 3}, nil, nil)

	for i := 0; i < 10; i++ {
		sim.Spawn()
	}
	if sim.Len() != 5 {
		t.Fatalf("population %d, want cap 5", sim.Len())
	}

	tune.MaxObjects = 0
	unbounded := NewSimulation(Config{Tuning: tune, Seed: 3}, nil, nil)
	for i := 0; i < 100; i++ {
		unbounded.Spawn()
	}
	if unbounded.Len() != 100 {
		t.Fatalf("unbounded population %d", unbounded.Len())
	}
	for _, o := range unbounded.Snapshot() {
		if o.Kind != KindDebris {
			t.Fatal("spawn produced a satellite")
		}
	}
}

func TestCollectorMovementClamped(t *testing.T) {
	c := NewCollector(DefaultTuning())
	if c.Pos != (vmath.Vec2{X: 400, Y: 300}) {
		t.Fatalf("start %+v", c.Pos)
	}

	c.Move(1, -1)
	if c.Pos != (vmath.Vec2{X: 403, Y: 297}) {
		t.Fatalf("after one tick %+v", c.Pos)
	}

	for i := 0; i < 1000; i++ {
		c.Move(-5, 5)
	}
	if c.Pos != (vmath.Vec2{X: 20, Y: 580}) {
		t.Fatalf("clamped position %+v", c.Pos)
	}
	if b := c.Bounds(); b.Width != 30 || b.Height != 30 {
		t.Errorf("collector box %+v", b)
	}
}

func TestCountdownExpiresOnce(t *testing.T) {
	timer := &fakeTimer{}
	expired := 0
	cd := NewCountdown(55, timer, func() { expired++ })

	for i := 0; i < 54; i++ {
		cd.Tick()
	}
	if expired != 0 || cd.Remaining() != 1 {
		t.Fatalf("early expiry: expired=%d remaining=%d", expired, cd.Remaining())
	}
	cd.Tick()
	if expired != 1 || !cd.Expired() {
		t.Fatalf("55th tick: expired=%d", expired)
	}
	for i := 0; i < 10; i++ {
		cd.Tick()
	}
	if expired != 1 {
		t.Fatalf("expired %d times", expired)
	}
	if len(timer.values) != 55 || timer.values[0] != 54 || timer.values[54] != 0 {
		t.Errorf("timer sink values = %v", timer.values)
	}
}

func TestMissionTimerExpiryScenario(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	sched := engine.NewScheduler(clock)

	sim := NewSimulation(Config{Tuning: DefaultTuning(), Seed: 9}, nil, nil)
	expired := 0
	timer := &fakeTimer{}
	cd := NewCountdown(55, timer, func() {
		expired++
		sched.Stop()
	})
	NewMission(sim, cd, nil).Mount(sched)

	for i := 0; i < 60; i++ {
		clock.Advance(time.Second)
		sched.Advance()
	}

	if expired != 1 {
		t.Fatalf("phase transitions = %d, want 1", expired)
	}
	if got := timer.values[len(timer.values)-1]; got != 0 {
		t.Errorf("final time remaining %d", got)
	}
	if !sched.Stopped() || sched.Len() != 0 {
		t.Error("drivers should be released on expiry")
	}
}

func TestMissionCountdownTrailsAfterStall(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	sched := engine.NewScheduler(clock)

	sim := NewSimulation(Config{Tuning: DefaultTuning(), Seed: 3}, nil, nil)
	cd := NewCountdown(55, nil, nil)
	NewMission(sim, cd, nil).Mount(sched)

	// One 20s stall replays a bounded number of ticks and then resyncs
	clock.Advance(20 * time.Second)
	sched.Advance()
	stalled := cd.Remaining()
	if stalled <= 35 || stalled >= 55 {
		t.Fatalf("remaining after stall = %d, want between 35 and 55 exclusive", stalled)
	}

	clock.Advance(time.Second)
	sched.Advance()
	if got := cd.Remaining(); got != stalled-1 {
		t.Errorf("remaining one second after resync = %d, want %d", got, stalled-1)
	}
}

type heldRight struct{}

func (heldRight) Axis(time.Time) (int, int) { return 1, 0 }

func TestMissionDriversMoveAndSpawn(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	sched := engine.NewScheduler(clock)

	tune := DefaultTuning()
	tune.InitialSatellites = 0
	tune.InitialDebris = 0
	sim := NewSimulation(Config{Tuning: tune, Seed: 1}, nil, nil)
	NewMission(sim, NewCountdown(55, nil, nil), heldRight{}).Mount(sched)

	for i := 0; i < 10; i++ {
		clock.Advance(16 * time.Millisecond)
		sched.Advance()
	}
	if got := sim.Collector().X; got != 430 {
		t.Fatalf("collector x = %f, want 430", got)
	}

	clock.Advance(3 * time.Second)
	sched.Advance()
	if sim.Len() < 1 {
		t.Fatal("spawn driver did not add debris")
	}
}
