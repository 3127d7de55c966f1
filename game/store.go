package game

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

const (
	DebrisPoints      = 10
	SatellitePenalty  = 20
	DefaultTimeBudget = 55
)

// PhaseListener is called after every accepted phase change, outside the store lock
type PhaseListener func(from, to Phase)

// Store is the injected game-state object shared by every phase
// Counters are atomics; selection and phase are mutex protected
type Store struct {
	// ===== COUNTERS (lock-free atomics) =====

	score         atomic.Int64
	debris        atomic.Int64
	satellites    atomic.Int64
	timeRemaining atomic.Int64
	toolRetrieved atomic.Bool

	// ===== SELECTION AND PHASE (mutex protected) =====

	mu                sync.RWMutex
	phase             Phase
	tool              Tool
	planet            Planet
	difficulty        Difficulty
	defaultDifficulty Difficulty
	listeners         []PhaseListener

	log *slog.Logger
}

// NewStore creates a store at the start phase; Reset restores defaultDifficulty
func NewStore(defaultDifficulty Difficulty) *Store {
	s := &Store{
		defaultDifficulty: defaultDifficulty,
		log:               slog.With("component", "store"),
	}
	s.resetLocked()
	return s
}

// Snapshot provides a consistent view for renderers
type Snapshot struct {
	Phase         Phase
	Tool          Tool
	Planet        Planet
	Difficulty    Difficulty
	Score         int
	Debris        int
	Satellites    int
	TimeRemaining int
	ToolRetrieved bool
}

// ReadSnapshot returns the current state
func (s *Store) ReadSnapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Phase:         s.phase,
		Tool:          s.tool,
		Planet:        s.planet,
		Difficulty:    s.difficulty,
		Score:         int(s.score.Load()),
		Debris:        int(s.debris.Load()),
		Satellites:    int(s.satellites.Load()),
		TimeRemaining: int(s.timeRemaining.Load()),
		ToolRetrieved: s.toolRetrieved.Load(),
	}
}

// ===== PHASE =====

// OnPhase registers a listener for phase changes
func (s *Store) OnPhase(fn PhaseListener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// SetPhase attempts a transition; returns false if it is not valid from the current phase
func (s *Store) SetPhase(to Phase) bool {
	s.mu.Lock()
	from := s.phase
	if !CanTransition(from, to) {
		s.mu.Unlock()
		s.log.Debug("phase transition rejected", "from", from, "to", to)
		return false
	}
	s.phase = to
	listeners := append([]PhaseListener(nil), s.listeners...)
	s.mu.Unlock()

	s.log.Debug("phase changed", "from", from, "to", to)
	for _, fn := range listeners {
		fn(from, to)
	}
	return true
}

// ===== SELECTION =====

func (s *Store) Tool() Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tool
}

func (s *Store) SetTool(t Tool) {
	s.mu.Lock()
	s.tool = t
	s.mu.Unlock()
}

func (s *Store) Planet() Planet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.planet
}

// SetPlanet records the destination if it accepts the selected tool
func (s *Store) SetPlanet(p Planet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !p.Accepts(s.tool) {
		return false
	}
	s.planet = p
	return true
}

func (s *Store) Difficulty() Difficulty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.difficulty
}

func (s *Store) SetDifficulty(d Difficulty) {
	s.mu.Lock()
	s.difficulty = d
	s.mu.Unlock()
}

// ===== COUNTERS =====

func (s *Store) Score() int         { return int(s.score.Load()) }
func (s *Store) Debris() int        { return int(s.debris.Load()) }
func (s *Store) Satellites() int    { return int(s.satellites.Load()) }
func (s *Store) TimeRemaining() int { return int(s.timeRemaining.Load()) }
func (s *Store) ToolRetrieved() bool {
	return s.toolRetrieved.Load()
}

// AddScore adds a delta to the score
func (s *Store) AddScore(points int) {
	s.score.Add(int64(points))
}

// IncrementDebris records one collected debris object
func (s *Store) IncrementDebris() {
	s.debris.Add(1)
	s.score.Add(DebrisPoints)
}

// IncrementSatellites records one satellite hit
func (s *Store) IncrementSatellites() {
	s.satellites.Add(1)
	s.score.Add(-SatellitePenalty)
}

func (s *Store) SetTimeRemaining(n int) {
	s.timeRemaining.Store(int64(n))
}

func (s *Store) SetToolRetrieved(retrieved bool) {
	s.toolRetrieved.Store(retrieved)
}

// ===== LIFECYCLE =====

// Reset returns to the start phase with cleared counters and selection
// Listeners are notified when the phase actually changes
func (s *Store) Reset() {
	s.mu.Lock()
	from := s.phase
	s.resetLocked()
	listeners := append([]PhaseListener(nil), s.listeners...)
	s.mu.Unlock()

	s.log.Debug("game reset", "from", from)
	if from != PhaseStart {
		for _, fn := range listeners {
			fn(from, PhaseStart)
		}
	}
}

func (s *Store) resetLocked() {
	s.phase = PhaseStart
	s.tool = ToolNone
	s.planet = PlanetNone
	s.difficulty = s.defaultDifficulty
	s.score.Store(0)
	s.debris.Store(0)
	s.satellites.Store(0)
	s.timeRemaining.Store(DefaultTimeBudget)
	s.toolRetrieved.Store(false)
}
