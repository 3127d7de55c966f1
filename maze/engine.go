package maze

import "log/slog"

// State of a maze session
type State int

const (
	StateGenerating State = iota
	StateReady
	StateSolved
)

func (s State) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StateReady:
		return "ready"
	case StateSolved:
		return "solved"
	}
	return "unknown"
}

// MoveResult reports the outcome of a single move request
type MoveResult int

const (
	MoveAccepted MoveResult = iota
	MoveBlocked
	MoveSolved  // Accepted and reached the goal
	MoveIgnored // Session already solved
)

// Store receives the tool-retrieved signal on solve
type Store interface {
	SetToolRetrieved(bool)
}

// Cues is the audio collaborator; calls are fire-and-forget
type Cues interface {
	PlayHit()
	PlaySuccess()
}

// Engine owns one generated maze and the player walking it
// Not safe for concurrent use; the owning phase drives it from a single goroutine
type Engine struct {
	grid   *Grid
	player Point
	goal   Point
	state  State

	store Store
	cues  Cues
	log   *slog.Logger
}

// NewEngine generates the maze synchronously and returns a ready session
// store and cues may be nil
func NewEngine(cfg Config, store Store, cues Cues) (*Engine, error) {
	e := &Engine{
		state: StateGenerating,
		store: store,
		cues:  cues,
		log:   slog.With("component", "maze"),
	}

	grid, err := Generate(cfg)
	if err != nil {
		return nil, err
	}

	e.grid = grid
	e.goal = Point{cfg.Size - 1, cfg.Size - 1}
	e.state = StateReady
	e.log.Debug("maze generated", "size", cfg.Size, "passages", grid.PassageCount())

	// 1x1 maze: origin is the goal
	if e.player == e.goal {
		e.solve()
	}
	return e, nil
}

func (e *Engine) Grid() *Grid    { return e.grid }
func (e *Engine) Player() Point  { return e.player }
func (e *Engine) Goal() Point    { return e.goal }
func (e *Engine) State() State   { return e.state }
func (e *Engine) Solved() bool   { return e.state == StateSolved }
func (e *Engine) CanMove() bool  { return e.state == StateReady }
func (e *Engine) Remaining() int { return len(e.grid.SolutionPath(e.player, e.goal)) - 1 }

// Move attempts a single-cell step in direction d
// Legal iff the current cell has no wall on that side; illegal moves change nothing and emit the blocked cue
func (e *Engine) Move(d Direction) MoveResult {
	if !e.CanMove() {
		return MoveIgnored
	}

	if e.grid.Cell(e.player).Walls.Has(d) {
		e.blocked(d)
		return MoveBlocked
	}

	next := Point{e.player.X + d.Delta().X, e.player.Y + d.Delta().Y}
	if !e.grid.InBounds(next) {
		e.blocked(d)
		return MoveBlocked
	}

	e.player = next
	if e.player == e.goal {
		e.solve()
		return MoveSolved
	}
	return MoveAccepted
}

func (e *Engine) blocked(d Direction) {
	e.log.Debug("move blocked", "x", e.player.X, "y", e.player.Y, "dir", d)
	if e.cues != nil {
		e.cues.PlayHit()
	}
}

// solve is the only transition into StateSolved, so the signal fires once
func (e *Engine) solve() {
	e.state = StateSolved
	e.log.Info("tool retrieved", "goal_x", e.goal.X, "goal_y", e.goal.Y)
	if e.cues != nil {
		e.cues.PlaySuccess()
	}
	if e.store != nil {
		e.store.SetToolRetrieved(true)
	}
}
