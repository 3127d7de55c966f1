package phase

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/orbit-sweeper/debris"
	"github.com/lixenwraith/orbit-sweeper/engine"
	"github.com/lixenwraith/orbit-sweeper/game"
	"github.com/lixenwraith/orbit-sweeper/input"
	"github.com/lixenwraith/orbit-sweeper/maze"
	"github.com/lixenwraith/orbit-sweeper/render"
)

// Controller mounts exactly one phase at a time
// Each mount gets a fresh scheduler; unmount stops it, releasing every task the phase registered
// Not safe for concurrent use: Handle, Update and Draw run on the game loop goroutine
type Controller struct {
	store *game.Store
	sound Sound
	view  *render.Renderer
	clock engine.TimeProvider
	held  *input.Held
	opts  Options
	log   *slog.Logger

	sched   *engine.Scheduler
	mounted game.Phase
	quit    bool

	// Per-phase state, valid while its phase is mounted
	travel         int
	pickDifficulty bool
	maze           *maze.Engine
	hint           bool
	mission        *debris.Mission
	graveyard      *game.Graveyard
	recycler       *game.Recycler
}

// New creates a controller and mounts the store's current phase
// sound and view may be nil
func New(store *game.Store, sound Sound, view *render.Renderer, clock engine.TimeProvider, opts Options) *Controller {
	if sound == nil {
		sound = nopSound{}
	}
	if view == nil {
		view = render.New(nil)
	}
	c := &Controller{
		store: store,
		sound: sound,
		view:  view,
		clock: clock,
		held:  input.NewHeld(0, 0),
		opts:  opts,
		log:   slog.With("component", "phase"),
	}
	store.OnPhase(c.onPhase)
	c.mount(store.Phase())
	return c
}

// Phase returns the mounted phase
func (c *Controller) Phase() game.Phase { return c.mounted }

// Quit reports whether the player asked to leave
func (c *Controller) Quit() bool { return c.quit }

// Close unmounts the current phase
func (c *Controller) Close() { c.unmount() }

func (c *Controller) onPhase(from, to game.Phase) {
	c.log.Debug("phase change", "from", from, "to", to)
	c.unmount()
	c.mount(to)
}

func (c *Controller) unmount() {
	if c.sched != nil {
		c.sched.Stop()
		c.sched = nil
	}
	c.held.Release()
	c.travel = 0
	c.pickDifficulty = false
	c.maze = nil
	c.hint = false
	c.mission = nil
	c.graveyard = nil
	c.recycler = nil
}

func (c *Controller) mount(p game.Phase) {
	c.sched = engine.NewScheduler(c.clock)
	c.mounted = p
	c.log.Info("phase mounted", "phase", p)

	switch p {
	case game.PhaseSpaceTravel:
		c.mountSpaceTravel()
	case game.PhaseMazeGame:
		c.mountMaze()
	case game.PhaseDebrisCollection:
		c.mountMission()
	case game.PhaseGraveyard:
		c.graveyard = game.NewGraveyard(c.store.Debris())
		if c.graveyard.Done() {
			c.scheduleReturn()
		}
	case game.PhaseRecycling:
		c.recycler = game.NewRecycler(c.store.Debris())
	}
}

func (c *Controller) mountSpaceTravel() {
	c.sound.PlayLaunch()
	s := c.sched
	s.Every("travel", c.opts.TravelStep, func(time.Time) {
		c.travel = min(c.travel+c.opts.TravelIncrement, 100)
		if c.travel < 100 {
			return
		}
		s.Cancel("travel")
		s.After("landing", c.opts.LandingDelay, func(time.Time) {
			c.store.SetPhase(game.PhaseMazeGame)
		})
	})
}

func (c *Controller) mountMaze() {
	cfg := maze.Config{
		Size: c.store.Difficulty().Preset().Size,
		Seed: c.opts.Seed,
	}
	m, err := maze.NewEngine(cfg, c.store, c.sound)
	if err != nil {
		c.log.Error("maze generation failed", "size", cfg.Size, "error", err)
		c.store.Reset()
		return
	}
	c.maze = m
	c.hint = c.opts.Hint
	if m.Solved() {
		c.scheduleLaunch()
	}
}

func (c *Controller) mountMission() {
	t := c.opts.Tuning
	c.store.SetTimeRemaining(t.CountdownStart)

	sim := debris.NewSimulation(debris.Config{
		Tuning:           t,
		Seed:             c.opts.Seed,
		SatellitesImmune: c.store.Tool().SatellitesImmune(),
	}, c.store, c.sound)

	sink := countdownSink{store: c.store, sound: c.sound, warnAt: c.opts.WarningAt}
	countdown := debris.NewCountdown(t.CountdownStart, sink, func() {
		c.log.Info("mission over", "score", c.store.Score(), "debris", c.store.Debris())
		c.store.SetPhase(game.PhaseEndGame)
	})

	c.mission = debris.NewMission(sim, countdown, c.held)
	c.mission.Mount(c.sched)
}

func (c *Controller) scheduleLaunch() {
	c.sched.After("launch", c.opts.LaunchDelay, func(time.Time) {
		c.store.SetPhase(game.PhaseDebrisCollection)
	})
}

func (c *Controller) scheduleReturn() {
	c.sched.After("return", c.opts.ReturnDelay, func(time.Time) {
		c.store.Reset()
	})
}

// Update runs the mounted phase's due tasks
func (c *Controller) Update() {
	if c.sched != nil {
		c.sched.Advance()
	}
}

// Handle applies one intent; nil is ignored
func (c *Controller) Handle(in *input.Intent) {
	if in == nil {
		return
	}

	switch in.Type {
	case input.IntentQuit:
		c.quit = true
		return
	case input.IntentToggleMute:
		c.sound.ToggleMute()
		return
	case input.IntentResize:
		return
	}

	switch c.mounted {
	case game.PhaseStart:
		c.handleStart(in)
	case game.PhaseToolSelection:
		c.handleToolSelection(in)
	case game.PhasePlanetSelection:
		c.handlePlanetSelection(in)
	case game.PhaseMazeGame:
		c.handleMaze(in)
	case game.PhaseDebrisCollection:
		if in.Type == input.IntentMove {
			c.held.Press(in.Direction, c.clock.Now())
		}
	case game.PhaseEndGame:
		c.handleEndGame(in)
	case game.PhaseGraveyard:
		c.handleGraveyard(in)
	case game.PhaseRecycling:
		c.handleRecycling(in)
	}
}

func (c *Controller) handleStart(in *input.Intent) {
	switch in.Type {
	case input.IntentConfirm:
		c.store.SetPhase(game.PhaseToolSelection)
		if c.opts.Tool != game.ToolNone {
			c.store.SetTool(c.opts.Tool)
			c.store.SetPhase(game.PhasePlanetSelection)
		}
	case input.IntentBack:
		c.quit = true
	}
}

func (c *Controller) handleToolSelection(in *input.Intent) {
	switch in.Type {
	case input.IntentSelect:
		if in.Index < 0 || in.Index >= len(game.Tools) {
			return
		}
		c.store.SetTool(game.Tools[in.Index])
		c.store.SetPhase(game.PhasePlanetSelection)
	case input.IntentBack:
		c.store.SetPhase(game.PhaseStart)
	}
}

func (c *Controller) handlePlanetSelection(in *input.Intent) {
	if c.pickDifficulty {
		switch in.Type {
		case input.IntentSelect:
			if in.Index < 0 || in.Index >= len(game.Difficulties) {
				return
			}
			c.store.SetDifficulty(game.Difficulties[in.Index])
			c.store.SetPhase(game.PhaseSpaceTravel)
		case input.IntentConfirm:
			c.store.SetPhase(game.PhaseSpaceTravel)
		case input.IntentBack:
			c.pickDifficulty = false
		}
		return
	}

	switch in.Type {
	case input.IntentSelect:
		if in.Index < 0 || in.Index >= len(game.Planets) {
			return
		}
		if !c.store.SetPlanet(game.Planets[in.Index]) {
			c.sound.PlayHit()
			return
		}
		c.pickDifficulty = true
	case input.IntentBack:
		c.store.SetPhase(game.PhaseToolSelection)
	}
}

func (c *Controller) handleMaze(in *input.Intent) {
	if c.maze == nil {
		return
	}
	switch in.Type {
	case input.IntentMove:
		if c.maze.Move(in.Direction) == maze.MoveSolved {
			c.scheduleLaunch()
		}
	case input.IntentHint:
		c.hint = !c.hint
	}
}

func (c *Controller) handleEndGame(in *input.Intent) {
	switch in.Type {
	case input.IntentSelect:
		switch in.Index {
		case 0:
			c.store.SetPhase(game.PhaseGraveyard)
		case 1:
			c.store.SetPhase(game.PhaseRecycling)
		}
	case input.IntentConfirm:
		c.store.Reset()
	}
}

func (c *Controller) handleGraveyard(in *input.Intent) {
	g := c.graveyard
	switch in.Type {
	case input.IntentSelect:
		if g.Done() || in.Index < 0 || in.Index >= game.GraveCount {
			return
		}
		if pts := g.Dispose(in.Index); pts > 0 {
			c.store.AddScore(pts)
			c.sound.PlaySuccess()
		}
		if g.Done() {
			c.scheduleReturn()
		}
	case input.IntentConfirm:
		if g.Done() {
			c.store.Reset()
		}
	}
}

func (c *Controller) handleRecycling(in *input.Intent) {
	r := c.recycler
	if r.Product() != nil {
		if in.Type == input.IntentConfirm {
			c.store.Reset()
		}
		return
	}

	switch in.Type {
	case input.IntentSelect:
		pts := r.Recycle(in.Index)
		if r.Product() == nil {
			return
		}
		c.store.AddScore(pts)
		c.sound.PlayRecycle()
		c.log.Info("debris recycled", "product", r.Product().ID, "points", pts)
	case input.IntentBack:
		c.store.SetPhase(game.PhaseEndGame)
	}
}

// Draw renders the mounted phase
func (c *Controller) Draw() {
	s := c.store.ReadSnapshot()

	switch c.mounted {
	case game.PhaseStart:
		c.view.DrawStart(c.sound.Muted())
	case game.PhaseToolSelection:
		c.view.DrawToolSelection()
	case game.PhasePlanetSelection:
		c.view.DrawPlanetSelection(s.Tool, s.Planet, c.pickDifficulty)
	case game.PhaseSpaceTravel:
		c.view.DrawSpaceTravel(c.travel, s.Planet, s.Tool)
	case game.PhaseMazeGame:
		if c.maze == nil {
			return
		}
		v := render.MazeView{
			Grid:   c.maze.Grid(),
			Player: c.maze.Player(),
			Goal:   c.maze.Goal(),
			Solved: c.maze.Solved(),
			Tool:   s.Tool,
			Planet: s.Planet,
		}
		if c.hint && !v.Solved {
			v.Hint = v.Grid.SolutionPath(v.Player, v.Goal)
		}
		c.view.DrawMaze(v)
	case game.PhaseDebrisCollection:
		if c.mission == nil {
			return
		}
		sim := c.mission.Sim
		c.view.DrawArena(render.ArenaView{
			Arena:         sim.Tuning().Arena(),
			Objects:       sim.Snapshot(),
			Collector:     sim.CollectorBounds(),
			Tool:          s.Tool,
			TimeRemaining: s.TimeRemaining,
			Score:         s.Score,
			Debris:        s.Debris,
			Satellites:    s.Satellites,
			Warning:       sim.WarningActive(c.clock.Now()),
			Muted:         c.sound.Muted(),
		})
	case game.PhaseEndGame:
		c.view.DrawEndGame(s)
	case game.PhaseGraveyard:
		c.view.DrawGraveyard(c.graveyard, s.Score)
	case game.PhaseRecycling:
		c.view.DrawRecycling(c.recycler)
	}
}
