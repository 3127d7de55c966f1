package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-sweeper/debris"
	"github.com/lixenwraith/orbit-sweeper/game"
	"github.com/lixenwraith/orbit-sweeper/maze"
	"github.com/lixenwraith/orbit-sweeper/physics"
	"github.com/lixenwraith/orbit-sweeper/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func screenContains(s tcell.Screen, text string) bool {
	_, h := s.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(s, y), text) {
			return true
		}
	}
	return false
}

func TestNilScreenIsNoOp(t *testing.T) {
	r := New(nil)
	if r.Ready() {
		t.Fatal("renderer without screen reports ready")
	}
	if w, h := r.Size(); w != 0 || h != 0 {
		t.Errorf("size = %dx%d, want 0x0", w, h)
	}

	// None of these may panic
	r.DrawStart(true)
	r.DrawToolSelection()
	r.DrawPlanetSelection(game.ToolNet, game.PlanetNone, false)
	r.DrawSpaceTravel(50, game.PlanetMars, game.ToolNet)
	r.DrawMaze(MazeView{})
	r.DrawArena(ArenaView{Arena: debris.DefaultTuning().Arena()})
	r.DrawEndGame(game.Snapshot{})
	r.DrawGraveyard(game.NewGraveyard(1), 0)
	r.DrawRecycling(game.NewRecycler(1))
}

func TestDrawMazeShowsWallsPlayerAndGoal(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	r := New(screen)

	grid, err := maze.Generate(maze.Config{Size: 8, Seed: 7})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	r.DrawMaze(MazeView{
		Grid:   grid,
		Goal:   maze.Point{X: 7, Y: 7},
		Tool:   game.ToolNet,
		Planet: game.PlanetMars,
	})

	n := len(grid.Raster())
	ox := (80 - n*cellCols) / 2
	oy := (30 - n) / 2

	// Raster corner is always wall
	if got := runeAt(screen, ox, oy); got != '█' {
		t.Errorf("corner = %q, want wall", got)
	}

	p := maze.RasterPoint(maze.Point{})
	if got := runeAt(screen, ox+p.X*cellCols, oy+p.Y); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}

	g := maze.RasterPoint(maze.Point{X: 7, Y: 7})
	if got := runeAt(screen, ox+g.X*cellCols, oy+g.Y); got != game.ToolNet.Glyph() {
		t.Errorf("goal cell = %q, want %q", got, game.ToolNet.Glyph())
	}

	if !screenContains(screen, "Retrieve the Space Net on Mars") {
		t.Error("missing maze title")
	}
}

// findRune returns the first screen cell holding ch
func findRune(s tcell.Screen, ch rune) (x, y int, ok bool) {
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if runeAt(s, x, y) == ch {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestDrawMazeFitsStandardTerminal(t *testing.T) {
	const w, h = 80, 24
	for _, d := range game.Difficulties {
		t.Run(d.String(), func(t *testing.T) {
			screen := newTestScreen(t, w, h)
			r := New(screen)

			size := d.Preset().Size
			grid, err := maze.Generate(maze.Config{Size: size, Seed: 1})
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			goal := maze.Point{X: size - 1, Y: size - 1}
			r.DrawMaze(MazeView{Grid: grid, Goal: goal, Tool: game.ToolNet, Planet: game.PlanetMars})

			px, py, ok := findRune(screen, '@')
			if !ok {
				t.Fatal("player glyph not on screen")
			}
			gx, gy, ok := findRune(screen, game.ToolNet.Glyph())
			if !ok {
				t.Fatal("goal glyph not on screen")
			}
			if py < 1 || gy >= h-1 {
				t.Errorf("maze overlaps title or status: player row %d, goal row %d", py, gy)
			}
			if gx <= px || gy <= py {
				t.Errorf("goal (%d,%d) should be below and right of player (%d,%d)", gx, gy, px, py)
			}
			if !screenContains(screen, "WASD/arrows move") {
				t.Error("status line clipped")
			}
		})
	}
}

func TestDrawMazeHalfBlockRows(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := New(screen)

	grid, _ := maze.Generate(maze.Config{Size: 12, Seed: 5})
	r.DrawMaze(MazeView{Grid: grid, Goal: maze.Point{X: 11, Y: 11}, Tool: game.ToolNet})

	// Raster rows 0 and 1 share the first maze row: outer wall on top, open cell below
	vp := fitMaze(len(grid.Raster()), 80, 24, maze.RasterPoint(maze.Point{}))
	if !vp.half {
		t.Fatal("25-row raster should use half-block rows on a 24-row screen")
	}
	x, y := vp.cell(maze.Point{X: 3, Y: 0})
	if got := runeAt(screen, x, y); got != '▀' {
		t.Errorf("top edge over open cell = %q, want '▀'", got)
	}
}

func TestDrawMazeScrollsWithPlayer(t *testing.T) {
	const w, h = 60, 12
	screen := newTestScreen(t, w, h)
	r := New(screen)

	grid, _ := maze.Generate(maze.Config{Size: 16, Seed: 2})
	r.DrawMaze(MazeView{
		Grid:   grid,
		Player: maze.Point{X: 0, Y: 15},
		Goal:   maze.Point{X: 15, Y: 15},
		Tool:   game.ToolNet,
	})

	if _, py, ok := findRune(screen, '@'); !ok || py < 1 || py >= h-1 {
		t.Fatalf("player not visible inside the maze area: row %d ok=%v", py, ok)
	}
	if _, _, ok := findRune(screen, game.ToolNet.Glyph()); !ok {
		t.Error("goal on the player's row not visible")
	}
	for _, y := range []int{0, h - 1} {
		if strings.ContainsAny(rowText(screen, y), "█▀▄") {
			t.Errorf("row %d overdrawn by maze: %q", y, rowText(screen, y))
		}
	}
}

func TestDrawMazeSolvedHidesGoal(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	r := New(screen)

	grid, _ := maze.Generate(maze.Config{Size: 4, Seed: 3})
	goal := maze.Point{X: 3, Y: 3}
	r.DrawMaze(MazeView{Grid: grid, Player: goal, Goal: goal, Solved: true, Tool: game.ToolLaser})

	if !screenContains(screen, "TOOL RETRIEVED!") {
		t.Error("missing solved banner")
	}
}

func TestDrawArenaScalesObjectsAndHUD(t *testing.T) {
	screen := newTestScreen(t, 80, 31)
	r := New(screen)

	tuning := debris.DefaultTuning()
	obj := debris.Object{
		ID:         1,
		Kind:       debris.KindDebris,
		DebrisType: debris.DebrisScrew,
		Pos:        vmath.Vec2{X: 100, Y: 100},
		Width:      12,
		Height:     12,
		Orbit:      physics.Orbit{Center: vmath.Vec2{X: 100, Y: 100}},
	}

	r.DrawArena(ArenaView{
		Arena:         tuning.Arena(),
		Objects:       []debris.Object{obj},
		Collector:     vmath.RectAround(vmath.Vec2{X: 400, Y: 300}, 30, 30),
		Tool:          game.ToolLaser,
		TimeRemaining: 42,
		Score:         30,
		Debris:        3,
	})

	// 800x600 onto 80x30: 10 px per column, 20 px per row, arena starts at row 1
	if got := runeAt(screen, 9, 1+4); got != DebrisGlyph(debris.DebrisScrew) {
		t.Errorf("debris cell = %q, want %q", got, DebrisGlyph(debris.DebrisScrew))
	}
	if got := runeAt(screen, 40, 1+15); got != game.ToolLaser.Glyph() {
		t.Errorf("collector cell = %q, want %q", got, game.ToolLaser.Glyph())
	}

	hud := rowText(screen, 0)
	for _, want := range []string{"Time: 42s", "Tool: Laser Collector", "Score: 30", "Debris: 3"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if screenContains(screen, "Oops") {
		t.Error("warning banner drawn without a satellite hit")
	}
}

func TestDrawArenaWarningBanner(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	r := New(screen)

	r.DrawArena(ArenaView{Arena: debris.DefaultTuning().Arena(), Warning: true, Tool: game.ToolNet})
	if !screenContains(screen, "Oops I'm a satellite") {
		t.Error("missing satellite warning")
	}
}

func TestPlanetSelectionMarksLockedPlanets(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	r := New(screen)

	r.DrawPlanetSelection(game.ToolNet, game.PlanetNone, false)
	if !screenContains(screen, "Jupiter  holds Magnetic Collector (locked)") {
		t.Error("non-matching planet not marked locked")
	}
	if screenContains(screen, "Mars     holds Space Net (locked)") {
		t.Error("matching planet marked locked")
	}
}

func TestScoreScreens(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	r := New(screen)

	r.DrawEndGame(game.Snapshot{Score: 800, Debris: 80})
	if !screenContains(screen, "Final score: 800") {
		t.Error("end game missing score")
	}
	if !screenContains(screen, game.PerformanceMessage(2.5)) {
		t.Error("end game missing performance message")
	}

	g := game.NewGraveyard(2)
	g.Dispose(0)
	r.DrawGraveyard(g, 160)
	if !screenContains(screen, "Debris remaining: 1") {
		t.Error("graveyard missing remaining count")
	}

	rc := game.NewRecycler(3)
	rc.Recycle(0)
	r.DrawRecycling(rc)
	if !screenContains(screen, game.Products[0].Name+" Created!") {
		t.Error("recycling missing product result")
	}
}

func TestTravelMessage(t *testing.T) {
	tests := []struct {
		progress int
		want     string
	}{
		{0, "Accelerating through space..."},
		{49, "Accelerating through space..."},
		{50, "Approaching target planet..."},
		{90, "Preparing for landing..."},
		{100, "Preparing for landing..."},
	}
	for _, tt := range tests {
		if got := travelMessage(tt.progress); got != tt.want {
			t.Errorf("travelMessage(%d) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}
