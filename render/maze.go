package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-sweeper/game"
	"github.com/lixenwraith/orbit-sweeper/maze"
	"github.com/lixenwraith/orbit-sweeper/vmath"
)

// cellCols is the terminal columns per raster position, keeping cells roughly square
const cellCols = 2

// MazeView is the per-frame input for DrawMaze
type MazeView struct {
	Grid   *maze.Grid
	Player maze.Point
	Goal   maze.Point
	Solved bool
	Hint   []maze.Point // Cell path, drawn when non-empty
	Tool   game.Tool
	Planet game.Planet
}

// mazeViewport maps raster positions to terminal cells
// In half mode each terminal row carries raster rows 2t and 2t+1 as half blocks
type mazeViewport struct {
	ox, oy int
	cols   int
	half   bool
}

func (vp mazeViewport) cell(p maze.Point) (int, int) {
	y := p.Y
	if vp.half {
		y /= 2
	}
	return vp.ox + p.X*vp.cols, vp.oy + y
}

func (vp mazeViewport) rows(n int) int {
	if vp.half {
		return (n + 1) / 2
	}
	return n
}

// fitMaze lays out an n×n raster between the title row and the status row
// Shrinks to one column per cell when too wide and to half-block rows when too tall
// A maze still taller than the screen scrolls with the player
func fitMaze(n, w, h int, player maze.Point) mazeViewport {
	vp := mazeViewport{cols: cellCols}
	if n*cellCols > w {
		vp.cols = 1
	}
	avail := max(h-2, 1)
	if n > avail {
		vp.half = true
	}
	rows := vp.rows(n)

	vp.ox = max((w-n*vp.cols)/2, 0)
	if rows <= avail {
		vp.oy = vmath.ClampInt((h-rows)/2, 1, h-1-rows)
		return vp
	}

	_, py := vp.cell(player)
	vp.oy = 1 - vmath.ClampInt(py-avail/2, 0, rows-avail)
	return vp
}

// DrawMaze paints the maze, the player, the tool at the goal and the optional hint path
func (r *Renderer) DrawMaze(v MazeView) {
	if v.Grid == nil || !r.begin() {
		return
	}
	defer r.end()

	w, h := r.screen.Size()
	raster := v.Grid.Raster()
	n := len(raster)
	vp := fitMaze(n, w, h, maze.RasterPoint(v.Player))

	title := fmt.Sprintf("Retrieve the %s on %s", v.Tool.Name(), v.Planet.Name())
	r.centered(0, title, r.bg().Foreground(RgbTitle).Bold(true))

	// Title and status rows stay clear when the maze scrolls
	put := func(p maze.Point, ch rune, style tcell.Style) {
		x, y := vp.cell(p)
		if y >= 1 && y < h-1 {
			r.fill(x, y, vp.cols, 1, ch, style)
		}
	}
	solid := func(x, y int) bool { return y < n && raster[y][x] }

	wall := r.bg().Foreground(RgbWall)
	for y := 0; y < n; y++ {
		if vp.half && y%2 == 1 {
			continue
		}
		for x := 0; x < n; x++ {
			top := solid(x, y)
			if !vp.half {
				if top {
					put(maze.Point{X: x, Y: y}, '█', wall)
				}
				continue
			}
			switch bottom := solid(x, y+1); {
			case top && bottom:
				put(maze.Point{X: x, Y: y}, '█', wall)
			case top:
				put(maze.Point{X: x, Y: y}, '▀', wall)
			case bottom:
				put(maze.Point{X: x, Y: y}, '▄', wall)
			}
		}
	}

	if len(v.Hint) > 0 {
		hint := r.bg().Foreground(RgbHint)
		for _, p := range maze.RasterPath(v.Hint) {
			// A half-block cell shared with a wall keeps the wall
			if vp.half && solid(p.X, p.Y^1) {
				continue
			}
			put(p, '·', hint)
		}
	}

	if !v.Solved {
		goal := maze.RasterPoint(v.Goal)
		x, y := vp.cell(goal)
		if y >= 1 && y < h-1 {
			r.text(x, y, string(v.Tool.Glyph()), r.bg().Foreground(RgbGoal).Bold(true))
		}
	}

	px, py := vp.cell(maze.RasterPoint(v.Player))
	r.text(px, py, "@", r.bg().Foreground(RgbPlayer).Bold(true))

	status := "WASD/arrows move | H hint | M sound | Q quit"
	style := r.bg().Foreground(RgbTextDim)
	if v.Solved {
		status = "TOOL RETRIEVED! Launching debris mission..."
		style = r.bg().Foreground(RgbGoal).Bold(true)
	}
	r.centered(min(vp.oy+vp.rows(n)+1, h-1), status, style)
}

// DrawSpaceTravel paints the travel progress bar toward planet
func (r *Renderer) DrawSpaceTravel(progress int, planet game.Planet, tool game.Tool) {
	if !r.begin() {
		return
	}
	defer r.end()

	w, h := r.screen.Size()
	r.starField(0, 0, w, h)

	mid := h / 2
	r.centered(mid-4, "Traveling to "+planet.Name(), r.bg().Foreground(planetColor(planet)).Bold(true))
	r.centered(mid-3, "Carrying: "+tool.Name(), r.bg().Foreground(RgbTextDim))

	barW := min(50, w-4)
	if barW > 0 {
		x := (w - barW) / 2
		filled := barW * min(max(progress, 0), 100) / 100
		r.fill(x, mid, barW, 1, '░', r.bg().Foreground(RgbProgressBg))
		r.fill(x, mid, filled, 1, '█', r.bg().Foreground(RgbProgress))

		// Rocket rides the bar
		r.text(x+min(filled, barW-1), mid-1, "▶", r.bg().Foreground(RgbHighlight))
	}

	headline := fmt.Sprintf("%d%% Complete", progress)
	if progress >= 100 {
		headline = "Arriving at destination!"
	}
	r.centered(mid+2, headline, r.bg().Foreground(RgbText).Bold(true))
	r.centered(mid+3, travelMessage(progress), r.bg().Foreground(RgbTextDim))
}

func travelMessage(progress int) string {
	switch {
	case progress < 50:
		return "Accelerating through space..."
	case progress < 90:
		return "Approaching target planet..."
	}
	return "Preparing for landing..."
}

func planetColor(p game.Planet) tcell.Color {
	if c, ok := planetColors[p]; ok {
		return c
	}
	return RgbText
}
