package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/orbit-sweeper/debris"
	"github.com/lixenwraith/orbit-sweeper/game"
	"github.com/lixenwraith/orbit-sweeper/vmath"
)

// hudRows are reserved above the arena for the timer/tool overlay
const hudRows = 1

// ArenaView is the post-step snapshot DrawArena reads
type ArenaView struct {
	Arena         vmath.Rect // Simulation space, 800x600 by default
	Objects       []debris.Object
	Collector     vmath.Rect
	Tool          game.Tool
	TimeRemaining int
	Score         int
	Debris        int
	Satellites    int
	Warning       bool
	Muted         bool
}

// viewport maps simulation coordinates to terminal cells
type viewport struct {
	x, y   int
	sx, sy float64
}

func (vp viewport) col(x float64) int { return vp.x + int(math.Floor(x*vp.sx)) }
func (vp viewport) row(y float64) int { return vp.y + int(math.Floor(y*vp.sy)) }

// span returns the cell rect covering b, at least 1x1
func (vp viewport) span(b vmath.Rect) (x, y, w, h int) {
	x, y = vp.col(b.X), vp.row(b.Y)
	w = max(1, vp.col(b.X+b.Width)-x)
	h = max(1, vp.row(b.Y+b.Height)-y)
	return x, y, w, h
}

// DrawArena paints the debris collection phase scaled onto the terminal
func (r *Renderer) DrawArena(v ArenaView) {
	if !r.begin() {
		return
	}
	defer r.end()

	w, h := r.screen.Size()
	if v.Arena.Width <= 0 || v.Arena.Height <= 0 || w < 1 || h <= hudRows {
		return
	}

	vp := viewport{
		x:  0,
		y:  hudRows,
		sx: float64(w) / v.Arena.Width,
		sy: float64(h-hudRows) / v.Arena.Height,
	}
	r.starField(0, hudRows, w, h-hudRows)

	for _, o := range v.Objects {
		r.drawObject(vp, o)
	}
	r.drawCollector(vp, v.Collector, v.Tool)
	r.drawHUD(v, w)

	if v.Warning {
		msg := " Oops I'm a satellite :( !! Please collect the debris cause it'll harm me :) "
		style := r.bg().Background(RgbWarningBg).Foreground(RgbText).Bold(true)
		r.centered(hudRows+(h-hudRows)/2, msg, style)
	}
}

func (r *Renderer) drawObject(vp viewport, o debris.Object) {
	x, y, w, h := vp.span(o.Bounds())

	switch o.Kind {
	case debris.KindSatellite:
		// Body with solar panels either side
		r.fill(x, y, w, h, '▒', r.bg().Foreground(RgbSatellite))
		if w >= 3 {
			r.fill(x, y, 1, h, '═', r.bg().Foreground(RgbSatPanel))
			r.fill(x+w-1, y, 1, h, '═', r.bg().Foreground(RgbSatPanel))
		}
		c := o.Pos
		r.fill(vp.col(c.X), vp.row(c.Y), 1, 1, '◉', r.bg().Foreground(RgbSatPanel))

	default:
		r.fill(x, y, w, h, DebrisGlyph(o.DebrisType), r.bg().Foreground(DebrisColor(o.DebrisType)))
	}
}

func (r *Renderer) drawCollector(vp viewport, box vmath.Rect, tool game.Tool) {
	x, y, w, h := vp.span(box)
	style := r.bg().Foreground(toolColor(tool)).Bold(true)
	if w >= 3 && h >= 3 {
		r.frame(x, y, w, h, style)
	}
	c := box.Center()
	r.fill(vp.col(c.X), vp.row(c.Y), 1, 1, tool.Glyph(), style)
}

func (r *Renderer) drawHUD(v ArenaView, w int) {
	bar := r.bg().Background(RgbProgressBg)
	r.fill(0, 0, w, hudRows, ' ', bar)

	x := r.text(1, 0, fmt.Sprintf("Time: %ds", v.TimeRemaining), bar.Foreground(RgbTimer).Bold(true))
	x = r.text(x+2, 0, "Tool: "+v.Tool.Name(), bar.Foreground(RgbTitle))
	x = r.text(x+2, 0, fmt.Sprintf("Score: %d", v.Score), bar.Foreground(RgbHighlight))
	x = r.text(x+2, 0, fmt.Sprintf("Debris: %d", v.Debris), bar.Foreground(RgbText))
	x = r.text(x+2, 0, fmt.Sprintf("Satellite hits: %d", v.Satellites), bar.Foreground(RgbText))
	if v.Muted {
		r.text(x+2, 0, "[muted]", bar.Foreground(RgbTextDim))
	}
}
