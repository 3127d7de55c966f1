package render

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orbit-sweeper/vmath"
)

const starCount = 80

// Renderer paints game state onto a tcell screen
// Every Draw method is a no-op while the screen is nil ("nothing to draw yet")
type Renderer struct {
	screen tcell.Screen
	stars  []vmath.Vec2 // Normalized [0,1) positions
}

// New creates a renderer; a nil screen makes every Draw a no-op
func New(screen tcell.Screen) *Renderer {
	rng := rand.New(rand.NewSource(1))
	stars := make([]vmath.Vec2, starCount)
	for i := range stars {
		stars[i] = vmath.RandPoint(rng, vmath.Rect{Width: 1, Height: 1})
	}
	return &Renderer{screen: screen, stars: stars}
}

// Ready reports whether a screen is attached
func (r *Renderer) Ready() bool { return r.screen != nil }

// Size returns the screen size, 0x0 without a screen
func (r *Renderer) Size() (int, int) {
	if r.screen == nil {
		return 0, 0
	}
	return r.screen.Size()
}

// begin clears the screen to the background; false when there is nothing to draw on
func (r *Renderer) begin() bool {
	if r.screen == nil {
		return false
	}
	r.screen.SetStyle(tcell.StyleDefault.Background(RgbSpace).Foreground(RgbText))
	r.screen.Clear()
	return true
}

func (r *Renderer) end() {
	r.screen.Show()
}

func (r *Renderer) bg() tcell.Style {
	return tcell.StyleDefault.Background(RgbSpace)
}

// text draws s starting at (x, y), clipped to the screen; returns the end column
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x >= 0 && x+cw <= w {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += cw
	}
	return x
}

// centered draws s horizontally centered on row y
func (r *Renderer) centered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.text((w-runewidth.StringWidth(s))/2, y, s, style)
}

// fill paints a rectangle of cells with ch
func (r *Renderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	sw, sh := r.screen.Size()
	for row := y; row < y+h; row++ {
		if row < 0 || row >= sh {
			continue
		}
		for col := x; col < x+w; col++ {
			if col < 0 || col >= sw {
				continue
			}
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// frame draws a single-line box border
func (r *Renderer) frame(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	r.fill(x+1, y, w-2, 1, '─', style)
	r.fill(x+1, y+h-1, w-2, 1, '─', style)
	r.fill(x, y+1, 1, h-2, '│', style)
	r.fill(x+w-1, y+1, 1, h-2, '│', style)
	r.fill(x, y, 1, 1, '┌', style)
	r.fill(x+w-1, y, 1, 1, '┐', style)
	r.fill(x, y+h-1, 1, 1, '└', style)
	r.fill(x+w-1, y+h-1, 1, 1, '┘', style)
}

// starField scatters the background stars over the given area
func (r *Renderer) starField(x, y, w, h int) {
	for i, s := range r.stars {
		col := x + int(s.X*float64(w))
		row := y + int(s.Y*float64(h))
		color := RgbStar
		ch := '·'
		if i%3 == 0 {
			color = RgbStarDim
		}
		if i%11 == 0 {
			ch = '+'
		}
		r.fill(col, row, 1, 1, ch, r.bg().Foreground(color))
	}
}
