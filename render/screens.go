package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/orbit-sweeper/game"
)

// DrawStart paints the title screen with instructions
func (r *Renderer) DrawStart(muted bool) {
	if !r.begin() {
		return
	}
	defer r.end()

	w, h := r.screen.Size()
	r.starField(0, 0, w, h)

	top := max(1, h/2-8)
	r.centered(top, "O R B I T   S W E E P E R", r.bg().Foreground(RgbTitle).Bold(true))
	r.centered(top+1, "Clean up Earth's orbit before it's too late", r.bg().Foreground(RgbTextDim))

	lines := []string{
		"1. Choose a collection tool",
		"2. Pick the planet where it is stored and a maze difficulty",
		"3. Navigate the maze to retrieve your tool",
		"4. Collect orbiting debris before time runs out, avoid satellites",
		"5. Dispose of or recycle your haul for bonus points",
	}
	for i, l := range lines {
		r.centered(top+3+i, l, r.bg().Foreground(RgbText))
	}

	sound := "on"
	if muted {
		sound = "muted"
	}
	r.centered(top+10, "Press ENTER to start", r.bg().Foreground(RgbHighlight).Bold(true))
	r.centered(top+12, fmt.Sprintf("M sound (%s) | Q quit", sound), r.bg().Foreground(RgbTextDim))
}

// DrawToolSelection lists the tools with their menu numbers
func (r *Renderer) DrawToolSelection() {
	if !r.begin() {
		return
	}
	defer r.end()

	_, h := r.screen.Size()
	top := max(1, h/2-6)
	r.centered(top, "Choose Your Collection Tool", r.bg().Foreground(RgbTitle).Bold(true))

	for i, t := range game.Tools {
		y := top + 2 + i*2
		r.centered(y, fmt.Sprintf("[%d] %c %s", i+1, t.Glyph(), t.Name()), r.bg().Foreground(toolColor(t)).Bold(true))
		r.centered(y+1, t.Description(), r.bg().Foreground(RgbTextDim))
	}
	r.centered(top+3+len(game.Tools)*2, "ESC back", r.bg().Foreground(RgbTextDim))
}

// DrawPlanetSelection lists planets, dimming those that do not hold tool
// With chooseDifficulty set it lists difficulties for the chosen planet instead
func (r *Renderer) DrawPlanetSelection(tool game.Tool, chosen game.Planet, chooseDifficulty bool) {
	if !r.begin() {
		return
	}
	defer r.end()

	_, h := r.screen.Size()
	top := max(1, h/2-6)

	if chooseDifficulty {
		r.centered(top, "Select Difficulty Level", r.bg().Foreground(RgbTitle).Bold(true))
		r.centered(top+1, "Destination: "+chosen.Name(), r.bg().Foreground(planetColor(chosen)))
		for i, d := range game.Difficulties {
			p := d.Preset()
			y := top + 3 + i*2
			r.centered(y, fmt.Sprintf("[%d] %s (%dx%d maze)", i+1, strings.ToUpper(d.String()), p.Size, p.Size), r.bg().Foreground(RgbText).Bold(true))
			r.centered(y+1, d.Description(), r.bg().Foreground(RgbTextDim))
		}
		r.centered(top+4+len(game.Difficulties)*2, "ESC back", r.bg().Foreground(RgbTextDim))
		return
	}

	r.centered(top, "Select Your Destination", r.bg().Foreground(RgbTitle).Bold(true))
	r.centered(top+1, "Your "+tool.Name()+" is stored on one of these planets", r.bg().Foreground(RgbTextDim))
	for i, p := range game.Planets {
		style := r.bg().Foreground(planetColor(p)).Bold(true)
		label := fmt.Sprintf("[%d] %-8s holds %s", i+1, p.Name(), p.Tool().Name())
		if !p.Accepts(tool) {
			style = r.bg().Foreground(RgbTextDim)
			label += " (locked)"
		}
		r.centered(top+3+i, label, style)
	}
	r.centered(top+4+len(game.Planets), "ESC back", r.bg().Foreground(RgbTextDim))
}

// DrawEndGame shows the final score, star rating and disposal options
func (r *Renderer) DrawEndGame(s game.Snapshot) {
	if !r.begin() {
		return
	}
	defer r.end()

	w, h := r.screen.Size()
	r.starField(0, 0, w, h)
	top := max(1, h/2-9)

	rating := game.StarRating(s.Score)
	r.centered(top, "MISSION COMPLETE", r.bg().Foreground(RgbTitle).Bold(true))
	r.centered(top+2, game.StarGlyphs(rating), r.bg().Foreground(RgbHighlight).Bold(true))
	r.centered(top+3, fmt.Sprintf("You earned %g out of 3 stars!", rating), r.bg().Foreground(RgbText))
	r.centered(top+4, game.PerformanceMessage(rating), r.bg().Foreground(RgbHighlight).Bold(true))

	r.centered(top+6, fmt.Sprintf("Debris collected: %d   Satellite hits: %d", s.Debris, s.Satellites), r.bg().Foreground(RgbText))
	r.centered(top+7, fmt.Sprintf("Final score: %d", s.Score), r.bg().Foreground(RgbHighlight))

	thresholds := []struct {
		score int
		label string
	}{
		{500, "★★ 500+ points"},
		{750, "★★✬ 750+ points"},
		{1000, "★★★ 1000+ points"},
	}
	for i, t := range thresholds {
		style := r.bg().Foreground(RgbTextDim)
		if s.Score >= t.score {
			style = r.bg().Foreground(RgbProgress)
		}
		r.centered(top+9+i, t.label, style)
	}

	r.centered(top+13, fmt.Sprintf("[1] Space Graveyard (+%d points per debris)", game.DisposalPoints), r.bg().Foreground(RgbText).Bold(true))
	r.centered(top+14, fmt.Sprintf("[2] Recycling Center (+%d points per debris)", game.RecyclingPoints), r.bg().Foreground(RgbText).Bold(true))
	r.centered(top+16, "ENTER play again", r.bg().Foreground(RgbTextDim))
}

// DrawGraveyard shows the graves and how much debris is left to dispose of
func (r *Renderer) DrawGraveyard(g *game.Graveyard, score int) {
	if g == nil || !r.begin() {
		return
	}
	defer r.end()

	w, h := r.screen.Size()
	top := max(1, h/2-6)
	r.centered(top, "Space Graveyard", r.bg().Foreground(RgbTitle).Bold(true))
	r.centered(top+1, fmt.Sprintf("Press 1-%d to dispose of debris in a grave (+%d points each)", game.GraveCount, game.DisposalPoints), r.bg().Foreground(RgbTextDim))

	const graveW = 9
	x := (w - game.GraveCount*(graveW+2)) / 2
	for i := 0; i < game.GraveCount; i++ {
		gx := x + i*(graveW+2)
		style := r.bg().Foreground(RgbGrave)
		r.frame(gx, top+3, graveW, 4, style)
		r.text(gx+graveW/2-1, top+4, "RIP", style.Bold(true))
		if n := g.Occupancy(i); n > 0 {
			r.text(gx+2, top+5, fmt.Sprintf("x%d", n), r.bg().Foreground(RgbHighlight))
		}
		r.text(gx+graveW/2, top+7, fmt.Sprintf("%d", i+1), r.bg().Foreground(RgbText))
	}

	r.centered(top+9, fmt.Sprintf("Debris remaining: %d   Score: %d", g.Remaining(), score), r.bg().Foreground(RgbText))
	if g.Done() {
		r.centered(top+11, fmt.Sprintf("All debris laid to rest! You earned %d points!", g.Disposed()*game.DisposalPoints), r.bg().Foreground(RgbProgress).Bold(true))
	}
}

// DrawRecycling lists the products, or the result once one is chosen
func (r *Renderer) DrawRecycling(rc *game.Recycler) {
	if rc == nil || !r.begin() {
		return
	}
	defer r.end()

	_, h := r.screen.Size()
	top := max(1, h/2-6)

	if p := rc.Product(); p != nil {
		r.centered(top, p.Name+" Created!", r.bg().Foreground(RgbProgress).Bold(true))
		r.centered(top+2, p.Thanks, r.bg().Foreground(RgbText))
		r.centered(top+3, fmt.Sprintf("+%d points", rc.Potential()), r.bg().Foreground(RgbHighlight).Bold(true))
		r.centered(top+5, "ENTER return to base", r.bg().Foreground(RgbTextDim))
		return
	}

	r.centered(top, "Recycling Center", r.bg().Foreground(RgbTitle).Bold(true))
	r.centered(top+1, fmt.Sprintf("Choose what to recycle your debris into (+%d points)", rc.Potential()), r.bg().Foreground(RgbTextDim))
	for i, p := range game.Products {
		y := top + 3 + i*2
		r.centered(y, fmt.Sprintf("[%d] %s", i+1, p.Name), r.bg().Foreground(RgbText).Bold(true))
		r.centered(y+1, p.Description, r.bg().Foreground(RgbTextDim))
	}
	r.centered(top+4+len(game.Products)*2, "ESC back", r.bg().Foreground(RgbTextDim))
}
