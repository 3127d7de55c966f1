package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-sweeper/debris"
	"github.com/lixenwraith/orbit-sweeper/game"
)

// RGB palette
var (
	RgbSpace      = tcell.NewRGBColor(0, 0, 20)      // Arena background
	RgbStar       = tcell.NewRGBColor(200, 200, 220) // Star field
	RgbStarDim    = tcell.NewRGBColor(90, 90, 120)
	RgbText       = tcell.NewRGBColor(255, 255, 255)
	RgbTextDim    = tcell.NewRGBColor(140, 140, 150)
	RgbTitle      = tcell.NewRGBColor(0, 220, 255)
	RgbHighlight  = tcell.NewRGBColor(255, 215, 0) // Score, stars
	RgbTimer      = tcell.NewRGBColor(255, 100, 100)
	RgbWarningBg  = tcell.NewRGBColor(220, 38, 38)
	RgbSatellite  = tcell.NewRGBColor(65, 105, 225) // Royal blue
	RgbSatPanel   = tcell.NewRGBColor(192, 192, 192)
	RgbWall       = tcell.NewRGBColor(110, 110, 160)
	RgbPlayer     = tcell.NewRGBColor(255, 215, 0)
	RgbGoal       = tcell.NewRGBColor(50, 255, 50)
	RgbHint       = tcell.NewRGBColor(90, 140, 90)
	RgbProgress   = tcell.NewRGBColor(34, 197, 94)
	RgbProgressBg = tcell.NewRGBColor(55, 65, 81)
	RgbGrave      = tcell.NewRGBColor(156, 163, 175)
)

var debrisColors = map[debris.DebrisType]tcell.Color{
	debris.DebrisNut:    tcell.NewRGBColor(192, 192, 192),
	debris.DebrisScrew:  tcell.NewRGBColor(184, 134, 11),
	debris.DebrisBolt:   tcell.NewRGBColor(112, 128, 144),
	debris.DebrisSwitch: tcell.NewRGBColor(255, 69, 0),
	debris.DebrisGlass:  tcell.NewRGBColor(135, 206, 235),
	debris.DebrisMetal:  tcell.NewRGBColor(119, 136, 153),
}

var debrisGlyphs = map[debris.DebrisType]rune{
	debris.DebrisNut:    '⬡',
	debris.DebrisScrew:  '┼',
	debris.DebrisBolt:   '╪',
	debris.DebrisSwitch: '▣',
	debris.DebrisGlass:  '◇',
	debris.DebrisMetal:  '▪',
}

var toolColors = map[game.Tool]tcell.Color{
	game.ToolMagneticCollector: tcell.NewRGBColor(255, 0, 0),
	game.ToolNet:               tcell.NewRGBColor(255, 255, 255),
	game.ToolRoboticHand:       tcell.NewRGBColor(192, 192, 192),
	game.ToolLaser:             tcell.NewRGBColor(0, 255, 255),
}

var planetColors = map[game.Planet]tcell.Color{
	game.PlanetMars:    tcell.NewRGBColor(239, 68, 68),
	game.PlanetJupiter: tcell.NewRGBColor(251, 146, 60),
	game.PlanetSaturn:  tcell.NewRGBColor(250, 204, 21),
	game.PlanetUranus:  tcell.NewRGBColor(34, 211, 238),
}

// DebrisColor returns the color for a debris type, gray for unknown types
func DebrisColor(t debris.DebrisType) tcell.Color {
	if c, ok := debrisColors[t]; ok {
		return c
	}
	return tcell.NewRGBColor(105, 105, 105)
}

// DebrisGlyph returns the glyph for a debris type
func DebrisGlyph(t debris.DebrisType) rune {
	if g, ok := debrisGlyphs[t]; ok {
		return g
	}
	return '•'
}

func toolColor(t game.Tool) tcell.Color {
	if c, ok := toolColors[t]; ok {
		return c
	}
	return RgbText
}
