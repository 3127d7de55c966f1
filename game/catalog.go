package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/orbit-sweeper/maze"
)

var (
	ErrUnknownTool       = errors.New("unknown tool")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// ===== TOOLS =====

type Tool int

const (
	ToolNone Tool = iota
	ToolMagneticCollector
	ToolNet
	ToolRoboticHand
	ToolLaser
)

// Tools lists the selectable tools in menu order
var Tools = []Tool{ToolMagneticCollector, ToolNet, ToolRoboticHand, ToolLaser}

type toolInfo struct {
	id, name, description string
	glyph                 rune
}

var toolTable = map[Tool]toolInfo{
	ToolMagneticCollector: {"magnetic-collector", "Magnetic Collector", "Attracts metallic debris and repels satellites", 'U'},
	ToolNet:               {"net", "Space Net", "Captures debris of all sizes effectively", '#'},
	ToolRoboticHand:       {"robotic-hand", "Robotic Hand", "Precise control for selective debris collection", 'Y'},
	ToolLaser:             {"laser", "Laser Collector", "High-tech beam for instant debris capture", '*'},
}

// String returns the identifier used in config and logs
func (t Tool) String() string {
	if info, ok := toolTable[t]; ok {
		return info.id
	}
	return "none"
}

func (t Tool) Name() string        { return toolTable[t].name }
func (t Tool) Description() string { return toolTable[t].description }

// Glyph is the collector glyph drawn in the arena
func (t Tool) Glyph() rune {
	if info, ok := toolTable[t]; ok {
		return info.glyph
	}
	return '@'
}

// SatellitesImmune reports whether satellite contact is ignored with this tool
func (t Tool) SatellitesImmune() bool {
	return t == ToolMagneticCollector
}

// ParseTool resolves a tool identifier; empty string yields ToolNone
func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ToolNone, nil
	}
	for t, info := range toolTable {
		if info.id == s {
			return t, nil
		}
	}
	return ToolNone, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

// ===== PLANETS =====

type Planet int

const (
	PlanetNone Planet = iota
	PlanetMars
	PlanetJupiter
	PlanetSaturn
	PlanetUranus
)

// Planets lists the destinations in menu order
var Planets = []Planet{PlanetMars, PlanetJupiter, PlanetSaturn, PlanetUranus}

var planetNames = map[Planet]string{
	PlanetMars:    "Mars",
	PlanetJupiter: "Jupiter",
	PlanetSaturn:  "Saturn",
	PlanetUranus:  "Uranus",
}

var planetTools = map[Planet]Tool{
	PlanetMars:    ToolNet,
	PlanetJupiter: ToolMagneticCollector,
	PlanetSaturn:  ToolRoboticHand,
	PlanetUranus:  ToolLaser,
}

func (p Planet) String() string {
	if p == PlanetNone {
		return "none"
	}
	return strings.ToLower(planetNames[p])
}

func (p Planet) Name() string { return planetNames[p] }

// Tool returns the tool stored on this planet
func (p Planet) Tool() Tool { return planetTools[p] }

// Accepts reports whether the planet may be chosen with the selected tool
func (p Planet) Accepts(t Tool) bool {
	return t != ToolNone && planetTools[p] == t
}

// ===== DIFFICULTY =====

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

var difficultyPresets = map[Difficulty]maze.Preset{
	DifficultyEasy:   {Size: 8, CellSize: 40},
	DifficultyMedium: {Size: 12, CellSize: 35},
	DifficultyHard:   {Size: 16, CellSize: 30},
}

var difficultyInfo = map[Difficulty][2]string{
	DifficultyEasy:   {"easy", "Small maze, perfect for beginners"},
	DifficultyMedium: {"medium", "Moderate challenge with balanced gameplay"},
	DifficultyHard:   {"hard", "Large maze for experienced players"},
}

func (d Difficulty) String() string {
	if info, ok := difficultyInfo[d]; ok {
		return info[0]
	}
	return "unknown"
}

func (d Difficulty) Description() string { return difficultyInfo[d][1] }

// Preset returns the maze size and cell size, falling back to medium
func (d Difficulty) Preset() maze.Preset {
	if p, ok := difficultyPresets[d]; ok {
		return p
	}
	return difficultyPresets[DifficultyMedium]
}

// ParseDifficulty resolves a difficulty name; empty string yields medium
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DifficultyMedium, nil
	}
	for d, info := range difficultyInfo {
		if info[0] == s {
			return d, nil
		}
	}
	return DifficultyMedium, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}
