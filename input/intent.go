package input

import "github.com/lixenwraith/orbit-sweeper/maze"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C
	IntentBack       // Esc (context-dependent: previous menu or quit)
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Play
	IntentMove // WASD, arrows

	// Menus
	IntentSelect  // 1-9, Index is zero-based
	IntentConfirm // Enter, space
	IntentHint    // h, toggles the maze solution overlay
)

// Intent is the parsed meaning of one terminal event
type Intent struct {
	Type      IntentType
	Direction maze.Direction // IntentMove
	Index     int            // IntentSelect
}
