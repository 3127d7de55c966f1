package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-sweeper/maze"
)

// KeyEntry describes what a key produces
type KeyEntry struct {
	Intent    IntentType
	Direction maze.Direction
}

// KeyTable maps keys to intents; bindings are fixed
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the game bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentBack},
			tcell.KeyEnter:  {Intent: IntentConfirm},
			tcell.KeyUp:     {Intent: IntentMove, Direction: maze.Up},
			tcell.KeyRight:  {Intent: IntentMove, Direction: maze.Right},
			tcell.KeyDown:   {Intent: IntentMove, Direction: maze.Down},
			tcell.KeyLeft:   {Intent: IntentMove, Direction: maze.Left},
		},

		Runes: map[rune]KeyEntry{
			'w': {Intent: IntentMove, Direction: maze.Up},
			'd': {Intent: IntentMove, Direction: maze.Right},
			's': {Intent: IntentMove, Direction: maze.Down},
			'a': {Intent: IntentMove, Direction: maze.Left},
			'q': {Intent: IntentQuit},
			'm': {Intent: IntentToggleMute},
			'h': {Intent: IntentHint},
			' ': {Intent: IntentConfirm},
		},
	}
}
