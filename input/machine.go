package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into Intents
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a parser with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
			return entryIntent(entry)
		}
		return nil
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		return &Intent{Type: IntentSelect, Index: int(r - '1')}
	}
	if entry, ok := m.keyTable.Runes[unicode.ToLower(r)]; ok {
		return entryIntent(entry)
	}
	return nil
}

func entryIntent(e KeyEntry) *Intent {
	return &Intent{Type: e.Intent, Direction: e.Direction}
}
