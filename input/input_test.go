package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-sweeper/maze"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMachineDirections(t *testing.T) {
	m := NewMachine()
	tests := []struct {
		name string
		ev   tcell.Event
		dir  maze.Direction
	}{
		{"w", runeKey('w'), maze.Up},
		{"W", runeKey('W'), maze.Up},
		{"a", runeKey('a'), maze.Left},
		{"s", runeKey('s'), maze.Down},
		{"d", runeKey('d'), maze.Right},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), maze.Up},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), maze.Down},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), maze.Left},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), maze.Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := m.Process(tt.ev)
			if in == nil || in.Type != IntentMove {
				t.Fatalf("Process = %+v, want move", in)
			}
			if in.Direction != tt.dir {
				t.Errorf("direction = %v, want %v", in.Direction, tt.dir)
			}
		})
	}
}

func TestMachineSystemAndMenuKeys(t *testing.T) {
	m := NewMachine()
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"quit", runeKey('q'), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentBack},
		{"mute", runeKey('M'), IntentToggleMute},
		{"hint", runeKey('h'), IntentHint},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentConfirm},
		{"space", runeKey(' '), IntentConfirm},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := m.Process(tt.ev)
			if in == nil || in.Type != tt.want {
				t.Fatalf("Process = %+v, want %v", in, tt.want)
			}
		})
	}

	if in := m.Process(runeKey('3')); in == nil || in.Type != IntentSelect || in.Index != 2 {
		t.Errorf("digit 3 = %+v", in)
	}
	if in := m.Process(runeKey('0')); in != nil {
		t.Errorf("unbound 0 = %+v", in)
	}
	if in := m.Process(runeKey('z')); in != nil {
		t.Errorf("unbound z = %+v", in)
	}
}

func TestHeldWindowAndRepeat(t *testing.T) {
	h := NewHeld(300*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(maze.Right, t0)
	if dx, dy := h.Axis(t0.Add(250 * time.Millisecond)); dx != 1 || dy != 0 {
		t.Fatalf("axis during initial hold = %d,%d", dx, dy)
	}
	if dx, _ := h.Axis(t0.Add(350 * time.Millisecond)); dx != 0 {
		t.Fatal("tap should release after the initial window")
	}

	// Repeats refresh with the shorter window
	h.Press(maze.Right, t0)
	h.Press(maze.Right, t0.Add(200*time.Millisecond))
	if !h.Active(maze.Right, t0.Add(290*time.Millisecond)) {
		t.Error("repeat did not extend hold")
	}
	if h.Active(maze.Right, t0.Add(310*time.Millisecond)) {
		t.Error("repeat window too long")
	}
}

func TestHeldOppositeAndDiagonal(t *testing.T) {
	h := NewHeld(0, 0)
	t0 := time.Unix(0, 0)

	h.Press(maze.Left, t0)
	h.Press(maze.Up, t0)
	if dx, dy := h.Axis(t0); dx != -1 || dy != -1 {
		t.Fatalf("diagonal = %d,%d", dx, dy)
	}

	h.Press(maze.Right, t0.Add(10*time.Millisecond))
	if dx, _ := h.Axis(t0.Add(20 * time.Millisecond)); dx != 1 {
		t.Fatalf("opposite press should replace left, dx=%d", dx)
	}

	h.Release()
	if dx, dy := h.Axis(t0); dx != 0 || dy != 0 {
		t.Fatal("release kept directions")
	}
	if h.Active(maze.Direction(9), t0) {
		t.Error("invalid direction active")
	}
}
