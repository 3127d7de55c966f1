package input

import (
	"time"

	"github.com/lixenwraith/orbit-sweeper/maze"
)

const (
	// DefaultInitialHold covers the terminal's delay before key repeat starts
	DefaultInitialHold = 300 * time.Millisecond
	// DefaultRepeatHold covers the gap between repeats while the key stays down
	DefaultRepeatHold = 120 * time.Millisecond
)

// Held approximates held keys from press events
// Terminals report no key release, so each press keeps its direction active for a window
// that a repeat refreshes. Pressing a direction releases its opposite.
// Not safe for concurrent use; feed and read from the loop goroutine
type Held struct {
	until   [4]time.Time
	initial time.Duration
	repeat  time.Duration
}

// NewHeld creates a tracker; zero durations use the defaults
func NewHeld(initial, repeat time.Duration) *Held {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &Held{initial: initial, repeat: repeat}
}

// Press marks d as held from now
func (h *Held) Press(d maze.Direction, now time.Time) {
	if d < maze.Up || d > maze.Left {
		return
	}
	window := h.initial
	if h.active(d, now) {
		window = h.repeat
	}
	h.until[d] = now.Add(window)
	h.until[d.Opposite()] = time.Time{}
}

// Release drops every held direction
func (h *Held) Release() {
	h.until = [4]time.Time{}
}

func (h *Held) active(d maze.Direction, now time.Time) bool {
	return now.Before(h.until[d])
}

// Active reports whether d is held at now
func (h *Held) Active(d maze.Direction, now time.Time) bool {
	if d < maze.Up || d > maze.Left {
		return false
	}
	return h.active(d, now)
}

// Axis returns the held direction signs at now; dy grows downward
func (h *Held) Axis(now time.Time) (dx, dy int) {
	if h.active(maze.Right, now) {
		dx++
	}
	if h.active(maze.Left, now) {
		dx--
	}
	if h.active(maze.Down, now) {
		dy++
	}
	if h.active(maze.Up, now) {
		dy--
	}
	return dx, dy
}
