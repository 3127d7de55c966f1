package phase

import (
	"time"

	"github.com/lixenwraith/orbit-sweeper/debris"
	"github.com/lixenwraith/orbit-sweeper/game"
)

// Options tunes the controller's phase timings and per-run settings
type Options struct {
	Seed   int64     // Maze and debris RNG seed, 0 = random
	Hint   bool      // Maze solution overlay on at mount
	Tool   game.Tool // Preselected tool skips the tool menu
	Tuning debris.Tuning

	TravelStep      time.Duration // Space travel progress tick
	TravelIncrement int           // Percent per tick
	LandingDelay    time.Duration // 100% to maze mount
	LaunchDelay     time.Duration // Maze solved to debris mission
	ReturnDelay     time.Duration // Graveyard emptied to start screen
	WarningAt       int           // Countdown second that plays the warning cue, 0 = never
}

// DefaultOptions returns the reference timings
func DefaultOptions() Options {
	return Options{
		Tuning:          debris.DefaultTuning(),
		TravelStep:      50 * time.Millisecond,
		TravelIncrement: 2,
		LandingDelay:    time.Second,
		LaunchDelay:     1500 * time.Millisecond,
		ReturnDelay:     2 * time.Second,
		WarningAt:       10,
	}
}

// Sound is the audio surface the controller and the phases drive
type Sound interface {
	PlayHit()
	PlaySuccess()
	PlayWarning()
	PlayRecycle()
	PlayLaunch()
	Muted() bool
	ToggleMute() bool
}

type nopSound struct{}

func (nopSound) PlayHit()         {}
func (nopSound) PlaySuccess()     {}
func (nopSound) PlayWarning()     {}
func (nopSound) PlayRecycle()     {}
func (nopSound) PlayLaunch()      {}
func (nopSound) Muted() bool      { return true }
func (nopSound) ToggleMute() bool { return true }

// countdownSink forwards the remaining seconds to the store and sounds the low-time warning
type countdownSink struct {
	store  *game.Store
	sound  Sound
	warnAt int
}

func (s countdownSink) SetTimeRemaining(n int) {
	s.store.SetTimeRemaining(n)
	if s.warnAt > 0 && n == s.warnAt {
		s.sound.PlayWarning()
	}
}
