package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/time/rate"
)

// Sentinel errors, reported by Trigger and swallowed by the Play* helpers
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrMuted          = errors.New("audio muted")
	ErrThrottled      = errors.New("cue throttled")
	ErrUnknownCue     = errors.New("unknown cue")
)

// SoundManager plays synthesized cues through a single beep mixer
// Every Play* call is fire-and-forget: failures are logged at debug level and never surface
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	initialized bool

	muted    atomic.Bool
	limiters [cueCount]*rate.Limiter
	played   [cueCount]atomic.Int64

	log *slog.Logger
}

// NewSoundManager creates a sound manager; cfg nil uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sm := &SoundManager{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		mixer:      &beep.Mixer{},
		log:        slog.With("component", "audio"),
	}
	sm.muted.Store(cfg.Muted)

	every := rate.Inf
	if cfg.RepeatInterval > 0 {
		every = rate.Every(cfg.RepeatInterval)
	}
	for i := range sm.limiters {
		sm.limiters[i] = rate.NewLimiter(every, 1)
	}
	return sm
}

// Initialize opens the speaker and starts the mixer
// A disabled config leaves the manager uninitialized without error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		sm.log.Debug("audio disabled by config")
		return nil
	}

	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug("audio initialized", "sample_rate", int(sm.sampleRate), "muted", sm.muted.Load())
	return nil
}

// Close silences the mixer and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ===== MUTE =====

func (sm *SoundManager) Muted() bool { return sm.muted.Load() }

func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			sm.log.Debug("mute toggled", "muted", !old)
			return !old
		}
	}
}

// ===== PLAYBACK =====

// Trigger plays c and reports why it did not, if it did not
func (sm *SoundManager) Trigger(c Cue) error {
	if c < 0 || c >= cueCount {
		return fmt.Errorf("%w: %d", ErrUnknownCue, c)
	}
	if sm.muted.Load() {
		return ErrMuted
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if !sm.allow(c, time.Now()) {
		return ErrThrottled
	}

	s := buildCue(c, sm.sampleRate)
	if s == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCue, c)
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.cfg.gain(c)))
	speaker.Unlock()

	sm.played[c].Add(1)
	return nil
}

// allow consumes one token from the cue's limiter
func (sm *SoundManager) allow(c Cue, now time.Time) bool {
	return sm.limiters[c].AllowN(now, 1)
}

// Play triggers c, logging and discarding any failure
func (sm *SoundManager) Play(c Cue) {
	if err := sm.Trigger(c); err != nil && !errors.Is(err, ErrMuted) {
		sm.log.Debug("cue skipped", "cue", c, "error", err)
	}
}

// Played returns how many times c reached the mixer
func (sm *SoundManager) Played(c Cue) int64 {
	if c < 0 || c >= cueCount {
		return 0
	}
	return sm.played[c].Load()
}

func (sm *SoundManager) PlayHit()     { sm.Play(CueHit) }
func (sm *SoundManager) PlaySuccess() { sm.Play(CueSuccess) }
func (sm *SoundManager) PlayWarning() { sm.Play(CueWarning) }
func (sm *SoundManager) PlayRecycle() { sm.Play(CueRecycle) }
func (sm *SoundManager) PlayLaunch()  { sm.Play(CueLaunch) }
