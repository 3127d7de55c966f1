package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"
)

const (
	EnvEnabled    = "ORBIT_SWEEPER_AUDIO_ENABLED"
	EnvMuted      = "ORBIT_SWEEPER_MUTED"
	EnvVolume     = "ORBIT_SWEEPER_VOLUME"
	EnvSampleRate = "ORBIT_SWEEPER_SAMPLE_RATE"
	EnvCueVolumes = "ORBIT_SWEEPER_CUE_VOLUMES"
)

// Config holds audio settings
type Config struct {
	Enabled      bool
	Muted        bool    // Initial mute state, toggled at runtime
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	CueVolumes   map[Cue]float64

	// RepeatInterval is the minimum spacing between two plays of the same cue
	RepeatInterval time.Duration
}

// DefaultConfig returns the audio defaults; the game starts muted
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		Muted:        true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		CueVolumes: map[Cue]float64{
			CueHit:     0.3,
			CueSuccess: 0.4,
			CueWarning: 0.5,
			CueRecycle: 0.4,
			CueLaunch:  0.3,
		},
		RepeatInterval: 80 * time.Millisecond,
	}
}

// LoadConfig loads audio configuration from environment variables over the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}

	if v := os.Getenv(EnvMuted); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Muted = b
		}
	}

	// Volume 0-100 converted to 0.0-1.0
	if v := os.Getenv(EnvVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SetVolumePercent(n)
		}
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		}
	}

	// Per-cue volumes from JSON, e.g. {"hit":0.2,"success":0.5}
	if v := os.Getenv(EnvCueVolumes); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			for c := Cue(0); c < cueCount; c++ {
				if vol, ok := volumes[c.String()]; ok {
					cfg.CueVolumes[c] = vol
				}
			}
		}
	}

	return cfg
}

// SetVolumePercent sets the master volume from 0-100, clamped
func (c *Config) SetVolumePercent(n int) {
	c.MasterVolume = float64(n) / 100.0
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
}

// gain returns the effective linear gain for c
func (c *Config) gain(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
