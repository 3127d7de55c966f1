package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a fire-and-forget sound effect
type Cue int

const (
	CueHit     Cue = iota // Wall bump, satellite strike
	CueSuccess            // Debris pickup, maze solved, disposal
	CueWarning            // Satellite warning banner
	CueRecycle            // Recycling run
	CueLaunch             // Space travel departure
	cueCount
)

var cueNames = [cueCount]string{"hit", "success", "warning", "recycle", "launch"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

const (
	hitDuration     = 120 * time.Millisecond
	successDuration = 180 * time.Millisecond
	warningDuration = 400 * time.Millisecond
	recycleDuration = 600 * time.Millisecond
	launchDuration  = 900 * time.Millisecond
	shortAttack     = 5 * time.Millisecond
)

// buildCue synthesizes a fresh streamer for c at unity gain
func buildCue(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueHit:
		osc := NewOscillator(110, 70, hitDuration, WaveSaw, rate)
		return NewEnvelope(osc, hitDuration, shortAttack, 80*time.Millisecond, rate)

	case CueSuccess:
		// Two-note rising chime
		n1 := NewEnvelope(sineTone(987.77, successDuration/2, rate), successDuration/2, shortAttack, 40*time.Millisecond, rate)
		n2 := NewEnvelope(sineTone(1318.51, successDuration/2, rate), successDuration/2, shortAttack, 60*time.Millisecond, rate)
		return beep.Seq(n1, n2)

	case CueWarning:
		// Alternating siren
		half := warningDuration / 2
		hi := NewOscillator(880, 880, half, WaveSquare, rate)
		lo := NewOscillator(660, 660, half, WaveSquare, rate)
		return newVolume(NewEnvelope(beep.Seq(hi, lo), warningDuration, shortAttack, 50*time.Millisecond, rate), 0.5)

	case CueRecycle:
		sweep := NewOscillator(300, 900, recycleDuration, WaveSine, rate)
		hum := NewOscillator(150, 150, recycleDuration, WaveSaw, rate)
		mixed := beep.Mix(newVolume(sweep, 0.7), newVolume(hum, 0.2))
		return NewEnvelope(mixed, recycleDuration, 30*time.Millisecond, 200*time.Millisecond, rate)

	case CueLaunch:
		noise := NewOscillator(0, 0, launchDuration, WaveNoise, rate)
		rumble := NewOscillator(60, 180, launchDuration, WaveSine, rate)
		mixed := beep.Mix(newVolume(noise, 0.3), newVolume(rumble, 0.6))
		return NewEnvelope(mixed, launchDuration, 200*time.Millisecond, 400*time.Millisecond, rate)
	}
	return nil
}
