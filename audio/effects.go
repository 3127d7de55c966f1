package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator is a finite single-voice wave source with an optional linear pitch sweep
type oscillator struct {
	freq, endFreq float64
	phase         float64
	total, pos    int
	wave          WaveType
	rate          beep.SampleRate
}

// NewOscillator creates an oscillator sweeping linearly from freq to endFreq over duration
// Pass endFreq == freq for a steady tone
func NewOscillator(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:    freq,
		endFreq: endFreq,
		total:   rate.N(duration),
		wave:    wave,
		rate:    rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.pos) / float64(o.total)
		f := o.freq + (o.endFreq-o.freq)*progress
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a finite stream
type envelope struct {
	streamer               beep.Streamer
	pos                    int
	attack, release, total int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if relStart := e.total - e.release; e.release > 0 && e.pos >= relStart {
			vol = math.Max(0, float64(e.total-e.pos)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or negative gain is silent
// math.Log2(0) is -Inf, hence the Silent branch
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// sineTone is a plain beep sine limited to duration, falling back to the oscillator
func sineTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), tone)
}
