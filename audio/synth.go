// Package audio synthesizes the demos' sound effects at runtime: there are
// no audio assets, every effect is an oscillator shaped by an envelope and
// mixed into the speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator streams a fixed-duration wave. For WaveNoise the frequency
// fields are ignored. A non-zero freq sweep slides the pitch linearly from
// freq to freqEnd over the duration.
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	total    int
	position int
	wave     Wave
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, w Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, freqEnd: freq, total: rate.N(d), wave: w, rate: rate}
}

func newSweep(from, to float64, d time.Duration, w Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: from, freqEnd: to, total: rate.N(d), wave: w, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.total)
		freq := o.freq + (o.freqEnd-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if rem := e.total - e.position; rem < e.release {
			vol = float64(rem) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume wraps s at the given linear volume. Zero or negative volume
// yields silence (log2(0) is -Inf).
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// launchWhoosh is the rising hiss of a firework leaving the ground.
func launchWhoosh(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 600 * time.Millisecond
	noise := newEnvelope(newOscillator(0, d, WaveNoise, rate), d, 80*time.Millisecond, 400*time.Millisecond, rate)
	rise := newEnvelope(newSweep(180, 900, d, WaveSine, rate), d, 120*time.Millisecond, 350*time.Millisecond, rate)
	return withVolume(beep.Mix(withVolume(noise, 0.6), withVolume(rise, 0.25)), vol)
}

// burstPop is the crack of a shell opening.
func burstPop(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 350 * time.Millisecond
	crack := newEnvelope(newOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 300*time.Millisecond, rate)
	thump := newEnvelope(newSweep(220, 60, d, WaveSine, rate), d, 2*time.Millisecond, 280*time.Millisecond, rate)
	return withVolume(beep.Mix(withVolume(crack, 0.7), withVolume(thump, 0.5)), vol)
}

// explosion is the longer rumble used by the shooter.
func explosion(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 700 * time.Millisecond
	rumble := newEnvelope(newSweep(160, 40, d, WaveSquare, rate), d, 5*time.Millisecond, 550*time.Millisecond, rate)
	debris := newEnvelope(newOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 600*time.Millisecond, rate)
	return withVolume(beep.Mix(withVolume(rumble, 0.4), withVolume(debris, 0.6)), vol)
}
