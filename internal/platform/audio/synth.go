// Package audio synthesizes short sound cues and plays them through the
// system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/missile-arcade/internal/core"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose pitch glides linearly from one frequency
// to another over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	phase    float64
	pos      int
	total    int
	noise    uint32
}

func newSweep(from, to float64, d time.Duration, wave Wave) *sweep {
	return &sweep{from: from, to: to, wave: wave, total: SampleRate.N(d), noise: 0x9e3779b9}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
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
		case WaveNoise:
			// xorshift keeps cues reproducible
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.pos) / float64(o.total)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// decay fades a streamer out exponentially after a linear attack.
type decay struct {
	beep.Streamer
	pos    int
	attack int
	rate   float64 // e-folds per second
}

func withDecay(s beep.Streamer, attack time.Duration, rate float64) *decay {
	return &decay{Streamer: s, attack: SampleRate.N(attack), rate: rate}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.Streamer.Stream(samples)
	for i := range n {
		gain := math.Exp(-d.rate * float64(d.pos) / float64(SampleRate))
		if d.pos < d.attack {
			gain *= float64(d.pos) / float64(d.attack)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CueDuration returns how long the cue for s lasts.
func CueDuration(s core.Sound) time.Duration {
	switch s {
	case core.SoundLaunch:
		return 180 * time.Millisecond
	case core.SoundExplosion:
		return 450 * time.Millisecond
	case core.SoundCollision:
		return 600 * time.Millisecond
	case core.SoundPickup:
		return 220 * time.Millisecond
	case core.SoundUI:
		return 60 * time.Millisecond
	case core.SoundGameOver:
		return 1200 * time.Millisecond
	default:
		return 0
	}
}

// Cue builds a fresh streamer for s at the given volume, or nil for
// SoundNone.
func Cue(s core.Sound, volume float64) beep.Streamer {
	d := CueDuration(s)
	if d == 0 {
		return nil
	}

	var cue beep.Streamer
	switch s {
	case core.SoundLaunch:
		// rising whistle
		cue = withDecay(newSweep(300, 900, d, WaveSine), 5*time.Millisecond, 6)
	case core.SoundExplosion:
		cue = beep.Mix(
			newVolume(withDecay(newSweep(0, 0, d, WaveNoise), 2*time.Millisecond, 9), 0.6),
			newVolume(withDecay(newSweep(90, 40, d, WaveSine), 2*time.Millisecond, 7), 0.4),
		)
	case core.SoundCollision:
		cue = beep.Mix(
			newVolume(withDecay(newSweep(0, 0, d, WaveNoise), time.Millisecond, 5), 0.5),
			newVolume(withDecay(newSweep(70, 30, d, WaveSquare), time.Millisecond, 5), 0.3),
		)
	case core.SoundPickup:
		cue = beep.Seq(
			withDecay(newSweep(880, 880, d/2, WaveSine), 3*time.Millisecond, 8),
			withDecay(newSweep(1320, 1320, d/2, WaveSine), 3*time.Millisecond, 8),
		)
	case core.SoundUI:
		cue = withDecay(newSweep(660, 660, d, WaveSquare), time.Millisecond, 30)
	case core.SoundGameOver:
		cue = withDecay(newSweep(440, 110, d, WaveSquare), 10*time.Millisecond, 2)
	}
	return newVolume(cue, volume)
}
