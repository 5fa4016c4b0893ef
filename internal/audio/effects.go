// Package audio synthesizes the game's sound effects with beep.
// Effects are generated from oscillators at play time; there are no assets.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundFlap  Sound = iota // Bird jumps
	SoundScore              // Score gate crossed
	SoundCrash              // Run ended
	SoundStart              // Run started or restarted
	soundCount
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundCrash:
		return "crash"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator generates a raw wave, optionally sweeping its frequency.
type oscillator struct {
	freq     float64
	sweep    float64 // Frequency change per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    uint32 // xorshift state for WaveNoise
}

// NewOscillator creates a constant-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweep:    (to - from) / duration.Seconds(),
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    0x9e3779b9,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain. Zero or negative gain is silence.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

const (
	flapDuration  = 90 * time.Millisecond
	scoreNote     = 70 * time.Millisecond
	crashDuration = 350 * time.Millisecond
	startNote     = 60 * time.Millisecond
	attack        = 5 * time.Millisecond
)

// Effect builds a fresh streamer for s at the given sample rate and gain.
// Returns nil for an unknown sound.
func Effect(s Sound, rate beep.SampleRate, gain float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundFlap:
		// Short upward chirp
		osc := NewSweep(320, 640, flapDuration, WaveTriangle, rate)
		st = NewEnvelope(osc, flapDuration, attack, 60*time.Millisecond, rate)
	case SoundScore:
		// Two-note chime (B5, E6)
		n1 := NewEnvelope(NewOscillator(987.77, scoreNote, WaveSquare, rate), scoreNote, attack, 40*time.Millisecond, rate)
		n2 := NewEnvelope(NewOscillator(1318.51, 2*scoreNote, WaveSquare, rate), 2*scoreNote, attack, 100*time.Millisecond, rate)
		st = newVolume(beep.Seq(n1, n2), 0.5)
	case SoundCrash:
		// Noise burst over a falling tone
		noise := NewEnvelope(NewOscillator(0, crashDuration, WaveNoise, rate), crashDuration, attack, 300*time.Millisecond, rate)
		tone := NewEnvelope(NewSweep(220, 55, crashDuration, WaveSquare, rate), crashDuration, attack, 250*time.Millisecond, rate)
		st = beep.Mix(newVolume(noise, 0.6), newVolume(tone, 0.4))
	case SoundStart:
		// Rising three-note arpeggio (C5, E5, G5)
		notes := make([]beep.Streamer, 0, 3)
		for _, f := range []float64{523.25, 659.25, 783.99} {
			notes = append(notes, NewEnvelope(NewOscillator(f, startNote, WaveSine, rate), startNote, attack, 30*time.Millisecond, rate))
		}
		st = beep.Seq(notes...)
	default:
		return nil
	}
	return newVolume(st, gain)
}
