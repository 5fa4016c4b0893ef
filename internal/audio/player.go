package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound effects through the system speaker.
// A Player that failed to open, or a nil *Player, is silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	initialized bool
}

// NewPlayer opens the audio device. gain is a linear volume in (0, 1].
func NewPlayer(gain float64) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}, gain: gain}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return p, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Play starts a sound effect without waiting for it to finish.
func (p *Player) Play(s Sound) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := Effect(s, sampleRate, p.gain)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// PlayStep plays the effects for what happened in one session update.
func (p *Player) PlayStep(res flappy.StepResult) {
	for _, s := range SoundsForStep(res) {
		p.Play(s)
	}
}

// PlayCommand plays the effect for a tap's outcome.
func (p *Player) PlayCommand(cmd flappy.Command) {
	if s, ok := SoundForCommand(cmd); ok {
		p.Play(s)
	}
}

// Close silences the player and releases the audio device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// SoundsForStep maps update events to sounds. A crash silences everything else.
func SoundsForStep(res flappy.StepResult) []Sound {
	if res.Events.Has(flappy.EventCrash) {
		return []Sound{SoundCrash}
	}
	var sounds []Sound
	if res.Events.Has(flappy.EventScore) {
		sounds = append(sounds, SoundScore)
	}
	if res.Events.Has(flappy.EventJump) {
		sounds = append(sounds, SoundFlap)
	}
	return sounds
}

// SoundForCommand maps a tap's outcome to a sound.
func SoundForCommand(cmd flappy.Command) (Sound, bool) {
	switch cmd {
	case flappy.CommandStart, flappy.CommandRestart:
		return SoundStart, true
	case flappy.CommandJump:
		return SoundFlap, true
	}
	return 0, false
}
