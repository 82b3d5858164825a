// Package audio plays short synthesized cues for game events through the
// system speaker. Audio is optional: every method is a no-op until Initialize
// succeeds.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cue describes one synthesized sound.
type Cue struct {
	Freq     float64 // Start frequency in Hz
	EndFreq  float64 // Frequency reached at the end; equal to Freq for a flat tone
	Duration time.Duration
	Volume   float64 // Peak amplitude in [0, 1]
	Noise    float64 // Share of white noise mixed in, [0, 1]
}

// cues maps event kinds to their sound. Kinds without an entry are silent.
var cues = map[breakout.EventKind]Cue{
	breakout.EventBrickDestroyed: {Freq: 880, EndFreq: 990, Duration: 45 * time.Millisecond, Volume: 0.25},
	breakout.EventWallBounce:     {Freq: 440, EndFreq: 440, Duration: 30 * time.Millisecond, Volume: 0.15},
	breakout.EventCeilingBounce:  {Freq: 520, EndFreq: 520, Duration: 30 * time.Millisecond, Volume: 0.15},
	breakout.EventPaddleHit:      {Freq: 220, EndFreq: 260, Duration: 60 * time.Millisecond, Volume: 0.3},
	breakout.EventFloorReset:     {Freq: 180, EndFreq: 60, Duration: 350 * time.Millisecond, Volume: 0.3, Noise: 0.3},
	breakout.EventRoundReset:     {Freq: 523, EndFreq: 1046, Duration: 250 * time.Millisecond, Volume: 0.25},
}

// CueFor returns the sound for an event kind.
func CueFor(kind breakout.EventKind) (Cue, bool) {
	c, ok := cues[kind]
	return c, ok
}

// Player manages the speaker and mixes cues as events arrive.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Initialize before cues become audible.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Safe to call more than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all cues.
func (p *Player) Close() {
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

// Handle plays the cue for an event. It has the breakout.Listener signature.
func (p *Player) Handle(e breakout.Event) {
	c, ok := CueFor(e.Kind)
	if !ok {
		return
	}
	p.Play(c)
}

// Play mixes one cue into the output.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(c.Duration), NewToneGenerator(sampleRate, c))
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}
