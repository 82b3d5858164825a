package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func TestPlayerWithoutInitialize(t *testing.T) {
	p := NewPlayer()

	// None of these may panic or block without a speaker.
	p.Handle(breakout.Event{Kind: breakout.EventBrickDestroyed})
	p.Handle(breakout.Event{Kind: breakout.EventPhaseChanged})
	p.Play(Cue{Freq: 440, EndFreq: 440, Duration: 10 * time.Millisecond, Volume: 0.1})
	p.Close()
}

func TestPlayerInitialize(t *testing.T) {
	p := NewPlayer()
	if err := p.Initialize(); err != nil {
		// CI machines usually have no audio device.
		t.Logf("speaker unavailable: %v", err)
		return
	}
	defer p.Close()

	if err := p.Initialize(); err != nil {
		t.Errorf("second Initialize() = %v, expected nil", err)
	}
	p.Handle(breakout.Event{Kind: breakout.EventPaddleHit})
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind breakout.EventKind
		want bool
	}{
		{breakout.EventBrickDestroyed, true},
		{breakout.EventWallBounce, true},
		{breakout.EventCeilingBounce, true},
		{breakout.EventPaddleHit, true},
		{breakout.EventFloorReset, true},
		{breakout.EventRoundReset, true},
		{breakout.EventPhaseChanged, false},
	}

	for _, tt := range tests {
		c, ok := CueFor(tt.kind)
		if ok != tt.want {
			t.Errorf("CueFor(%v) ok = %v, expected %v", tt.kind, ok, tt.want)
			continue
		}
		if ok && (c.Duration <= 0 || c.Volume <= 0 || c.Volume > 1) {
			t.Errorf("CueFor(%v) = %+v, expected positive duration and volume in (0, 1]", tt.kind, c)
		}
	}
}

func TestToneGeneratorEnvelope(t *testing.T) {
	c := Cue{Freq: 440, EndFreq: 880, Duration: 20 * time.Millisecond, Volume: 0.5, Noise: 0.2}
	g := NewToneGenerator(sampleRate, c)
	total := sampleRate.N(c.Duration)

	samples := make([][2]float64, total+100)
	n, ok := g.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("Stream() = (%d, %v), expected (%d, true)", n, ok, len(samples))
	}

	var peak float64
	for i, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("sample %d: channels differ %v", i, s)
		}
		if math.Abs(s[0]) > c.Volume {
			t.Fatalf("sample %d = %v, exceeds volume %v", i, s[0], c.Volume)
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 {
		t.Error("generator produced silence")
	}

	for i := total; i < len(samples); i++ {
		if samples[i] != [2]float64{} {
			t.Fatalf("sample %d = %v after cue end, expected silence", i, samples[i])
		}
	}

	if err := g.Err(); err != nil {
		t.Errorf("Err() = %v, expected nil", err)
	}
}

func TestToneGeneratorDeterministic(t *testing.T) {
	c, _ := CueFor(breakout.EventFloorReset)
	a := make([][2]float64, 512)
	b := make([][2]float64, 512)
	NewToneGenerator(sampleRate, c).Stream(a)
	NewToneGenerator(sampleRate, c).Stream(b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
