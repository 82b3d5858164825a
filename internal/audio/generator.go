package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator renders a Cue: a sine sweep with optional noise under a
// linear fade-out envelope. It streams silence once the cue has ended.
type ToneGenerator struct {
	sr    beep.SampleRate
	cue   Cue
	pos   int
	total int
	phase float64
	seed  uint32
}

// NewToneGenerator creates a generator for one cue.
func NewToneGenerator(sr beep.SampleRate, c Cue) *ToneGenerator {
	return &ToneGenerator{
		sr:    sr,
		cue:   c,
		total: max(sr.N(c.Duration), 1),
		seed:  0x9e3779b9,
	}
}

// Stream fills samples with the next part of the cue.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			samples[i] = [2]float64{}
			continue
		}

		progress := float64(g.pos) / float64(g.total)
		freq := g.cue.Freq + (g.cue.EndFreq-g.cue.Freq)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// xorshift noise keeps output reproducible
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		envelope := 1 - progress
		sample := g.cue.Volume * envelope * ((1-g.cue.Noise)*math.Sin(g.phase) + g.cue.Noise*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *ToneGenerator) Err() error {
	return nil
}
