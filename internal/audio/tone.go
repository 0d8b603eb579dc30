package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator produces a sine tone that glides from one frequency to
// another with an exponential decay envelope.
type ToneGenerator struct {
	sr      beep.SampleRate
	from    float64
	to      float64
	decay   float64
	samples int
	pos     int
	phase   float64
}

// NewToneGenerator creates a tone of the given length. decay is the envelope
// rate per second; zero keeps a flat level.
func NewToneGenerator(sr beep.SampleRate, from, to float64, length time.Duration, decay float64) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		decay:   decay,
		samples: sr.N(length),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		// Short fade in avoids a click at the start
		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		envelope := attack * math.Exp(-t*g.decay)

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.3 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// note is one step of a cue's melody.
type note struct {
	from, to float64
	length   time.Duration
	decay    float64
}

// cueNotes lists the melody for each cue.
var cueNotes = map[string][]note{
	"bounce":       {{from: 440, to: 440, length: 60 * time.Millisecond, decay: 30}},
	"block_bounce": {{from: 660, to: 620, length: 50 * time.Millisecond, decay: 40}},
	"block_break":  {{from: 880, to: 1320, length: 90 * time.Millisecond, decay: 20}},
	"lose_life":    {{from: 330, to: 165, length: 300 * time.Millisecond, decay: 4}},
	"lose": {
		{from: 330, to: 330, length: 200 * time.Millisecond, decay: 3},
		{from: 262, to: 262, length: 200 * time.Millisecond, decay: 3},
		{from: 196, to: 130, length: 500 * time.Millisecond, decay: 2},
	},
	"win": {
		{from: 523, to: 523, length: 120 * time.Millisecond, decay: 6},
		{from: 659, to: 659, length: 120 * time.Millisecond, decay: 6},
		{from: 784, to: 784, length: 120 * time.Millisecond, decay: 6},
		{from: 1047, to: 1047, length: 400 * time.Millisecond, decay: 3},
	},
}

// cueStreamer builds the sound for a cue name, or nil for an unknown cue.
func cueStreamer(sr beep.SampleRate, name string) beep.Streamer {
	notes, ok := cueNotes[name]
	if !ok {
		return nil
	}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		streamers = append(streamers, NewToneGenerator(sr, n.from, n.to, n.length, n.decay))
	}
	if len(streamers) == 1 {
		return streamers[0]
	}
	return beep.Seq(streamers...)
}
