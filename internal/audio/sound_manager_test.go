package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// drain reads a streamer to the end and returns every left-channel sample.
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneGeneratorLengthAndRange(t *testing.T) {
	g := NewToneGenerator(sampleRate, 440, 880, 100*time.Millisecond, 10)
	samples := drain(t, g)

	if len(samples) != sampleRate.N(100*time.Millisecond) {
		t.Errorf("samples = %d, expected %d", len(samples), sampleRate.N(100*time.Millisecond))
	}

	peak := 0.0
	for _, s := range samples {
		if math.IsNaN(s) || math.Abs(s) > 1 {
			t.Fatalf("sample out of range: %f", s)
		}
		peak = math.Max(peak, math.Abs(s))
	}
	if peak == 0 {
		t.Error("tone is silent")
	}
	if samples[0] != 0 {
		t.Errorf("first sample = %f, expected 0 from the attack ramp", samples[0])
	}

	if g.Err() != nil {
		t.Errorf("Err() = %v", g.Err())
	}
	if n, ok := g.Stream(make([][2]float64, 8)); n != 0 || ok {
		t.Errorf("finished generator returned %d, %v", n, ok)
	}
}

func TestEveryCueHasASound(t *testing.T) {
	cues := []core.Cue{
		core.CueBounce, core.CueBlockBreak, core.CueBlockBounce,
		core.CueWin, core.CueLose, core.CueLoseLife,
	}
	for _, c := range cues {
		s := cueStreamer(sampleRate, c.String())
		if s == nil {
			t.Errorf("no sound for cue %s", c)
			continue
		}
		if len(drain(t, s)) == 0 {
			t.Errorf("cue %s produced no samples", c)
		}
	}

	if cueStreamer(sampleRate, "nope") != nil {
		t.Error("unknown cue should have no sound")
	}
}

func TestMelodyLength(t *testing.T) {
	var want int
	for _, n := range cueNotes["win"] {
		want += sampleRate.N(n.length)
	}
	if got := len(drain(t, cueStreamer(sampleRate, "win"))); got != want {
		t.Errorf("win cue = %d samples, expected %d", got, want)
	}
}

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(core.CueBounce)
	sm.Close()
	sm.Close()
}

func TestNewDisabledReturnsNop(t *testing.T) {
	p := New(config.AudioConfig{Enabled: false, Volume: 1}, nil)
	if _, ok := p.(NopPlayer); !ok {
		t.Errorf("New() = %T, expected NopPlayer", p)
	}
	p.Play(core.CueWin)
	p.Close()

	p = New(config.AudioConfig{Enabled: true, Volume: 0}, nil)
	if _, ok := p.(NopPlayer); !ok {
		t.Errorf("New() with zero volume = %T, expected NopPlayer", p)
	}
}

func TestWithVolumeSilent(t *testing.T) {
	s := withVolume(NewToneGenerator(sampleRate, 440, 440, 10*time.Millisecond, 0), 0)
	for _, v := range drain(t, s) {
		if v != 0 {
			t.Fatalf("silent stream produced %f", v)
		}
	}
}
