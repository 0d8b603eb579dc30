// Package audio synthesises the game's sound cues through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player plays sound cues. Implementations must not block the caller.
type Player interface {
	Play(cue core.Cue)
	Close()
}

// NopPlayer drops every cue.
type NopPlayer struct{}

// Play does nothing.
func (NopPlayer) Play(core.Cue) {}

// Close does nothing.
func (NopPlayer) Close() {}

// New returns a speaker-backed player, or a NopPlayer when audio is
// disabled or no output device is available.
func New(cfg config.AudioConfig, logger *log.Logger) Player {
	if !cfg.Enabled || cfg.Volume <= 0 {
		return NopPlayer{}
	}
	sm := NewSoundManager(cfg.Volume)
	if err := sm.Initialize(); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return NopPlayer{}
	}
	return sm
}

// SoundManager mixes cue sounds into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play mixes in the sound for cue. Unknown cues and calls before
// Initialize are ignored.
func (sm *SoundManager) Play(cue core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := cueStreamer(sampleRate, cue.String())
	if s == nil {
		return
	}

	// Mixer reads happen on the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// withVolume scales s by vol in [0, 1]. math.Log2(0) is -Inf, so zero is
// mapped to a silent stream.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
