// Package config provides YAML-based game configuration loading and
// difficulty management for Arkanoid.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("config: invalid value")

// ArkanoidConfig contains all configuration for the game.
// Lengths are world units (pixels of the play field), speeds are units per second.
type ArkanoidConfig struct {
	Window     ArkanoidWindow   `yaml:"window"`
	Ball       ArkanoidBall     `yaml:"ball"`
	Paddle     ArkanoidPaddle   `yaml:"paddle"`
	Blocks     ArkanoidBlocks   `yaml:"blocks"`
	Gameplay   ArkanoidGameplay `yaml:"gameplay"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArkanoidWindow defines the play field size.
type ArkanoidWindow struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArkanoidBall defines ball parameters.
type ArkanoidBall struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// ArkanoidPaddle defines paddle parameters.
type ArkanoidPaddle struct {
	Speed    float64 `yaml:"speed"`
	Altitude float64 `yaml:"altitude"` // Centre y of the paddle
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// ArkanoidBlocks defines block layout parameters.
type ArkanoidBlocks struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Gap       float64 `yaml:"gap"`
	TopMargin float64 `yaml:"top_margin"` // Distance from the top wall to the first row
}

// ArkanoidGameplay defines round rules and frame timing.
type ArkanoidGameplay struct {
	Lives      int     `yaml:"lives"`
	MaxDelta   float64 `yaml:"max_delta"`    // Longest frame the simulation accepts, seconds
	MoveHoldMs int     `yaml:"move_hold_ms"` // How long a key press keeps the paddle moving
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Validate reports the first unusable value.
func (c ArkanoidConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"window size", c.Window.Width > 0 && c.Window.Height > 0},
		{"ball speed", c.Ball.Speed > 0},
		{"ball radius", c.Ball.Radius > 0},
		{"paddle size", c.Paddle.Width > 0 && c.Paddle.Height > 0},
		{"paddle width", c.Paddle.Width < c.Window.Width},
		{"block size", c.Blocks.Width > 0 && c.Blocks.Height > 0},
		{"block gap", c.Blocks.Gap >= 0},
		{"lives", c.Gameplay.Lives > 0},
		{"audio volume", c.Audio.Volume >= 0 && c.Audio.Volume <= 1},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.name)
		}
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
