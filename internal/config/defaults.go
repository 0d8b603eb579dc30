package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the built-in configuration.
// It mirrors defaults/arkanoid.yaml and is used if the embedded file cannot be parsed.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Window: ArkanoidWindow{
			Width:  960,
			Height: 540,
		},
		Ball: ArkanoidBall{
			Speed:  300,
			Radius: 8,
		},
		Paddle: ArkanoidPaddle{
			Speed:    500,
			Altitude: -200,
			Width:    104,
			Height:   24,
		},
		Blocks: ArkanoidBlocks{
			Width:     64,
			Height:    24,
			Gap:       8,
			TopMargin: 48,
		},
		Gameplay: ArkanoidGameplay{
			Lives:      3,
			MaxDelta:   0.1,
			MoveHoldMs: 150,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}
