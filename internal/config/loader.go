package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const arkanoidFile = "arkanoid.yaml"

// LoadArkanoid loads the game configuration.
// Search order: customPath -> ~/.arkanoid/configs/arkanoid.yaml -> ./configs/arkanoid.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file may set only the
// values it wants to change.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	cfg := embeddedArkanoid()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(arkanoidFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			user := cfg
			if err := yaml.Unmarshal(data, &user); err == nil {
				return user, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", arkanoidFile)); err == nil {
		local := cfg
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, nil
		}
	}

	return cfg, nil
}

// embeddedArkanoid decodes the embedded default YAML.
func embeddedArkanoid() ArkanoidConfig {
	var cfg ArkanoidConfig
	if err := yaml.Unmarshal(defaultArkanoidYAML, &cfg); err != nil {
		return DefaultArkanoidConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid", "configs", filename)
}

// ApplyArkanoidPreset modifies the config based on a difficulty preset.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 136
		cfg.Ball.Speed = 250
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 380
	}
}
