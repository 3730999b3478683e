package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  20,
			Height: 15,
		},
		Snake: SnakeBody{
			InitialLength: 3,
		},
		Difficulty: DifficultyConfig{
			Default: "medium",
			Speeds: SpeedConfig{
				Easy:   250,
				Medium: 175,
				Hard:   100,
			},
		},
		Display: DisplayConfig{
			Renderer: "classic",
			Muted:    true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
