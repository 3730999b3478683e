package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides mirrors Overrides with SNAKE_* environment variables.
type envOverrides struct {
	Difficulty string `env:"SNAKE_DIFFICULTY"`
	Renderer   string `env:"SNAKE_RENDERER"`
	Width      int    `env:"SNAKE_BOARD_WIDTH"`
	Height     int    `env:"SNAKE_BOARD_HEIGHT"`
	Muted      *bool  `env:"SNAKE_MUTED"`
}

// EnvOverrides reads SNAKE_DIFFICULTY, SNAKE_RENDERER, SNAKE_BOARD_WIDTH,
// SNAKE_BOARD_HEIGHT and SNAKE_MUTED. Unset variables leave the config untouched.
func EnvOverrides() (Overrides, error) {
	e, err := env.ParseAs[envOverrides]()
	if err != nil {
		return Overrides{}, fmt.Errorf("%w: parsing environment: %w", ErrInvalidConfig, err)
	}
	return Overrides(e), nil
}
