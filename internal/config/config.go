// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Snake      SnakeBody        `yaml:"snake"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Display    DisplayConfig    `yaml:"display"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeBody defines the snake's starting shape.
type SnakeBody struct {
	InitialLength int `yaml:"initial_length"`
}

// DifficultyConfig defines the starting preset and the tick interval of each preset.
type DifficultyConfig struct {
	Default string      `yaml:"default"`
	Speeds  SpeedConfig `yaml:"speeds_ms"`
}

// SpeedConfig holds tick intervals in milliseconds.
type SpeedConfig struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// DisplayConfig selects the front-end presentation.
type DisplayConfig struct {
	Renderer string `yaml:"renderer"`
	Muted    bool   `yaml:"muted"`
}

// BoardSize converts the board section to the simulation type.
func (c SnakeConfig) BoardSize() snake.BoardSize {
	return snake.BoardSize{Width: c.Board.Width, Height: c.Board.Height}
}

// Speeds converts the millisecond values to simulation intervals.
func (c SnakeConfig) Speeds() snake.Speeds {
	return snake.Speeds{
		Easy:   time.Duration(c.Difficulty.Speeds.Easy) * time.Millisecond,
		Medium: time.Duration(c.Difficulty.Speeds.Medium) * time.Millisecond,
		Hard:   time.Duration(c.Difficulty.Speeds.Hard) * time.Millisecond,
	}
}

// DefaultDifficulty parses the configured starting preset.
func (c SnakeConfig) DefaultDifficulty() (snake.Difficulty, error) {
	return snake.ParseDifficulty(c.Difficulty.Default)
}

// GameOptions returns the simulation options described by the config.
func (c SnakeConfig) GameOptions() ([]snake.Option, error) {
	d, err := c.DefaultDifficulty()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return []snake.Option{
		snake.WithBoard(c.BoardSize()),
		snake.WithInitialLength(c.Snake.InitialLength),
		snake.WithSpeeds(c.Speeds()),
		snake.WithDifficulty(d),
	}, nil
}

// Validate checks the config for values the game cannot run with.
// knownRenderers lists accepted renderer IDs; nil skips that check.
func (c SnakeConfig) Validate(knownRenderers []string) error {
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("%w: snake.initial_length must be at least 1, got %d",
			ErrInvalidConfig, c.Snake.InitialLength)
	}
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Board.Width/2 < c.Snake.InitialLength-1 {
		return fmt.Errorf("%w: board width %d cannot hold a centered snake of length %d",
			ErrInvalidConfig, c.Board.Width, c.Snake.InitialLength)
	}
	if c.Board.Width*c.Board.Height <= c.Snake.InitialLength {
		return fmt.Errorf("%w: board %dx%d leaves no room for food beside a snake of length %d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height, c.Snake.InitialLength)
	}
	if err := c.Speeds().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.DefaultDifficulty(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if knownRenderers != nil {
		found := false
		for _, id := range knownRenderers {
			if id == c.Display.Renderer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Display.Renderer)
		}
	}
	return nil
}
