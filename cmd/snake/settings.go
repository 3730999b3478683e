package main

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// settings is the resolved configuration for one command.
type settings struct {
	cfg    config.SnakeConfig
	source string
	store  *storage.Store // nil when preferences are disabled or unavailable
}

// loadSettings resolves config as file, then saved preferences (when
// withPrefs is set), then SNAKE_* environment variables, then flags.
// The result is validated.
func loadSettings(withPrefs bool) (settings, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}
	s := settings{cfg: cfg, source: source}

	if withPrefs && flagDBPath != "" {
		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			logger.Warn("could not open preferences database", "path", flagDBPath, "error", openErr)
		} else {
			s.store = store
			s.applyPreferences()
		}
	}

	if err := applyOverrides(&s.cfg); err != nil {
		s.close()
		return settings{}, err
	}

	if err := s.cfg.Validate(registry.IDs()); err != nil {
		s.close()
		return settings{}, err
	}
	return s, nil
}

// applyOverrides merges the environment and then the command-line flags.
func applyOverrides(cfg *config.SnakeConfig) error {
	envOverrides, err := config.EnvOverrides()
	if err != nil {
		return err
	}
	envOverrides.Apply(cfg)

	config.Overrides{
		Difficulty: flagDifficulty,
		Renderer:   flagRenderer,
		Width:      flagWidth,
		Height:     flagHeight,
	}.Apply(cfg)
	return nil
}

// applyPreferences merges remembered choices. Stale values are skipped
// and removed from the store.
func (s *settings) applyPreferences() {
	prefs, err := s.store.LoadPreferences()
	if err != nil {
		logger.Warn("could not load preferences", "error", err)
		return
	}

	var o config.Overrides
	if prefs.Difficulty != "" {
		if _, parseErr := snake.ParseDifficulty(prefs.Difficulty); parseErr == nil {
			o.Difficulty = prefs.Difficulty
		} else {
			s.forget(storage.KeyDifficulty, prefs.Difficulty)
		}
	}
	if prefs.Renderer != "" {
		if registry.Exists(prefs.Renderer) {
			o.Renderer = prefs.Renderer
		} else {
			s.forget(storage.KeyRenderer, prefs.Renderer)
		}
	}
	o.Muted = prefs.Muted
	o.Apply(&s.cfg)

	logger.Debug("preferences applied", "difficulty", o.Difficulty, "renderer", o.Renderer)
}

// forget drops a saved value that no longer applies.
func (s *settings) forget(key, value string) {
	logger.Debug("dropping stale preference", "key", key, "value", value)
	if err := s.store.Delete(key); err != nil {
		logger.Warn("could not drop stale preference", "key", key, "error", err)
	}
}

// newGame builds a game from the resolved config. seed 0 means time-based.
func (s settings) newGame(seed int64) (*snake.Game, error) {
	opts, err := s.cfg.GameOptions()
	if err != nil {
		return nil, err
	}
	if seed != 0 {
		opts = append(opts, snake.WithSeed(seed))
	}
	g, err := snake.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create game: %w", err)
	}
	return g, nil
}

func (s settings) close() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		logger.Warn("could not close preferences database", "error", err)
	}
}
