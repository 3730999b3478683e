package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// It returns the config and the path it was read from ("" for the embedded default).
func Load(customPath string) (SnakeConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, customPath, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	localPath := filepath.Join("configs", "snake.yaml")
	if cfg, err := loadFile(localPath); err == nil {
		return cfg, localPath, nil
	}

	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

func loadFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSnakeConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return parseConfig(path, data)
}

// parseConfig decodes data over the defaults, so missing keys keep them.
func parseConfig(path string, data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Overrides carries command-line values that take precedence over the file.
// Zero values leave the config untouched.
type Overrides struct {
	Difficulty string
	Renderer   string
	Width      int
	Height     int
	Muted      *bool
}

// Apply merges non-empty overrides into cfg.
func (o Overrides) Apply(cfg *SnakeConfig) {
	if o.Difficulty != "" {
		cfg.Difficulty.Default = o.Difficulty
	}
	if o.Renderer != "" {
		cfg.Display.Renderer = o.Renderer
	}
	if o.Width > 0 {
		cfg.Board.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Board.Height = o.Height
	}
	if o.Muted != nil {
		cfg.Display.Muted = *o.Muted
	}
}

// Marshal encodes the config as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
