package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events one save produces.
var watchDebounce = 100 * time.Millisecond

// errEmptyConfig marks a file caught between truncate and write.
var errEmptyConfig = errors.New("config file is empty")

// Watch reloads the config file at path whenever it is written and passes
// every config that loads and validates to onChange. knownRenderers is
// forwarded to Validate. Watch blocks until ctx is done.
//
// The parent directory is watched so editors that replace the file on save
// are still seen. Events are debounced and an empty file is ignored, so a
// save caught half way never yields the built-in defaults.
func Watch(ctx context.Context, path string, knownRenderers []string, logger *log.Logger, onChange func(SnakeConfig)) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot create config watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}
	target := filepath.Clean(path)

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(watchDebounce)

		case <-timer.C:
			cfg, loadErr := reloadFile(path, knownRenderers)
			if loadErr != nil {
				logger.Warn("ignoring config change", "path", path, "error", loadErr)
				continue
			}
			logger.Info("config reloaded", "path", path)
			onChange(cfg)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "error", watchErr)
		}
	}
}

// reloadFile loads and validates path, rejecting an empty file.
func reloadFile(path string, knownRenderers []string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return SnakeConfig{}, errEmptyConfig
	}
	cfg, err := parseConfig(path, data)
	if err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(knownRenderers); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}
