// snake is a terminal Snake game with a headless simulation mode.
//
// Usage:
//
//	snake                    - Play in this terminal (same as "snake play")
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake renderers          - List available views
//	snake simulate           - Run autopilot games without a UI
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config YAML (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--db <path>          - Preferences database (default: ~/.snake/prefs.db)
//	--difficulty <name>  - easy, medium or hard
//	--renderer <id>      - classic, blocks or depth
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import renderers to register them
	_ "github.com/vovakirdan/tui-snake/internal/render"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagRenderer   string
	flagWidth      int
	flagHeight     int
	flagLogLevel   string
	flagLogFile    string
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake steers a growing snake around a walled board to eat food.
Running into a wall or into the snake itself ends the game.

Available commands:
  play       - Play in this terminal (default)
  serve      - Start SSH server for remote play
  renderers  - List available views
  simulate   - Run autopilot games headlessly
  config     - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard --renderer blocks
  snake serve --ssh :2222
  snake simulate --games 20 --seed 42
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentPreRunE = setupLogging
	rootCmd.PersistentPostRunE = closeLogging

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.snake/prefs.db", "Path to preferences database (empty to disable)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
	pf.StringVar(&flagRenderer, "renderer", "", "Renderer ID (see 'snake renderers')")
	pf.IntVar(&flagWidth, "width", 0, "Board width in cells (0 = from config)")
	pf.IntVar(&flagHeight, "height", 0, "Board height in cells (0 = from config)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderersCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging configures the package logger. Interactive play owns the
// terminal, so it only logs when --log-file is given.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	interactive := cmd == rootCmd || cmd == playCmd
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		logFile = f
		out = f
	case interactive:
		out = io.Discard
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}
