package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/cue"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start
  Esc          - End the run / leave game over
  R            - Restart
  Tab          - Cycle difficulty (not while playing)
  V            - Cycle view (not while playing)
  M            - Toggle sound cues
  Q/Ctrl+C     - Quit

Difficulty, view and mute choices are remembered in the preferences database.

Examples:
  snake play
  snake play --difficulty easy
  snake play --renderer depth --width 30 --height 20`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := loadSettings(true)
	if err != nil {
		return err
	}
	defer s.close()

	game, err := s.newGame(flagSeed)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cues := cue.NewMuter(cue.Bell{W: os.Stdout})
	cues.SetMuted(s.cfg.Display.Muted)

	opts := tui.Options{
		Game:       game,
		RendererID: s.cfg.Display.Renderer,
		Cues:       cues,
		Logger:     logger,
		Width:      width,
		Height:     height,
	}
	if s.store != nil {
		opts.Prefs = s.store
	}

	logger.Info("starting game",
		"config", s.source,
		"board", s.cfg.BoardSize(),
		"difficulty", game.Difficulty(),
		"renderer", s.cfg.Display.Renderer,
	)
	return tui.Run(opts)
}
