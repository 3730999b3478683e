package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/cue"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// PreferenceSaver persists the choices made on the game screen.
// *storage.Store satisfies it.
type PreferenceSaver interface {
	SavePreferences(p storage.Preferences) error
}

// Options configures a Model.
type Options struct {
	Game       *snake.Game
	RendererID string
	Prefs      PreferenceSaver    // Optional
	Cues       *cue.Muter         // Optional
	Logger     *log.Logger        // Optional
	Styles     *lipgloss.Renderer // Optional, one per SSH session
	Width      int
	Height     int
}

// Model is the Bubble Tea model for one snake session.
type Model struct {
	game     *snake.Game
	renderer registry.Renderer
	screen   *core.Screen
	prefs    PreferenceSaver
	cues     *cue.Muter
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	palette  palette

	// gen is bumped whenever a run starts or stops so that ticks armed by
	// an earlier run are ignored.
	gen      uint64
	quitting bool
}

// NewModel creates a model. An unknown renderer ID falls back to the first
// registered renderer.
func NewModel(opts Options) (Model, error) {
	if opts.Game == nil {
		return Model{}, errors.New("tui: no game")
	}

	id := opts.RendererID
	if !registry.Exists(id) {
		id = registry.Next("")
	}
	r, err := registry.Create(id)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cues := opts.Cues
	if cues == nil {
		cues = cue.NewMuter(nil)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	return Model{
		game:     opts.Game,
		renderer: r,
		screen:   core.NewScreen(opts.Width, opts.Height-1),
		prefs:    opts.Prefs,
		cues:     cues,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     h,
		palette:  newPalette(opts.Styles),
	}, nil
}

// Init implements tea.Model. Nothing ticks until the player starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleTick advances the game if the tick belongs to the current run.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.game.Phase() != snake.PhasePlaying {
		return m, nil
	}

	result := m.game.Tick()
	if err := m.cues.Play(cue.ForResult(result)); err != nil {
		m.logger.Debug("cue failed", "error", err)
	}

	if result.Terminal() {
		m.gen++
		m.logger.Info("game over", "result", result, "score", m.game.Score(), "ticks", m.game.Ticks())
		return m, nil
	}
	return m, tickCmd(m.game.GameSpeed(), m.gen)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	phase := m.game.Phase()

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		m.game.SetDirection(snake.DirUp)
	case core.ActionDown:
		m.game.SetDirection(snake.DirDown)
	case core.ActionLeft:
		m.game.SetDirection(snake.DirLeft)
	case core.ActionRight:
		m.game.SetDirection(snake.DirRight)

	case core.ActionConfirm:
		switch phase {
		case snake.PhaseReady:
			return m.start()
		case snake.PhaseEnded:
			return m.restart()
		}

	case core.ActionBack:
		switch phase {
		case snake.PhasePlaying:
			m.game.End()
			m.gen++
			m.logger.Info("run ended", "score", m.game.Score())
		case snake.PhaseEnded:
			return m.restart()
		}

	case core.ActionRestart:
		return m.restart()

	case core.ActionDifficulty:
		if phase == snake.PhasePlaying {
			return m, nil
		}
		next := m.game.Difficulty().Next()
		if err := m.game.SetDifficulty(next); err != nil {
			m.logger.Warn("difficulty change rejected", "error", err)
			return m, nil
		}
		m.save(storage.Preferences{Difficulty: next.String()})

	case core.ActionRenderer:
		if phase == snake.PhasePlaying {
			return m, nil
		}
		r, err := registry.Create(registry.Next(m.renderer.ID()))
		if err != nil {
			m.logger.Warn("renderer change failed", "error", err)
			return m, nil
		}
		m.renderer = r
		m.save(storage.Preferences{Renderer: r.ID()})

	case core.ActionMute:
		muted := m.cues.Toggle()
		m.save(storage.Preferences{Muted: &muted})
	}

	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	if err := m.game.Start(); err != nil {
		m.logger.Warn("start rejected", "error", err)
		return m, nil
	}
	m.gen++
	m.logger.Debug("run started", "difficulty", m.game.Difficulty(), "interval", m.game.GameSpeed())
	return m, tickCmd(m.game.GameSpeed(), m.gen)
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	m.game.Restart()
	m.gen++
	return m, nil
}

func (m Model) save(p storage.Preferences) {
	if m.prefs == nil {
		return
	}
	if err := m.prefs.SavePreferences(p); err != nil {
		m.logger.Warn("could not save preferences", "error", err)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.game.Snapshot())

	var b strings.Builder
	b.WriteString(m.palette.render(m.screen))
	b.WriteString("\n")
	b.WriteString(m.palette.help.Render(m.help.View(m.keys)))
	if m.cues.Muted() {
		b.WriteString(m.palette.muted.Render("  [muted]"))
	}
	return b.String()
}

// Renderer returns the ID of the active renderer.
func (m Model) Renderer() string {
	return m.renderer.ID()
}

// Generation returns the current run generation.
func (m Model) Generation() uint64 {
	return m.gen
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts a Bubble Tea program on the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
