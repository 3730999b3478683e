package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagWatch       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game. Sessions start with the
configured difficulty and view; preferences are not saved for remote players.

With --watch the config file is reloaded when it changes. Board, speed and
difficulty changes apply to connections made after the reload.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --config ./snake.yaml --watch

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

// liveSettings guards the settings new sessions are built from.
type liveSettings struct {
	mu sync.RWMutex
	s  settings
}

func (l *liveSettings) newGame() (*snake.Game, error) {
	l.mu.RLock()
	s := l.s
	l.mu.RUnlock()
	return s.newGame(flagSeed)
}

func (l *liveSettings) replace(cfg config.SnakeConfig) {
	if err := applyOverrides(&cfg); err != nil {
		logger.Warn("ignoring reloaded config", "error", err)
		return
	}
	if err := cfg.Validate(registry.IDs()); err != nil {
		logger.Warn("ignoring reloaded config", "error", err)
		return
	}
	l.mu.Lock()
	l.s.cfg = cfg
	l.mu.Unlock()
}

func runServe(_ *cobra.Command, _ []string) error {
	s, err := loadSettings(false)
	if err != nil {
		return err
	}
	live := &liveSettings{s: s}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.RendererID = s.cfg.Display.Renderer
	cfg.Muted = s.cfg.Display.Muted
	cfg.NewGame = live.newGame

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("snake-ssh"))
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})

	switch {
	case !flagWatch:
	case s.source == "":
		logger.Warn("--watch ignored: running on built-in defaults")
	default:
		g.Go(func() error {
			return config.Watch(ctx, s.source, registry.IDs(), logger.WithPrefix("config"), live.replace)
		})
	}

	return g.Wait()
}
