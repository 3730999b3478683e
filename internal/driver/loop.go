// Package driver owns the real-time tick timer for a snake game and
// serializes access to it from other goroutines.
package driver

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrRunning is returned by Start when the loop is already ticking.
var ErrRunning = errors.New("driver: loop already running")

// TickFunc receives the result of every tick and the state after it.
// It runs on the loop goroutine without the game lock held.
type TickFunc func(snake.TickResult, snake.Snapshot)

// Loop advances a Game at its difficulty interval until the game ends,
// Stop is called or the context is cancelled.
type Loop struct {
	mu       sync.Mutex
	game     *snake.Game
	handlers []TickFunc
	logger   *log.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoop wraps g. A nil logger discards log output.
func NewLoop(g *snake.Game, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		game:   g,
		logger: logger,
	}
}

// OnTick registers f to be called after every tick.
func (l *Loop) OnTick(f TickFunc) {
	l.mu.Lock()
	l.handlers = append(l.handlers, f)
	l.mu.Unlock()
}

// Do runs f with exclusive access to the game.
func (l *Loop) Do(f func(*snake.Game)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(l.game)
}

// Snapshot returns the current state.
func (l *Loop) Snapshot() snake.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Snapshot()
}

// Running reports whether the timer goroutine is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running()
}

func (l *Loop) running() bool {
	if l.done == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
		return true
	}
}

// Start moves a ready game into play and begins ticking at GameSpeed.
// A game that is already playing keeps its state and resumes ticking.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running() {
		return ErrRunning
	}
	if l.game.Phase() != snake.PhasePlaying {
		if err := l.game.Start(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})

	interval := l.game.GameSpeed()
	l.logger.Debug("loop started", "interval", interval, "difficulty", l.game.Difficulty())
	go l.run(ctx, cancel, interval, l.done)
	return nil
}

// Stop cancels the timer. It does not wait; use Wait for that.
// Stop is safe to call from a TickFunc.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until the timer goroutine has exited.
func (l *Loop) Wait() {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	if done != nil {
		<-done
	}
}

// run ticks until the game ends or ctx is done. cancel releases ctx on
// the way out.
func (l *Loop) run(ctx context.Context, cancel context.CancelFunc, interval time.Duration, done chan struct{}) {
	defer close(done)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if finished := l.step(); finished {
				return
			}
		case <-ctx.Done():
			l.logger.Debug("loop cancelled", "reason", ctx.Err())
			return
		}
	}
}

// step runs one tick and fans the result out. It reports true once the
// game has left the playing phase.
func (l *Loop) step() bool {
	l.mu.Lock()
	if l.game.Phase() != snake.PhasePlaying {
		l.mu.Unlock()
		return true
	}
	result := l.game.Tick()
	snap := l.game.Snapshot()
	handlers := append([]TickFunc(nil), l.handlers...)
	l.mu.Unlock()

	for _, h := range handlers {
		h(result, snap)
	}

	if result.Terminal() {
		l.logger.Info("game over", "result", result, "score", snap.Score, "ticks", snap.Tick)
		return true
	}
	return false
}
