// Package cue maps tick results to sound cues and plays them.
package cue

import (
	"io"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Cue is a sound event produced by a tick.
type Cue int

const (
	None Cue = iota
	Move
	Eat
	Hit
)

func (c Cue) String() string {
	switch c {
	case Move:
		return "move"
	case Eat:
		return "eat"
	case Hit:
		return "hit"
	default:
		return "none"
	}
}

// ForResult returns the cue for a tick result. A win plays the eat cue,
// since the last food was just eaten.
func ForResult(r snake.TickResult) Cue {
	switch r {
	case snake.ResultMove:
		return Move
	case snake.ResultEat, snake.ResultWon:
		return Eat
	case snake.ResultCollision:
		return Hit
	default:
		return None
	}
}

// Player plays a cue. Implementations must not block the caller for long.
type Player interface {
	Play(c Cue) error
}

// Bell rings the terminal bell for eat and hit. Move is silent since a bell
// every tick is noise.
type Bell struct {
	W io.Writer
}

// Play implements Player.
func (b Bell) Play(c Cue) error {
	if b.W == nil || (c != Eat && c != Hit) {
		return nil
	}
	_, err := io.WriteString(b.W, "\a")
	return err
}

// Muter gates a Player behind a mute switch. It starts muted.
type Muter struct {
	mu     sync.Mutex
	player Player
	muted  bool
}

// NewMuter wraps p. A nil p is a silent player.
func NewMuter(p Player) *Muter {
	return &Muter{player: p, muted: true}
}

// Play forwards c unless muted.
func (m *Muter) Play(c Cue) error {
	m.mu.Lock()
	p, muted := m.player, m.muted
	m.mu.Unlock()

	if muted || p == nil || c == None {
		return nil
	}
	return p.Play(c)
}

// Toggle flips the mute switch and returns the new state.
func (m *Muter) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	return m.muted
}

// SetMuted sets the mute switch.
func (m *Muter) SetMuted(muted bool) {
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()
}

// Muted reports whether cues are suppressed.
func (m *Muter) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}
