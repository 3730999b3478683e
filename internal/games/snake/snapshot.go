package snake

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot is a read-only copy of the game state handed to renderers and
// used to compare runs in determinism tests.
type Snapshot struct {
	Tick       uint64
	Board      BoardSize
	Body       []Position // Head at index 0
	Food       Position
	HasFood    bool
	Direction  Direction
	Score      int
	Phase      Phase
	Difficulty Difficulty
	Speed      time.Duration
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.ticks,
		Board:      g.board,
		Body:       g.Snake(),
		Food:       g.food,
		HasFood:    g.hasFood,
		Direction:  g.direction,
		Score:      g.score,
		Phase:      g.phase,
		Difficulty: g.difficulty,
		Speed:      g.GameSpeed(),
	}
}

// Head returns the head position, or the zero Position for an empty body.
func (s Snapshot) Head() Position {
	if len(s.Body) == 0 {
		return Position{}
	}
	return s.Body[0]
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Board != o.Board || s.Food != o.Food || s.HasFood != o.HasFood ||
		s.Direction != o.Direction || s.Score != o.Score || s.Phase != o.Phase ||
		s.Difficulty != o.Difficulty || s.Speed != o.Speed || len(s.Body) != len(o.Body) {
		return false
	}
	for i := range s.Body {
		if s.Body[i] != o.Body[i] {
			return false
		}
	}
	return true
}

// String renders the snapshot as a compact debug line.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d phase=%s score=%d len=%d dir=%s",
		s.Tick, s.Phase, s.Score, len(s.Body), s.Direction)
	head := s.Head()
	fmt.Fprintf(&b, " head=(%d,%d)", head.X, head.Y)
	if s.HasFood {
		fmt.Fprintf(&b, " food=(%d,%d)", s.Food.X, s.Food.Y)
	}
	return b.String()
}
