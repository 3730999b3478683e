package driver

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Pilot chooses the next direction from a snapshot.
type Pilot interface {
	Steer(snap snake.Snapshot) snake.Direction
}

// Autopilot steers greedily toward the food. It never picks a move that
// dies on the next tick when a safe one exists, and it prefers moves that
// leave at least a body length of open space reachable.
type Autopilot struct{}

// Steer implements Pilot.
func (Autopilot) Steer(snap snake.Snapshot) snake.Direction {
	if len(snap.Body) == 0 {
		return snap.Direction
	}

	occupied := make(map[snake.Position]struct{}, len(snap.Body))
	for _, p := range snap.Body {
		occupied[p] = struct{}{}
	}

	type candidate struct {
		dir  snake.Direction
		dist int
		room bool
	}
	var best *candidate

	// Current direction first so ties keep the snake straight.
	order := []snake.Direction{snap.Direction, snake.DirRight, snake.DirDown, snake.DirLeft, snake.DirUp}
	for _, d := range order {
		if d == snap.Direction.Opposite() {
			continue
		}
		next := snap.Head().Add(d)
		if !snap.Board.Contains(next) {
			continue
		}
		if _, hit := occupied[next]; hit {
			continue
		}

		c := candidate{
			dir:  d,
			dist: core.Abs(snap.Food.X-next.X) + core.Abs(snap.Food.Y-next.Y),
			room: reachable(snap.Board, occupied, next, len(snap.Body)) >= len(snap.Body),
		}
		if !snap.HasFood {
			c.dist = 0
		}
		if best == nil || better(c.room, c.dist, best.room, best.dist) {
			best = &c
		}
	}

	if best == nil {
		return snap.Direction
	}
	return best.dir
}

func better(room bool, dist int, bestRoom bool, bestDist int) bool {
	if room != bestRoom {
		return room
	}
	return dist < bestDist
}

// reachable counts free cells connected to start, stopping at limit.
func reachable(board snake.BoardSize, occupied map[snake.Position]struct{}, start snake.Position, limit int) int {
	seen := map[snake.Position]struct{}{start: {}}
	queue := []snake.Position{start}
	for len(queue) > 0 && len(seen) < limit {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []snake.Direction{snake.DirRight, snake.DirDown, snake.DirLeft, snake.DirUp} {
			n := p.Add(d)
			if !board.Contains(n) {
				continue
			}
			if _, ok := occupied[n]; ok {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(seen)
}
