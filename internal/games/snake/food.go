package snake

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned by a FoodPlacer when every cell is occupied.
var ErrBoardFull = errors.New("snake: no free cell for food")

// FoodPlacer picks a cell for the next piece of food.
type FoodPlacer interface {
	Place(rng *rand.Rand, board BoardSize, occupied []Position) (Position, error)
}

// RejectionPlacer draws uniformly random cells until it finds a free one.
//
// The sampler is bounded: after MaxAttempts draws it enumerates the free
// cells and picks one of those uniformly, so a nearly full board costs one
// scan instead of an unbounded loop.
type RejectionPlacer struct {
	// MaxAttempts caps the random draws. 0 means 4 draws per board cell.
	MaxAttempts int
}

// Place returns a uniformly random free cell, or ErrBoardFull.
func (rp RejectionPlacer) Place(rng *rand.Rand, board BoardSize, occupied []Position) (Position, error) {
	cells := board.Cells()
	if cells <= 0 {
		return Position{}, ErrBoardFull
	}

	taken := make(map[Position]struct{}, len(occupied))
	for _, p := range occupied {
		if board.Contains(p) {
			taken[p] = struct{}{}
		}
	}
	if len(taken) >= cells {
		return Position{}, ErrBoardFull
	}

	attempts := rp.MaxAttempts
	if attempts <= 0 {
		attempts = 4 * cells
	}

	for range attempts {
		p := Position{X: rng.Intn(board.Width), Y: rng.Intn(board.Height)}
		if _, ok := taken[p]; !ok {
			return p, nil
		}
	}

	free := make([]Position, 0, cells-len(taken))
	for y := range board.Height {
		for x := range board.Width {
			p := Position{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free[rng.Intn(len(free))], nil
}
