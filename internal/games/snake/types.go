package snake

import (
	"fmt"
	"strings"
)

// Position is a grid cell coordinate, 0-indexed.
type Position struct {
	X, Y int
}

// Add returns p moved by the unit vector of d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// BoardSize is the playfield dimension in cells. It does not change during a session.
type BoardSize struct {
	Width, Height int
}

// Contains reports whether p lies inside [0,Width) x [0,Height).
func (b BoardSize) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cells returns the number of cells on the board.
func (b BoardSize) Cells() int {
	return b.Width * b.Height
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit vector for d. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name like "up" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("snake: unknown direction %q", s)
}

// Difficulty is a named preset controlling the tick interval.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists all presets from slowest to fastest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Next returns the following preset, wrapping from hard back to easy.
func (d Difficulty) Next() Difficulty {
	return Difficulty((int(d) + 1) % len(Difficulties))
}

// Valid reports whether d is one of the known presets.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// ParseDifficulty converts "easy", "medium" or "hard" into a Difficulty.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyMedium, fmt.Errorf("snake: unknown difficulty %q", s)
}

// Phase is the coarse game lifecycle state.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// TickResult is the outcome of one simulation step.
type TickResult int

const (
	// ResultMove means the snake advanced one cell without eating.
	ResultMove TickResult = iota
	// ResultEat means the snake grew by one and the score went up.
	ResultEat
	// ResultCollision means the head hit a wall or the body. The game has ended.
	ResultCollision
	// ResultWon means the snake ate the last food and fills the whole board.
	ResultWon
)

func (r TickResult) String() string {
	switch r {
	case ResultMove:
		return "move"
	case ResultEat:
		return "eat"
	case ResultCollision:
		return "collision"
	case ResultWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the result ends the game.
func (r TickResult) Terminal() bool {
	return r == ResultCollision || r == ResultWon
}
