// Package snake implements the Snake simulation core: the board and snake
// model, the per-tick update, food placement and the difficulty to speed
// mapping. It performs no I/O and knows nothing about rendering or timers.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Defaults match the classic board.
const (
	DefaultWidth         = 20
	DefaultHeight        = 15
	DefaultInitialLength = 3
)

var (
	// ErrNotReady is returned by Start when the game is not in the ready phase.
	ErrNotReady = errors.New("snake: game is not ready")
	// ErrPlaying is returned by SetDifficulty while a game is running.
	ErrPlaying = errors.New("snake: cannot change difficulty while playing")
	// ErrInvalidBoard is returned by New when the initial snake does not fit
	// or leaves no cell for food.
	ErrInvalidBoard = errors.New("snake: board too small for initial snake")
)

// Speeds maps each difficulty to its tick interval.
type Speeds struct {
	Easy   time.Duration
	Medium time.Duration
	Hard   time.Duration
}

// DefaultSpeeds returns the stock intervals: easy 250ms, medium 175ms, hard 100ms.
func DefaultSpeeds() Speeds {
	return Speeds{
		Easy:   250 * time.Millisecond,
		Medium: 175 * time.Millisecond,
		Hard:   100 * time.Millisecond,
	}
}

// For returns the interval for d. Unknown presets get the medium interval.
func (s Speeds) For(d Difficulty) time.Duration {
	switch d {
	case DifficultyEasy:
		return s.Easy
	case DifficultyHard:
		return s.Hard
	default:
		return s.Medium
	}
}

// Validate checks that every interval is positive and that they strictly
// decrease from easy to hard.
func (s Speeds) Validate() error {
	if s.Hard <= 0 {
		return fmt.Errorf("snake: hard interval must be positive, got %v", s.Hard)
	}
	if s.Easy <= s.Medium || s.Medium <= s.Hard {
		return fmt.Errorf("snake: intervals must decrease from easy to hard, got %v/%v/%v",
			s.Easy, s.Medium, s.Hard)
	}
	return nil
}

// Option configures a Game.
type Option func(*Game)

// WithBoard sets the board dimensions.
func WithBoard(b BoardSize) Option {
	return func(g *Game) { g.board = b }
}

// WithSeed seeds the food RNG so a run can be reproduced.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithDifficulty sets the starting difficulty.
func WithDifficulty(d Difficulty) Option {
	return func(g *Game) { g.difficulty = d }
}

// WithSpeeds overrides the difficulty intervals.
func WithSpeeds(s Speeds) Option {
	return func(g *Game) { g.speeds = s }
}

// WithInitialLength sets the snake length after Restart.
func WithInitialLength(n int) Option {
	return func(g *Game) { g.initialLength = n }
}

// WithPlacer replaces the food placement strategy.
func WithPlacer(p FoodPlacer) Option {
	return func(g *Game) { g.placer = p }
}

// Game holds the authoritative Snake state and advances it one tick at a time.
//
// A Game is not safe for concurrent use. Tick and the mutators touch the
// body, food and score together, so callers on several goroutines must
// serialize access (see driver.Loop).
type Game struct {
	board         BoardSize
	initialLength int
	speeds        Speeds
	placer        FoodPlacer
	rng           *rand.Rand

	body       []Position // Head at index 0
	heading    Direction  // Direction of the last completed move
	direction  Direction  // Direction the next tick will use
	food       Position
	hasFood    bool
	score      int
	phase      Phase
	difficulty Difficulty
	ticks      uint64
}

// New creates a game in the ready phase with a centered snake and food placed.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		board:         BoardSize{Width: DefaultWidth, Height: DefaultHeight},
		initialLength: DefaultInitialLength,
		speeds:        DefaultSpeeds(),
		placer:        RejectionPlacer{},
		difficulty:    DifficultyMedium,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if g.initialLength < 1 || g.board.Width < 1 || g.board.Height < 1 || g.board.Width/2 < g.initialLength-1 ||
		g.board.Cells() <= g.initialLength {
		return nil, fmt.Errorf("%w: %dx%d with length %d",
			ErrInvalidBoard, g.board.Width, g.board.Height, g.initialLength)
	}
	if err := g.speeds.Validate(); err != nil {
		return nil, err
	}
	if !g.difficulty.Valid() {
		return nil, fmt.Errorf("snake: invalid difficulty %d", g.difficulty)
	}

	g.Restart()
	return g, nil
}

// Start moves a ready game into the playing phase.
func (g *Game) Start() error {
	if g.phase != PhaseReady {
		return fmt.Errorf("%w (phase %s)", ErrNotReady, g.phase)
	}
	g.phase = PhasePlaying
	return nil
}

// Restart puts the snake back in the center pointing right, places new
// food and resets score and phase. It is always legal.
func (g *Game) Restart() {
	cx, cy := g.board.Width/2, g.board.Height/2

	g.body = make([]Position, g.initialLength, g.initialLength+8)
	for i := range g.body {
		g.body[i] = Position{X: cx - i, Y: cy}
	}
	g.heading = DirRight
	g.direction = DirRight
	g.score = 0
	g.ticks = 0
	g.phase = PhaseReady
	g.placeFood()
}

// End forces the game into the ended phase.
func (g *Game) End() {
	g.phase = PhaseEnded
}

// SetDirection queues d for the next tick. A reversal of the direction the
// snake last moved in is ignored and reported as false.
func (g *Game) SetDirection(d Direction) bool {
	if d < DirRight || d > DirUp {
		return false
	}
	if d == g.heading.Opposite() {
		return false
	}
	g.direction = d
	return true
}

// SetDifficulty changes the preset. It fails with ErrPlaying during play.
func (g *Game) SetDifficulty(d Difficulty) error {
	if g.phase == PhasePlaying {
		return ErrPlaying
	}
	if !d.Valid() {
		return fmt.Errorf("snake: invalid difficulty %d", d)
	}
	g.difficulty = d
	return nil
}

// GameSpeed returns the tick interval for the current difficulty.
func (g *Game) GameSpeed() time.Duration {
	return g.speeds.For(g.difficulty)
}

// Tick advances the snake one cell and reports what happened.
//
// On collision the body is left untouched and the phase becomes ended. On
// eating the tail stays, so the snake grows by one, and new food is placed
// over the grown body. If no free cell is left the result is ResultWon and
// the phase becomes ended. Tick is only meaningful while playing.
func (g *Game) Tick() TickResult {
	g.ticks++
	g.heading = g.direction

	head := g.body[0].Add(g.heading)
	if !g.board.Contains(head) || g.occupies(head) {
		g.phase = PhaseEnded
		return ResultCollision
	}

	g.body = append(g.body, Position{})
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = head

	if g.hasFood && head == g.food {
		g.score++
		if !g.placeFood() {
			g.phase = PhaseEnded
			return ResultWon
		}
		return ResultEat
	}

	g.body = g.body[:len(g.body)-1]
	return ResultMove
}

func (g *Game) occupies(p Position) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// placeFood reports false when the board has no free cell left.
func (g *Game) placeFood() bool {
	food, err := g.placer.Place(g.rng, g.board, g.body)
	if err != nil {
		g.hasFood = false
		return false
	}
	g.food = food
	g.hasFood = true
	return true
}

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []Position {
	out := make([]Position, len(g.body))
	copy(out, g.body)
	return out
}

// Head returns the head position.
func (g *Game) Head() Position {
	return g.body[0]
}

// Food returns the food position. Check HasFood first after a win.
func (g *Game) Food() Position {
	return g.food
}

// HasFood reports whether food is on the board.
func (g *Game) HasFood() bool {
	return g.hasFood
}

// Board returns the board dimensions.
func (g *Game) Board() BoardSize {
	return g.board
}

// Score returns the number of food eaten since the last restart.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Direction returns the direction the next tick will move in.
// SetDirection checks reversals against Heading, not this value.
func (g *Game) Direction() Direction {
	return g.direction
}

// Heading returns the direction of the last completed move. SetDirection
// rejects its opposite.
func (g *Game) Heading() Direction {
	return g.heading
}

// Difficulty returns the current preset.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Ticks returns the number of ticks since the last restart.
func (g *Game) Ticks() uint64 {
	return g.ticks
}
