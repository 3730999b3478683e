package snake

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithSeed(42)}, opts...)
	g, err := New(opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

// setState replaces the snake and food for scenario tests.
func setState(g *Game, body []Position, dir Direction, food Position) {
	g.body = append([]Position(nil), body...)
	g.heading = dir
	g.direction = dir
	g.food = food
	g.hasFood = true
}

func TestNewDefaults(t *testing.T) {
	g := newTestGame(t)

	if g.Board() != (BoardSize{Width: 20, Height: 15}) {
		t.Errorf("Board() = %+v, expected 20x15", g.Board())
	}
	if g.Phase() != PhaseReady {
		t.Errorf("Phase() = %v, expected ready", g.Phase())
	}
	if g.Difficulty() != DifficultyMedium {
		t.Errorf("Difficulty() = %v, expected medium", g.Difficulty())
	}

	expected := []Position{{10, 7}, {9, 7}, {8, 7}}
	body := g.Snake()
	if len(body) != len(expected) {
		t.Fatalf("Snake length = %d, expected %d", len(body), len(expected))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("Segment %d = %+v, expected %+v", i, body[i], expected[i])
		}
	}
	if !g.HasFood() {
		t.Fatal("Expected food to be placed")
	}
	for _, seg := range body {
		if seg == g.Food() {
			t.Errorf("Food placed on snake at %+v", g.Food())
		}
	}
}

func TestNewRejectsTinyBoard(t *testing.T) {
	tests := []struct {
		name  string
		board BoardSize
		len   int
	}{
		{"too narrow", BoardSize{Width: 3, Height: 5}, 3},
		{"zero height", BoardSize{Width: 20, Height: 0}, 3},
		{"zero width", BoardSize{Width: 0, Height: 5}, 1},
		{"zero length", BoardSize{Width: 20, Height: 15}, 0},
		{"no room for food", BoardSize{Width: 2, Height: 1}, 2},
		{"single cell", BoardSize{Width: 1, Height: 1}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(WithBoard(tc.board), WithInitialLength(tc.len))
			if !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("New() error = %v, expected ErrInvalidBoard", err)
			}
		})
	}
}

func TestNewRejectsBadSpeeds(t *testing.T) {
	_, err := New(WithSpeeds(Speeds{Easy: 100, Medium: 175, Hard: 250}))
	if err == nil {
		t.Error("Expected error for increasing intervals")
	}
}

func TestStartLifecycle(t *testing.T) {
	g := newTestGame(t)

	if err := g.Start(); err != nil {
		t.Fatalf("Start() from ready failed: %v", err)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", g.Phase())
	}

	if err := g.Start(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Second Start() error = %v, expected ErrNotReady", err)
	}

	g.End()
	if g.Phase() != PhaseEnded {
		t.Errorf("Phase() after End = %v, expected ended", g.Phase())
	}
	if err := g.Start(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Start() from ended error = %v, expected ErrNotReady", err)
	}

	g.Restart()
	if err := g.Start(); err != nil {
		t.Errorf("Start() after Restart failed: %v", err)
	}
}

// Scenario A: eating at the head grows the snake and bumps the score.
func TestTickEat(t *testing.T) {
	g := newTestGame(t)
	setState(g, []Position{{10, 7}, {9, 7}, {8, 7}}, DirRight, Position{11, 7})
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	if got := g.Tick(); got != ResultEat {
		t.Fatalf("Tick() = %v, expected eat", got)
	}

	expected := []Position{{11, 7}, {10, 7}, {9, 7}, {8, 7}}
	body := g.Snake()
	if len(body) != 4 {
		t.Fatalf("Snake length = %d, expected 4", len(body))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("Segment %d = %+v, expected %+v", i, body[i], expected[i])
		}
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	for _, seg := range expected {
		if g.Food() == seg {
			t.Errorf("New food %+v overlaps snake", g.Food())
		}
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", g.Phase())
	}
}

func TestTickMove(t *testing.T) {
	g := newTestGame(t)
	setState(g, []Position{{10, 7}, {9, 7}, {8, 7}}, DirRight, Position{0, 0})
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	if got := g.Tick(); got != ResultMove {
		t.Fatalf("Tick() = %v, expected move", got)
	}

	expected := []Position{{11, 7}, {10, 7}, {9, 7}}
	body := g.Snake()
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("Segment %d = %+v, expected %+v", i, body[i], expected[i])
		}
	}
	if len(body) != 3 {
		t.Errorf("Snake length = %d, expected 3", len(body))
	}
	if g.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", g.Ticks())
	}
}

// Scenario B: leaving the board is a collision.
func TestTickWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Position
		dir  Direction
	}{
		{"left wall", Position{0, 7}, DirLeft},
		{"right wall", Position{19, 7}, DirRight},
		{"top wall", Position{5, 0}, DirUp},
		{"bottom wall", Position{5, 14}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			back := tc.head.Add(tc.dir.Opposite())
			setState(g, []Position{tc.head, back}, tc.dir, Position{10, 10})
			if err := g.Start(); err != nil {
				t.Fatal(err)
			}
			before := g.Snake()

			if got := g.Tick(); got != ResultCollision {
				t.Fatalf("Tick() = %v, expected collision", got)
			}
			if g.Phase() != PhaseEnded {
				t.Errorf("Phase() = %v, expected ended", g.Phase())
			}
			after := g.Snake()
			if len(after) != len(before) || after[0] != before[0] {
				t.Error("Snake should not move on collision")
			}
		})
	}
}

// Scenario C: running into an existing segment is a collision.
func TestTickSelfCollision(t *testing.T) {
	g := newTestGame(t)
	setState(g, []Position{{5, 5}, {5, 6}, {6, 6}, {6, 5}}, DirRight, Position{0, 0})
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	if got := g.Tick(); got != ResultCollision {
		t.Fatalf("Tick() = %v, expected collision", got)
	}
	if g.Phase() != PhaseEnded {
		t.Errorf("Phase() = %v, expected ended", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
}

// Scenario D: restart always yields the initial configuration.
func TestRestartResets(t *testing.T) {
	g := newTestGame(t)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	g.SetDirection(DirUp)
	for range 5 {
		g.Tick()
	}
	g.score = 7
	g.End()

	g.Restart()

	if len(g.Snake()) != 3 {
		t.Errorf("Snake length = %d, expected 3", len(g.Snake()))
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
	if g.Phase() != PhaseReady {
		t.Errorf("Phase() = %v, expected ready", g.Phase())
	}
	if g.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", g.Direction())
	}
	if g.Head() != (Position{10, 7}) {
		t.Errorf("Head() = %+v, expected (10,7)", g.Head())
	}
	if g.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0", g.Ticks())
	}
}

// Scenario E: intervals strictly decrease with difficulty.
func TestGameSpeedByDifficulty(t *testing.T) {
	g := newTestGame(t)

	speeds := make(map[Difficulty]time.Duration)
	for _, d := range Difficulties {
		if err := g.SetDifficulty(d); err != nil {
			t.Fatalf("SetDifficulty(%v) failed: %v", d, err)
		}
		speeds[d] = g.GameSpeed()
	}

	if !(speeds[DifficultyEasy] > speeds[DifficultyMedium] && speeds[DifficultyMedium] > speeds[DifficultyHard]) {
		t.Errorf("Speeds not strictly decreasing: %v", speeds)
	}
	if speeds[DifficultyEasy] != 250*time.Millisecond ||
		speeds[DifficultyMedium] != 175*time.Millisecond ||
		speeds[DifficultyHard] != 100*time.Millisecond {
		t.Errorf("Unexpected default speeds: %v", speeds)
	}
}

func TestSetDifficultyWhilePlaying(t *testing.T) {
	g := newTestGame(t, WithDifficulty(DifficultyEasy))
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	if err := g.SetDifficulty(DifficultyHard); !errors.Is(err, ErrPlaying) {
		t.Errorf("SetDifficulty() error = %v, expected ErrPlaying", err)
	}
	if g.Difficulty() != DifficultyEasy {
		t.Errorf("Difficulty changed during play to %v", g.Difficulty())
	}

	g.End()
	if err := g.SetDifficulty(DifficultyHard); err != nil {
		t.Errorf("SetDifficulty() after end failed: %v", err)
	}
	if err := g.SetDifficulty(Difficulty(7)); err == nil {
		t.Error("Expected error for unknown difficulty")
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(t)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	if g.SetDirection(DirLeft) {
		t.Error("Should not allow reversal from right to left")
	}
	if g.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", g.Direction())
	}

	if !g.SetDirection(DirDown) {
		t.Error("Expected down to be accepted")
	}
	if g.Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", g.Direction())
	}
}

func TestNoReversalWithinOneTick(t *testing.T) {
	g := newTestGame(t)
	setState(g, []Position{{10, 7}, {9, 7}, {8, 7}}, DirRight, Position{0, 0})
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	// Up then left before the next tick must not fold the snake onto its neck
	g.SetDirection(DirUp)
	g.SetDirection(DirLeft)

	if g.Direction() != DirUp {
		t.Errorf("Direction() = %v, expected up", g.Direction())
	}
	if got := g.Tick(); got != ResultMove {
		t.Errorf("Tick() = %v, expected move", got)
	}

	// Once the snake has moved up, left is a legal turn
	if !g.SetDirection(DirLeft) {
		t.Error("Expected left to be accepted after moving up")
	}
}

func TestReversalCheckedAgainstHeading(t *testing.T) {
	g := newTestGame(t)
	setState(g, []Position{{10, 7}, {9, 7}, {8, 7}}, DirRight, Position{0, 0})
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	// Up and down are both perpendicular to the last move, so the second
	// call replaces the first even though it opposes Direction()
	g.SetDirection(DirUp)
	if !g.SetDirection(g.Direction().Opposite()) {
		t.Error("Expected down to be accepted while heading right")
	}
	if g.Heading() != DirRight {
		t.Errorf("Heading() = %v, expected right", g.Heading())
	}
	if g.SetDirection(g.Heading().Opposite()) {
		t.Error("Should not allow the opposite of Heading()")
	}

	g.Tick()
	if g.Heading() != DirDown {
		t.Errorf("Heading() after tick = %v, expected down", g.Heading())
	}
}

func TestSetDirectionBeforeStart(t *testing.T) {
	g := newTestGame(t)

	if !g.SetDirection(DirUp) {
		t.Fatal("Expected direction change to be accepted while ready")
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	g.Tick()
	if g.Head() != (Position{10, 6}) {
		t.Errorf("Head() = %+v, expected (10,6)", g.Head())
	}
}

func TestWinWhenBoardFills(t *testing.T) {
	g, err := New(WithSeed(1), WithBoard(BoardSize{Width: 2, Height: 2}), WithInitialLength(1))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	// Three cells occupied, food on the last free one
	setState(g, []Position{{0, 1}, {0, 0}, {1, 0}}, DirRight, Position{1, 1})
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	if got := g.Tick(); got != ResultWon {
		t.Fatalf("Tick() = %v, expected won", got)
	}
	if g.Phase() != PhaseEnded {
		t.Errorf("Phase() = %v, expected ended", g.Phase())
	}
	if g.HasFood() {
		t.Error("HasFood() should be false on a full board")
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	if len(g.Snake()) != 4 {
		t.Errorf("Snake length = %d, expected 4", len(g.Snake()))
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, WithSeed(12345))
		if err := g.Start(); err != nil {
			t.Fatal(err)
		}
		turns := map[int]Direction{3: DirDown, 8: DirLeft, 15: DirUp, 22: DirRight}
		for i := range 40 {
			if d, ok := turns[i]; ok {
				g.SetDirection(d)
			}
			if g.Tick().Terminal() {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !a.Equal(b) {
		t.Errorf("Snapshots differ:\n%s\n%s", a, b)
	}
}

// TestInvariantsRandomWalk drives many random games and checks the state
// invariants after every tick.
func TestInvariantsRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := range 50 {
		g := newTestGame(t, WithSeed(int64(game)), WithBoard(BoardSize{Width: 8, Height: 6}))
		if err := g.Start(); err != nil {
			t.Fatal(err)
		}

		eats := 0
		prevLen := len(g.Snake())
		for step := 0; step < 500 && g.Phase() == PhasePlaying; step++ {
			if rng.Intn(3) == 0 {
				g.SetDirection(Direction(rng.Intn(4)))
			}
			result := g.Tick()
			body := g.Snake()

			switch result {
			case ResultEat, ResultWon:
				eats++
				if len(body) != prevLen+1 {
					t.Fatalf("game %d step %d: eat grew %d -> %d", game, step, prevLen, len(body))
				}
			case ResultMove, ResultCollision:
				if len(body) != prevLen {
					t.Fatalf("game %d step %d: %v changed length %d -> %d", game, step, result, prevLen, len(body))
				}
			}
			prevLen = len(body)

			seen := make(map[Position]bool, len(body))
			for _, seg := range body {
				if !g.Board().Contains(seg) {
					t.Fatalf("game %d step %d: segment %+v out of bounds", game, step, seg)
				}
				if seen[seg] {
					t.Fatalf("game %d step %d: segment %+v overlaps", game, step, seg)
				}
				seen[seg] = true
			}
			if g.HasFood() {
				if !g.Board().Contains(g.Food()) {
					t.Fatalf("game %d step %d: food %+v out of bounds", game, step, g.Food())
				}
				if seen[g.Food()] {
					t.Fatalf("game %d step %d: food %+v on snake", game, step, g.Food())
				}
			}
			if g.Score() != eats {
				t.Fatalf("game %d step %d: score %d, eats %d", game, step, g.Score(), eats)
			}
		}
	}
}

func TestSnakeReturnsCopy(t *testing.T) {
	g := newTestGame(t)
	body := g.Snake()
	body[0] = Position{-1, -1}
	if g.Head() == (Position{-1, -1}) {
		t.Error("Snake() should return a copy")
	}
}
