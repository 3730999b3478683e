package driver

import (
	"context"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Outcome summarizes a headless run.
type Outcome struct {
	Result snake.TickResult
	Score  int
	Length int
	Ticks  uint64

	// Truncated is set when the run hit the tick limit while still playing.
	Truncated bool
}

// Simulate plays g to the end as fast as possible, asking pilot for a
// direction before every tick. maxTicks <= 0 means no limit. The game is
// started if it is ready. onTick may be nil.
func Simulate(ctx context.Context, g *snake.Game, pilot Pilot, maxTicks int, onTick TickFunc) (Outcome, error) {
	if g.Phase() != snake.PhasePlaying {
		if err := g.Start(); err != nil {
			return Outcome{}, err
		}
	}

	var last snake.TickResult
	for maxTicks <= 0 || int(g.Ticks()) < maxTicks {
		if err := ctx.Err(); err != nil {
			return outcome(g, last, true), err
		}

		g.SetDirection(pilot.Steer(g.Snapshot()))
		last = g.Tick()
		if onTick != nil {
			onTick(last, g.Snapshot())
		}
		if last.Terminal() {
			return outcome(g, last, false), nil
		}
	}
	return outcome(g, last, true), nil
}

func outcome(g *snake.Game, r snake.TickResult, truncated bool) Outcome {
	return Outcome{
		Result:    r,
		Score:     g.Score(),
		Length:    len(g.Snake()),
		Ticks:     g.Ticks(),
		Truncated: truncated,
	}
}
