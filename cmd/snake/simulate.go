package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/driver"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagGames    int
	flagMaxTicks int
	flagRealtime bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run autopilot games without a UI",
	Long: `Play games with the built-in autopilot and report each outcome.

By default games run as fast as possible. With --realtime each game ticks at
its difficulty interval, exactly as it would on screen.

With --seed, game i uses seed+i so a batch is reproducible.

Examples:
  snake simulate
  snake simulate --games 50 --seed 7
  snake simulate --realtime --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 100000, "Stop a game after this many ticks (0 = no limit)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at the difficulty interval")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	s, err := loadSettings(false)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var totalScore, wins int
	best := 0
	for i := range flagGames {
		seed := baseSeed + int64(i)
		game, err := s.newGame(seed)
		if err != nil {
			return err
		}

		var out driver.Outcome
		if flagRealtime {
			out, err = simulateRealtime(ctx, game)
		} else {
			out, err = driver.Simulate(ctx, game, driver.Autopilot{}, flagMaxTicks, nil)
		}
		if err != nil {
			return err
		}

		logger.Info("game finished",
			"game", i+1,
			"seed", seed,
			"result", out.Result,
			"score", out.Score,
			"length", out.Length,
			"ticks", out.Ticks,
			"truncated", out.Truncated,
		)

		totalScore += out.Score
		best = max(best, out.Score)
		if out.Result == snake.ResultWon {
			wins++
		}
	}

	if flagGames > 0 {
		fmt.Printf("games: %d  best: %d  average: %.1f  wins: %d\n",
			flagGames, best, float64(totalScore)/float64(flagGames), wins)
	}
	return nil
}

// simulateRealtime drives game with a driver.Loop, steering from the tick
// callback so the autopilot sees every state.
func simulateRealtime(ctx context.Context, game *snake.Game) (driver.Outcome, error) {
	loop := driver.NewLoop(game, logger)
	pilot := driver.Autopilot{}

	var last snake.TickResult
	loop.OnTick(func(r snake.TickResult, snap snake.Snapshot) {
		last = r
		logger.Debug("tick", "state", snap)
		if flagMaxTicks > 0 && snap.Tick >= uint64(flagMaxTicks) {
			loop.Stop()
			return
		}
		if !r.Terminal() {
			loop.Do(func(g *snake.Game) { g.SetDirection(pilot.Steer(snap)) })
		}
	})

	// First move before the first tick
	loop.Do(func(g *snake.Game) { g.SetDirection(pilot.Steer(g.Snapshot())) })
	if err := loop.Start(ctx); err != nil {
		return driver.Outcome{}, err
	}
	loop.Wait()

	snap := loop.Snapshot()
	return driver.Outcome{
		Result:    last,
		Score:     snap.Score,
		Length:    len(snap.Body),
		Ticks:     snap.Tick,
		Truncated: !last.Terminal(),
	}, ctx.Err()
}
