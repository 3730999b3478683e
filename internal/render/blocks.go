package render

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register("blocks", func() registry.Renderer { return &Blocks{} })
}

// Blocks draws each cell two columns wide so cells look square, over a
// dotted grid.
type Blocks struct{}

// ID implements registry.Renderer.
func (b *Blocks) ID() string { return "blocks" }

// Title implements registry.Renderer.
func (b *Blocks) Title() string { return "Blocks" }

// Render implements registry.Renderer.
func (b *Blocks) Render(dst *core.Screen, snap snake.Snapshot) {
	frameRenderer(dst, snap, b.Title(), 2, func(l layout) {
		dst.DrawBox(l.frame, core.ColorBlue)

		for y := range snap.Board.Height {
			for x := range snap.Board.Width {
				l.fill(dst, snake.Position{X: x, Y: y}, " ·", core.ColorDarkGray)
			}
		}

		if snap.HasFood {
			l.fill(dst, snap.Food, "██", core.ColorRed)
		}
		for i := len(snap.Body) - 1; i >= 0; i-- {
			c := core.ColorGreen
			if i == 0 {
				c = core.ColorBrightYellow
			}
			l.fill(dst, snap.Body[i], "██", c)
		}
	})
}
