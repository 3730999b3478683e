package render

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register("classic", func() registry.Renderer { return &Classic{} })
}

// Classic draws one column per cell with plain ASCII glyphs.
type Classic struct{}

// ID implements registry.Renderer.
func (c *Classic) ID() string { return "classic" }

// Title implements registry.Renderer.
func (c *Classic) Title() string { return "Classic" }

// Render implements registry.Renderer.
func (c *Classic) Render(dst *core.Screen, snap snake.Snapshot) {
	frameRenderer(dst, snap, c.Title(), 1, func(l layout) {
		dst.DrawBox(l.frame, core.ColorGreen)

		if snap.HasFood {
			l.fill(dst, snap.Food, "*", core.ColorBrightRed)
		}
		for i := len(snap.Body) - 1; i >= 0; i-- {
			if i == 0 {
				l.fill(dst, snap.Body[i], "O", core.ColorBrightGreen)
				continue
			}
			l.fill(dst, snap.Body[i], "o", core.ColorGreen)
		}
	})
}
