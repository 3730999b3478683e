package render

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register("depth", func() registry.Renderer { return &Depth{} })
}

// Depth shades the body from head to tail and casts a drop shadow below
// and right of every segment, giving a raised look.
type Depth struct{}

// ID implements registry.Renderer.
func (d *Depth) ID() string { return "depth" }

// Title implements registry.Renderer.
func (d *Depth) Title() string { return "Depth" }

// shades run from the head band to the tail band.
var depthShades = []struct {
	glyph string
	color core.Color
}{
	{"██", core.ColorBrightGreen},
	{"▓▓", core.ColorGreen},
	{"▒▒", core.ColorGreen},
	{"░░", core.ColorDarkGreen},
}

// depthShade picks the band for segment i of a body of length n.
func depthShade(i, n int) int {
	if i == 0 || n <= 1 {
		return 0
	}
	band := 1 + (i-1)*(len(depthShades)-1)/(n-1)
	return min(band, len(depthShades)-1)
}

// Render implements registry.Renderer.
func (d *Depth) Render(dst *core.Screen, snap snake.Snapshot) {
	frameRenderer(dst, snap, d.Title(), 2, func(l layout) {
		dst.DrawBox(l.frame, core.ColorGray)

		// Shadows first so segments overwrite them.
		occupied := make(map[snake.Position]struct{}, len(snap.Body))
		for _, p := range snap.Body {
			occupied[p] = struct{}{}
		}
		for _, p := range snap.Body {
			shadow := snake.Position{X: p.X + 1, Y: p.Y + 1}
			if _, ok := occupied[shadow]; ok || !snap.Board.Contains(shadow) {
				continue
			}
			l.fill(dst, shadow, "░░", core.ColorDarkGray)
		}

		if snap.HasFood {
			l.fill(dst, snap.Food, "◆◆", core.ColorOrange)
		}
		for i := len(snap.Body) - 1; i >= 0; i-- {
			s := depthShades[depthShade(i, len(snap.Body))]
			l.fill(dst, snap.Body[i], s.glyph, s.color)
		}
	})
}
