// Package render holds the terminal renderers for the snake simulation.
// Each renderer registers itself with the registry in init().
package render

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// hudHeight is the number of rows above the board.
const hudHeight = 2

// layout maps board cells to screen coordinates for one frame.
type layout struct {
	cellW   int
	frame   core.Rect // Board plus its one-cell border
	fits    bool
	needW   int
	needH   int
	originX int // Screen x of board cell (0, 0)
	originY int // Screen y of board cell (0, 0)
}

// newLayout centers the bordered board below the HUD.
// cellW is how many columns one board cell takes.
func newLayout(dst *core.Screen, board snake.BoardSize, cellW int) layout {
	w := board.Width*cellW + 2
	h := board.Height + 2

	l := layout{
		cellW: cellW,
		needW: w,
		needH: h + hudHeight,
	}
	l.fits = dst.Width() >= l.needW && dst.Height() >= l.needH

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	l.frame = area.Centered(w, h)
	l.frame.X = core.Clamp(l.frame.X, 0, dst.Width())
	l.frame.Y = core.Clamp(l.frame.Y, hudHeight, dst.Height())
	l.originX = l.frame.X + 1
	l.originY = l.frame.Y + 1
	return l
}

// cell returns the screen position of the left column of board cell p.
func (l layout) cell(p snake.Position) (int, int) {
	return l.originX + p.X*l.cellW, l.originY + p.Y
}

// fill writes glyph into every column of board cell p.
func (l layout) fill(dst *core.Screen, p snake.Position, glyph string, c core.Color) {
	x, y := l.cell(p)
	dst.DrawTextColored(x, y, glyph, c)
}

// drawHUD writes the status line and separator.
func drawHUD(dst *core.Screen, snap snake.Snapshot, title string) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d  Difficulty: %s (%dms)  View: %s",
		snap.Score, len(snap.Body), snap.Difficulty, snap.Speed.Milliseconds(), title)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// drawPhaseOverlay shows the ready and game-over panels.
func drawPhaseOverlay(dst *core.Screen, snap snake.Snapshot) {
	switch snap.Phase {
	case snake.PhaseReady:
		drawOverlay(dst, "Ready", "Press Enter to start", "Tab: difficulty  V: view")
	case snake.PhaseEnded:
		if !snap.HasFood {
			drawOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", snap.Score), "Press R to restart")
			return
		}
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	}
}

// drawOverlay draws a centered box with one line of text per row.
func drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	box := dst.Bounds().Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			isTopOrBottom := y == box.Y || y == box.Bottom()-1
			isLeftOrRight := x == box.X || x == box.Right()-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.SetColored(x, y, '+', core.ColorYellow)
			case isTopOrBottom:
				dst.SetColored(x, y, '-', core.ColorYellow)
			case isLeftOrRight:
				dst.SetColored(x, y, '|', core.ColorYellow)
			}
		}
	}

	for i, line := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}

// drawTooSmall replaces the frame with a resize hint.
func drawTooSmall(dst *core.Screen, l layout) {
	dst.Clear()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", l.needW, l.needH, dst.Width(), dst.Height()))
}

// frameRenderer is the shared skeleton: HUD, board, overlay.
// drawBoard paints the border and cells for one renderer style.
func frameRenderer(dst *core.Screen, snap snake.Snapshot, title string, cellW int, drawBoard func(layout)) {
	dst.Clear()
	l := newLayout(dst, snap.Board, cellW)
	if !l.fits {
		drawTooSmall(dst, l)
		return
	}

	drawHUD(dst, snap, title)
	drawBoard(l)
	drawPhaseOverlay(dst, snap)
}
