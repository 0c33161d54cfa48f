package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth    = 7 // Width of each cell including the left border; fits 131072
	cellHeight   = 2 // Height of each cell including the top border
	hudHeight    = 3
	footerHeight = 1
)

// boardDims returns the drawn board width and height for a size x size grid.
func boardDims(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.engine.Size()
	boardW, boardH := boardDims(size)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	dst.DrawTextColored((g.screenW-len(g.Controls()))/2, boardY+boardH, g.Controls(), core.ColorDim)

	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score and high score.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorAccent)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.engine.Score()))

	best := fmt.Sprintf("Best: %d", g.engine.HighScore())
	dst.DrawText(max(boardX, boardX+boardW-len(best)), 1, best)

	moves := fmt.Sprintf("Moves: %d", g.recording.Len())
	dst.DrawTextColored(boardX+(boardW-len(moves))/2, 2, moves, core.ColorDim)
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.engine.Size()

	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.SetColored(px, py, gridJoint(x, y, size), core.ColorGrid)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGrid)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGrid)
				}
			}
		}
	}

	for y := range size {
		for x := range size {
			val := g.engine.Cell(y, x)
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			pad := max((cellWidth-1-len(valStr))/2, 0)
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			dst.DrawTextColored(cellX+pad, cellY, valStr, core.TileColor(val))
		}
	}
}

// gridJoint picks the box-drawing rune for a grid intersection.
func gridJoint(x, y, size int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == size:
		return '┐'
	case y == size && x == 0:
		return '└'
	case y == size && x == size:
		return '┘'
	case y == 0:
		return '┬'
	case y == size:
		return '┴'
	case x == 0:
		return '├'
	case x == size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws pause and game-over boxes.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.gameOver:
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Final score: %d", g.engine.Score()),
			fmt.Sprintf("Best: %d", g.engine.HighScore()),
			"Press R to play again")
	}
}

// drawOverlay draws a centered, boxed block of text.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.CenteredRect(centerX, centerY, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorAccent
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
