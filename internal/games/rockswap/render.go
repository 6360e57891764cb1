package rockswap

import (
	"fmt"

	"github.com/vovakirdan/rockswap/internal/core"
	"github.com/vovakirdan/rockswap/internal/match3"
)

const (
	cellWidth = 3 // "[●]": glyph plus cursor brackets
	hudHeight = 3 // title, score line, chain line
	footerH   = 3 // blank, scoring summary, controls
	minWidth  = 44
)

const controlsLine = "arrows move  space select  h hint  p pause  r restart"

// minScreenSize returns the smallest screen that fits the board, HUD and footer.
func (g *Game) minScreenSize() (int, int) {
	boardW, boardH := g.boardSize()
	return max(boardW, minWidth), hudHeight + 1 + boardH + footerH
}

// boardSize returns the boxed board's width and height.
func (g *Game) boardSize() (int, int) {
	return g.cfg.Board.Cols*cellWidth + 2, g.cfg.Board.Rows + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	box := core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)

	hudW := max(boardW, minWidth)
	g.renderHUD(dst, core.NewRect((g.screenW-hudW)/2, 0, hudW, hudHeight))
	g.renderBoard(dst, box)
	g.renderFooter(dst, box.Bottom()+1)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderHUD draws the title, score, high score, moves and chain info
// within the given strip.
func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	dst.DrawTextCenteredWithColor(0, g.Title(), core.ColorBrightCyan)

	left := fmt.Sprintf("Score: %d  High: %d", g.score, g.highScore())
	dst.DrawText(box.X, 1, left)

	var right string
	if n := g.MovesLeft(); n >= 0 {
		right = fmt.Sprintf("Moves: %d", n)
	} else {
		right = fmt.Sprintf("Swaps: %d", g.moves)
	}
	dst.DrawText(box.Right()-len(right), 1, right)

	chain := fmt.Sprintf("Chain: x%d  Best: x%d", g.lastChain, g.bestChain)
	if g.lastGain > 0 {
		chain += fmt.Sprintf("  +%d", g.lastGain)
	}
	if g.mode == ModeZen && g.reshuffles > 0 {
		chain += fmt.Sprintf("  Reshuffles: %d", g.reshuffles)
	}
	dst.DrawTextWithColor(box.X, 2, chain, core.ColorGray)
}

// renderBoard draws the framed grid. Each cell is three columns wide so
// the cursor, selection and hint can bracket the glyph.
func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	frame := core.ColorWhite
	if g.cascade != nil {
		frame = core.ColorGray
	}
	dst.DrawBox(box, frame)

	flashing := match3.NewMask(g.board.Rows(), g.board.Cols())
	for _, c := range g.flashing {
		flashing.Mark(c)
	}

	for r := range g.board.Rows() {
		for c := range g.board.Cols() {
			at := match3.At(r, c)
			x := box.X + 1 + c*cellWidth
			y := box.Y + 1 + r

			glyph, color := ' ', core.ColorDefault
			if k, ok := g.board.Get(at).Kind(); ok {
				glyph, color = g.cfg.TileGlyph(k), g.cfg.TileColor(k)
			}
			if flashing.Get(at) {
				color = core.ColorBrightWhite
			}
			dst.SetWithColor(x+1, y, glyph, color)

			if open, shut, bc, ok := g.brackets(at); ok {
				dst.SetWithColor(x, y, open, bc)
				dst.SetWithColor(x+2, y, shut, bc)
			}
		}
	}
}

// brackets returns the marker drawn around a cell, if any.
// The cursor wins over the selection, which wins over the hint.
func (g *Game) brackets(at match3.Coord) (rune, rune, core.Color, bool) {
	if g.gameOver {
		return 0, 0, 0, false
	}
	switch {
	case at == g.cursor && g.cascade == nil:
		return '[', ']', core.ColorBrightWhite, true
	case g.hasSel && at == g.selected:
		return '<', '>', core.ColorBrightGreen, true
	case g.showHint && (at == g.hint.A || at == g.hint.B):
		return '(', ')', core.ColorBrightYellow, true
	}
	return 0, 0, 0, false
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	dst.DrawTextCenteredWithColor(y, g.rules.Summary(), core.ColorGray)
	dst.DrawTextCenteredWithColor(y+1, controlsLine, core.ColorGray)
}

// renderOverlays draws pause and game over panels over the board.
func (g *Game) renderOverlays(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawPanel(dst, []string{"PAUSED", "Press P to resume"}, core.ColorBrightYellow)
	case g.gameOver:
		lines := []string{"GAME OVER", g.overReason, fmt.Sprintf("Score: %d", g.score)}
		if g.score > 0 && g.score > g.storedHigh {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "R restart  Q quit")
		g.drawPanel(dst, lines, core.ColorBrightRed)
	}
}

// drawPanel draws a framed box centered on the screen with lines of text
// centered inside it.
func (g *Game) drawPanel(dst *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	panel := core.CenteredRect(g.screenW, g.screenH, width+4, len(lines)+2)

	for y := panel.Y; y < panel.Bottom(); y++ {
		dst.DrawHLine(panel.X, y, panel.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(panel, c)
	for i, l := range lines {
		dst.DrawTextCenteredWithColor(panel.Y+1+i, l, c)
	}
}
