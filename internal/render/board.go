package render

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Glyphs used on the board.
const (
	GlyphGrid = '·'
	GlyphFood = '●'
	GlyphHead = '█'
	GlyphBody = '▓'
)

// Title is drawn above the board.
const Title = "S N A K E"

// Frame draws a complete frame for st: title, bordered board, food, snake,
// overlay and stats. The screen is cleared first.
func Frame(dst *core.Screen, l Layout, st snake.State, stats Stats) {
	dst.Clear()

	if l.TooSmall {
		drawTooSmall(dst, l)
		return
	}

	dst.DrawTextCentered(0, Title, core.ColorBrightGreen)
	Board(dst, l, st)
	dst.DrawTextCentered(l.StatsRow(), stats.String(), core.ColorWhite)
}

// Board draws the border, grid, food, snake and any overlay.
func Board(dst *core.Screen, l Layout, st snake.State) {
	dst.DrawBox(l.Board, core.ColorGray)

	for y := range l.Grid {
		for x := range l.Grid {
			cx, cy := l.CellOrigin(x, y)
			dst.SetColored(cx, cy, GlyphGrid, core.ColorGray)
		}
	}

	if st.HasFood {
		drawFood(dst, l, st.Food)
	}

	// Body first so the head stays visible if a frame ever overlaps.
	for i := len(st.Snake) - 1; i > 0; i-- {
		fillCell(dst, l, st.Snake[i], GlyphBody, core.ColorGreen)
	}
	if len(st.Snake) > 0 {
		fillCell(dst, l, st.Snake[0], GlyphHead, core.ColorBrightGreen)
	}

	switch {
	case st.GameOver:
		Overlay(dst, l.Board, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d", st.Score),
			"Press R to restart")
	case st.Paused:
		Overlay(dst, l.Board, core.ColorYellow,
			"PAUSED",
			"Press P or Space to resume")
	}
}

// fillCell paints every terminal position covered by grid cell p.
func fillCell(dst *core.Screen, l Layout, p snake.Position, r rune, c core.Color) {
	x0, y0 := l.CellOrigin(p.X, p.Y)
	dst.DrawRect(core.NewRect(x0, y0, l.CellCols, l.CellRows), r, c)
}

// drawFood places the food glyph in the middle of its cell.
func drawFood(dst *core.Screen, l Layout, p snake.Position) {
	x0, y0 := l.CellOrigin(p.X, p.Y)
	dst.DrawRect(core.NewRect(x0, y0, l.CellCols, l.CellRows), ' ', core.ColorDefault)
	dst.SetColored(x0+(l.CellCols-1)/2, y0+(l.CellRows-1)/2, GlyphFood, core.ColorBrightRed)
}

// Overlay draws a boxed message centered in area. The first line uses c,
// the rest are white.
func Overlay(dst *core.Screen, area core.Rect, c core.Color, lines ...string) {
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	boxW := min(width+4, area.W)
	boxH := min(len(lines)+2, area.H)
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	for i, line := range lines {
		y := box.Y + 1 + i
		if y >= box.Bottom()-1 {
			break
		}
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawText(max(x, box.X+1), y, line, color)
	}
}

func drawTooSmall(dst *core.Screen, l Layout) {
	minW, minH := MinSize(l.Grid)
	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	Overlay(dst, area, core.ColorYellow,
		"Terminal too small",
		fmt.Sprintf("Resize to at least %dx%d", minW, minH))
}
