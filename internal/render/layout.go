// Package render draws game snapshots into a core.Screen and formats the
// stats line. It never mutates game state.
package render

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNoSurface is returned when there is no display area to draw on.
var ErrNoSurface = errors.New("render: no display surface")

// HUDRows is the number of rows outside the board: title above,
// stats and help below.
const HUDRows = 3

// cellAspect is the number of terminal columns per terminal row in one grid
// cell. Terminal glyphs are about twice as tall as they are wide.
const cellAspect = 2

// Layout places a square board inside a viewport.
type Layout struct {
	ViewW, ViewH int
	Grid         int
	CellRows     int       // terminal rows per grid cell
	CellCols     int       // terminal columns per grid cell
	Board        core.Rect // board area including its border
	TooSmall     bool
}

// CheckSurface returns ErrNoSurface if the viewport has no area.
func CheckSurface(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrNoSurface, width, height)
	}
	return nil
}

// MinSize returns the smallest viewport that fits a board of the given grid.
func MinSize(grid int) (width, height int) {
	return grid*cellAspect + 2, grid + 2 + HUDRows
}

// NewLayout computes the board placement for a viewport.
// The board side, in rows, is the largest that fits the viewport, capped at
// maxSurface (0 means no cap). Each grid cell spans side/grid rows and twice
// as many columns. A viewport that cannot fit one row per cell is TooSmall.
func NewLayout(viewW, viewH, grid, maxSurface int) Layout {
	l := Layout{ViewW: max(viewW, 0), ViewH: max(viewH, 0), Grid: grid}
	if grid <= 0 {
		l.TooSmall = true
		return l
	}

	side := min(viewH-HUDRows-2, (viewW-2)/cellAspect)
	if maxSurface > 0 {
		side = min(side, maxSurface)
	}

	l.CellRows = side / grid
	if l.CellRows < 1 {
		l.TooSmall = true
		l.CellRows = 0
		return l
	}
	l.CellCols = l.CellRows * cellAspect

	w := grid*l.CellCols + 2
	h := grid*l.CellRows + 2
	l.Board = core.NewRect((viewW-w)/2, 1, w, h)
	return l
}

// CellOrigin returns the top-left terminal position of a grid cell.
func (l Layout) CellOrigin(x, y int) (int, int) {
	return l.Board.X + 1 + x*l.CellCols, l.Board.Y + 1 + y*l.CellRows
}

// StatsRow is the row directly below the board.
func (l Layout) StatsRow() int {
	return l.Board.Bottom()
}

// HelpRow is the row for the controls help line.
func (l Layout) HelpRow() int {
	return l.Board.Bottom() + 1
}
