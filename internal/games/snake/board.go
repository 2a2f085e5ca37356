package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardTooSmall is returned when the terminal cannot fit a playable board.
var ErrBoardTooSmall = errors.New("terminal too small for the board")

// Board describes the framed play area in terminal cells.
//
// The frame occupies column 0 and column Cols, row 0 and row Rows. Snake
// cells sit on even columns from 2 to Cols-2 and on rows 1 to Rows-1; the odd
// columns in between are gaps that horizontal segments fill with a connector.
type Board struct {
	Cols   int // Column of the right frame edge (always even)
	Rows   int // Row of the bottom frame edge
	Margin int // Cells kept free of items along the frame
}

// NewBoard sizes a board to a share of the terminal.
func NewBoard(rc core.RuntimeConfig, bc config.BoardConfig, margin int) (Board, error) {
	cols := core.EvenFloor(int(float64(rc.ScreenW) * bc.WidthFraction))
	rows := int(float64(rc.ScreenH) * bc.HeightFraction)

	b := Board{Cols: cols, Rows: rows, Margin: margin}
	if cols < bc.MinCols || rows < bc.MinRows {
		return b, fmt.Errorf("%w: %dx%d terminal gives a %dx%d board, need at least %dx%d",
			ErrBoardTooSmall, rc.ScreenW, rc.ScreenH, cols, rows, bc.MinCols, bc.MinRows)
	}
	if b.SpawnArea().Empty() {
		return b, fmt.Errorf("%w: item margin %d leaves no room for items", ErrBoardTooSmall, margin)
	}
	return b, nil
}

// Playable returns the area the snake's head may occupy.
func (b Board) Playable() core.Rect {
	return core.NewRect(core.ColumnStep, 1, b.Cols-core.ColumnStep-1, b.Rows-1)
}

// SpawnArea returns the area items are placed in: the playable area shrunk
// by the margin on every side. Its X is even.
func (b Board) SpawnArea() core.Rect {
	p := b.Playable()
	dx := b.Margin * core.ColumnStep
	return core.NewRect(p.X+dx, p.Y+b.Margin, p.W-2*dx, p.H-2*b.Margin)
}

// Wrap moves a coordinate that stepped past an edge to the opposite edge.
func (b Board) Wrap(c core.Coordinate) core.Coordinate {
	p := b.Playable()
	if p.ContainsCoord(c) {
		return c
	}
	firstCol, lastCol := p.X, b.Cols-core.ColumnStep
	firstRow, lastRow := p.Y, p.Bottom()-1

	switch {
	case c.Col < firstCol:
		c.Col = lastCol
	case c.Col > lastCol:
		c.Col = firstCol
	}
	switch {
	case c.Row < firstRow:
		c.Row = lastRow
	case c.Row > lastRow:
		c.Row = firstRow
	}
	return c
}

// Center returns the playable cell closest to the middle of the board.
func (b Board) Center() core.Coordinate {
	return core.At(core.EvenFloor(b.Cols/2), b.Rows/2)
}

// StartSnake places a snake of the given length in the middle of the board,
// heading up with its body trailing below the head.
func (b Board) StartSnake(length int) (*Snake, error) {
	p := b.Playable()
	if length < 1 || length > p.H {
		return nil, fmt.Errorf("%w: a snake of length %d does not fit %d rows",
			ErrBoardTooSmall, length, p.H)
	}

	head := b.Center()
	lastRow := p.Bottom() - 1
	head.Row = core.Clamp(head.Row, p.Y, lastRow-length+1)
	return NewSnake(head, length, core.DirUp), nil
}

// Frame returns the text lines that draw the frame, keyed by their starting
// coordinate.
func (b Board) Frame() []FrameLine {
	inner := b.Cols - 1
	top := string(frameTopLeft) + repeatRune(frameHorizontal, inner) + string(frameTopRight)
	bottom := string(frameBottomLeft) + repeatRune(frameHorizontal, inner) + string(frameBottomRight)

	lines := make([]FrameLine, 0, 2*b.Rows)
	lines = append(lines, FrameLine{At: core.At(0, 0), Text: top})
	for row := 1; row < b.Rows; row++ {
		lines = append(lines,
			FrameLine{At: core.At(0, row), Text: string(frameVertical)},
			FrameLine{At: core.At(b.Cols, row), Text: string(frameVertical)},
		)
	}
	lines = append(lines, FrameLine{At: core.At(0, b.Rows), Text: bottom})
	return lines
}

// FrameLine is a run of frame text starting at a coordinate.
type FrameLine struct {
	At   core.Coordinate
	Text string
}

// gapBetween returns the gap column between two horizontally adjacent cells.
func gapBetween(a, b core.Coordinate) (core.Coordinate, bool) {
	if a.Row != b.Row || core.Abs(a.Col-b.Col) != core.ColumnStep {
		return core.Coordinate{}, false
	}
	return core.At((a.Col+b.Col)/2, a.Row), true
}

func repeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]rune, n)
	for i := range buf {
		buf[i] = r
	}
	return string(buf)
}
