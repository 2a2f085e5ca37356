package core

import (
	"strings"
	"sync"
)

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is an in-memory grid of cells that accepts the same drawing calls
// as a real terminal. It backs headless runs and tests, and is safe for use
// by several goroutines at once.
type Screen struct {
	mu            sync.Mutex
	width         int
	height        int
	cells         [][]Cell
	foreground    Color
	cursorVisible bool
	draws         int
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:         width,
		height:        height,
		cursorVisible: true,
	}
	s.allocate()
	s.fill(' ')
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

func (s *Screen) fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

func (s *Screen) set(x, y int, cell Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = cell
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Draw places a glyph at c. Out-of-bounds coordinates are silently ignored.
// A glyph in the default color takes the current foreground.
func (s *Screen) Draw(c Coordinate, g Glyph) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	color := g.Color
	if color == ColorDefault {
		color = s.foreground
	}
	s.set(c.Col, c.Row, Cell{Rune: g.Rune, Color: color})
	s.draws++
	return nil
}

// DrawText writes a string horizontally starting at c.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(c Coordinate, text string, color Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if color == ColorDefault {
		color = s.foreground
	}
	x := c.Col
	for _, r := range text {
		s.set(x, c.Row, Cell{Rune: r, Color: color})
		x++
	}
	s.draws++
	return nil
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fill(' ')
	return nil
}

// HideCursor marks the cursor hidden.
func (s *Screen) HideCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorVisible = false
	return nil
}

// ShowCursor marks the cursor visible.
func (s *Screen) ShowCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorVisible = true
	return nil
}

// SetForeground sets the color used for default-colored glyphs.
func (s *Screen) SetForeground(c Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.foreground = c
	return nil
}

// ResetColor restores the default foreground.
func (s *Screen) ResetColor() error {
	return s.SetForeground(ColorDefault)
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	s.mu.Lock()
	defer s.mu.Unlock()

	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// At returns the rune at coordinate c.
func (s *Screen) At(c Coordinate) rune {
	return s.Get(c.Col, c.Row)
}

// CursorVisible reports the cursor state.
func (s *Screen) CursorVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursorVisible
}

// Draws returns how many Draw and DrawText calls the screen has received.
func (s *Screen) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draws
}

// String converts the screen buffer to a string, rows joined with newlines.
func (s *Screen) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, cell := range s.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}
