package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// stickyWriter remembers the first write error and fails every later write
// with it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

// Output draws glyphs at absolute terminal positions. Every call holds one
// lock for the cursor move and the styled write, so concurrent callers
// never interleave.
type Output struct {
	mu     sync.Mutex
	w      *stickyWriter
	term   *termenv.Output
	styles map[core.Color]lipgloss.Style
	fg     core.Color
}

// NewOutput creates an Output writing to w. A nil renderer detects the color
// profile from w.
func NewOutput(w io.Writer, r *lipgloss.Renderer) *Output {
	sw := &stickyWriter{w: w}
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}
	return &Output{
		w:      sw,
		term:   termenv.NewOutput(sw, termenv.WithProfile(r.ColorProfile())),
		styles: newColorStyles(r),
	}
}

func (o *Output) style(c core.Color) lipgloss.Style {
	if c == core.ColorDefault {
		c = o.fg
	}
	if s, ok := o.styles[c]; ok {
		return s
	}
	return o.styles[core.ColorDefault]
}

// Draw writes one glyph at c. Rows and columns are zero-based.
func (o *Output) Draw(c core.Coordinate, g core.Glyph) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.term.MoveCursor(c.Row+1, c.Col+1)
	_, _ = io.WriteString(o.w, o.style(g.Color).Render(string(g.Rune)))
	return o.w.err
}

// DrawText writes text starting at c.
func (o *Output) DrawText(c core.Coordinate, text string, color core.Color) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.term.MoveCursor(c.Row+1, c.Col+1)
	_, _ = io.WriteString(o.w, o.style(color).Render(text))
	return o.w.err
}

// Clear erases the screen.
func (o *Output) Clear() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.term.ClearScreen()
	return o.w.err
}

// HideCursor hides the cursor.
func (o *Output) HideCursor() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.term.HideCursor()
	return o.w.err
}

// ShowCursor shows the cursor.
func (o *Output) ShowCursor() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.term.ShowCursor()
	return o.w.err
}

// SetForeground sets the color used for glyphs drawn in the default color.
func (o *Output) SetForeground(c core.Color) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fg = c
	return o.w.err
}

// ResetColor drops the foreground and resets terminal attributes.
func (o *Output) ResetColor() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fg = core.ColorDefault
	o.term.Reset()
	return o.w.err
}
