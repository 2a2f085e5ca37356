package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the game is started without a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Local is the controlling terminal of the process.
type Local struct {
	in    *os.File
	out   io.Writer
	state *term.State
}

// NewLocal creates a Local terminal reading from in and writing to out.
func NewLocal(in *os.File, out io.Writer) *Local {
	return &Local{in: in, out: out}
}

// EnterRawMode disables line buffering and echo.
func (l *Local) EnterRawMode() error {
	fd := int(l.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	l.state = state
	return nil
}

// ExitRawMode restores the mode saved by EnterRawMode. It is a no-op when
// raw mode was never entered.
func (l *Local) ExitRawMode() error {
	if l.state == nil {
		return nil
	}
	err := term.Restore(int(l.in.Fd()), l.state)
	l.state = nil
	return err
}

// SetViewportSize asks the terminal emulator to resize its window.
// Emulators that ignore the request keep their size.
func (l *Local) SetViewportSize(rows, cols int) error {
	return writeViewportSize(l.out, rows, cols)
}

// Size returns the terminal size in cells.
func (l *Local) Size() (cols, rows int, err error) {
	return term.GetSize(int(l.in.Fd()))
}

func writeViewportSize(w io.Writer, rows, cols int) error {
	_, err := fmt.Fprintf(w, "\x1b[8;%d;%dt", rows, cols)
	return err
}
