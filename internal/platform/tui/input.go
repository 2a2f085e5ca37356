package tui

import (
	"errors"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/cancelreader"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Input reads key presses in the background and keeps the latest decoded
// command until it is polled. Keys are decoded by a headless bubbletea
// program reading from a cancellable reader.
type Input struct {
	r       cancelreader.CancelReader
	keys    KeyMap
	logger  *log.Logger
	program *tea.Program

	mu      sync.Mutex
	pending core.Command
	fresh   bool

	done chan struct{}
}

// NewInput starts reading keys from r.
func NewInput(r io.Reader, keys KeyMap, logger *log.Logger) (*Input, error) {
	cr, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	in := &Input{
		r:      cr,
		keys:   keys,
		logger: logger,
		done:   make(chan struct{}),
	}
	// The game owns the screen and the terminal mode, so the program
	// renders nothing and leaves signals alone.
	in.program = tea.NewProgram(keyReader{in: in},
		tea.WithInput(cr),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	go in.run()
	return in, nil
}

func (in *Input) run() {
	defer close(in.done)
	if _, err := in.program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		in.logger.Debug("input stopped", "err", err)
	}
}

// store replaces the pending command. A pending quit is never replaced.
func (in *Input) store(cmd core.Command) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.fresh && in.pending.IsQuit() {
		return
	}
	in.pending = cmd
	in.fresh = true
}

// Poll returns the latest command received since the previous poll.
func (in *Input) Poll() (core.Command, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if !in.fresh {
		return core.Command{}, false
	}
	in.fresh = false
	return in.pending, true
}

// Close stops the key reader and waits for it to exit.
func (in *Input) Close() error {
	in.r.Cancel()
	in.program.Kill()
	<-in.done
	return in.r.Close()
}

// keyReader is the model of the input program: every key message becomes a
// command.
type keyReader struct {
	in *Input
}

func (m keyReader) Init() tea.Cmd {
	return nil
}

func (m keyReader) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		for _, k := range splitRunes(msg) {
			m.in.store(m.in.keys.Command(k))
		}
	}
	return m, nil
}

func (m keyReader) View() string {
	return ""
}

// splitRunes breaks a burst of typed runes into one key message per rune,
// so "hk" typed between two ticks reads as h then k. Pastes stay whole and
// never match a binding.
func splitRunes(msg tea.KeyMsg) []tea.KeyMsg {
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) < 2 {
		return []tea.KeyMsg{msg}
	}
	keys := make([]tea.KeyMsg, len(msg.Runes))
	for i, r := range msg.Runes {
		keys[i] = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}
	}
	return keys
}
