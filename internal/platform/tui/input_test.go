package tui

import (
	"io"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSplitRunes(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []string
	}{
		{"single rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, []string{"k"}},
		{"burst", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hjk")}, []string{"h", "j", "k"}},
		{"alt burst", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hk"), Alt: true}, []string{"alt+h", "alt+k"}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("lq"), Paste: true}, []string{"[lq]"}},
		{"special key", tea.KeyMsg{Type: tea.KeyCtrlC}, []string{"ctrl+c"}},
	}

	for _, tc := range tests {
		var got []string
		for _, k := range splitRunes(tc.msg) {
			got = append(got, k.String())
		}
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("%s: splitRunes() = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

// waitPoll polls until a command arrives or the deadline passes.
func waitPoll(t *testing.T, in *Input) core.Command {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cmd, ok := in.Poll(); ok {
			return cmd
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no command arrived")
	return core.Command{}
}

func newPipeInput(t *testing.T) (*Input, *io.PipeWriter) {
	t.Helper()
	r, w := io.Pipe()
	in, err := NewInput(r, DefaultKeyMap(), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = w.Close()
		_ = in.Close()
	})
	return in, w
}

func send(t *testing.T, w io.Writer, s string) {
	t.Helper()
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
}

func TestInputLatestCommand(t *testing.T) {
	in, w := newPipeInput(t)

	if _, ok := in.Poll(); ok {
		t.Error("Poll() before any input should report nothing")
	}

	send(t, w, "hk")
	if cmd := waitPoll(t, in); cmd != core.Move(core.DirUp) {
		t.Errorf("Poll() = %v, expected the latest key Move(up)", cmd)
	}
	if _, ok := in.Poll(); ok {
		t.Error("a command should be consumed by Poll()")
	}

	// An unbound key replaces the pending move.
	send(t, w, "lx")
	if cmd := waitPoll(t, in); cmd.Kind != core.CommandNone {
		t.Errorf("Poll() = %v, expected None", cmd)
	}
}

func TestInputQuitIsKept(t *testing.T) {
	in, w := newPipeInput(t)

	send(t, w, "qhj")
	if cmd := waitPoll(t, in); !cmd.IsQuit() {
		t.Errorf("Poll() = %v, expected Quit", cmd)
	}
}

func TestInputCtrlCQuits(t *testing.T) {
	in, w := newPipeInput(t)

	send(t, w, "\x03")
	if cmd := waitPoll(t, in); !cmd.IsQuit() {
		t.Errorf("Poll() = %v, expected Quit", cmd)
	}
}

func TestInputIgnoresPasteAndModifiedKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bracketed paste", "\x1b[200~l\x1b[201~"},
		{"ctrl+up", "\x1b[1;5A"},
		{"alt+k", "\x1bk"},
	}

	for _, tc := range tests {
		in, w := newPipeInput(t)

		send(t, w, "k")
		if cmd := waitPoll(t, in); cmd != core.Move(core.DirUp) {
			t.Fatalf("%s: Poll() = %v, expected Move(up)", tc.name, cmd)
		}

		send(t, w, tc.input)
		if cmd := waitPoll(t, in); cmd.Kind != core.CommandNone {
			t.Errorf("%s: Poll() = %v, expected None", tc.name, cmd)
		}
	}
}

func TestInputCloseReturns(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	in, err := NewInput(r, DefaultKeyMap(), nil)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- in.Close() }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close() did not return")
	}
}
