package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapCommand(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Command
	}{
		{runeKey("k"), core.Move(core.DirUp)},
		{runeKey("j"), core.Move(core.DirDown)},
		{runeKey("h"), core.Move(core.DirLeft)},
		{runeKey("l"), core.Move(core.DirRight)},
		{runeKey("q"), core.Quit()},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.Quit()},
		{runeKey("K"), core.Command{}},
		{runeKey("x"), core.Command{}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k"), Alt: true}, core.Command{}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l"), Paste: true}, core.Command{}},
		{tea.KeyMsg{Type: tea.KeyUp}, core.Command{}}, // Arrows are not bound by default
		{tea.KeyMsg{Type: tea.KeyCtrlUp}, core.Command{}},
	}

	for _, tc := range tests {
		if got := km.Command(tc.msg); got != tc.expected {
			t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	km := NewKeyMap(config.KeysConfig{
		Up:    []string{"w", "up"},
		Down:  []string{"s"},
		Left:  []string{"a"},
		Right: []string{"d"},
		Quit:  []string{"esc"},
	})

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Command
	}{
		{runeKey("w"), core.Move(core.DirUp)},
		{tea.KeyMsg{Type: tea.KeyUp}, core.Move(core.DirUp)},
		{runeKey("a"), core.Move(core.DirLeft)},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.Quit()},
		{runeKey("k"), core.Command{}},
	}
	for _, tc := range tests {
		if got := km.Command(tc.msg); got != tc.expected {
			t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestKeyMapHelpLine(t *testing.T) {
	line := DefaultKeyMap().HelpLine()

	for _, want := range []string{"h left", "j down", "k up", "l right", "q quit"} {
		if !strings.Contains(line, want) {
			t.Errorf("HelpLine() = %q, expected it to contain %q", line, want)
		}
	}
	if strings.Contains(line, "\x1b") {
		t.Errorf("HelpLine() = %q, expected no escape sequences", line)
	}
}
