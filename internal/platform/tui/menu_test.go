package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// menuKey maps a test key name to the message the terminal would deliver.
func menuKey(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func pressKeys(m DifficultyModel, keys ...string) (DifficultyModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, name := range keys {
		var next tea.Model
		next, cmd = m.Update(menuKey(name))
		m = next.(DifficultyModel)
	}
	return m, cmd
}

func TestDifficultyModelSelect(t *testing.T) {
	tests := []struct {
		keys     []string
		expected config.DifficultyPreset
	}{
		{[]string{"enter"}, config.DifficultyNormal},
		{[]string{"k", "enter"}, config.DifficultyEasy},
		{[]string{"k", "k", "k", "k", "enter"}, config.DifficultyEasy},
		{[]string{"j", "j", "enter"}, config.DifficultyFixed},
		{[]string{"down", " "}, config.DifficultyHard},
	}

	for _, tc := range tests {
		m, cmd := pressKeys(NewDifficultyModel(80), tc.keys...)
		preset, ok := m.Selected()
		if !ok || preset != tc.expected {
			t.Errorf("keys %v: Selected() = %q, %v, expected %q", tc.keys, preset, ok, tc.expected)
		}
		if cmd == nil {
			t.Errorf("keys %v: expected a quit command after selecting", tc.keys)
		}
	}
}

func TestDifficultyModelQuit(t *testing.T) {
	m, cmd := pressKeys(NewDifficultyModel(80), "j", "q")
	if _, ok := m.Selected(); ok {
		t.Error("Selected() ok = true after quitting")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestDifficultyModelView(t *testing.T) {
	view := NewDifficultyModel(60).View()
	if !strings.Contains(view, "> Normal") {
		t.Errorf("View() should put the cursor on Normal:\n%s", view)
	}
	for _, c := range difficultyChoices {
		if !strings.Contains(view, strings.Fields(c.label)[0]) {
			t.Errorf("View() missing %q", c.label)
		}
	}
}
