package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// difficultyChoices lists the presets offered by the picker, in order.
var difficultyChoices = []struct {
	preset config.DifficultyPreset
	label  string
}{
	{config.DifficultyEasy, "Easy    slow start"},
	{config.DifficultyNormal, "Normal  default speed"},
	{config.DifficultyHard, "Hard    fast start"},
	{config.DifficultyFixed, "Fixed   never speeds up"},
}

// menuKeys are the picker's bindings.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func newMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("k", "up", "w")),
		Down:   key.NewBinding(key.WithKeys("j", "down", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// DifficultyModel lets the player pick a difficulty preset before a game.
type DifficultyModel struct {
	cursor   int
	width    int
	keys     menuKeys
	choice   config.DifficultyPreset
	chosen   bool
	quitting bool
}

// NewDifficultyModel creates a picker with the cursor on the normal preset.
func NewDifficultyModel(width int) DifficultyModel {
	return DifficultyModel{
		cursor: 1,
		width:  width,
		keys:   newMenuKeys(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(difficultyChoices)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choice = difficultyChoices[m.cursor].preset
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, c := range difficultyChoices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-24s", cursor, c.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen preset. ok is false until one is chosen.
func (m DifficultyModel) Selected() (preset config.DifficultyPreset, ok bool) {
	return m.choice, m.chosen
}

func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunDifficultySelector shows the picker on the current terminal. ok is
// false when the player quit without choosing.
func RunDifficultySelector(width int) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(width), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
