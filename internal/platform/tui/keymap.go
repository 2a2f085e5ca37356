package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap translates key messages to game commands.
// It implements help.KeyMap.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:    binding(cfg.Up, "up"),
		Down:  binding(cfg.Down, "down"),
		Left:  binding(cfg.Left, "left"),
		Right: binding(cfg.Right, "right"),
		Quit:  binding(cfg.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings of the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultSnakeConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	label := ""
	if len(keys) > 0 {
		label = keys[0]
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(label, desc),
	)
}

// Command translates a key message. Unbound keys yield CommandNone.
func (k KeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Quit()
	case key.Matches(msg, k.Up):
		return core.Move(core.DirUp)
	case key.Matches(msg, k.Down):
		return core.Move(core.DirDown)
	case key.Matches(msg, k.Left):
		return core.Move(core.DirLeft)
	case key.Matches(msg, k.Right):
		return core.Move(core.DirRight)
	}
	return core.Command{}
}

// ShortHelp returns the bindings shown on the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Down, k.Up, k.Right, k.Quit}
}

// FullHelp returns the bindings grouped into columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Left, k.Right},
		{k.Quit},
	}
}

// HelpLine renders the short help without styling, for drawing under the
// board.
func (k KeyMap) HelpLine() string {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	h.ShortSeparator = "  "
	return h.ShortHelpView(k.ShortHelp())
}
