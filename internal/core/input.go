package core

// CommandKind classifies a player command, abstracted from physical key presses.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandMove             // h/j/k/l - change heading
	CommandQuit             // q, Ctrl+C - end the run
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "None"
	case CommandMove:
		return "Move"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is a decoded player intent. Direction is only meaningful for
// CommandMove.
type Command struct {
	Kind      CommandKind
	Direction Direction
}

// Move creates a heading change command.
func Move(d Direction) Command {
	return Command{Kind: CommandMove, Direction: d}
}

// Quit creates a quit command.
func Quit() Command {
	return Command{Kind: CommandQuit}
}

// IsQuit reports whether c ends the run.
func (c Command) IsQuit() bool {
	return c.Kind == CommandQuit
}

func (c Command) String() string {
	if c.Kind == CommandMove {
		return "Move(" + c.Direction.String() + ")"
	}
	return c.Kind.String()
}
