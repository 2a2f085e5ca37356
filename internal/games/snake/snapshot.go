package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the engine state for tests and the post-game summary.
type Snapshot struct {
	Ticks      uint64
	Length     int
	Head       core.Coordinate
	Heading    core.Direction
	Delay      time.Duration
	ItemsEaten int
	Outcome    Outcome
	Body       []core.Coordinate // Head first
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Snapshot{
		Ticks:      e.ticks,
		Length:     e.snake.Len(),
		Head:       e.snake.Head(),
		Heading:    e.snake.Heading(),
		Delay:      e.delay,
		ItemsEaten: e.eaten,
		Outcome:    e.outcome,
		Body:       e.snake.Body(),
	}
}
