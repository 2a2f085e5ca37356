package snake

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Renderer draws glyphs on the terminal grid. Implementations must be safe
// for concurrent use; the engine and the spawner share one.
type Renderer interface {
	Draw(c core.Coordinate, g core.Glyph) error
	DrawText(c core.Coordinate, text string, color core.Color) error
	Clear() error
	HideCursor() error
	ShowCursor() error
	SetForeground(color core.Color) error
	ResetColor() error
}

// CommandSource yields decoded player commands without blocking.
// ok is false when nothing arrived since the last poll.
type CommandSource interface {
	Poll() (cmd core.Command, ok bool)
}

// Outcome is the state of a run.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeCollided
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeCollided:
		return "collided"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run is over.
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

// EngineConfig wires an Engine to its collaborators.
type EngineConfig struct {
	Board    Board
	Snake    *Snake
	Items    *ItemRegistry
	Renderer Renderer
	Commands CommandSource
	Speed    config.SpeedSchedule

	SnakeColor core.Color
	ItemColor  core.Color

	Logger *log.Logger
}

// Engine moves the snake one cell per tick, grows it on items and detects
// self-collision.
type Engine struct {
	mu sync.RWMutex

	board    Board
	snake    *Snake
	items    *ItemRegistry
	out      Renderer
	commands CommandSource
	speed    config.SpeedSchedule
	logger   *log.Logger

	snakeColor core.Color
	itemColor  core.Color

	delay   time.Duration
	eaten   int
	ticks   uint64
	outcome Outcome
}

// NewEngine creates an engine in the running state.
func NewEngine(cfg EngineConfig) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	items := cfg.Items
	if items == nil {
		items = NewItemRegistry()
	}
	return &Engine{
		board:      cfg.Board,
		snake:      cfg.Snake,
		items:      items,
		out:        cfg.Renderer,
		commands:   cfg.Commands,
		speed:      cfg.Speed,
		logger:     logger,
		snakeColor: cfg.SnakeColor,
		itemColor:  cfg.ItemColor,
		delay:      cfg.Speed.Delay(0),
	}
}

// Advance applies one command and moves the snake one step.
// It returns the head after the step and the resulting outcome. Once the
// outcome is terminal further calls do nothing.
func (e *Engine) Advance(cmd core.Command) (core.Coordinate, Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.outcome.Terminal() {
		return e.snake.Head(), e.outcome, nil
	}
	if cmd.IsQuit() {
		e.outcome = OutcomeQuit
		return e.snake.Head(), e.outcome, nil
	}

	prev := e.snake.Heading()
	heading := prev
	if cmd.Kind == core.CommandMove && cmd.Direction.Valid() && !cmd.Direction.IsOpposite(prev) {
		heading = cmd.Direction
	}

	oldHead := e.snake.Head()
	newHead := e.board.Wrap(oldHead.Step(heading))
	if e.snake.Contains(newHead) {
		e.outcome = OutcomeCollided
		return newHead, e.outcome, nil
	}
	e.ticks++

	if err := e.draw(oldHead, Connector(prev, heading)); err != nil {
		return oldHead, e.outcome, err
	}
	if gap, ok := gapBetween(oldHead, newHead); ok {
		if err := e.draw(gap, gapRune); err != nil {
			return oldHead, e.outcome, err
		}
	}

	e.snake.pushHead(newHead, heading)
	if err := e.draw(newHead, headRune); err != nil {
		return newHead, e.outcome, err
	}

	if e.items.Take(newHead) {
		e.eaten++
		e.delay = e.speed.Next(e.delay)
		e.logger.Debug("item eaten", "at", newHead, "length", e.snake.Len(), "delay", e.delay)
		return newHead, e.outcome, nil
	}

	return newHead, e.outcome, e.vacateTail()
}

// vacateTail pops the tail and blanks what it leaves behind.
func (e *Engine) vacateTail() error {
	old := e.snake.popTail()

	// Items inserted straight into the registry are not checked against the
	// body, so one can sit under the tail.
	vacated := core.Blank
	if e.items.Contains(old) {
		vacated = core.NewGlyph(itemRune, e.itemColor)
	}
	if err := e.out.Draw(old, vacated); err != nil {
		return fmt.Errorf("draw tail: %w", err)
	}

	if gap, ok := gapBetween(old, e.snake.Tail()); ok {
		if err := e.out.Draw(gap, core.Blank); err != nil {
			return fmt.Errorf("draw tail: %w", err)
		}
	}
	return nil
}

func (e *Engine) draw(c core.Coordinate, r rune) error {
	if err := e.out.Draw(c, core.NewGlyph(r, e.snakeColor)); err != nil {
		return fmt.Errorf("draw snake at %d,%d: %w", c.Col, c.Row, err)
	}
	return nil
}

// Render draws the whole snake. Used once when the board is first shown.
func (e *Engine) Render() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	body := e.snake.body
	for i := len(body) - 1; i >= 1; i-- {
		next := stepDirection(body[i], body[i-1])
		prev := next
		if i+1 < len(body) {
			prev = stepDirection(body[i+1], body[i])
		}
		if err := e.draw(body[i], Connector(prev, next)); err != nil {
			return err
		}
		if gap, ok := gapBetween(body[i], body[i-1]); ok {
			if err := e.draw(gap, gapRune); err != nil {
				return err
			}
		}
	}
	return e.draw(body[0], headRune)
}

// Run polls for commands and advances once per tick until the snake
// collides, the player quits or ctx is cancelled. Cancellation counts as a
// quit.
func (e *Engine) Run(ctx context.Context) (Outcome, error) {
	for {
		if ctx.Err() != nil {
			return e.stop(), nil
		}

		cmd, ok := e.commands.Poll()
		if !ok {
			cmd = core.Command{}
		}

		_, outcome, err := e.Advance(cmd)
		if err != nil {
			return outcome, err
		}
		if outcome.Terminal() {
			return outcome, nil
		}

		if !sleepCtx(ctx, e.Delay()) {
			return e.stop(), nil
		}
	}
}

func (e *Engine) stop() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.outcome.Terminal() {
		e.outcome = OutcomeQuit
	}
	return e.outcome
}

// PlaceItem puts an item at c and draws it unless a snake segment or
// another item is there. The check, the insert and the draw happen under the
// engine lock, so a move can never land on c in between.
func (e *Engine) PlaceItem(c core.Coordinate, g core.Glyph) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snake.Contains(c) || !e.items.InsertIfAbsent(c) {
		return false, nil
	}
	if err := e.out.Draw(c, g); err != nil {
		return true, fmt.Errorf("draw item: %w", err)
	}
	return true, nil
}

// Delay returns the current tick delay.
func (e *Engine) Delay() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.delay
}

// Outcome returns the current state.
func (e *Engine) Outcome() Outcome {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.outcome
}

// stepDirection returns the heading of a single step from one segment to
// the next, including steps that wrapped around an edge.
func stepDirection(from, to core.Coordinate) core.Direction {
	dc, dr := to.Col-from.Col, to.Row-from.Row
	switch {
	case dr == -1 || dr > 1:
		return core.DirUp
	case dr == 1 || dr < -1:
		return core.DirDown
	case dc == core.ColumnStep || dc < -core.ColumnStep:
		return core.DirRight
	default:
		return core.DirLeft
	}
}

// sleepCtx waits for d and reports false if ctx ended first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
