// Package snake implements the snake game: the tick engine, the background
// item spawner, the item registry they share and the controller that runs
// them on a terminal.
package snake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrSpawnerPanicked is reported when the item spawner goroutine panics.
var ErrSpawnerPanicked = errors.New("item spawner panicked")

// Terminal is the raw terminal the game runs on.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	SetViewportSize(rows, cols int) error
	Size() (cols, rows int, err error)
}

// Options configures a Game.
type Options struct {
	Config   config.SnakeConfig
	Terminal Terminal
	Renderer Renderer
	Commands CommandSource
	Seed     int64
	Logger   *log.Logger
	HelpLine string // Drawn under the board; empty for none
}

// Result summarizes a finished run.
type Result struct {
	RunID      string
	Outcome    Outcome
	Length     int
	ItemsEaten int
	Ticks      uint64
	Duration   time.Duration
	Board      Board
}

type palette struct {
	board, snake, item, text core.Color
}

// Game runs one snake game on a terminal.
type Game struct {
	cfg    config.SnakeConfig
	term   Terminal
	out    Renderer
	input  CommandSource
	seed   int64
	logger *log.Logger
	help   string
	colors palette
}

// New validates the options and creates a game.
func New(opts Options) (*Game, error) {
	if opts.Terminal == nil || opts.Renderer == nil || opts.Commands == nil {
		return nil, errors.New("snake: terminal, renderer and command source are required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	var colors palette
	for _, c := range []struct {
		name string
		dst  *core.Color
	}{
		{opts.Config.Colors.Board, &colors.board},
		{opts.Config.Colors.Snake, &colors.snake},
		{opts.Config.Colors.Item, &colors.item},
		{opts.Config.Colors.Text, &colors.text},
	} {
		parsed, err := core.ParseColor(c.name)
		if err != nil {
			return nil, fmt.Errorf("%w: colors: %v", config.ErrInvalid, err)
		}
		*c.dst = parsed
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		cfg:    opts.Config,
		term:   opts.Terminal,
		out:    opts.Renderer,
		input:  opts.Commands,
		seed:   opts.Seed,
		logger: logger,
		help:   opts.HelpLine,
		colors: colors,
	}, nil
}

// Run plays one game until the player quits, the snake collides or ctx is
// cancelled. The terminal is restored before Run returns, including on
// error. Self-collision is an outcome, not an error.
func (g *Game) Run(ctx context.Context) (res Result, err error) {
	res.RunID = uuid.NewString()
	logger := g.logger.With("run", res.RunID)

	cols, rows, err := g.term.Size()
	if err != nil {
		return res, fmt.Errorf("query terminal size: %w", err)
	}
	rc := core.RuntimeConfig{ScreenW: cols, ScreenH: rows, Seed: g.seed}
	board, err := NewBoard(rc, g.cfg.Board, g.cfg.Items.Margin)
	if err != nil {
		return res, err
	}
	res.Board = board
	body, err := board.StartSnake(g.cfg.Snake.InitialLength)
	if err != nil {
		return res, err
	}

	if err := g.term.EnterRawMode(); err != nil {
		return res, fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if rerr := g.restore(); rerr != nil {
			logger.Error("restore terminal", "err", rerr)
			if err == nil {
				err = rerr
			}
		}
	}()

	items := NewItemRegistry()
	engine := NewEngine(EngineConfig{
		Board:      board,
		Snake:      body,
		Items:      items,
		Renderer:   g.out,
		Commands:   g.input,
		Speed:      g.cfg.Speed(),
		SnakeColor: g.colors.snake,
		ItemColor:  g.colors.item,
		Logger:     logger,
	})
	spawner := NewSpawner(SpawnerConfig{
		Area:     board.SpawnArea(),
		Items:    items,
		Placer:   engine,
		Renderer: g.out,
		Color:    g.colors.item,
		Every:    g.cfg.Items.SpawnEvery,
		Poll:     g.cfg.Items.PollInterval,
		Seed:     g.seed,
		Logger:   logger,
	})

	if err := g.setup(board, engine); err != nil {
		return res, err
	}

	logger.Info("run started", "board", fmt.Sprintf("%dx%d", board.Cols, board.Rows), "seed", g.seed)
	start := time.Now()

	spawnCtx, stop := context.WithCancel(ctx)
	defer stop()
	group, groupCtx := errgroup.WithContext(spawnCtx)
	group.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrSpawnerPanicked, r)
			}
		}()
		return spawner.Run(groupCtx)
	})

	outcome, runErr := engine.Run(groupCtx)

	stop()
	if joinErr := group.Wait(); joinErr != nil {
		if errors.Is(joinErr, ErrSpawnerPanicked) {
			logger.Error("item spawner stopped", "err", joinErr)
		} else if runErr == nil {
			runErr = fmt.Errorf("item spawner: %w", joinErr)
		}
	}

	if runErr == nil && outcome == OutcomeCollided {
		runErr = g.gameOver(ctx, board)
	}

	snap := engine.Snapshot()
	res.Outcome = outcome
	res.Length = snap.Length
	res.ItemsEaten = snap.ItemsEaten
	res.Ticks = snap.Ticks
	res.Duration = time.Since(start)

	if runErr != nil {
		return res, runErr
	}
	logger.Info("run finished", "outcome", outcome, "length", res.Length, "eaten", res.ItemsEaten,
		"duration", res.Duration.Round(time.Millisecond))
	return res, nil
}

// setup draws the empty board, the help line and the snake.
func (g *Game) setup(board Board, engine *Engine) error {
	if err := g.term.SetViewportSize(board.Rows+3, board.Cols+3); err != nil {
		return fmt.Errorf("set viewport size: %w", err)
	}

	steps := []func() error{
		g.out.Clear,
		g.out.HideCursor,
		func() error { return g.out.SetForeground(g.colors.board) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("prepare screen: %w", err)
		}
	}

	for _, line := range board.Frame() {
		if err := g.out.DrawText(line.At, line.Text, g.colors.board); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
	}
	if g.help != "" {
		if err := g.out.DrawText(core.At(0, board.Rows+1), g.help, g.colors.text); err != nil {
			return fmt.Errorf("draw help: %w", err)
		}
	}
	return engine.Render()
}

// gameOver shows the overlay and holds it for the configured pause.
func (g *Game) gameOver(ctx context.Context, board Board) error {
	const text = " GAME OVER "
	center := board.Center()
	col := core.Clamp(center.Col-len(text)/2, 1, board.Cols-len(text))
	at := core.At(col, center.Row)
	if err := g.out.DrawText(at, text, g.colors.text); err != nil {
		return fmt.Errorf("draw game over: %w", err)
	}
	sleepCtx(ctx, g.cfg.GameOverPause)
	return nil
}

// restore attempts every step and reports the first failure.
func (g *Game) restore() error {
	var first error
	record := func(what string, err error) {
		if err != nil && first == nil {
			first = fmt.Errorf("%s: %w", what, err)
		}
	}
	record("clear screen", g.out.Clear())
	record("show cursor", g.out.ShowCursor())
	record("reset color", g.out.ResetColor())
	record("exit raw mode", g.term.ExitRawMode())
	return first
}
