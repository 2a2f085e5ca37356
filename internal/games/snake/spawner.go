package snake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNoFreeCell is returned by SpawnOne when no free cell was found.
var ErrNoFreeCell = errors.New("no free cell for an item")

// Placer puts an item on a cell and draws it when the cell is free.
// It reports whether the item was placed.
type Placer interface {
	PlaceItem(c core.Coordinate, g core.Glyph) (bool, error)
}

// registryPlacer places items that only have to avoid each other.
type registryPlacer struct {
	items *ItemRegistry
	out   Renderer
}

func (p registryPlacer) PlaceItem(c core.Coordinate, g core.Glyph) (bool, error) {
	if !p.items.InsertIfAbsent(c) {
		return false, nil
	}
	if err := p.out.Draw(c, g); err != nil {
		return true, fmt.Errorf("draw item: %w", err)
	}
	return true, nil
}

// SpawnerConfig wires a Spawner to its collaborators.
type SpawnerConfig struct {
	Area     core.Rect // X must be even
	Items    *ItemRegistry
	Placer   Placer // Defaults to placing on Items alone
	Renderer Renderer
	Color    core.Color

	Every time.Duration // Dwell between spawns
	Poll  time.Duration // How often the stop notification is checked
	Seed  int64

	Logger *log.Logger
}

// Spawner places items on random free cells at a fixed interval.
type Spawner struct {
	area   core.Rect
	items  *ItemRegistry
	placer Placer
	glyph  core.Glyph
	every  time.Duration
	poll   time.Duration
	rng    *rand.Rand
	logger *log.Logger

	cols     int
	attempts int
}

// NewSpawner creates a spawner. Its random source is only touched by the
// goroutine running it.
func NewSpawner(cfg SpawnerConfig) *Spawner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	poll := cfg.Poll
	if poll <= 0 {
		poll = 10 * time.Millisecond
	}

	placer := cfg.Placer
	if placer == nil {
		placer = registryPlacer{items: cfg.Items, out: cfg.Renderer}
	}

	cols := 0
	if cfg.Area.W > 0 {
		cols = (cfg.Area.W-1)/core.ColumnStep + 1
	}
	return &Spawner{
		area:     cfg.Area,
		items:    cfg.Items,
		placer:   placer,
		glyph:    core.NewGlyph(itemRune, cfg.Color),
		every:    cfg.Every,
		poll:     poll,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		logger:   logger,
		cols:     cols,
		attempts: 4 * cols * cfg.Area.H,
	}
}

// SpawnOne places one item on a random cell that holds neither an item nor
// a snake segment, and draws it. When random picks keep missing, the area
// is scanned so a nearly full board still gets its item.
func (s *Spawner) SpawnOne(ctx context.Context) (core.Coordinate, error) {
	if s.cols == 0 || s.area.H <= 0 {
		return core.Coordinate{}, ErrNoFreeCell
	}

	for i := 0; i < s.attempts; i++ {
		c := s.sample()
		placed, err := s.place(ctx, c)
		if err != nil || placed {
			return c, err
		}
	}

	for row := s.area.Y; row < s.area.Bottom(); row++ {
		for k := 0; k < s.cols; k++ {
			c := core.At(s.area.X+core.ColumnStep*k, row)
			placed, err := s.place(ctx, c)
			if err != nil || placed {
				return c, err
			}
		}
	}
	return core.Coordinate{}, ErrNoFreeCell
}

// place puts an item at c if the cell is free. Nothing is placed once ctx
// is done.
func (s *Spawner) place(ctx context.Context, c core.Coordinate) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.placer.PlaceItem(c, s.glyph)
}

func (s *Spawner) sample() core.Coordinate {
	col := s.area.X + core.ColumnStep*s.rng.Intn(s.cols)
	row := s.area.Y + s.rng.Intn(s.area.H)
	return core.At(col, row)
}

// Run spawns an item right away and then one every interval until ctx is
// cancelled. It returns nil on cancellation and never draws after seeing it.
func (s *Spawner) Run(ctx context.Context) error {
	if err := s.spawn(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if now.Sub(last) < s.every {
				continue
			}
			if err := s.spawn(ctx); err != nil {
				return err
			}
			last = now
		}
	}
}

func (s *Spawner) spawn(ctx context.Context) error {
	c, err := s.SpawnOne(ctx)
	switch {
	case err == nil:
		s.logger.Debug("item spawned", "at", c, "items", s.items.Len())
		return nil
	case ctx.Err() != nil:
		return nil
	case errors.Is(err, ErrNoFreeCell):
		s.logger.Debug("no room for an item")
		return nil
	default:
		return err
	}
}
