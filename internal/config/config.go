// Package config provides YAML-based game configuration loading and
// speed management for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board         BoardConfig   `yaml:"board"`
	Snake         SnakeSettings `yaml:"snake"`
	Items         ItemsConfig   `yaml:"items"`
	Colors        ColorsConfig  `yaml:"colors"`
	Keys          KeysConfig    `yaml:"keys"`
	GameOverPause time.Duration `yaml:"game_over_pause"`
}

// BoardConfig defines how the board is sized from the terminal.
type BoardConfig struct {
	WidthFraction  float64 `yaml:"width_fraction"`
	HeightFraction float64 `yaml:"height_fraction"`
	MinCols        int     `yaml:"min_cols"`
	MinRows        int     `yaml:"min_rows"`
}

// SnakeSettings defines the snake's starting shape and speed.
type SnakeSettings struct {
	InitialLength int           `yaml:"initial_length"`
	Tick          time.Duration `yaml:"tick"`
	Speedup       time.Duration `yaml:"speedup"`  // Delay removed per item eaten
	MinTick       time.Duration `yaml:"min_tick"` // Floor for the tick delay
}

// ItemsConfig defines the item spawner's timing.
type ItemsConfig struct {
	SpawnEvery   time.Duration `yaml:"spawn_every"`
	PollInterval time.Duration `yaml:"poll_interval"`
	Margin       int           `yaml:"margin"` // Cells kept free along the frame
}

// ColorsConfig names the colors of board elements.
type ColorsConfig struct {
	Board string `yaml:"board"`
	Snake string `yaml:"snake"`
	Item  string `yaml:"item"`
	Text  string `yaml:"text"`
}

// KeysConfig lists the keys bound to each command, in bubbletea key notation
// ("k", "ctrl+c", "up").
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// Speed returns the tick schedule described by the snake settings.
func (c SnakeConfig) Speed() SpeedSchedule {
	return SpeedSchedule{
		Initial: c.Snake.Tick,
		Step:    c.Snake.Speedup,
		Min:     c.Snake.MinTick,
	}
}

// Validate checks that every value is usable.
func (c SnakeConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Board.WidthFraction > 0 && c.Board.WidthFraction <= 1,
		"board.width_fraction %v must be in (0, 1]", c.Board.WidthFraction)
	check(c.Board.HeightFraction > 0 && c.Board.HeightFraction <= 1,
		"board.height_fraction %v must be in (0, 1]", c.Board.HeightFraction)
	check(c.Board.MinCols >= 8, "board.min_cols %d must be at least 8", c.Board.MinCols)
	check(c.Board.MinRows >= 6, "board.min_rows %d must be at least 6", c.Board.MinRows)

	check(c.Snake.InitialLength >= 1, "snake.initial_length %d must be at least 1", c.Snake.InitialLength)
	check(c.Snake.Tick > 0, "snake.tick %v must be positive", c.Snake.Tick)
	check(c.Snake.Speedup >= 0, "snake.speedup %v must not be negative", c.Snake.Speedup)
	check(c.Snake.MinTick > 0, "snake.min_tick %v must be positive", c.Snake.MinTick)
	check(c.Snake.MinTick <= c.Snake.Tick, "snake.min_tick %v must not exceed snake.tick %v",
		c.Snake.MinTick, c.Snake.Tick)

	check(c.Items.SpawnEvery > 0, "items.spawn_every %v must be positive", c.Items.SpawnEvery)
	check(c.Items.PollInterval > 0, "items.poll_interval %v must be positive", c.Items.PollInterval)
	check(c.Items.Margin >= 0, "items.margin %d must not be negative", c.Items.Margin)

	check(c.GameOverPause >= 0, "game_over_pause %v must not be negative", c.GameOverPause)

	for name, keys := range map[string][]string{
		"up": c.Keys.Up, "down": c.Keys.Down, "left": c.Keys.Left, "right": c.Keys.Right, "quit": c.Keys.Quit,
	} {
		check(len(keys) > 0, "keys.%s must bind at least one key", name)
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named starting speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty or unknown preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Snake.Tick = 200 * time.Millisecond
	case DifficultyNormal:
		cfg.Snake.Tick = 150 * time.Millisecond
	case DifficultyHard:
		cfg.Snake.Tick = 90 * time.Millisecond
	case DifficultyFixed:
		cfg.Snake.Speedup = 0
	}
	if cfg.Snake.MinTick > cfg.Snake.Tick {
		cfg.Snake.MinTick = cfg.Snake.Tick
	}
}

// ParseDifficulty returns the preset with the given name.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, name)
}
