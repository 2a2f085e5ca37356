package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseSnake(GetDefaultYAML())
	if err != nil {
		t.Fatalf("ParseSnake(embedded) error = %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded defaults differ from DefaultSnakeConfig():\n got %+v\nwant %+v", cfg, DefaultSnakeConfig())
	}
}

func TestParseSnakePartialOverride(t *testing.T) {
	data := []byte(`
snake:
  tick: 100ms
items:
  spawn_every: 2s
keys:
  quit: [x]
`)

	cfg, err := ParseSnake(data)
	if err != nil {
		t.Fatalf("ParseSnake() error = %v", err)
	}

	if cfg.Snake.Tick != 100*time.Millisecond {
		t.Errorf("Snake.Tick = %v, expected 100ms", cfg.Snake.Tick)
	}
	if cfg.Items.SpawnEvery != 2*time.Second {
		t.Errorf("Items.SpawnEvery = %v, expected 2s", cfg.Items.SpawnEvery)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"x"}) {
		t.Errorf("Keys.Quit = %v, expected [x]", cfg.Keys.Quit)
	}

	// Untouched values keep their defaults
	def := DefaultSnakeConfig()
	if cfg.Snake.InitialLength != def.Snake.InitialLength {
		t.Errorf("Snake.InitialLength = %d, expected default %d", cfg.Snake.InitialLength, def.Snake.InitialLength)
	}
	if !reflect.DeepEqual(cfg.Keys.Up, def.Keys.Up) {
		t.Errorf("Keys.Up = %v, expected default %v", cfg.Keys.Up, def.Keys.Up)
	}
}

func TestParseSnakeEmpty(t *testing.T) {
	cfg, err := ParseSnake(nil)
	if err != nil {
		t.Fatalf("ParseSnake(nil) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Error("empty input should yield the defaults")
	}
}

func TestParseSnakeRejectsUnknownField(t *testing.T) {
	_, err := ParseSnake([]byte("snake:\n  tik: 10ms\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown field")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		field  string
	}{
		{"zero tick", func(c *SnakeConfig) { c.Snake.Tick = 0 }, "snake.tick"},
		{"negative speedup", func(c *SnakeConfig) { c.Snake.Speedup = -time.Millisecond }, "snake.speedup"},
		{"floor above tick", func(c *SnakeConfig) { c.Snake.MinTick = time.Second }, "snake.min_tick"},
		{"empty snake", func(c *SnakeConfig) { c.Snake.InitialLength = 0 }, "snake.initial_length"},
		{"fraction too big", func(c *SnakeConfig) { c.Board.WidthFraction = 1.5 }, "board.width_fraction"},
		{"no spawn interval", func(c *SnakeConfig) { c.Items.SpawnEvery = 0 }, "items.spawn_every"},
		{"unbound quit", func(c *SnakeConfig) { c.Keys.Quit = nil }, "keys.quit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected an error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error should wrap ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() error %q should mention %s", err, tc.field)
			}
		})
	}

	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("defaults should be valid, got %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("snake:\n  initial_length: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() error = %v", err)
	}
	if cfg.Snake.InitialLength != 6 {
		t.Errorf("Snake.InitialLength = %d, expected 6", cfg.Snake.InitialLength)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantTick    time.Duration
		wantSpeedup time.Duration
	}{
		{DifficultyEasy, 200 * time.Millisecond, time.Millisecond},
		{DifficultyNormal, 150 * time.Millisecond, time.Millisecond},
		{DifficultyHard, 90 * time.Millisecond, time.Millisecond},
		{DifficultyFixed, 150 * time.Millisecond, 0},
		{"", 150 * time.Millisecond, time.Millisecond},
	}

	for _, tc := range tests {
		cfg := DefaultSnakeConfig()
		ApplySnakePreset(&cfg, tc.preset)

		if cfg.Snake.Tick != tc.wantTick {
			t.Errorf("preset %q: Tick = %v, expected %v", tc.preset, cfg.Snake.Tick, tc.wantTick)
		}
		if cfg.Snake.Speedup != tc.wantSpeedup {
			t.Errorf("preset %q: Speedup = %v, expected %v", tc.preset, cfg.Snake.Speedup, tc.wantSpeedup)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produced an invalid config: %v", tc.preset, err)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		p, err := ParseDifficulty(name)
		if err != nil || string(p) != name {
			t.Errorf("ParseDifficulty(%q) = %q, %v", name, p, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseDifficulty(nightmare) error = %v, expected ErrInvalid", err)
	}
}
