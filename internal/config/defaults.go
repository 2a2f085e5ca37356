package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			WidthFraction:  0.8,
			HeightFraction: 0.8,
			MinCols:        24,
			MinRows:        10,
		},
		Snake: SnakeSettings{
			InitialLength: 4,
			Tick:          150 * time.Millisecond,
			Speedup:       time.Millisecond,
			MinTick:       40 * time.Millisecond,
		},
		Items: ItemsConfig{
			SpawnEvery:   4 * time.Second,
			PollInterval: 10 * time.Millisecond,
			Margin:       1,
		},
		Colors: ColorsConfig{
			Board: "gray",
			Snake: "green",
			Item:  "red",
			Text:  "white",
		},
		Keys: KeysConfig{
			Up:    []string{"k"},
			Down:  []string{"j"},
			Left:  []string{"h"},
			Right: []string{"l"},
			Quit:  []string{"q", "ctrl+c"},
		},
		GameOverPause: 1500 * time.Millisecond,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
