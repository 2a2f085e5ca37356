package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagDifficulty string
	flagTick       time.Duration
	flagSpawnEvery time.Duration
	flagLength     int
	flagMenu       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a game on the current terminal.

Controls (defaults, see "snake keys"):
  h/j/k/l    - Turn left/down/up/right
  q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow start, speeds up as the snake eats
  normal - Default speed, speeds up as the snake eats
  hard   - Fast start, speeds up as the snake eats
  fixed  - Never speeds up

Examples:
  snake play
  snake play --difficulty easy
  snake play --menu
  snake play --tick 100ms --spawn-every 2s
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().DurationVar(&flagTick, "tick", 0, "Initial delay between moves (overrides config)")
	cmd.Flags().DurationVar(&flagSpawnEvery, "spawn-every", 0, "Delay between items (overrides config)")
	cmd.Flags().IntVar(&flagLength, "length", 0, "Initial snake length (overrides config)")
	cmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick a difficulty before playing")
}

// applyPlayFlags overrides config values with the flags that were set.
func applyPlayFlags(cmd *cobra.Command, cfg *config.SnakeConfig) error {
	flags := cmd.Flags()
	if flags.Lookup("difficulty") == nil {
		return nil
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplySnakePreset(cfg, preset)
	}
	if flags.Changed("tick") {
		cfg.Snake.Tick = flagTick
	}
	if flags.Changed("spawn-every") {
		cfg.Items.SpawnEvery = flagSpawnEvery
	}
	if flags.Changed("length") {
		cfg.Snake.InitialLength = flagLength
	}
	return nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	terminal := tui.NewLocal(os.Stdin, os.Stdout)

	if flagMenu && flagDifficulty == "" {
		width := 80
		if w, _, sizeErr := terminal.Size(); sizeErr == nil {
			width = w
		}
		preset, ok, err := tui.RunDifficultySelector(width)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		flagDifficulty = string(preset)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(logOut, "snake")
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	keys := tui.NewKeyMap(cfg.Keys)
	input, err := tui.NewInput(os.Stdin, keys, logger)
	if err != nil {
		return fmt.Errorf("read keyboard: %w", err)
	}
	defer input.Close()

	game, err := snake.New(snake.Options{
		Config:   cfg,
		Terminal: terminal,
		Renderer: tui.NewOutput(os.Stdout, nil),
		Commands: input,
		Seed:     seed,
		Logger:   logger,
		HelpLine: keys.HelpLine(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := game.Run(ctx)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), res)
	return nil
}

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
	cyan  = color.New(color.FgCyan)
)

// printSummary prints the result of a finished run.
func printSummary(w io.Writer, res snake.Result) {
	outcome := green
	if res.Outcome == snake.OutcomeCollided {
		outcome = red
	}

	bold.Fprint(w, "Snake ")
	outcome.Fprintln(w, res.Outcome)
	fmt.Fprintf(w, "  length  %s\n", cyan.Sprint(res.Length))
	fmt.Fprintf(w, "  eaten   %s\n", cyan.Sprint(res.ItemsEaten))
	fmt.Fprintf(w, "  moves   %d\n", res.Ticks)
	fmt.Fprintf(w, "  time    %s\n", res.Duration.Round(100*time.Millisecond))
}
