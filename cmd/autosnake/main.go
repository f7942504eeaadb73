// autosnake plays snake on a wrap-around board, steered by a distance-field
// autopilot or from the keyboard.
//
// Usage:
//
//	autosnake list              - List available games
//	autosnake play              - Watch the autopilot play
//	autosnake play --human      - Steer the snake yourself
//	autosnake sim               - Play many headless games and summarize them
//	autosnake serve             - Start SSH server for spectators
//
// Global flags:
//
//	--config <path>   - Snake config YAML
//	--height, --width - Board size in cells
//	--food <n>        - Food items kept on the board
//	--solver <name>   - Distance solver: relax or bfs
//	--tick-ms <ms>    - Tick interval
//	--seed <value>    - RNG seed for reproducible games
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/autosnake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/autosnake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagHeight   int
	flagWidth    int
	flagFood     int
	flagSolver   string
	flagTickMS   int
	flagLogLevel string

	// snakeConfig is the merged and validated configuration, set before
	// any subcommand runs.
	snakeConfig config.SnakeConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "autosnake",
	Short: "Autosnake - a snake that plays itself",
	Long: `Autosnake plays snake on a board whose edges wrap around. Every tick
the autopilot measures the distance from each free cell to the nearest
food and moves the head one step downhill.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  sim      - Run headless games and print a summary
  serve    - Start SSH server for spectators

Examples:
  autosnake play
  autosnake play --human
  autosnake play --height 20 --width 40 --food 3 --solver bfs
  autosnake sim --games 100 --max-ticks 5000
  autosnake serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to snake config YAML")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagHeight, "height", 0, "Board height in cells")
	pf.IntVar(&flagWidth, "width", 0, "Board width in cells")
	pf.IntVar(&flagFood, "food", 0, "Number of food items on the board")
	pf.StringVar(&flagSolver, "solver", "", "Distance solver: relax or bfs")
	pf.IntVar(&flagTickMS, "tick-ms", 0, "Tick interval in milliseconds")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file, applies flags given on the command
// line and validates the result.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Changed("food") {
		cfg.Board.FoodCount = flagFood
	}
	if flags.Changed("solver") {
		cfg.Solver = flagSolver
	}
	if flags.Changed("tick-ms") {
		cfg.Tick.IntervalMS = flagTickMS
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	snakeConfig = cfg
	return nil
}

// newLogger returns a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
