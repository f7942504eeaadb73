package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/autosnake/internal/games/snake"
	"github.com/vovakirdan/autosnake/internal/platform/tui"
	"github.com/vovakirdan/autosnake/internal/registry"
)

// exitLost is the exit status of `play --exit-code` after a loss.
const exitLost = 69

var (
	flagHuman    bool
	flagExitCode bool
	flagLogFile  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. By default the autopilot steers;
with --human you steer and Tab hands control to the autopilot and back.

Controls:
  Arrows/WASD - Steer (a reversal into the body is ignored)
  Tab         - Toggle autopilot
  P/Esc       - Pause
  R           - Restart (after the game ends)
  Q/Ctrl+C    - Quit

Examples:
  autosnake play
  autosnake play --human --tick-ms 120
  autosnake play --seed 42 --log-file snake.log --log-level debug
  autosnake play --exit-code; echo $?`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagHuman, "human", false, "Steer from the keyboard")
	playCmd.Flags().BoolVar(&flagExitCode, "exit-code", false, "Exit with status 69 if the snake dies")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	gameID := string(snake.ModeAutopilot)
	if flagHuman {
		gameID = string(snake.ModeClassic)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "autosnake")
	if err != nil {
		return err
	}

	logger.Debug("config loaded", "path", flagConfig, "tick", snakeConfig.Interval())

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.Run(game, snakeConfig.Runtime(flagSeed, width, height), logger); err != nil {
		return err
	}

	if flagExitCode {
		if g, ok := game.(*snake.Game); ok && g.Session().Status() == snake.StatusLost {
			os.Exit(exitLost)
		}
	}
	return nil
}
