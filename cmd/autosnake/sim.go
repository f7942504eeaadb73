package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/autosnake/internal/sim"
)

var (
	flagGames       int
	flagMaxTicks    int
	flagWorkers     int
	flagSummaryOnly bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play headless autopilot games and summarize them",
	Long: `Play many autopilot games without a screen, several at a time, and
print how each one ended. Game i uses seed --seed + i, so a run can be
repeated exactly. Ctrl+C stops every game at its next tick.

Examples:
  autosnake sim
  autosnake sim --games 200 --max-ticks 10000 --workers 8
  autosnake sim --height 10 --width 10 --food 1 --solver bfs --seed 1`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 10000, "Tick limit per game (0 = until the game ends)")
	simCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Games played at once (0 = one per CPU)")
	simCmd.Flags().BoolVar(&flagSummaryOnly, "summary-only", false, "Print only the summary line")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "autosnake-sim")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := flagSeed
	if !cmd.Flags().Changed("seed") {
		seed = 1
	}

	opts := sim.Options{
		Games:    flagGames,
		MaxTicks: flagMaxTicks,
		Workers:  flagWorkers,
		Seed:     seed,
	}
	cfg := snakeConfig.Runtime(seed, 0, 0)

	logger.Info("simulation started",
		"games", opts.Games,
		"board", fmt.Sprintf("%dx%d", cfg.BoardH, cfg.BoardW),
		"food", cfg.FoodCount,
		"solver", cfg.Solver,
		"max_ticks", opts.MaxTicks,
	)

	results, err := sim.Run(ctx, cfg, opts, logger)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("simulation interrupted: %w", context.Cause(ctx))
		}
		return err
	}

	out := cmd.OutOrStdout()
	if !flagSummaryOnly {
		fmt.Fprintln(out, sim.Table(results))
	}
	summary := sim.Summarize(results)
	fmt.Fprintln(out, summary)

	logger.Info("simulation finished", "lost", summary.Lost, "filled", summary.Filled, "best", summary.BestScore)
	return nil
}
