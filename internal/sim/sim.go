// Package sim plays many headless autopilot games side by side and
// summarizes how they ended.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/games/snake"
)

// ErrNoGames is returned when a run asks for fewer than one game.
var ErrNoGames = errors.New("sim: need at least one game")

// Options configures a simulation run.
type Options struct {
	Games    int   // number of games to play
	MaxTicks int   // tick limit per game; 0 means until the game ends
	Workers  int   // concurrent games; 0 means GOMAXPROCS
	Seed     int64 // game i is seeded with Seed+i
}

// Result is the outcome of one game.
type Result struct {
	Index    int
	Seed     int64
	Final    snake.Snapshot
	Sweeps   int // solver passes on the last tick
	Elapsed  time.Duration
	TimedOut bool // stopped at MaxTicks while still running
}

// Run plays opts.Games games with the board setup from cfg and returns
// their results ordered by game index. Cancelling ctx stops every game at
// its next tick boundary and returns ctx's error.
func Run(ctx context.Context, cfg core.RuntimeConfig, opts Options, logger *log.Logger) ([]Result, error) {
	if opts.Games < 1 {
		return nil, ErrNoGames
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, opts.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range opts.Games {
		g.Go(func() error {
			gameCfg := cfg
			gameCfg.Seed = opts.Seed + int64(i)

			res, err := play(ctx, gameCfg, opts.MaxTicks)
			if err != nil {
				return fmt.Errorf("sim: game %d: %w", i, err)
			}
			res.Index = i
			results[i] = res

			logger.Debug("game finished",
				"game", i,
				"seed", res.Seed,
				"status", res.Final.Status,
				"ticks", res.Final.Tick,
				"length", res.Final.Length,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// play runs one game to its end, the tick limit or cancellation.
func play(ctx context.Context, cfg core.RuntimeConfig, maxTicks int) (Result, error) {
	game := snake.New()
	if err := game.Reset(cfg); err != nil {
		return Result{}, err
	}

	start := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if game.Session().Status().Ended() {
			break
		}
		if maxTicks > 0 && game.Session().Ticks() >= uint64(maxTicks) {
			break
		}
		game.Advance()
	}

	final := game.Snapshot()
	return Result{
		Seed:     cfg.Seed,
		Final:    final,
		Sweeps:   game.Autopilot().Field().Sweeps(),
		Elapsed:  time.Since(start),
		TimedOut: !final.Status.Ended(),
	}, nil
}

// Summary aggregates a set of results.
type Summary struct {
	Games     int
	Lost      int
	Filled    int
	TimedOut  int
	MeanScore float64
	BestScore int
	BestSeed  int64
	MaxLength int
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Games: len(results)}
	if len(results) == 0 {
		return s
	}

	total := 0
	for i, r := range results {
		switch {
		case r.Final.Status == snake.StatusLost:
			s.Lost++
		case r.Final.Status == snake.StatusFilled:
			s.Filled++
		case r.TimedOut:
			s.TimedOut++
		}
		total += r.Final.Score
		if i == 0 || r.Final.Score > s.BestScore {
			s.BestScore = r.Final.Score
			s.BestSeed = r.Seed
		}
		s.MaxLength = max(s.MaxLength, r.Final.Length)
	}
	s.MeanScore = float64(total) / float64(len(results))
	return s
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	lostStyle   = cellStyle.Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Table renders one row per game.
func Table(results []Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := r.Final.Status.String()
		if r.TimedOut {
			status = "tick limit"
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Index),
			strconv.FormatInt(r.Seed, 10),
			status,
			strconv.FormatUint(r.Final.Tick, 10),
			strconv.Itoa(r.Final.Score),
			strconv.Itoa(r.Final.Length),
			strconv.Itoa(r.Sweeps),
			r.Elapsed.Round(time.Millisecond).String(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("GAME", "SEED", "END", "TICKS", "SCORE", "LENGTH", "PASSES", "TIME").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 && row < len(results) && results[row].Final.Status == snake.StatusLost:
				return lostStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}

// String formats the summary as one line.
func (s Summary) String() string {
	return fmt.Sprintf("%d games: %d lost, %d filled, %d hit the tick limit; mean score %.1f, best %d (seed %d), longest snake %d",
		s.Games, s.Lost, s.Filled, s.TimedOut, s.MeanScore, s.BestScore, s.BestSeed, s.MaxLength)
}
