// Package snake implements a self-playing snake on a wrap-around board.
//
// Each tick the autopilot rebuilds a distance field from every free cell
// to the nearest food and steps the head downhill on it; the tick engine
// then moves the snake, grows it on food and ends the game when the head
// runs into the body. A human policy can take over the steering.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/registry"
)

// Mode selects who steers when a game starts.
type Mode string

const (
	ModeAutopilot Mode = "autopilot"
	ModeClassic   Mode = "classic"
)

// Game adapts a State and its policies to the platform's Game interface.
type Game struct {
	mode      Mode
	cfg       core.RuntimeConfig
	rng       *rand.Rand
	state     *State
	auto      *Autopilot
	human     *Human
	autopilot bool
	paused    bool
}

// New creates a game steered by the autopilot.
func New() *Game {
	return &Game{mode: ModeAutopilot}
}

// NewClassic creates a game steered from the keyboard.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register(string(ModeAutopilot), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeClassic), func() registry.Game {
		return NewClassic()
	})
}

// ID returns the registry identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Snake (keyboard)"
	}
	return "Snake (autopilot)"
}

// Reset starts a new game on the board described by cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	grid, err := core.NewGrid(cfg.BoardH, cfg.BoardW)
	if err != nil {
		return fmt.Errorf("snake: %w", err)
	}
	strategy, err := ParseStrategy(cfg.Solver)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	state, err := NewState(grid, cfg.FoodCount, rng)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.rng = rng
	g.state = state
	g.auto = NewAutopilot(grid, strategy)
	g.human = &Human{}
	g.autopilot = g.mode == ModeAutopilot
	g.paused = false
	return nil
}

// Step handles one tick of platform input and advances the game.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{}
	}

	ended := g.state.Status().Ended()
	if input.Has(core.ActionRestart) && ended {
		cfg := g.cfg
		cfg.Seed = g.rng.Int63()
		//nolint:errcheck // cfg already passed Reset once
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) && !ended {
		g.paused = !g.paused
	}
	if input.Has(core.ActionAutopilot) {
		g.autopilot = !g.autopilot
	}
	if ended || g.paused {
		return core.StepResult{State: g.State()}
	}

	if d, ok := input.Move(); ok && !g.autopilot {
		g.human.Press(d)
	}
	g.Advance()

	return core.StepResult{State: g.State()}
}

// Advance runs the active policy and applies its move.
func (g *Game) Advance() Status {
	return g.state.Advance(g.Policy().Choose(g.state))
}

// Policy returns the policy currently steering.
func (g *Game) Policy() Policy {
	if g.autopilot {
		return g.auto
	}
	return g.human
}

// Session returns the underlying game state.
func (g *Game) Session() *State {
	return g.state
}

// Autopilot returns the autopilot, whether or not it is steering.
func (g *Game) Autopilot() *Autopilot {
	return g.auto
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Eaten(),
		GameOver: g.state.Status().Ended(),
		Paused:   g.paused,
	}
}
