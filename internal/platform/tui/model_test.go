package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/autosnake/internal/core"
)

// countingGame ends after a fixed number of ticks and restarts on R.
type countingGame struct {
	resetErr error
	endAt    int
	steps    int
	resets   int
	last     core.InputFrame
}

func (g *countingGame) ID() string { return "counting" }
func (g *countingGame) Title() string { return "Counting" }

func (g *countingGame) Reset(core.RuntimeConfig) error {
	if g.resetErr != nil {
		return g.resetErr
	}
	g.resets++
	g.steps = 0
	return nil
}

func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	g.last = in
	if g.State().GameOver {
		if in.Has(core.ActionRestart) {
			g.steps = 0
		}
		return core.StepResult{State: g.State()}
	}
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *countingGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "tick")
}

func (g *countingGame) State() core.GameState {
	return core.GameState{Score: g.steps, GameOver: g.steps >= g.endAt}
}

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 20, 5
	cfg.Seed = 1
	return cfg
}

func TestNewModelResetsGame(t *testing.T) {
	g := &countingGame{endAt: 3}
	m, err := NewModel(g, testRuntime(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 4, m.screen.Height(), "one row is kept for help")
	assert.NotNil(t, m.Init())
}

func TestNewModelResetError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewModel(&countingGame{resetErr: boom}, testRuntime(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestModelTicksForwardInput(t *testing.T) {
	g := &countingGame{endAt: 10}
	m, err := NewModel(g, testRuntime(), nil)
	require.NoError(t, err)

	next, _ := m.Update(runeKey('d'))
	next, cmd := next.Update(TickMsg{})
	assert.NotNil(t, cmd)

	d, ok := g.last.Move()
	assert.True(t, ok)
	assert.Equal(t, core.Right, d)

	// Input is cleared after every tick.
	next, _ = next.Update(TickMsg{})
	_, ok = g.last.Move()
	assert.False(t, ok)

	assert.Equal(t, 2, next.(Model).State().Score)
}

func TestModelGameOverAndRestart(t *testing.T) {
	g := &countingGame{endAt: 2}
	m, err := NewModel(g, testRuntime(), nil)
	require.NoError(t, err)

	var next tea.Model = m
	for range 3 {
		next, _ = next.Update(TickMsg{})
	}
	mm := next.(Model)
	assert.True(t, mm.State().GameOver)
	assert.True(t, mm.endLogged)

	next, _ = next.Update(runeKey('r'))
	next, _ = next.Update(TickMsg{})
	mm = next.(Model)
	assert.False(t, mm.State().GameOver)
	assert.False(t, mm.endLogged)
}

func TestModelQuit(t *testing.T) {
	m, err := NewModel(&countingGame{endAt: 5}, testRuntime(), nil)
	require.NoError(t, err)

	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.View())
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &countingGame{endAt: 100}
	m, err := NewModel(g, testRuntime(), nil)
	require.NoError(t, err)

	next, _ := m.Update(TickMsg{})
	next, _ = next.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	mm := next.(Model)

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 1, mm.State().Score)
	assert.Equal(t, 40, mm.screen.Width())
	assert.Equal(t, 11, mm.screen.Height())
}

func TestModelView(t *testing.T) {
	m, err := NewModel(&countingGame{endAt: 5}, testRuntime(), nil)
	require.NoError(t, err)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "tick", strings.TrimRight(lines[0], " "))
	assert.Contains(t, lines[4], "quit")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "plain")

	assert.Equal(t, s.String(), ansi.Strip(RenderScreen(s)))
}
