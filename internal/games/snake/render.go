package snake

import (
	"fmt"

	"github.com/vovakirdan/autosnake/internal/core"
)

const hudHeight = 2

// Render draws the HUD and the board, two screen columns per cell.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}
	g.renderHUD(dst)

	grid := g.state.Grid()
	needW, needH := 2*grid.Width(), grid.Height()+hudHeight
	if dst.Width() < needW || dst.Height() < needH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	offX := (dst.Width() - needW) / 2
	cell := func(p core.Pos) (int, int) {
		return offX + 2*p.Col, hudHeight + p.Row
	}

	for p := range g.state.Segments() {
		x, y := cell(p)
		dst.SetColored(x, y, 'x', core.ColorGreen)
	}
	for _, p := range g.state.FoodCells() {
		x, y := cell(p)
		dst.SetColored(x, y, 'O', core.ColorRed)
	}
	x, y := cell(g.state.Head())
	dst.SetColored(x, y, g.state.Facing().Glyph(), core.ColorBrightGreen)

	switch {
	case g.state.Status() == StatusLost:
		g.renderOverlay(dst, "You lost!", "Press R to restart")
	case g.state.Status() == StatusFilled:
		g.renderOverlay(dst, "Board filled!", fmt.Sprintf("Length %d", g.state.Len()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	steer := "keyboard"
	if g.autopilot {
		steer = fmt.Sprintf("autopilot (%s, %d sweeps)", g.auto.strategy, g.auto.Field().Sweeps())
	}
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Tick: %d  Steering: %s",
		g.state.Eaten(), g.state.Len(), g.state.Ticks(), steer)
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.DrawBox(x, y, w, h)
	dst.DrawTextCentered(y+1, line1)
	dst.DrawTextCentered(y+3, line2)
}
