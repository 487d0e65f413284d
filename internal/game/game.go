// Package game implements the maze runner: the player motion model, the
// session state machine, and the per-frame adapter the terminal platform
// drives.
package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mazerunner/internal/core"
	"github.com/vovakirdan/mazerunner/internal/maze"
)

// Terminal layout of one maze cell: three columns of floor plus one wall
// column, one row of floor plus one wall row.
const (
	cellCols  = 4
	cellRows  = 2
	hudHeight = 2
)

// Game adapts a Session to the fixed-tick frame loop.
type Game struct {
	settings Settings
	session  *Session
	tickRate int
	tick     uint64
	screenW  int
	screenH  int
}

// New creates a game that plays mazes with the given settings.
// Call Reset before the first Step.
func New(settings Settings) *Game {
	return &Game{settings: settings}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Runner"
}

// Reset starts a new session on the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	session, err := NewSession(g.settings, cfg.Seed)
	if err != nil {
		return err
	}
	g.session = session
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Resize records new screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Session exposes the underlying state machine.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies this frame's input and advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) (core.StepResult, error) {
	if g.session == nil {
		return core.StepResult{}, fmt.Errorf("game: step before reset")
	}
	g.tick++

	for _, a := range in.Ordered() {
		if err := g.session.Apply(a); err != nil {
			return core.StepResult{State: g.State()}, err
		}
	}
	g.session.Tick()

	return core.StepResult{State: g.State()}, nil
}

// State returns the coarse status reported to the platform.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Moves(),
		GameOver: g.session.State() == StateWon,
		Quit:     g.session.State() == StateTerminated,
	}
}

// Elapsed returns the play time of the current maze.
func (g *Game) Elapsed() time.Duration {
	if g.session == nil {
		return 0
	}
	return g.session.Elapsed(g.tickRate)
}

// Render draws the current screen for the session state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	switch g.session.State() {
	case StateStart:
		g.renderTitle(dst)
	case StatePlaying:
		g.renderHUD(dst)
		if !g.fits(dst) {
			g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.mazeCols()+2, g.mazeRows()+hudHeight))
			return
		}
		g.renderMaze(dst)
	case StateWon:
		g.renderWin(dst)
	case StateTerminated:
	}
}

func (g *Game) mazeCols() int { return g.settings.Width*cellCols + 1 }
func (g *Game) mazeRows() int { return g.settings.Height*cellRows + 1 }

func (g *Game) fits(dst *core.Screen) bool {
	return dst.Width() >= g.mazeCols() && dst.Height() >= g.mazeRows()+hudHeight
}

// origin returns the screen position of the maze's top-left corner.
func (g *Game) origin(dst *core.Screen) (int, int) {
	return (dst.Width() - g.mazeCols()) / 2, hudHeight
}

func (g *Game) renderTitle(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-4, "M A Z E   R U N N E R", core.ColorTitle)
	dst.DrawTextCentered(h/2-2, fmt.Sprintf("%dx%d maze", g.settings.Width, g.settings.Height), core.ColorMuted)
	dst.DrawTextCentered(h/2, "Press Enter to start", core.ColorAccent)
	dst.DrawTextCentered(h/2+2, "Arrows/WASD/HJKL move  ·  Q quits", core.ColorMuted)
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	hud := fmt.Sprintf(" Maze Runner  Time: %s  Moves: %d  Seed: %d", formatElapsed(g.Elapsed()), s.Moves(), s.MazeSeed())
	dst.DrawText(0, 0, hud, core.ColorHUD)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorMuted)
}

func (g *Game) renderMaze(dst *core.Screen) {
	ox, oy := g.origin(dst)
	grid := g.session.Grid()

	for _, cell := range grid.Cells() {
		bx := ox + cell.Pos.X*cellCols
		by := oy + cell.Pos.Y*cellRows

		for _, p := range [][2]int{{0, 0}, {cellCols, 0}, {0, cellRows}, {cellCols, cellRows}} {
			dst.SetColored(bx+p[0], by+p[1], '█', core.ColorWall)
		}
		if cell.HasWall(maze.Top) {
			dst.DrawHLine(bx+1, by, cellCols-1, '█', core.ColorWall)
		}
		if cell.HasWall(maze.Bottom) {
			dst.DrawHLine(bx+1, by+cellRows, cellCols-1, '█', core.ColorWall)
		}
		if cell.HasWall(maze.Left) {
			dst.DrawVLine(bx, by+1, cellRows-1, '█', core.ColorWall)
		}
		if cell.HasWall(maze.Right) {
			dst.DrawVLine(bx+cellCols, by+1, cellRows-1, '█', core.ColorWall)
		}
	}

	goal := g.session.Goal()
	dst.SetColored(ox+goal.X*cellCols+2, oy+goal.Y*cellRows+1, '*', core.ColorGoal)

	px, py := g.playerCell(ox, oy)
	dst.SetColored(px, py, '@', core.ColorPlayer)
}

// playerCell maps the interpolated pixel position to a screen position.
func (g *Game) playerCell(ox, oy int) (int, int) {
	span := g.settings.Geometry.Span()
	pos := g.session.Player().Pos
	return ox + 2 + pos.X*cellCols/span, oy + 1 + pos.Y*cellRows/span
}

func (g *Game) renderWin(dst *core.Screen) {
	s := g.session
	h := dst.Height()
	dst.DrawTextCentered(h/2-4, "You Win!", core.ColorTitle)
	dst.DrawTextCentered(h/2-2, formatElapsed(g.Elapsed()), core.ColorAccent)
	dst.DrawTextCentered(h/2-1, fmt.Sprintf("%d moves  ·  seed %d", s.Moves(), s.MazeSeed()), core.ColorMuted)
	dst.DrawTextCentered(h/2+2, "Press R to restart", core.ColorHUD)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorMuted)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorAccent)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorMuted)
}

// formatElapsed renders a duration as seconds with one decimal.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
