package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mazerunner/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameStepBeforeReset(t *testing.T) {
	g := New(DefaultSettings())
	if _, err := g.Step(frame()); err == nil {
		t.Error("Step before Reset should fail")
	}
}

func TestGameStartAndRender(t *testing.T) {
	g := New(Settings{Width: 5, Height: 4, Geometry: DefaultGeometry()})
	if err := g.Reset(testConfig(99)); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "M A Z E   R U N N E R") {
		t.Errorf("title screen missing title:\n%s", screen)
	}

	res, err := g.Step(frame(core.ActionStart))
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if res.State.GameOver || res.State.Quit {
		t.Fatalf("unexpected state after start: %+v", res.State)
	}
	if g.Session().State() != StatePlaying {
		t.Fatalf("session state = %v, want playing", g.Session().State())
	}

	g.Render(screen)
	ox, oy := (80-(5*cellCols+1))/2, hudHeight
	if got := screen.Get(ox, oy); got != '█' {
		t.Errorf("maze corner = %q, want wall", got)
	}
	for y := 0; y < 4; y++ {
		if got := screen.Get(ox, oy+y*cellRows+1); got != '█' {
			t.Errorf("outer left wall at row %d = %q, want wall", y, got)
		}
		if got := screen.Get(ox+5*cellCols, oy+y*cellRows+1); got != '█' {
			t.Errorf("outer right wall at row %d = %q, want wall", y, got)
		}
	}
	if got := screen.Get(ox+2, oy+1); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if got := screen.Get(ox+4*cellCols+2, oy+3*cellRows+1); got != '*' {
		t.Errorf("goal cell = %q, want '*'", got)
	}
	if !strings.Contains(screen.Row(0), "Moves: 0") {
		t.Errorf("HUD missing move counter: %q", screen.Row(0))
	}
}

func TestGameWindowTooSmall(t *testing.T) {
	g := New(Settings{Width: 9, Height: 9, Geometry: DefaultGeometry()})
	cfg := testConfig(5)
	cfg.ScreenW, cfg.ScreenH = 30, 10
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	g.Step(frame(core.ActionStart))

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small notice:\n%s", screen)
	}
}

func TestGameWinAndRestart(t *testing.T) {
	g := New(Settings{Width: 1, Height: 1, Geometry: DefaultGeometry()})
	if err := g.Reset(testConfig(8)); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	res, _ := g.Step(frame(core.ActionStart))
	if !res.State.GameOver {
		t.Fatalf("1x1 maze should be won on the first tick: %+v", res.State)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "You Win!") {
		t.Errorf("win screen missing banner:\n%s", screen)
	}

	g.Step(frame(core.ActionRestart))
	if g.Session().Generations() != 2 {
		t.Errorf("Generations = %d, want 2", g.Session().Generations())
	}

	res, _ = g.Step(frame(core.ActionQuit))
	if !res.State.Quit {
		t.Errorf("quit not reported: %+v", res.State)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := []core.Action{core.ActionStart, core.ActionRight, core.ActionDown, core.ActionRight, core.ActionDown, core.ActionLeft}

	run := func() Snapshot {
		g := New(Settings{Width: 7, Height: 7, Geometry: DefaultGeometry()})
		g.Reset(testConfig(4242))
		for _, a := range inputs {
			g.Step(frame(a))
			for range 5 {
				g.Step(frame())
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.OpenEdges != 7*7-1 {
		t.Errorf("OpenEdges = %d, want %d", s1.OpenEdges, 7*7-1)
	}
}
