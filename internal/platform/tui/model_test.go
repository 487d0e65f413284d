package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazerunner/internal/core"
	"github.com/vovakirdan/mazerunner/internal/game"
	"github.com/vovakirdan/mazerunner/internal/maze"
	"github.com/vovakirdan/mazerunner/internal/storage"
)

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m, cmd
}

func TestModelRecordsEachWinOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := game.New(game.Settings{Width: 1, Height: 1, Geometry: game.DefaultGeometry()})
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewModel(g, store, cfg, nil, "tester")
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init returned no tick command")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{}, TickMsg{}, TickMsg{})
	if g.Session().State() != game.StateWon {
		t.Fatalf("state = %v, want won", g.Session().State())
	}

	runs, err := store.BestRuns(1, 1, 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Player != "tester" {
		t.Errorf("Player = %q, want tester", runs[0].Player)
	}
	if !strings.Contains(m.View(), "You Win!") {
		t.Error("win screen not rendered")
	}

	m, _ = send(t, m, runeKey('r'), TickMsg{})
	runs, _ = store.BestRuns(1, 1, 10)
	if len(runs) != 2 {
		t.Errorf("Expected 2 saved runs after restart, got %d", len(runs))
	}

	m, cmd := send(t, m, runeKey('q'), TickMsg{})
	if g.Session().State() != game.StateTerminated {
		t.Errorf("state = %v, want terminated", g.Session().State())
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := game.New(game.Settings{Width: 5, Height: 5, Geometry: game.DefaultGeometry()})
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
	m := NewModel(g, nil, cfg, nil, "")
	m.Init()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	seed := g.Session().MazeSeed()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.Session().State() != game.StatePlaying || g.Session().MazeSeed() != seed {
		t.Error("resize restarted the run")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}
}

func TestModelStartFailureSurfacesError(t *testing.T) {
	g := game.New(game.Settings{Width: 0, Height: 5, Geometry: game.DefaultGeometry()})
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewModel(g, nil, cfg, nil, "")

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	msg := cmd()
	if _, ok := msg.(startErrMsg); !ok {
		t.Fatalf("Init command produced %T, want startErrMsg", msg)
	}

	m, cmd = send(t, m, msg)
	if cmd == nil {
		t.Error("start failure should quit")
	}
	if !errors.Is(m.err, maze.ErrInvalidDimension) {
		t.Errorf("err = %v, want ErrInvalidDimension", m.err)
	}
}

func TestModelScreenshotUsesBinding(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	g := game.New(game.Settings{Width: 3, Height: 3, Geometry: game.DefaultGeometry()})
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}
	m := NewModel(g, nil, cfg, nil, "")
	m.Init()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(m.inputFrame.Ordered()) != 0 {
		t.Errorf("screenshot key leaked into input: %v", m.inputFrame.Ordered())
	}

	entries, err := os.ReadDir(filepath.Join(home, ".mazerunner", "screenshots"))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 screenshot, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(home, ".mazerunner", "screenshots", entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "M A Z E   R U N N E R") {
		t.Errorf("screenshot missing title screen:\n%s", data)
	}
}
