package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazerunner/internal/core"
	"github.com/vovakirdan/mazerunner/internal/game"
	"github.com/vovakirdan/mazerunner/internal/storage"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// Model is the Bubble Tea model that drives one maze runner session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	tracker    *runTracker
	quitting   bool
	err        error
}

// runTracker observes session changes between ticks. It is shared by
// pointer because Bubble Tea passes the model by value.
type runTracker struct {
	state       game.State
	generations int
	runSaved    bool // Whether the current win has been recorded
	best        time.Duration
	hasBest     bool
}

// startErrMsg reports that the session could not be started.
type startErrMsg struct{ err error }

// NewModel creates a Bubble Tea model for g. store and logger may be nil.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == "" {
		player = storage.LocalPlayer
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpHeight, 0)),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		tracker:    &runTracker{},
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	if err := m.game.Reset(cfg); err != nil {
		m.logger.Error("cannot start session", "error", err)
		return func() tea.Msg { return startErrMsg{err: err} }
	}
	m.logger.Debug("session ready", "seed", cfg.Seed, "tick_rate", cfg.TickRate, "player", m.player)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case startErrMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey collects input for the next tick. Quit is applied on the
// next tick so the session records its transition.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize adapts the screen. The maze and the run survive a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 0))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result, err := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	if err != nil {
		m.logger.Error("step failed", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.gameState = result.State
	m.observe()

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// observe logs session transitions and records each win once.
func (m Model) observe() {
	s := m.game.Session()
	t := m.tracker

	if s.Generations() != t.generations {
		t.generations = s.Generations()
		t.runSaved = false
		st := s.GenerationStats()
		m.logger.Info("maze generated",
			"seed", s.MazeSeed(),
			"width", s.Grid().Width(),
			"height", s.Grid().Height(),
			"max_depth", st.MaxDepth,
		)
	}

	if s.State() != t.state {
		m.logger.Debug("state changed", "from", t.state, "to", s.State())
		t.state = s.State()
	}

	if s.State() == game.StateWon && !t.runSaved {
		t.runSaved = true
		m.recordRun()
	}
}

// recordRun saves the finished run and refreshes the best time.
func (m Model) recordRun() {
	s := m.game.Session()
	elapsed := m.game.Elapsed()
	m.logger.Info("maze solved", "elapsed", elapsed, "moves", s.Moves(), "seed", s.MazeSeed())

	if m.store == nil {
		return
	}

	w, h := s.Grid().Width(), s.Grid().Height()
	_, err := m.store.SaveRun(storage.Run{
		Player:  m.player,
		Seed:    s.MazeSeed(),
		Width:   w,
		Height:  h,
		Elapsed: elapsed,
		Moves:   s.Moves(),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}

	best, ok, err := m.store.BestTime(w, h)
	if err != nil {
		m.logger.Warn("could not read best time", "error", err)
		return
	}
	m.tracker.best, m.tracker.hasBest = best, ok
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".mazerunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("maze_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if s := m.game.Session(); s != nil && s.State() == game.StateWon && m.tracker.hasBest {
		line := fmt.Sprintf("Best %dx%d: %.1fs", s.Grid().Width(), s.Grid().Height(), m.tracker.best.Seconds())
		m.screen.DrawTextCentered(m.screen.Height()/2+4, line, core.ColorMuted)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a local session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, store, cfg, logger, storage.LocalPlayer)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
