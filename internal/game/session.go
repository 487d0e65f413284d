package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/mazerunner/internal/core"
	"github.com/vovakirdan/mazerunner/internal/maze"
)

// State is the lifecycle phase of a session.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateWon
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Settings fixes the maze size and movement layout for a session.
type Settings struct {
	Width    int
	Height   int
	Geometry Geometry
}

// DefaultSettings returns an 11x11 maze with the default geometry.
func DefaultSettings() Settings {
	return Settings{Width: 11, Height: 11, Geometry: DefaultGeometry()}
}

// Session runs one player's playthroughs: title screen, play, win,
// restart. It owns the grid and the player and is not safe for
// concurrent use.
type Session struct {
	settings    Settings
	grid        *maze.Grid
	player      Player
	rng         *rand.Rand
	state       State
	mazeSeed    int64
	genStats    maze.Stats
	generations int
	ticks       uint64 // ticks spent in StatePlaying for the current maze
	moves       int
}

// NewSession validates settings and returns a session in StateStart.
// Every maze seed is drawn from seed, so equal seeds replay the same
// sequence of mazes.
func NewSession(settings Settings, seed int64) (*Session, error) {
	if err := settings.Geometry.Validate(); err != nil {
		return nil, err
	}
	grid, err := maze.NewGrid(settings.Width, settings.Height)
	if err != nil {
		return nil, fmt.Errorf("game: new session: %w", err)
	}

	return &Session{
		settings: settings,
		grid:     grid,
		player:   NewPlayer(grid.Origin(), settings.Geometry),
		rng:      rand.New(rand.NewSource(seed)),
		state:    StateStart,
	}, nil
}

// Apply feeds one input event into the state machine. Directional input
// outside StatePlaying is ignored, as are Start outside StateStart and
// Restart outside StateWon. Quit terminates from any state.
func (s *Session) Apply(a core.Action) error {
	switch a {
	case core.ActionQuit:
		s.state = StateTerminated
	case core.ActionStart:
		if s.state == StateStart {
			return s.enterPlaying()
		}
	case core.ActionRestart:
		if s.state == StateWon {
			return s.enterPlaying()
		}
	default:
		if !a.IsDirectional() || s.state != StatePlaying {
			return nil
		}
		d, _ := directionFor(a)
		if s.player.TryMove(s.grid, d) {
			s.moves++
		}
	}
	return nil
}

// enterPlaying resets the grid and player and carves a fresh maze. It runs
// once per transition into StatePlaying.
func (s *Session) enterPlaying() error {
	if err := s.grid.Reset(s.settings.Width, s.settings.Height); err != nil {
		return fmt.Errorf("game: reset grid: %w", err)
	}
	s.mazeSeed = s.rng.Int63()
	s.genStats = maze.Generate(s.grid, rand.New(rand.NewSource(s.mazeSeed)))
	s.generations++

	s.player = NewPlayer(s.grid.Origin(), s.settings.Geometry)
	s.ticks = 0
	s.moves = 0
	s.state = StatePlaying
	return nil
}

// Tick advances one frame: while playing it moves the player and then
// checks whether the goal has been reached.
func (s *Session) Tick() {
	if s.state != StatePlaying {
		return
	}
	s.ticks++
	s.player.Advance(s.settings.Geometry)
	if s.player.Current == s.grid.Goal() {
		s.state = StateWon
	}
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Grid exposes the maze for rendering. Callers must not modify it.
func (s *Session) Grid() *maze.Grid { return s.grid }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Settings returns the session settings.
func (s *Session) Settings() Settings { return s.settings }

// Goal returns the cell that ends the run.
func (s *Session) Goal() maze.Coord { return s.grid.Goal() }

// MazeSeed returns the seed the current maze was carved from.
func (s *Session) MazeSeed() int64 { return s.mazeSeed }

// GenerationStats returns statistics of the last generation run.
func (s *Session) GenerationStats() maze.Stats { return s.genStats }

// Generations counts how many mazes this session has carved.
func (s *Session) Generations() int { return s.generations }

// Moves counts accepted moves in the current run.
func (s *Session) Moves() int { return s.moves }

// ElapsedTicks returns the ticks spent playing the current maze. It stops
// counting once the maze is won.
func (s *Session) ElapsedTicks() uint64 { return s.ticks }

// Elapsed converts ElapsedTicks to wall time at the given tick rate.
func (s *Session) Elapsed(tickRate int) time.Duration {
	if tickRate <= 0 {
		return 0
	}
	return time.Duration(s.ticks) * time.Second / time.Duration(tickRate)
}
