// Package config provides YAML-based configuration loading for the maze
// runner, with environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/mazerunner/internal/maze"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for the maze runner.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Motion MotionConfig `yaml:"motion"`
	Timing TimingConfig `yaml:"timing"`
	Server ServerConfig `yaml:"server"`
}

// GridConfig sets the maze dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MotionConfig defines the pixel layout used for player movement.
type MotionConfig struct {
	CellSize int `yaml:"cell_size"`
	Border   int `yaml:"border"`
	Step     int `yaml:"step"`
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// ServerConfig defines the SSH server and its run database.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	DB                 string `yaml:"db"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Grid.Width > maze.MaxCells/c.Grid.Height:
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrInvalidConfig, c.Grid.Width, c.Grid.Height, maze.MaxCells)
	case c.Motion.CellSize <= 0:
		return fmt.Errorf("%w: motion.cell_size must be positive, got %d", ErrInvalidConfig, c.Motion.CellSize)
	case c.Motion.Border < 0:
		return fmt.Errorf("%w: motion.border must not be negative, got %d", ErrInvalidConfig, c.Motion.Border)
	case c.Motion.Step <= 0:
		return fmt.Errorf("%w: motion.step must be positive, got %d", ErrInvalidConfig, c.Motion.Step)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	case c.Server.IdleTimeoutMinutes < 0:
		return fmt.Errorf("%w: server.idle_timeout_minutes must not be negative, got %d", ErrInvalidConfig, c.Server.IdleTimeoutMinutes)
	}
	return nil
}
