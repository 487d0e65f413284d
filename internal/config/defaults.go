package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// Default returns the built-in configuration: an 11x11 maze with 48px
// cells, 8px walls and a 14px step at 60 ticks per second.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  11,
			Height: 11,
		},
		Motion: MotionConfig{
			CellSize: 48,
			Border:   8,
			Step:     14,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
			DB:                 "~/.mazerunner/runs.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
