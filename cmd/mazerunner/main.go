// mazerunner is a terminal maze game: find your way from the top-left
// corner to the key in the bottom-right corner of a freshly carved maze.
//
// Usage:
//
//	mazerunner               - Play (same as "mazerunner play")
//	mazerunner play          - Play a maze in this terminal
//	mazerunner menu          - Pick a maze size interactively
//	mazerunner gen           - Print a seeded maze as ASCII art
//	mazerunner scores        - Show best times
//	mazerunner serve         - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Config file (default search: ~/.mazerunner/configs, ./configs)
//	--width, --height <n> - Maze size in cells
//	--fps <rate>     - Tick rate
//	--seed <value>   - RNG seed for reproducible mazes
//	--db <path>      - Runs database (default: ~/.mazerunner/runs.db)
//	--log <path>     - Write logs to a file
//	--debug          - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazerunner/internal/config"
	"github.com/vovakirdan/mazerunner/internal/game"
)

var (
	// Global flags
	flagConfig  string
	flagWidth   int
	flagHeight  int
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazerunner",
	Short: "Maze Runner - find the key in a random maze",
	Long: `Maze Runner carves a new perfect maze for every run. Start in the
top-left corner and reach the key in the bottom-right corner.

Available commands:
  play     - Play in this terminal (default)
  menu     - Pick a maze size interactively
  gen      - Print a maze as ASCII art
  scores   - View best times
  serve    - Start SSH server for remote play

Examples:
  mazerunner
  mazerunner play --width 21 --height 15
  mazerunner gen --seed 42
  mazerunner scores
  mazerunner serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to maze.yaml")
	pf.IntVar(&flagWidth, "width", 0, "Maze width in cells (overrides config)")
	pf.IntVar(&flagHeight, "height", 0, "Maze height in cells (overrides config)")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to runs database (overrides config)")
	pf.StringVar(&flagLogPath, "log", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the configuration file, environment and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flags.Changed("fps") {
		cfg.Timing.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Server.DB = flagDBPath
	}

	return cfg, cfg.Validate()
}

// settingsFrom converts the file configuration into session settings.
func settingsFrom(cfg config.Config) game.Settings {
	return game.Settings{
		Width:  cfg.Grid.Width,
		Height: cfg.Grid.Height,
		Geometry: game.Geometry{
			CellSize: cfg.Motion.CellSize,
			Border:   cfg.Motion.Border,
			Step:     cfg.Motion.Step,
		},
	}
}

// newLogger builds the process logger. Without --log it writes to
// fallback; the returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazerunner",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
