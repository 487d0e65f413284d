package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazerunner/internal/core"
	"github.com/vovakirdan/mazerunner/internal/game"
	"github.com/vovakirdan/mazerunner/internal/platform/tui"
	"github.com/vovakirdan/mazerunner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a maze",
	Long: `Start a maze run in this terminal.

Controls:
  Enter/Space     - Start
  Arrows/WASD/HJKL - Move one cell
  R               - New maze (after a win)
  Ctrl+S          - Save a text screenshot
  Q/Esc/Ctrl+C    - Quit

Examples:
  mazerunner play
  mazerunner play --width 21 --height 15
  mazerunner play --seed 42 --log maze.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}

	store, err := storage.Open(cfg.Server.DB)
	if err != nil {
		// The game still works without storage.
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "width", cfg.Grid.Width, "height", cfg.Grid.Height, "tick_rate", runtime.TickRate)
	return tui.Run(game.New(settingsFrom(cfg)), store, runtime, logger)
}
