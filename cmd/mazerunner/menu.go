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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a maze size from a menu",
	Long: `Start in interactive menu mode.

Pick a maze size and play; quitting a maze returns to the menu.
Tab opens the best-times board.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected size
  Tab          - Best times
  Q            - Quit

Examples:
  mazerunner menu
  mazerunner menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(cfg.Server.DB)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

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
	mazeW, mazeH := cfg.Grid.Width, cfg.Grid.Height

	for {
		result, err := tui.RunMenu(store, runtime, mazeW, mazeH)
		if err != nil {
			return err
		}
		runtime = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, runtime.ScreenW, runtime.ScreenH, mazeW, mazeH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		mazeW, mazeH = result.Width, result.Height
		settings := settingsFrom(cfg)
		settings.Width, settings.Height = mazeW, mazeH

		logger.Info("starting", "width", mazeW, "height", mazeH, "tick_rate", runtime.TickRate)
		if err := tui.Run(game.New(settings), store, runtime, logger); err != nil {
			return err
		}
	}
}
