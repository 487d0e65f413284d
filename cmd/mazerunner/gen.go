package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazerunner/internal/maze"
)

var flagGenStats bool

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print a maze as ASCII art",
	Long: `Carve a maze and print it. The same seed and size always print the
same maze, so a seed from the win screen reproduces that maze.

Examples:
  mazerunner gen
  mazerunner gen --seed 42 --width 15 --height 8
  mazerunner gen --seed 42 --stats`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().BoolVar(&flagGenStats, "stats", false, "Print generation statistics")
}

func runGen(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, stats, err := maze.GenerateSeeded(cfg.Grid.Width, cfg.Grid.Height, seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed: %d  Size: %dx%d\n", seed, grid.Width(), grid.Height())
	fmt.Fprint(out, grid.String())
	if flagGenStats {
		fmt.Fprintf(out, "Start: %v  Passages: %d  Max depth: %d\n", stats.Start, stats.Carved, stats.MaxDepth)
	}
	return nil
}
