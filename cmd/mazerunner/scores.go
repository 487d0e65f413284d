package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazerunner/internal/platform/tui"
	"github.com/vovakirdan/mazerunner/internal/storage"
)

var (
	flagPlain       bool
	flagScorePlayer string
	flagScoreRun    string
	flagScoreClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best times",
	Long: `Display the fastest runs for the configured maze size.

In a terminal an interactive board lets you flip between sizes; when
output is piped, or with --plain, a text table is printed instead.

--player lists one player's recent runs, --run shows a single run by its
id and --clear deletes every run of the configured size.

Examples:
  mazerunner scores
  mazerunner scores --width 21 --height 15 --plain
  mazerunner scores --player alice
  mazerunner scores --run 6f1c2a9e-0d4b-4c7e-9a51-3f0e8b2d7c11
  mazerunner scores --width 5 --height 5 --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "List recent runs of one player")
	scoresCmd.Flags().StringVar(&flagScoreRun, "run", "", "Show a single run by id")
	scoresCmd.Flags().BoolVar(&flagScoreClear, "clear", false, "Delete all runs of the configured size")
	scoresCmd.MarkFlagsMutuallyExclusive("player", "run", "clear")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Server.DB)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoreClear:
		return clearScores(out, store, cfg.Grid.Width, cfg.Grid.Height)
	case flagScoreRun != "":
		return printRun(out, store, flagScoreRun)
	case flagScorePlayer != "":
		return printPlayerRuns(out, store, flagScorePlayer)
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height, cfg.Grid.Width, cfg.Grid.Height)
		return err
	}

	return printScores(out, store, cfg.Grid.Width, cfg.Grid.Height)
}

// printScores writes the top ten runs for one size as text.
func printScores(out io.Writer, store *storage.Store, width, height int) error {
	runs, err := store.BestRuns(width, height, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Times - %dx%d\n\n", width, height)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'mazerunner play' to set the first time!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-12s  %s\n", "Rank", "Time", "Moves", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-12s  %s\n", "----", "----", "-----", "------", "----")

	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8s  %-6d  %-12s  %s\n",
			i+1,
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			r.Moves,
			r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	for _, s := range stats {
		if s.Width == width && s.Height == height {
			fmt.Fprintf(out, "Runs: %d  Best: %.1fs  Average: %.1fs  Avg moves: %.1f\n",
				s.Runs, s.BestElapsed.Seconds(), s.AvgElapsed.Seconds(), s.AvgMoves)
		}
	}
	return nil
}

// printPlayerRuns writes a player's most recent runs across all sizes.
func printPlayerRuns(out io.Writer, store *storage.Store, player string) error {
	runs, err := store.PlayerRuns(player, 20)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Recent Runs - %s\n\n", player)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-7s  %-8s  %-6s  %-16s  %s\n", "Size", "Time", "Moves", "Date", "Run")
	fmt.Fprintf(out, "  %-7s  %-8s  %-6s  %-16s  %s\n", "----", "----", "-----", "----", "---")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-7s  %-8s  %-6d  %-16s  %s\n",
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			r.Moves,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.RunID,
		)
	}
	return nil
}

// printRun writes the details of one run, including the seed that
// reproduces its maze.
func printRun(out io.Writer, store *storage.Store, runID string) error {
	if _, err := uuid.Parse(runID); err != nil {
		return fmt.Errorf("invalid run id %q: %w", runID, err)
	}

	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("run %s not found", runID)
	}

	fmt.Fprintf(out, "Run     %s\n", r.RunID)
	fmt.Fprintf(out, "Player  %s\n", r.Player)
	fmt.Fprintf(out, "Size    %dx%d\n", r.Width, r.Height)
	fmt.Fprintf(out, "Time    %.1fs\n", r.Elapsed.Seconds())
	fmt.Fprintf(out, "Moves   %d\n", r.Moves)
	fmt.Fprintf(out, "Seed    %d\n", r.Seed)
	fmt.Fprintf(out, "Date    %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "\nReplay the maze: mazerunner gen --width %d --height %d --seed %d\n", r.Width, r.Height, r.Seed)
	return nil
}

// clearScores deletes every run of one size.
func clearScores(out io.Writer, store *storage.Store, width, height int) error {
	if err := store.ClearRuns(width, height); err != nil {
		return err
	}
	fmt.Fprintf(out, "Cleared all %dx%d runs.\n", width, height)
	return nil
}
