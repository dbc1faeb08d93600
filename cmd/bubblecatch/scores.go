package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-catch/internal/registry"
	"github.com/vovakirdan/bubble-catch/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs",
	Long: `Display the best runs for the specified mode, or a summary of
every mode when none is given.

--recent lists the latest runs across all modes instead.
--clear deletes the history of the given mode.

Examples:
  bubblecatch scores
  bubblecatch scores classic
  bubblecatch scores quick --limit 20
  bubblecatch scores --recent
  bubblecatch scores marathon --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs of every mode")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the given mode")
	scoresCmd.MarkFlagsMutuallyExclusive("recent", "clear")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open run database: %w", err)
	}
	defer store.Close()

	out := os.Stdout

	if flagRecent {
		return printRecent(out, store, flagScoresLimit)
	}

	if len(args) == 0 {
		if flagClear {
			return errors.New("--clear needs a mode")
		}
		return printSummary(out, store)
	}

	mode := args[0]
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'bubblecatch list' to see available modes", mode)
	}

	if flagClear {
		return clearRuns(out, store, mode)
	}
	return printBest(out, store, mode, flagScoresLimit)
}

// printBest prints the top runs of one mode followed by its stats.
func printBest(w io.Writer, store *storage.Store, mode string, limit int) error {
	runs, err := store.TopRuns(mode, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Best Runs - %s\n\n", registry.Title(mode))

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'bubblecatch play %s' to set the first score!\n", mode)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-9s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-9s  %s\n", "----", "-----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6d  %-6s  %-9s  %s\n",
			i+1, r.Score, levelReached(r), resultLabel(r), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(mode)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Wins: %d  Best: %d  Average: %.1f\n",
			stats.Runs, stats.Wins, stats.BestScore, stats.AvgScore)
	}
	return nil
}

// printRecent prints the latest runs of every mode, newest first.
func printRecent(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Recent Runs\n\n")
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-10s  %-6s  %-6s  %s\n", "Date", "Mode", "Score", "Level", "Result")
	fmt.Fprintf(w, "  %-16s  %-10s  %-6s  %-6s  %s\n", "----", "----", "-----", "-----", "------")
	for _, r := range runs {
		fmt.Fprintf(w, "  %-16s  %-10s  %-6d  %-6s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, r.Score, levelReached(r), resultLabel(r))
	}
	return nil
}

// clearRuns deletes the history of one mode.
func clearRuns(w io.Writer, store *storage.Store, mode string) error {
	n, err := store.ClearRuns(mode)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d runs of %s.\n", n, registry.Title(mode))
	return nil
}

// printSummary prints one line per registered mode.
func printSummary(w io.Writer, store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  %-10s  %-5s  %-5s  %-5s  %s\n", "Mode", "Runs", "Wins", "Best", "Last played")
	fmt.Fprintf(w, "  %-10s  %-5s  %-5s  %-5s  %s\n", "----", "----", "----", "----", "-----------")

	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			fmt.Fprintf(w, "  %-10s  %-5d  %-5d  %-5d  %s\n", g.ID, 0, 0, 0, "never")
			continue
		}
		fmt.Fprintf(w, "  %-10s  %-5d  %-5d  %-5d  %s\n",
			g.ID, stats.Runs, stats.Wins, stats.BestScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func levelReached(r storage.RunRecord) string {
	return fmt.Sprintf("%d/%d", r.Level, r.Levels)
}

func resultLabel(r storage.RunRecord) string {
	if r.Won() {
		return "won"
	}
	return "game over"
}
