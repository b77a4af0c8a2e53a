package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresReset bool
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display recorded games, best first, with the all-time high score.

In a terminal an interactive table is shown; otherwise (or with --plain)
the list is printed.

Examples:
  snake scores
  snake scores --plain --limit 5
  snake scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the history and the high score")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print instead of showing the table")
}

func runScores(_ *cobra.Command, _ []string) {
	if err := scores(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func scores() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store, flagScoresLimit)
}

func printScores(store *storage.Store, limit int) error {
	entries, err := store.TopScores(limit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Food", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "----", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.FoodEaten, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(storage.HighScoreKey); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if st, err := store.Stats(); err == nil && st.GamesCount > 0 {
		fmt.Printf("Games: %d   Avg: %.0f   Food eaten: %d\n", st.GamesCount, st.AvgScore, st.TotalFood)
	}
	return nil
}
