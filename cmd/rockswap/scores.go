package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockswap/internal/registry"
	"github.com/vovakirdan/rockswap/internal/storage"
)

var (
	flagClearScores bool
	flagScoreLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for the specified mode. Without a mode,
print one summary line per registered mode.

With --clear, delete every stored score for the mode instead.

Examples:
  rockswap scores
  rockswap scores rockswap
  rockswap scores rockswap_zen --limit 20
  rockswap scores rockswap --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the mode")
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		if flagClearScores {
			fatalf("Error: --clear needs a mode")
		}
		runScoresSummary()
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		exitUnknownGame(gameID)
	}

	logger, err := newLogger(false)
	if err != nil {
		fatalf("Error: %v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("Error creating game: %v", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("Error opening scores database: %v", err)
	}
	defer store.Close()

	if flagClearScores {
		n, err := store.ClearScores(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		logger.Info("scores cleared", "game", gameID, "rows", n)
		fmt.Printf("Cleared %d score(s) for %s.\n", n, title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rockswap play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Moves", "Chain", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  x%-4d  %s\n", i+1, entry.Score, entry.Moves, entry.BestChain, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Best chain: x%d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestChain)
	}
}

// runScoresSummary prints one line per registered mode.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("Error opening scores database: %v", err)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	writeScoresSummary(os.Stdout, registry.IDs(), all)
}

// writeScoresSummary writes a row for each id, in order. Modes without
// stored games show dashes.
func writeScoresSummary(w io.Writer, ids []string, all map[string]*storage.GameStats) {
	fmt.Fprintf(w, "  %-14s  %-10s  %-5s  %-7s  %-5s  %s\n", "Mode", "Best", "Games", "Average", "Chain", "Last played")
	fmt.Fprintf(w, "  %-14s  %-10s  %-5s  %-7s  %-5s  %s\n", "----", "----", "-----", "-------", "-----", "-----------")
	for _, id := range ids {
		stats, ok := all[id]
		if !ok || stats.GamesCount == 0 {
			fmt.Fprintf(w, "  %-14s  %-10s  %-5s  %-7s  %-5s  %s\n", id, "-", "0", "-", "-", "-")
			continue
		}
		fmt.Fprintf(w, "  %-14s  %-10d  %-5d  %-7.0f  x%-4d  %s\n",
			id, stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestChain,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
