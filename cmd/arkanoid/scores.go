package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best runs for a game mode",
	Long: `Display the best runs for a game mode (default: arkanoid).
Runs are ranked by score, then by the level reached.

Examples:
  arkanoid scores
  arkanoid scores arkanoid_endless --limit 20
  arkanoid scores --recent
  arkanoid scores arkanoid --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for every game mode",
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs of every mode instead")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "arkanoid"
	if len(args) == 1 {
		gameID = args[0]
	}

	title, ok := registry.Title(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arkanoid list' to see available modes.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	var runs []storage.Run
	if flagRecent {
		title = "all modes"
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	if flagRecent {
		fmt.Printf("Recent Runs - %s\n", title)
	} else {
		fmt.Printf("Best Runs - %s\n", title)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arkanoid play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %-8s  %-12s  %s\n", "Rank", "Score", "Level", "Result", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %-8s  %-12s  %s\n", "----", "-----", "-----", "------", "----", "------", "----")

	// Print runs
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-9s  %-8s  %-12s  %s\n",
			i+1, r.Score, r.Level, r.Outcome, r.Duration.Round(time.Second), player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show high score
	if !flagRecent {
		fmt.Println()
		if highScore, err := store.HighScore(gameID); err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-18s  %-5s  %-8s  %-8s  %-5s  %-8s  %s\n", "Mode", "Runs", "Best", "Average", "Level", "Cleared", "Last played")
	fmt.Printf("  %-18s  %-5s  %-8s  %-8s  %-5s  %-8s  %s\n", "----", "----", "----", "-------", "-----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-18s  %-5d  %-8d  %-8.0f  %-5d  %-8d  %s\n",
			id, s.RunsCount, s.HighScore, s.AvgScore, s.BestLevel, s.Completions, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
