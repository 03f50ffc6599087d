package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-arcade/internal/platform/tui"
	"github.com/vovakirdan/missile-arcade/internal/registry"
	"github.com/vovakirdan/missile-arcade/internal/storage"
)

var (
	flagTop   int
	flagAll   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Print the best runs",
	Long: `Display the best runs for a variant with their interception stats.

Examples:
  missile scores
  missile scores missile_classic --top 20
  missile scores --all
  missile scores missile --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse runs in the interactive scoreboard",
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		cfg := runtimeConfig()
		_, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	},
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every run instead of the top ones")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "missile"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'missile list' to see them", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearRuns(gameID)
		if err != nil {
			return err
		}
		logger.Info("cleared runs", "game", gameID, "runs", n)
		fmt.Printf("Cleared %d runs for %s.\n", n, game.Title())
		return nil
	}

	var runs []storage.Run
	if flagAll {
		runs, err = store.AllRuns(gameID)
	} else {
		runs, err = store.TopRuns(gameID, flagTop)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'missile play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %5s  %5s  %8s  %s\n", "Rank", "Score", "Player", "Hits", "Acc", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %5s  %5s  %8s  %s\n", "----", "-----", "------", "----", "---", "----", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-12s  %5d  %4.0f%%  %8s  %s\n",
			i+1, r.Score, player, r.Intercepts, r.Accuracy()*100,
			r.Duration.Truncate(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Accuracy: %.0f%%  Last played: %s\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.Accuracy()*100,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
