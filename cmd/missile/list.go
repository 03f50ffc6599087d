package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-arcade/internal/registry"
	"github.com/vovakirdan/missile-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long: `Shows the game variants that can be passed to 'missile play', with
the number of stored runs and the best score of each.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	variants := registry.List()
	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return nil
	}

	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("runs unavailable", "err", err)
	} else {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "TITLE", "RUNS", "BEST")
	for _, v := range variants {
		runs, best := "0", "-"
		if s, ok := stats[v.ID]; ok {
			runs, best = strconv.Itoa(s.GamesCount), strconv.Itoa(s.HighScore)
		}
		t.Row(v.ID, v.Title, runs, best)
	}

	fmt.Println(t)
	fmt.Println("Run 'missile play <id>' to play a variant.")
	return nil
}
