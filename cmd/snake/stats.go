package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-ultra/internal/platform/tui"
	"github.com/vovakirdan/snake-ultra/internal/storage"
)

var (
	flagStatsTUI   bool
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
	Long: `Display games played, total and average score, the high score and
when you last played.

Examples:
  snake stats
  snake stats --tui
  snake stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsTUI, "tui", false, "Show the interactive stats screen")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Reset the play counters (the high score is kept)")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearStats(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Stats cleared.")
		return
	}

	if flagStatsTUI {
		rt := runtimeConfig()
		if err := tui.RunStats(store, rt.ScreenW, rt.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Snake Stats")
	fmt.Println()

	if stats.GamesPlayed == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to start counting!")
		return
	}

	for _, row := range tui.StatsRows(stats, nil) {
		fmt.Printf("  %-14s  %s\n", row[0], row[1])
	}
}
