package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geomerge/internal/storage"
)

var (
	flagWinsLimit int
	flagWinsClear bool
)

var winsCmd = &cobra.Command{
	Use:   "wins",
	Short: "Show recorded wins",
	Long: `Display the most recent wins, newest first.

Examples:
  geomerge wins
  geomerge wins --limit 50
  geomerge wins --clear`,
	Run: runWins,
}

func init() {
	winsCmd.Flags().IntVar(&flagWinsLimit, "limit", 10, "Number of wins to show")
	winsCmd.Flags().BoolVar(&flagWinsClear, "clear", false, "Delete all recorded wins")
}

func runWins(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagWinsClear {
		if err := store.ClearWins(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing wins: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Win history cleared.")
		return
	}

	wins, err := store.RecentWins(flagWinsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving wins: %v\n", err)
		os.Exit(1)
	}

	total, err := store.WinCount()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting wins: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Win History")
	fmt.Println()

	if len(wins) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Println("Play 'geomerge play' and craft your way up to the goal!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-7s  %-12s  %s\n", "#", "Kind", "Value", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-12s  %s\n", "----", "----", "-----", "------", "----")

	for i, entry := range wins {
		player := entry.Player
		if player == "" {
			player = "local"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-7d  %-12s  %s\n", i+1, entry.Kind, entry.Value, player, dateStr)
	}

	fmt.Println()
	fmt.Printf("Total: %d\n", total)
}
