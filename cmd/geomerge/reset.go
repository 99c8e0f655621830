package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geomerge/internal/storage"
	"github.com/vovakirdan/geomerge/internal/world"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved session",
	Long: `Delete the saved local session. The next 'geomerge play' starts
fresh at the configured start cell with an empty hand. Recorded wins
are kept.

Examples:
  geomerge reset`,
	Run: runReset,
}

func runReset(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	_, found, err := store.Get(world.DefaultSnapshotKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading session: %v\n", err)
		os.Exit(1)
	}
	if !found {
		fmt.Println("No saved session to discard.")
		return
	}

	if err := store.Delete(world.DefaultSnapshotKey); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting session: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Saved session discarded.")
}
