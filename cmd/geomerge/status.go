package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geomerge/internal/config"
	"github.com/vovakirdan/geomerge/internal/storage"
	"github.com/vovakirdan/geomerge/internal/world"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the saved session",
	Long: `Display the saved local session: player cell, held token and the
number of cells changed from their generated value.

Examples:
  geomerge status
  geomerge status --db ./geomerge.db`,
	Run: runStatus,
}

func runStatus(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

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
		fmt.Println("No saved session.")
		fmt.Println()
		fmt.Println("Run 'geomerge play' to start one.")
		return
	}

	w := world.NewModel(gameCfg.GameRules(), store, world.DefaultSnapshotKey, nil)

	p := w.Player()
	lat, lng := p.LatLng(w.Rules().CellSize)

	fmt.Println("Saved session")
	fmt.Println()
	fmt.Printf("  Cell:      %s (%.5f, %.5f)\n", p, lat, lng)
	if v, ok := w.Held(); ok {
		fmt.Printf("  Holding:   %d\n", v)
	} else {
		fmt.Printf("  Holding:   nothing\n")
	}
	fmt.Printf("  Changed:   %d cells\n", w.OverrideCount())
	fmt.Printf("  Goal:      %d\n", w.Rules().Target)
}
