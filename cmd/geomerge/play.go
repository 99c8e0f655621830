package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geomerge/internal/config"
	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/location"
	"github.com/vovakirdan/geomerge/internal/platform/tui"
	"github.com/vovakirdan/geomerge/internal/storage"
	"github.com/vovakirdan/geomerge/internal/world"
)

var (
	flagWalk bool
	flagSeed int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a local session. Progress is saved after every move, so
quitting and starting again resumes where you left off.

Controls:
  Arrows     - Move between cells
  W/A/S/D    - Move the interaction cursor
  Space      - Pick up or combine at the cursor
  G          - Toggle simulated walking
  T          - Win history
  N          - New game
  Q/Ctrl+C   - Quit

Examples:
  geomerge play
  geomerge play --walk
  geomerge play --seed 42
  geomerge play --config ./my-geomerge.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWalk, "walk", false, "Start with simulated walking enabled")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Walker RNG seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "geomerge"})

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - progress just won't survive quitting
		store = nil
	}

	var snapStore world.SnapshotStore
	if store != nil {
		snapStore = store
	}
	w := world.NewModel(gameCfg.GameRules(), snapStore, world.DefaultSnapshotKey, logger)

	feed := location.NewWalker(
		gameCfg.Walker.StartLat,
		gameCfg.Walker.StartLng,
		gameCfg.Walker.MaxStepDeg,
		time.Duration(gameCfg.Walker.IntervalMS)*time.Millisecond,
		cfg.Seed,
	)

	model := tui.NewGameModel(w, store, feed, cfg, "", logger)
	if flagWalk {
		model = model.WithWalkOnStart()
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
