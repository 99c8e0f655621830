// geomerge is a terminal merge-crafting game played on a geographic grid.
//
// Usage:
//
//	geomerge play             - Play in the local terminal
//	geomerge serve            - Start SSH server for remote play
//	geomerge status           - Show the saved session
//	geomerge reset            - Discard the saved session
//	geomerge wins             - Show recorded wins
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.geomerge/geomerge.db)
//	--config <path>  - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geomerge",
	Short: "GeoMerge - merge-crafting on a geographic grid",
	Long: `GeoMerge overlays an infinite token grid on the map. Walk the grid,
pick up nearby tokens and combine equal ones to double them. Reach the
goal value to win.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  status   - Show the saved session
  reset    - Discard the saved session
  wins     - View recorded wins

Examples:
  geomerge play
  geomerge play --walk
  geomerge serve --ssh :2222
  geomerge status
  geomerge wins`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.geomerge/geomerge.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(winsCmd)
}
