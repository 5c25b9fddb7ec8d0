// invaders is a terminal space-invaders game built on a deterministic
// simulation core.
//
// Usage:
//
//	invaders play [game]     - Play in the terminal (default: invaders)
//	invaders run <script>    - Run a scripted input sequence headlessly
//	invaders list            - List available game variants
//	invaders config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS     int
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "TUI Invaders - Defend the playfield from your terminal",
	Long: `TUI Invaders is a space-invaders game for the terminal. A formation of
enemies sweeps across the playfield while you move along the bottom row
and shoot them down.

Available commands:
  play     - Play in the terminal
  run      - Run a scripted input sequence without a terminal
  list     - Show all game variants
  config   - Print the default configuration

Examples:
  invaders play
  invaders play invaders_compat --difficulty hard
  invaders run ./scripts/sweep.yaml --verbose
  invaders config > ~/.arcade/configs/invaders.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}
