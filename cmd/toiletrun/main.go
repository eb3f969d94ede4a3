// toiletrun is a terminal endless-runner: fly a toilet through an endless
// stream of pipes, one point per pipe passed, with difficulty that ramps up
// by level.
//
// Usage:
//
//	toiletrun play            - Play the game
//	toiletrun scores          - Show high scores
//	toiletrun serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.toiletrun/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "toiletrun",
	Short: "Toilet Run - fly a toilet through the pipes in your terminal",
	Long: `Toilet Run is a terminal endless-runner arcade game: a flying toilet
must pass through gaps in an endless stream of pipes. Each pipe passed
scores a point; every few pipes the level rises and the game gets harder.

Examples:
  toiletrun play
  toiletrun play --difficulty hard
  toiletrun scores
  toiletrun serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.toiletrun/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
