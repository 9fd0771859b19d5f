// dodge is a terminal obstacle-dodging game: steer a small block around
// rectangles drifting in from the right edge, for as long as you can.
//
// Usage:
//
//	dodge play               - Play in the current terminal
//	dodge scores             - Show the high score table
//	dodge serve              - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 100)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.dodge/scores.db)
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
	Use:   "dodge",
	Short: "Dodge - a terminal obstacle-dodging game",
	Long: `Dodge is a terminal game: move a small block with the arrow keys
while rectangular obstacles drift in from the right. Touch one and the
session is over; your points are the number of spawn waves you outlived.

Examples:
  dodge play
  dodge play --seed 42
  dodge scores --tui
  dodge serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 100, "Tick rate (simulation ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
