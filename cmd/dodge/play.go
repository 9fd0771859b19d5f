package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/astrelin/tui-dodge/internal/config"
	"github.com/astrelin/tui-dodge/internal/core"
	"github.com/astrelin/tui-dodge/internal/dodge"
	"github.com/astrelin/tui-dodge/internal/platform/tui"
	"github.com/astrelin/tui-dodge/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Arrows/hjkl  - Move
  P            - Pause
  Enter/R      - Restart (after game over)
  Q/Esc/Ctrl+C - Quit

Examples:
  dodge play
  dodge play --seed 42
  dodge play --config ./my-dodge.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// Session loop: every session gets a fresh game; restarting constructs
	// a new one rather than reusing a dead world.
	for {
		outcome, runErr := tui.Run(dodge.New(gameCfg), store, rt)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		if outcome != tui.OutcomeRestart {
			break
		}
		// A fixed --seed would replay the identical session; reseed
		// restarts from the clock instead.
		rt.Seed = time.Now().UnixNano()
	}
}
