package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/platform/gfx"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a native window",
	Long: `Open a window of the play area's size and play with real key
up/down events.

Controls:
  Arrows/WASD  - Move (8 directions)
  Space        - Fire a beam
  P            - Pause
  Esc/Q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	game, err := gameArg(args)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	state, err := gfx.Run(game, store, cfg, logger)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s, score %d after %d frames\n", game.Title(), state.Outcome, state.Score, state.Frame)
	return nil
}
