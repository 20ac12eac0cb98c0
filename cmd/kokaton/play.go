package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/platform/tui"
	"github.com/vovakirdan/kokaton/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The play area is scaled to fit the window.

Controls:
  Arrows/WASD  - Move (8 directions)
  Space        - Fire a beam
  P            - Pause
  Esc/B        - Leave (while paused)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  kokaton play
  kokaton play kokaton_endless
  kokaton play --difficulty easy --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// terminalConfig returns a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := gameArg(args)
	if err != nil {
		return err
	}
	logger, err := terminalLogger()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	return tui.Run(game, store, terminalConfig(), logger)
}
