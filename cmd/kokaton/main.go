// kokaton is the "fight kokaton" bomb-dodging arcade game, playable in the
// terminal, in a window, over SSH, or headless.
//
// Usage:
//
//	kokaton list              - List game modes
//	kokaton play [game]       - Play in the terminal (default: kokaton)
//	kokaton window [game]     - Play in a native window
//	kokaton menu              - Pick a mode interactively
//	kokaton sim [game]        - Run a headless autopilot simulation
//	kokaton scores <game>     - Show high scores
//	kokaton serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>        - RNG seed for reproducible games
//	--db <path>           - Scores database (default: ~/.arcade/kokaton.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--debug               - Debug logging
//	--log-file <path>     - Log file for terminal frontends
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/games/kokaton"
	"github.com/vovakirdan/kokaton/internal/registry"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
	flagLogFile    string

	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	closeLog()
}

var rootCmd = &cobra.Command{
	Use:   "kokaton",
	Short: "Fight Kokaton - dodge the bombs, shoot them down",
	Long: `Fight Kokaton is a small arcade game: steer the bird around a field of
bouncing bombs, shoot them with beams, and clear the field to win.

Available commands:
  list     - Show game modes
  play     - Play in the terminal
  window   - Play in a native window
  menu     - Interactive mode picker
  sim      - Headless simulation with an autopilot
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  kokaton play
  kokaton play kokaton_endless --difficulty hard
  kokaton window --seed 42
  kokaton sim --frames 3000
  kokaton serve --ssh :2222`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/kokaton.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal frontends log nowhere by default)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings loads the game config, applies the difficulty preset and
// hands the result to the game package.
func loadSettings(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadKokaton(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	kokaton.SetConfig(cfg)
	return nil
}

// newLogger builds the program logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "kokaton",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// terminalLogger returns the logger for frontends that own the terminal:
// --log-file when set, nothing otherwise.
func terminalLogger() (*log.Logger, error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	return newLogger(f), nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// gameArg returns the game named by args, defaulting to classic mode.
func gameArg(args []string) (registry.Game, error) {
	id := "kokaton"
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q, run 'kokaton list' to see available games", id)
	}
	return registry.Create(id)
}
