// rockswap is a match-three puzzle game for the terminal.
//
// Usage:
//
//	rockswap list              - List game modes
//	rockswap play [mode]       - Play a mode (default: rockswap)
//	rockswap menu              - Pick a mode interactively
//	rockswap serve             - Start SSH server for remote play
//	rockswap scores [mode]     - Show or clear high scores
//	rockswap simulate          - Play automatically without a terminal UI
//	rockswap config            - Print the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.rockswap/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockswap/internal/config"
	"github.com/vovakirdan/rockswap/internal/core"
	"github.com/vovakirdan/rockswap/internal/games/rockswap"
	"github.com/vovakirdan/rockswap/internal/platform/tui"
	"github.com/vovakirdan/rockswap/internal/registry"
	"github.com/vovakirdan/rockswap/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logFile is closed on exit when --log-file is set.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockswap",
	Short: "RockSwap - a match-three puzzle in your terminal",
	Long: `RockSwap is a tile-swapping puzzle. Swap two neighbouring rocks to
line up three or more of a kind; matched rocks crumble, the ones above
fall and new rocks drop in, sometimes setting off chain reactions.

Available commands:
  list      - Show the game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View or clear high scores
  simulate  - Let the hint engine play a seeded game
  config    - Print the default config YAML

Examples:
  rockswap play
  rockswap play rockswap_zen --difficulty easy
  rockswap menu
  rockswap serve --ssh :2222
  rockswap simulate --seed 42 --moves 20`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger from the global flags. Interactive
// commands only log to --log-file so the alternate screen stays clean.
func newLogger(interactive bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	if interactive {
		w = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "rockswap",
	}), nil
}

// setupGames applies the global flags to the game package and TUI before
// any game is created.
func setupGames(interactive bool) *log.Logger {
	logger, err := newLogger(interactive)
	if err != nil {
		fatalf("Error: %v", err)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fatalf("Error: %v", err)
	}

	rockswap.SetConfigPath(flagConfig)
	rockswap.SetDifficultyPreset(preset)
	rockswap.SetLogger(logger)
	tui.SetLogger(logger)
	return logger
}

// openStore opens the score database. A failure is reported and the
// caller continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without score storage", "err", err)
		return nil
	}
	return store
}

// exitUnknownGame reports an unregistered mode id and exits.
func exitUnknownGame(id string) {
	fatalf("Error: unknown game %q\nAvailable modes: %s", id, strings.Join(registry.IDs(), ", "))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(1)
}
