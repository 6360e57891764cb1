package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rockswap/internal/core"
	"github.com/vovakirdan/rockswap/internal/games/rockswap"
	"github.com/vovakirdan/rockswap/internal/platform/tui"
	"github.com/vovakirdan/rockswap/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing the given mode (default: rockswap).

Controls:
  Arrows/WASD    - Move the cursor
  Space/Enter    - Pick a rock, then pick a neighbour to swap
  H              - Show a hint
  P/Esc          - Pause
  R              - Restart
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Five rock kinds and half again as many moves
  normal - Config values as they are
  hard   - Two thirds of the moves
  fixed  - Config values as they are

Examples:
  rockswap play
  rockswap play rockswap_zen
  rockswap play --difficulty hard
  rockswap play --config ./my-rockswap.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := rockswap.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		exitUnknownGame(gameID)
	}

	logger := setupGames(true)

	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("Error creating game: %v", err)
	}

	store := openStore(logger)

	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("Error running game: %v", runErr)
	}
}

// runtimeConfig builds a RuntimeConfig from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
