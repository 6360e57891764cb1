package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockswap/internal/config"
	"github.com/vovakirdan/rockswap/internal/match3"
)

var flagSimMoves int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the hint engine play a seeded game",
	Long: `Play a game without a terminal UI. Each move takes the highest
scoring swap, runs the cascade and logs every pass. The final board and
score are printed at the end.

Runs with the same --seed and config always print the same result.

Examples:
  rockswap simulate --seed 42
  rockswap simulate --seed 7 --moves 50 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 0, "Number of moves (0 = config move budget)")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := setupGames(false)

	cfg, src, err := config.LoadRockSwap(flagConfig)
	if err != nil {
		fatalf("Error: %v", err)
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	config.ApplyPreset(&cfg, preset)
	logger.Info("config loaded", "source", src)

	moves := flagSimMoves
	if moves <= 0 {
		moves = cfg.Gameplay.Moves
	}
	if moves <= 0 {
		fatalf("Error: --moves is required when the config has no move budget")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	resolver := match3.NewResolver(rng)
	resolver.Scoring = cfg.Scoring.Rules()
	resolver.MaxPasses = cfg.Cascade.MaxPasses
	resolver.Logger = logger.With("seed", seed)

	board := match3.CreateBoard(cfg.Board.Rows, cfg.Board.Cols, cfg.Kinds(), rng)
	resolver.Resolve(board)

	total, played, bestChain := 0, 0, 0
	for move := range moves {
		sw, ok := match3.BestSwap(board, resolver.Scoring)
		if !ok {
			logger.Info("no swaps left", "move", move+1)
			break
		}
		match3.TrySwap(board, sw.A, sw.B)
		res := resolver.Resolve(board)
		total += res.TotalScore
		played++
		bestChain = max(bestChain, res.MaxChain)
		logger.Info("move",
			"n", move+1,
			"a", sw.A,
			"b", sw.B,
			"gained", res.TotalScore,
			"chain", res.MaxChain,
			"total", total,
		)
	}

	fmt.Println(renderBoard(board, cfg))
	fmt.Println()
	fmt.Printf("Seed: %d  Moves: %d  Score: %d  Best chain: x%d\n", seed, played, total, bestChain)
}

// renderBoard draws the board with the configured tile glyphs.
func renderBoard(b *match3.Board, cfg config.RockSwapConfig) string {
	var sb strings.Builder
	for r := range b.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.Cols() {
			if c > 0 {
				sb.WriteByte(' ')
			}
			k, ok := b.Get(match3.At(r, c)).Kind()
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(cfg.TileGlyph(k))
		}
	}
	return sb.String()
}
