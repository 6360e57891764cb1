// Package rockswap implements the RockSwap game modes on top of the
// match3 engine: cursor play, paced cascades, move budget and hints.
package rockswap

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rockswap/internal/config"
	"github.com/vovakirdan/rockswap/internal/core"
	"github.com/vovakirdan/rockswap/internal/match3"
	"github.com/vovakirdan/rockswap/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // move budget, ends when out of moves
	ModeZen     Mode = "zen"     // no budget, stuck boards are regenerated
)

// Game IDs as registered.
const (
	IDClassic = "rockswap"
	IDZen     = "rockswap_zen"
)

// maxRegenerate bounds attempts to deal a board that has a valid swap.
const maxRegenerate = 20

// phase is where the game is within a cascade.
type phase int

const (
	phaseIdle   phase = iota
	phaseFlash        // matched tiles flash before the pass is applied
	phaseSettle       // pause after a pass before looking for the next one
)

// Package-level settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by new games. Nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements a RockSwap session.
type Game struct {
	mode Mode

	// Configuration; fixed games skip file loading on Reset.
	cfg      config.RockSwapConfig
	cfgFixed bool
	rules    match3.ScoringConfig
	log      *log.Logger

	rng      *rand.Rand
	board    *match3.Board
	resolver *match3.Resolver
	cascade  *match3.Cascade

	// Cascade pacing
	phase       phase
	phaseTicks  int
	flashTicks  int
	settleTicks int
	flashing    []match3.Coord

	// Cursor and selection
	cursor   match3.Coord
	selected match3.Coord
	hasSel   bool
	hint     match3.Swap
	showHint bool

	// Score keeping
	score      int
	storedHigh int
	moves      int
	lastChain  int
	lastGain   int
	bestChain  int
	reshuffles int
	overReason string

	tick     uint64
	screenW  int
	screenH  int
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a zen mode game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// NewWithConfig creates a game that always uses cfg instead of loading
// configuration files.
func NewWithConfig(mode Mode, cfg config.RockSwapConfig) *Game {
	return &Game{mode: mode, cfg: cfg, cfgFixed: true}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDZen, func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return IDZen
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "RockSwap (Zen)"
	}
	return "RockSwap"
}

// SetHighScore sets the best stored score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.storedHigh = max(score, 0)
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.log = logger.With("game", g.ID())

	if !g.cfgFixed {
		cfg, src, err := config.LoadRockSwap(configPath)
		if err != nil {
			g.log.Warn("using built-in config", "err", err)
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.log.Debug("config loaded", "source", src, "rows", cfg.Board.Rows, "cols", cfg.Board.Cols, "kinds", cfg.Kinds())
		g.cfg = cfg
	}
	g.rules = g.cfg.Scoring.Rules()

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.resolver = match3.NewResolver(g.rng)
	g.resolver.Scoring = g.rules
	g.resolver.MaxPasses = g.cfg.Cascade.MaxPasses
	g.resolver.Logger = g.log

	g.flashTicks = rc.MsToTicks(g.cfg.Cascade.FlashMs)
	g.settleTicks = rc.MsToTicks(g.cfg.Cascade.SettleMs)

	g.tick = 0
	g.score = 0
	g.moves = 0
	g.lastChain = 0
	g.lastGain = 0
	g.bestChain = 0
	g.reshuffles = 0
	g.overReason = ""
	g.gameOver = false
	g.paused = false
	g.cascade = nil
	g.phase = phaseIdle
	g.flashing = nil
	g.hasSel = false
	g.showHint = false

	g.board = g.dealBoard()
	g.cursor = match3.At(g.board.Rows()/2, g.board.Cols()/2)

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = !core.NewRect(0, 0, w, h).Fits(g.minScreenSize())
}

// dealBoard creates a stable board with at least one valid swap. The
// initial cascade is resolved without scoring: those runs come from the
// deal, not from a swap, and a zen reshuffle would otherwise pay out.
func (g *Game) dealBoard() *match3.Board {
	var b *match3.Board
	for attempt := range maxRegenerate {
		b = match3.CreateBoard(g.cfg.Board.Rows, g.cfg.Board.Cols, g.cfg.Kinds(), g.rng)
		res := g.resolver.Resolve(b)
		if res.PassesRun > 0 {
			g.log.Debug("stabilised new board", "passes", res.PassesRun, "halted", res.HaltedByLimit)
		}
		if match3.HasValidSwap(b) {
			return b
		}
		g.log.Debug("dealt board has no valid swap, redealing", "attempt", attempt+1)
	}
	return b
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Input is ignored while a cascade plays out.
	if g.cascade != nil {
		g.advanceCascade()
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionHint) {
		g.showHint = false
		if sw, ok := match3.BestSwap(g.board, g.rules); ok {
			g.hint = sw
			g.showHint = true
		}
	}

	if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
		g.pick()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor.Row = core.Clamp(g.cursor.Row+dr, 0, g.board.Rows()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col+dc, 0, g.board.Cols()-1)
}

// pick handles select at the cursor: the first pick marks a tile, picking
// an adjacent tile swaps, picking a distant tile moves the mark and
// picking the marked tile again clears it.
func (g *Game) pick() {
	if !g.hasSel {
		g.selected = g.cursor
		g.hasSel = true
		return
	}
	if g.cursor == g.selected {
		g.hasSel = false
		return
	}
	if !match3.Adjacent(g.selected, g.cursor) {
		g.selected = g.cursor
		return
	}

	a, b := g.selected, g.cursor
	g.hasSel = false
	if !match3.TrySwap(g.board, a, b) {
		g.log.Debug("swap rejected", "a", a, "b", b)
		return
	}

	g.moves++
	g.showHint = false
	g.log.Debug("swap accepted", "a", a, "b", b, "moves", g.moves)
	g.startCascade()
}

func (g *Game) startCascade() {
	c, ok := g.resolver.Begin(g.board)
	if !ok {
		return
	}
	g.cascade = c
	g.lastGain = 0
	g.beginFlash()
}

// beginFlash highlights the next pass's matches, or ends the cascade when
// there are none.
func (g *Game) beginFlash() {
	pending := g.cascade.Pending()
	if len(pending) == 0 {
		g.cascade.Next()
		g.finishCascade()
		return
	}
	g.flashing = pending
	g.phase = phaseFlash
	g.phaseTicks = g.flashTicks
}

func (g *Game) advanceCascade() {
	g.phaseTicks--
	if g.phaseTicks > 0 {
		return
	}

	switch g.phase {
	case phaseFlash:
		ev, more := g.cascade.Next()
		g.flashing = nil
		if !more {
			g.finishCascade()
			return
		}
		g.score += ev.Gained
		g.lastGain += ev.Gained
		g.lastChain = ev.Chain
		g.phase = phaseSettle
		g.phaseTicks = g.settleTicks
		if g.phaseTicks <= 0 {
			g.beginFlash()
		}
	case phaseSettle:
		g.beginFlash()
	}
}

func (g *Game) finishCascade() {
	res := g.cascade.Result()
	g.cascade = nil
	g.phase = phaseIdle
	g.flashing = nil

	g.lastChain = res.MaxChain
	g.bestChain = max(g.bestChain, res.MaxChain)
	g.log.Debug("cascade finished",
		"score", res.TotalScore,
		"passes", res.PassesRun,
		"chain", res.MaxChain,
		"halted", res.HaltedByLimit,
	)
	g.checkEnd()
}

// checkEnd ends a classic game when the move budget is spent or no swap
// is left. A zen board without a valid swap is dealt again.
func (g *Game) checkEnd() {
	if g.mode == ModeClassic && g.cfg.Gameplay.Moves > 0 && g.moves >= g.cfg.Gameplay.Moves {
		g.endGame("Out of moves")
		return
	}
	if match3.HasValidSwap(g.board) {
		return
	}
	if g.mode == ModeZen {
		g.reshuffles++
		g.board = g.dealBoard()
		g.log.Info("no swaps left, board regenerated", "reshuffles", g.reshuffles)
		return
	}
	g.endGame("No swaps left")
}

func (g *Game) endGame(reason string) {
	g.gameOver = true
	g.overReason = reason
	g.hasSel = false
	g.showHint = false
	g.log.Info("game over", "reason", reason, "score", g.score, "moves", g.moves, "best_chain", g.bestChain)
}

// MovesLeft returns the remaining swap budget, or -1 when unlimited.
func (g *Game) MovesLeft() int {
	if g.mode == ModeZen || g.cfg.Gameplay.Moves <= 0 {
		return -1
	}
	return max(g.cfg.Gameplay.Moves-g.moves, 0)
}

// highScore returns the better of the stored high score and this game's.
func (g *Game) highScore() int {
	return max(g.storedHigh, g.score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore(),
		Moves:     g.moves,
		BestChain: g.bestChain,
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
		Busy:      g.cascade != nil,
	}
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *match3.Board {
	return g.board
}
