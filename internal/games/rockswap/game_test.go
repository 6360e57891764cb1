package rockswap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rockswap/internal/config"
	"github.com/vovakirdan/rockswap/internal/core"
	"github.com/vovakirdan/rockswap/internal/match3"
	"github.com/vovakirdan/rockswap/internal/registry"
)

const maxSettleTicks = 10000

func newTestGame(t *testing.T, mode Mode, seed int64, mutate func(*config.RockSwapConfig)) *Game {
	t.Helper()
	cfg := config.DefaultRockSwapConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())

	g := NewWithConfig(mode, cfg)
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

// settle steps with no input until the running cascade finishes.
func settle(t *testing.T, g *Game) {
	t.Helper()
	empty := core.NewInputFrame()
	for range maxSettleTicks {
		if !g.State().Busy {
			return
		}
		g.Step(empty)
	}
	t.Fatalf("cascade did not finish within %d ticks", maxSettleTicks)
}

// playSwap moves the cursor onto a and b and selects both.
func playSwap(g *Game, sw match3.Swap) {
	sel := core.FrameOf(core.ActionSelect)
	g.cursor = sw.A
	g.Step(sel)
	g.cursor = sw.B
	g.Step(sel)
}

func hintFor(t *testing.T, g *Game) match3.Swap {
	t.Helper()
	g.Step(core.FrameOf(core.ActionHint))
	require.True(t, g.showHint, "expected a hint on a fresh board")
	return g.hint
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDZen} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
		_, ok := g.(registry.HighScoreAware)
		assert.True(t, ok)
	}
	assert.Equal(t, "RockSwap", New().Title())
	assert.Equal(t, "RockSwap (Zen)", NewZen().Title())
}

func TestResetDealsStableBoard(t *testing.T) {
	for _, seed := range []int64{1, 2, 42, 12345} {
		g := newTestGame(t, ModeClassic, seed, nil)

		assert.False(t, match3.HasMatch(g.Board()), "seed %d: board has a match", seed)
		assert.True(t, match3.HasValidSwap(g.Board()), "seed %d: board has no valid swap", seed)
		assert.Zero(t, g.Board().EmptyCount())

		st := g.State()
		assert.Zero(t, st.Score)
		assert.Zero(t, st.Moves)
		assert.False(t, st.Busy)
		assert.False(t, st.GameOver)
		assert.Equal(t, 30, g.MovesLeft())
		assert.Equal(t, match3.At(4, 4), g.cursor)
	}
}

func TestDeterminism(t *testing.T) {
	script := []core.InputFrame{
		core.FrameOf(core.ActionHint),
		core.FrameOf(core.ActionUp),
		core.FrameOf(core.ActionLeft),
		core.FrameOf(core.ActionSelect),
		core.FrameOf(core.ActionRight),
		core.FrameOf(core.ActionSelect),
	}

	run := func() []Snapshot {
		g := newTestGame(t, ModeClassic, 99, nil)
		var out []Snapshot
		sw := hintFor(t, g)
		playSwap(g, sw)
		for i := range 200 {
			g.Step(script[i%len(script)])
			out = append(out, g.Snapshot())
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestCursorClamped(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1, nil)

	for range 20 {
		g.Step(core.FrameOf(core.ActionUp))
		g.Step(core.FrameOf(core.ActionLeft))
	}
	assert.Equal(t, match3.At(0, 0), g.cursor)

	for range 20 {
		g.Step(core.FrameOf(core.ActionDown))
		g.Step(core.FrameOf(core.ActionRight))
	}
	assert.Equal(t, match3.At(7, 7), g.cursor)
}

func TestSelectToggleAndMove(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1, nil)
	sel := core.FrameOf(core.ActionSelect)

	g.Step(sel)
	assert.Equal(t, [2]int{4, 4}, g.Snapshot().Selected)

	g.Step(sel)
	assert.Equal(t, [2]int{-1, -1}, g.Snapshot().Selected)

	g.Step(sel)
	g.cursor = match3.At(0, 0)
	g.Step(core.FrameOf(core.ActionConfirm))
	assert.Equal(t, [2]int{0, 0}, g.Snapshot().Selected, "a distant pick moves the selection")
	assert.Zero(t, g.moves)
}

func TestAcceptedSwapCascades(t *testing.T) {
	g := newTestGame(t, ModeClassic, 7, nil)
	sw := hintFor(t, g)

	playSwap(g, sw)
	require.Equal(t, 1, g.moves)
	require.True(t, g.State().Busy)
	assert.Equal(t, StateCascading, g.Snapshot().State)

	flashing := match3.NewMask(g.Board().Rows(), g.Board().Cols())
	for _, c := range g.flashing {
		flashing.Mark(c)
	}
	assert.True(t, flashing.Get(sw.A) || flashing.Get(sw.B), "swapped tiles should flash")

	cursor := g.cursor
	g.Step(core.FrameOf(core.ActionUp))
	assert.Equal(t, cursor, g.cursor, "input is ignored during a cascade")

	settle(t, g)

	st := g.State()
	assert.Positive(t, st.Score)
	assert.GreaterOrEqual(t, st.BestChain, 1)
	assert.Equal(t, 29, g.MovesLeft())
	assert.Nil(t, g.flashing)
	assert.Equal(t, phaseIdle, g.phase)
	assert.Zero(t, g.Board().EmptyCount())
	assert.False(t, g.showHint)
}

func TestRejectedSwapKeepsBoard(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1, nil)
	b, err := match3.ParseBoard(6,
		"012",
		"345",
		"012",
	)
	require.NoError(t, err)
	g.board = b
	before := b.String()

	playSwap(g, match3.Swap{A: match3.At(0, 0), B: match3.At(0, 1)})

	assert.Equal(t, before, g.Board().String())
	assert.Zero(t, g.moves)
	assert.False(t, g.hasSel)
	assert.False(t, g.State().Busy)
}

func TestClassicEndsWhenBudgetSpent(t *testing.T) {
	g := newTestGame(t, ModeClassic, 3, func(c *config.RockSwapConfig) {
		c.Gameplay.Moves = 1
	})

	playSwap(g, hintFor(t, g))
	settle(t, g)

	require.True(t, g.State().GameOver)
	assert.Equal(t, "Out of moves", g.overReason)
	assert.Zero(t, g.MovesLeft())

	board := g.Board().String()
	g.Step(core.FrameOf(core.ActionSelect))
	g.Step(core.FrameOf(core.ActionHint))
	assert.Equal(t, board, g.Board().String())
	assert.Equal(t, StateGameOver, g.Snapshot().State)
}

func TestNoSwapsLeft(t *testing.T) {
	stuck := func(t *testing.T) *match3.Board {
		b, err := match3.ParseBoard(9,
			"012",
			"345",
			"678",
		)
		require.NoError(t, err)
		require.False(t, match3.HasValidSwap(b))
		return b
	}

	t.Run("classic ends", func(t *testing.T) {
		g := newTestGame(t, ModeClassic, 5, nil)
		g.board = stuck(t)
		g.checkEnd()

		assert.True(t, g.State().GameOver)
		assert.Equal(t, "No swaps left", g.overReason)
	})

	t.Run("zen regenerates", func(t *testing.T) {
		g := newTestGame(t, ModeZen, 5, nil)
		g.board = stuck(t)
		g.score = 40
		g.checkEnd()

		assert.Equal(t, 40, g.State().Score, "a reshuffled deal scores nothing")

		assert.False(t, g.State().GameOver)
		assert.Equal(t, 1, g.reshuffles)
		assert.Equal(t, 8, g.Board().Rows())
		assert.True(t, match3.HasValidSwap(g.Board()))
		assert.Equal(t, -1, g.MovesLeft())
	})
}

func TestHighScore(t *testing.T) {
	g := NewWithConfig(ModeClassic, config.DefaultRockSwapConfig())
	g.SetHighScore(500)
	g.Reset(core.DefaultConfig())

	assert.Equal(t, 500, g.State().HighScore)

	g.score = 650
	assert.Equal(t, 650, g.State().HighScore)

	g.SetHighScore(-3)
	assert.Equal(t, 650, g.State().HighScore)
	assert.Zero(t, g.storedHigh)
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1, nil)
	pause := core.FrameOf(core.ActionPause)

	g.Step(pause)
	require.True(t, g.State().Paused)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	g.Step(core.FrameOf(core.ActionUp))
	assert.Equal(t, match3.At(4, 4), g.cursor)

	g.Step(pause)
	assert.False(t, g.State().Paused)
	g.Step(core.FrameOf(core.ActionUp))
	assert.Equal(t, match3.At(3, 4), g.cursor)
}

func TestTooSmallScreen(t *testing.T) {
	g := NewWithConfig(ModeClassic, config.DefaultRockSwapConfig())
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = 20, 10
	g.Reset(rc)

	assert.True(t, g.State().Paused)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	scr := core.NewScreen(20, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Window too small")

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeClassic, 11, nil)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	assert.Contains(t, out, "RockSwap")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Moves: 30")
	assert.Contains(t, out, "10 pts/cell; bonus for 4: 5 pts, 5: 15 pts; 6+: 25 pts")
	assert.Contains(t, out, "[")

	g.endGame("No swaps left")
	g.Render(scr)
	out = scr.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "No swaps left")
	assert.False(t, strings.Contains(out, "NEW HIGH SCORE"))
}

func TestZenHUD(t *testing.T) {
	g := newTestGame(t, ModeZen, 2, nil)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Swaps: 0")
	assert.Contains(t, scr.String(), "RockSwap (Zen)")
}
