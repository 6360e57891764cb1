package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rockswap/internal/core"
	"github.com/vovakirdan/rockswap/internal/match3"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultRockSwapConfig(), cfg)
	assert.NoError(t, DefaultRockSwapConfig().Validate())
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  rows: 6\n"))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Board.Rows)
	assert.Equal(t, 8, cfg.Board.Cols)
	assert.Equal(t, 6, cfg.Kinds())
	assert.Equal(t, 80, cfg.Cascade.MaxPasses)
}

func TestBonusTableDropsBadEntries(t *testing.T) {
	data := []byte(`
scoring:
  per_cell: 12
  bonuses:
    exact:
      4: 5
      x: 3
      5: lots
      6: .inf
    at_least: [1, 2]
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.Scoring.PerCell)
	exact := cfg.Scoring.Bonuses.Exact
	assert.Len(t, exact, 2)
	assert.Equal(t, 5.0, exact[4])
	assert.True(t, math.IsInf(exact[6], 1))
	assert.Empty(t, cfg.Scoring.Bonuses.AtLeast)
}

func TestBonusTableReplacesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("scoring:\n  bonuses:\n    exact: {4: 7}\n"))
	require.NoError(t, err)

	assert.Equal(t, BonusTable{4: 7}, cfg.Scoring.Bonuses.Exact)
	assert.Equal(t, BonusTable{6: 25}, cfg.Scoring.Bonuses.AtLeast)
}

func TestRules(t *testing.T) {
	cfg := DefaultRockSwapConfig()
	rules := cfg.Scoring.Rules()

	assert.Equal(t, match3.DefaultScoring(), rules)

	// The engine rules must not alias the config tables.
	rules.Bonuses.Exact[4] = 99
	assert.Equal(t, 5.0, cfg.Scoring.Bonuses.Exact[4])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RockSwapConfig)
	}{
		{"rows too small", func(c *RockSwapConfig) { c.Board.Rows = 2 }},
		{"cols too large", func(c *RockSwapConfig) { c.Board.Cols = 33 }},
		{"one tile", func(c *RockSwapConfig) { c.Tiles = c.Tiles[:1] }},
		{"empty glyph", func(c *RockSwapConfig) { c.Tiles[0].Glyph = "" }},
		{"unknown color", func(c *RockSwapConfig) { c.Tiles[1].Color = "chartreuse" }},
		{"negative passes", func(c *RockSwapConfig) { c.Cascade.MaxPasses = -1 }},
		{"negative flash", func(c *RockSwapConfig) { c.Cascade.FlashMs = -1 }},
		{"negative moves", func(c *RockSwapConfig) { c.Gameplay.Moves = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRockSwapConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestTileLookups(t *testing.T) {
	cfg := DefaultRockSwapConfig()

	assert.Equal(t, '◆', cfg.TileGlyph(1))
	assert.Equal(t, core.ColorGreen, cfg.TileColor(1))
	assert.Equal(t, '?', cfg.TileGlyph(42))
	assert.Equal(t, core.ColorDefault, cfg.TileColor(42))
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: {rows: 5, cols: 7}\ngameplay: {moves: 12}\n"), 0o644))

	cfg, src, err := LoadRockSwap(path)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src)
	assert.Equal(t, 5, cfg.Board.Rows)
	assert.Equal(t, 7, cfg.Board.Cols)
	assert.Equal(t, 12, cfg.Gameplay.Moves)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadRockSwap(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: {rows: 1}\n"), 0o644))
	cfg, src, err := LoadRockSwap(bad)
	assert.Error(t, err)
	assert.Equal(t, SourceBuiltin, src)
	assert.NoError(t, cfg.Validate())
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	_, src, err := LoadRockSwap("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, src)

	local := filepath.Join(work, "configs", FileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(local), 0o755))
	require.NoError(t, os.WriteFile(local, []byte("board: {rows: 9}\n"), 0o644))

	cfg, src, err := LoadRockSwap("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Equal(t, 9, cfg.Board.Rows)

	user := filepath.Join(home, ".rockswap", "configs", FileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(user), 0o755))
	require.NoError(t, os.WriteFile(user, []byte("board: {rows: 10}\n"), 0o644))

	cfg, src, err = LoadRockSwap("")
	require.NoError(t, err)
	assert.Equal(t, SourceUser, src)
	assert.Equal(t, 10, cfg.Board.Rows)

	// An invalid user file is skipped in favour of the local one.
	require.NoError(t, os.WriteFile(user, []byte("tiles: []\n"), 0o644))
	_, src, err = LoadRockSwap("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
}

func TestPresets(t *testing.T) {
	_, err := ParsePreset("nightmare")
	assert.Error(t, err)

	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), p)

	easy := DefaultRockSwapConfig()
	ApplyPreset(&easy, DifficultyEasy)
	assert.Equal(t, EasyMaxTiles, easy.Kinds())
	assert.Equal(t, 45, easy.Gameplay.Moves)

	hard := DefaultRockSwapConfig()
	ApplyPreset(&hard, DifficultyHard)
	assert.Equal(t, 6, hard.Kinds())
	assert.Equal(t, 20, hard.Gameplay.Moves)

	normal := DefaultRockSwapConfig()
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, DefaultRockSwapConfig(), normal)

	unlimited := DefaultRockSwapConfig()
	unlimited.Gameplay.Moves = 0
	ApplyPreset(&unlimited, DifficultyHard)
	assert.Zero(t, unlimited.Gameplay.Moves)
}
