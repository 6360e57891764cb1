// Package config provides YAML-based game configuration loading and
// difficulty presets for RockSwap.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/rockswap/internal/core"
	"github.com/vovakirdan/rockswap/internal/match3"
	"gopkg.in/yaml.v3"
)

// Board size and tile set limits accepted by Validate.
const (
	MinBoardSize = 3
	MaxBoardSize = 32
	MinTiles     = 2
	MaxTiles     = 16
)

// RockSwapConfig contains all configuration for RockSwap.
type RockSwapConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Tiles    []TileConfig   `yaml:"tiles"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Cascade  CascadeConfig  `yaml:"cascade"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TileConfig describes one tile kind. The tile's kind is its index in the list.
type TileConfig struct {
	Label string `yaml:"label"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// ScoringConfig is the point table in YAML form.
type ScoringConfig struct {
	PerCell float64       `yaml:"per_cell"`
	Bonuses BonusesConfig `yaml:"bonuses"`
}

// BonusesConfig holds the exact and at-least bonus tables.
type BonusesConfig struct {
	Exact   BonusTable `yaml:"exact"`
	AtLeast BonusTable `yaml:"at_least"`
}

// CascadeConfig defines the pass limit and the pacing of cascades.
type CascadeConfig struct {
	MaxPasses int `yaml:"max_passes"` // 0 uses the engine default
	FlashMs   int `yaml:"flash_ms"`   // how long matched tiles flash
	SettleMs  int `yaml:"settle_ms"`  // pause after each refill
}

// GameplayConfig defines rules of the classic mode.
type GameplayConfig struct {
	Moves int `yaml:"moves"` // swap budget; 0 means unlimited
}

// BonusTable maps a group size to bonus points.
type BonusTable map[int]float64

// UnmarshalYAML decodes a bonus table, dropping entries whose key is not
// an integer or whose value is not a number. A non-mapping node yields an
// empty table.
func (t *BonusTable) UnmarshalYAML(value *yaml.Node) error {
	out := BonusTable{}
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			size, err := strconv.Atoi(value.Content[i].Value)
			if err != nil {
				continue
			}
			var points float64
			if err := value.Content[i+1].Decode(&points); err != nil {
				continue
			}
			out[size] = points
		}
	}
	*t = out
	return nil
}

// Rules converts the YAML scoring section to engine scoring rules.
func (s ScoringConfig) Rules() match3.ScoringConfig {
	return match3.ScoringConfig{
		PerCell: s.PerCell,
		Bonuses: match3.Bonuses{
			Exact:   copyTable(s.Bonuses.Exact),
			AtLeast: copyTable(s.Bonuses.AtLeast),
		},
	}
}

func copyTable(t BonusTable) map[int]float64 {
	out := make(map[int]float64, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Kinds returns the number of tile kinds.
func (c RockSwapConfig) Kinds() int {
	return len(c.Tiles)
}

// TileColor returns the screen color of a tile kind.
func (c RockSwapConfig) TileColor(k match3.Kind) core.Color {
	if int(k) >= len(c.Tiles) {
		return core.ColorDefault
	}
	col, _ := core.ParseColor(c.Tiles[k].Color)
	return col
}

// TileGlyph returns the first rune of a tile kind's glyph.
func (c RockSwapConfig) TileGlyph(k match3.Kind) rune {
	if int(k) >= len(c.Tiles) {
		return '?'
	}
	r, _ := utf8.DecodeRuneInString(c.Tiles[k].Glyph)
	return r
}

// Validate reports every problem that makes the config unplayable.
func (c RockSwapConfig) Validate() error {
	var errs []error
	if c.Board.Rows < MinBoardSize || c.Board.Rows > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.rows %d out of range [%d, %d]", c.Board.Rows, MinBoardSize, MaxBoardSize))
	}
	if c.Board.Cols < MinBoardSize || c.Board.Cols > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.cols %d out of range [%d, %d]", c.Board.Cols, MinBoardSize, MaxBoardSize))
	}
	if n := len(c.Tiles); n < MinTiles || n > MaxTiles {
		errs = append(errs, fmt.Errorf("need %d to %d tiles, got %d", MinTiles, MaxTiles, n))
	}
	for i, t := range c.Tiles {
		if t.Glyph == "" {
			errs = append(errs, fmt.Errorf("tiles[%d]: empty glyph", i))
		}
		if t.Color != "" {
			if _, ok := core.ParseColor(t.Color); !ok {
				errs = append(errs, fmt.Errorf("tiles[%d]: unknown color %q", i, t.Color))
			}
		}
	}
	if c.Cascade.MaxPasses < 0 {
		errs = append(errs, fmt.Errorf("cascade.max_passes must not be negative"))
	}
	if c.Cascade.FlashMs < 0 || c.Cascade.SettleMs < 0 {
		errs = append(errs, fmt.Errorf("cascade timings must not be negative"))
	}
	if c.Gameplay.Moves < 0 {
		errs = append(errs, fmt.Errorf("gameplay.moves must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
