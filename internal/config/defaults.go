package config

import (
	_ "embed"
)

//go:embed defaults/rockswap.yaml
var defaultRockSwapYAML []byte

// DefaultRockSwapConfig returns the built-in configuration. It matches the
// embedded defaults/rockswap.yaml and is used when that cannot be parsed.
func DefaultRockSwapConfig() RockSwapConfig {
	return RockSwapConfig{
		Board: BoardConfig{
			Rows: 8,
			Cols: 8,
		},
		Tiles: []TileConfig{
			{Label: "granite", Glyph: "●", Color: "gray"},
			{Label: "moss", Glyph: "◆", Color: "green"},
			{Label: "amber", Glyph: "▲", Color: "orange"},
			{Label: "quartz", Glyph: "■", Color: "magenta"},
			{Label: "slate", Glyph: "★", Color: "blue"},
			{Label: "sulfur", Glyph: "♦", Color: "yellow"},
		},
		Scoring: ScoringConfig{
			PerCell: 10,
			Bonuses: BonusesConfig{
				Exact:   BonusTable{3: 0, 4: 5, 5: 15},
				AtLeast: BonusTable{6: 25},
			},
		},
		Cascade: CascadeConfig{
			MaxPasses: 80,
			FlashMs:   240,
			SettleMs:  60,
		},
		Gameplay: GameplayConfig{
			Moves: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRockSwapYAML
}
