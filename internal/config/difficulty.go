package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// EasyMaxTiles caps the tile set on easy; fewer kinds means more matches.
const EasyMaxTiles = 5

// ParsePreset converts a CLI value to a preset. The empty string is
// accepted and means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy trims the tile set and raises the move budget by half, hard cuts
// the budget by a third. Normal and fixed keep the file values.
func ApplyPreset(cfg *RockSwapConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if len(cfg.Tiles) > EasyMaxTiles {
			cfg.Tiles = cfg.Tiles[:EasyMaxTiles]
		}
		if cfg.Gameplay.Moves > 0 {
			cfg.Gameplay.Moves += cfg.Gameplay.Moves / 2
		}
	case DifficultyHard:
		if cfg.Gameplay.Moves > 0 {
			cfg.Gameplay.Moves = max(cfg.Gameplay.Moves*2/3, 1)
		}
	}
}
