package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "rockswap.yaml"

// Source names where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadRockSwap loads RockSwap configuration.
// Search order: customPath -> ~/.rockswap/configs/rockswap.yaml ->
// ./configs/rockswap.yaml -> embedded default -> DefaultRockSwapConfig.
// Keys missing from a file keep their default values. Only a bad custom
// path is an error; other unreadable or invalid files are skipped.
func LoadRockSwap(customPath string) (RockSwapConfig, Source, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRockSwapConfig(), SourceBuiltin, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultRockSwapConfig(), SourceBuiltin, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := parseFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := parseFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, SourceLocal, nil
	}

	if cfg, err := Parse(defaultRockSwapYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultRockSwapConfig(), SourceBuiltin, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (RockSwapConfig, error) {
	cfg := DefaultRockSwapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseFile(path string) (RockSwapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RockSwapConfig{}, err
	}
	return Parse(data)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rockswap", "configs", filename)
}
