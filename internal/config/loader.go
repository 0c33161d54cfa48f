package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Board size limits, mirrored from the engine.
const (
	minBoardSize = 3
	maxBoardSize = 8
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("config: invalid value")

// LoadT2048 loads 2048 configuration and applies environment overrides.
// Search order: customPath -> ~/.arcade/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, err := loadT2048File(customPath)
	if err != nil {
		return cfg, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadT2048File(customPath string) (T2048Config, error) {
	cfg := DefaultT2048Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("t2048.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			fileCfg := DefaultT2048Config()
			if err := yaml.Unmarshal(data, &fileCfg); err == nil {
				return fileCfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/t2048.yaml"); err == nil {
		fileCfg := DefaultT2048Config()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overrides fields from T2048_* environment variables.
// Unset variables leave the loaded values alone.
func ApplyEnv(cfg *T2048Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: cannot parse environment: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c T2048Config) Validate() error {
	if c.Board.Size < minBoardSize || c.Board.Size > maxBoardSize {
		return fmt.Errorf("%w: board.size %d (want %d..%d)", ErrInvalidConfig, c.Board.Size, minBoardSize, maxBoardSize)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: spawn.four_probability %v (want 0..1)", ErrInvalidConfig, c.Spawn.FourProbability)
	}
	if c.Spawn.InitialTiles != 2 {
		return fmt.Errorf("%w: spawn.initial_tiles %d (only 2 is supported)", ErrInvalidConfig, c.Spawn.InitialTiles)
	}
	if c.TUI.TickRate <= 0 {
		return fmt.Errorf("%w: tui.tick_rate %d", ErrInvalidConfig, c.TUI.TickRate)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
