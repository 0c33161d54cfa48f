package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size: 4,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.5,
			InitialTiles:    2,
		},
		TUI: TUIConfig{
			TickRate: 30,
		},
	}
}
