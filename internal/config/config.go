// Package config provides YAML-based game configuration loading for the
// 2048 engine and its terminal front end.
package config

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	TUI   TUIConfig   `yaml:"tui"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size int `yaml:"size" env:"T2048_BOARD_SIZE"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability" env:"T2048_SPAWN_FOUR_PROB"`
	InitialTiles    int     `yaml:"initial_tiles"`
}

// TUIConfig defines front-end parameters.
type TUIConfig struct {
	TickRate int `yaml:"tick_rate" env:"T2048_TICK_RATE"`
}
