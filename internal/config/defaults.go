package config

import (
	_ "embed"
)

//go:embed defaults/seabattle.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 10,
			Ships: ShipsConfig{
				One:   1,
				Two:   1,
				Three: 1,
				Four:  1,
			},
		},
		Strategy: "custom",
		Log: LogConfig{
			Level: "info",
		},
	}
}
