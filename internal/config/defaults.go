package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultYAML []byte

// Default returns the hardcoded reference configuration: a 480x480 field,
// a 5x5 player, and a batch of 2-9 obstacles sized 5-31 every 150 ticks.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  480,
			Height: 480,
		},
		Player: PlayerConfig{
			Width:  5,
			Height: 5,
		},
		Obstacles: ObstaclesConfig{
			SpawnDelay: 150,
			BatchMin:   2,
			BatchMax:   10,
			SizeMin:    5,
			SizeMax:    32,
			QueueHint:  512,
		},
	}
}
