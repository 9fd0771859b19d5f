// Package config loads game configuration from YAML files with an embedded
// default as the final fallback.
package config

// Config is the full game configuration.
type Config struct {
	Field     FieldConfig     `yaml:"field"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
}

// FieldConfig sets the bounds of the playing field in abstract pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig sets the player's bounding box size.
type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstaclesConfig controls obstacle spawning.
type ObstaclesConfig struct {
	SpawnDelay int `yaml:"spawn_delay"` // Ticks between spawn batches
	BatchMin   int `yaml:"batch_min"`   // Min obstacles per batch (inclusive)
	BatchMax   int `yaml:"batch_max"`   // Max obstacles per batch (exclusive)
	SizeMin    int `yaml:"size_min"`    // Min obstacle width/height (inclusive)
	SizeMax    int `yaml:"size_max"`    // Max obstacle width/height (exclusive)
	QueueHint  int `yaml:"queue_hint"`  // Queue pre-allocation hint
}
