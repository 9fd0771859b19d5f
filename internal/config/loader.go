package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.dodge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// An explicit path must load; anything else falls through silently.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg.withDefaults(), nil
	}

	if userPath := userConfigPath("dodge.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.withDefaults(), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/dodge.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.withDefaults(), nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.withDefaults(), nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs", filename)
}

// withDefaults fills unset or unusable values from the reference
// configuration, so a partial YAML file still yields a playable game.
func (c Config) withDefaults() Config {
	def := Default()

	if c.Field.Width < 2 {
		c.Field.Width = def.Field.Width
	}
	if c.Field.Height < 2 {
		c.Field.Height = def.Field.Height
	}
	if c.Player.Width <= 0 {
		c.Player.Width = def.Player.Width
	}
	if c.Player.Height <= 0 {
		c.Player.Height = def.Player.Height
	}
	if c.Obstacles.SpawnDelay <= 0 {
		c.Obstacles.SpawnDelay = def.Obstacles.SpawnDelay
	}
	if c.Obstacles.BatchMin <= 0 {
		c.Obstacles.BatchMin = def.Obstacles.BatchMin
	}
	if c.Obstacles.BatchMax <= 0 {
		c.Obstacles.BatchMax = def.Obstacles.BatchMax
	}
	if c.Obstacles.BatchMax <= c.Obstacles.BatchMin {
		c.Obstacles.BatchMax = c.Obstacles.BatchMin + 1
	}
	if c.Obstacles.SizeMin <= 0 {
		c.Obstacles.SizeMin = def.Obstacles.SizeMin
	}
	if c.Obstacles.SizeMax <= 0 {
		c.Obstacles.SizeMax = def.Obstacles.SizeMax
	}
	if c.Obstacles.SizeMax <= c.Obstacles.SizeMin {
		c.Obstacles.SizeMax = c.Obstacles.SizeMin + 1
	}
	if c.Obstacles.QueueHint <= 0 {
		c.Obstacles.QueueHint = def.Obstacles.QueueHint
	}
	return c
}
