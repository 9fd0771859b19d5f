package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// With no custom path and no config files around, Load falls back to
	// the embedded YAML, which must agree with the hardcoded defaults.
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dodge.yaml")

	yaml := `
field:
  width: 320
  height: 240
obstacles:
  spawn_delay: 60
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Field.Width != 320 || cfg.Field.Height != 240 {
		t.Errorf("field = %+v, want 320x240", cfg.Field)
	}
	if cfg.Obstacles.SpawnDelay != 60 {
		t.Errorf("spawn delay = %d, want 60", cfg.Obstacles.SpawnDelay)
	}

	// Unset values fall back to the reference configuration.
	if cfg.Player != Default().Player {
		t.Errorf("player = %+v, want default", cfg.Player)
	}
	if cfg.Obstacles.BatchMax != Default().Obstacles.BatchMax {
		t.Errorf("batch max = %d, want default %d", cfg.Obstacles.BatchMax, Default().Obstacles.BatchMax)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("field: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load with unparsable YAML should fail")
	}
}

func TestWithDefaultsRepairsDegenerateRanges(t *testing.T) {
	cfg := Config{}
	cfg.Obstacles.BatchMin = 5
	cfg.Obstacles.BatchMax = 5 // empty half-open range
	cfg = cfg.withDefaults()

	if cfg.Obstacles.BatchMax <= cfg.Obstacles.BatchMin {
		t.Errorf("batch range [%d,%d) still empty", cfg.Obstacles.BatchMin, cfg.Obstacles.BatchMax)
	}
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		t.Errorf("field %+v not repaired", cfg.Field)
	}
}
