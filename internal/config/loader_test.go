package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := DefaultInvadersConfig()
	if err := decode(DefaultYAML(), ".yaml", &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultInvadersConfig())
	}
}

func TestLoadInvadersYAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "custom.yaml", `
formation:
  rows: 3
  min_interval_ms: 100
  remaining_speedup: true
scoring:
  points_per_kill: 25
`)

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}

	if cfg.Formation.Rows != 3 || cfg.Formation.MinIntervalMs != 100 || !cfg.Formation.RemainingSpeedup {
		t.Errorf("formation overrides not applied: %+v", cfg.Formation)
	}
	if cfg.Scoring.PointsPerKill != 25 {
		t.Errorf("PointsPerKill = %d, expected 25", cfg.Scoring.PointsPerKill)
	}
	// Untouched keys keep their defaults
	if cfg.Formation.Cols != 8 || cfg.Player.Speed != 5 || cfg.Field.Width != 480 {
		t.Errorf("defaults lost: cols=%d speed=%v width=%v", cfg.Formation.Cols, cfg.Player.Speed, cfg.Field.Width)
	}
}

func TestLoadInvadersTOML(t *testing.T) {
	path := writeFile(t, "custom.toml", `
[bullet]
speed = 12
cooldown_ms = 150

[formation]
speed_up = 0.9
`)

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}

	if cfg.Bullet.Speed != 12 || cfg.Bullet.CooldownMs != 150 {
		t.Errorf("bullet = %+v, expected speed 12 and cooldown 150", cfg.Bullet)
	}
	if cfg.Formation.SpeedUp != 0.9 {
		t.Errorf("SpeedUp = %v, expected 0.9", cfg.Formation.SpeedUp)
	}
	if cfg.Bullet.Width != 3 {
		t.Errorf("Bullet.Width = %v, expected default 3", cfg.Bullet.Width)
	}
}

func TestLoadInvadersEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Error("empty file should yield the defaults")
	}
}

func TestLoadInvadersErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"unknown yaml key", "bad.yaml", "formation:\n  rowz: 3\n"},
		{"unknown toml key", "bad.toml", "[formation]\nrowz = 3\n"},
		{"malformed yaml", "bad.yml", "formation: [\n"},
		{"malformed toml", "bad.toml", "[formation\n"},
		{"unsupported format", "bad.json", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.body)
			if _, err := LoadInvaders(path); err == nil {
				t.Errorf("LoadInvaders(%s) succeeded, expected an error", tt.file)
			}
		})
	}

	if _, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, expected os.ErrNotExist", err)
	}

	path := writeFile(t, "x.json", "{}")
	if _, err := LoadInvaders(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("json error = %v, expected ErrUnsupportedFormat", err)
	}
}

func TestLoadInvadersSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// Nothing on the search path: embedded default
	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Error("expected embedded default with an empty search path")
	}

	// Local configs directory
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "invaders.toml"), []byte("[player]\nspeed = 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadInvaders("")
	if cfg.Player.Speed != 8 {
		t.Errorf("Player.Speed = %v, expected 8 from ./configs", cfg.Player.Speed)
	}

	// User directory wins over the local one
	userDir := filepath.Join(home, ".invaders", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "invaders.yaml"), []byte("player:\n  speed: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadInvaders("")
	if cfg.Player.Speed != 9 {
		t.Errorf("Player.Speed = %v, expected 9 from the user directory", cfg.Player.Speed)
	}

	// A broken user file is skipped
	if err := os.WriteFile(filepath.Join(userDir, "invaders.yaml"), []byte("player: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadInvaders("")
	if err != nil {
		t.Fatalf("broken search-path file should not fail: %v", err)
	}
	if cfg.Player.Speed != 8 {
		t.Errorf("Player.Speed = %v, expected fallback to ./configs", cfg.Player.Speed)
	}
}
