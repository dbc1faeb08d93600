package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Embedded YAML %+v differs from DefaultConfig() %+v", cfg, DefaultConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("levels: [2, 3]\nbubble:\n  spawn_rate: 0.5\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if !reflect.DeepEqual(cfg.Levels, []int{2, 3}) {
		t.Errorf("Levels = %v, expected [2 3]", cfg.Levels)
	}
	if cfg.Bubble.SpawnRate != 0.5 {
		t.Errorf("SpawnRate = %v, expected 0.5", cfg.Bubble.SpawnRate)
	}
	if cfg.Bubble.Radius != 2 {
		t.Errorf("Radius should keep default 2, got %v", cfg.Bubble.Radius)
	}
	if cfg.Field.Width != 200 || cfg.Field.Height != 400 {
		t.Errorf("Field should keep defaults, got %+v", cfg.Field)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero field", func(c *Config) { c.Field.Width = 0 }, "field size"},
		{"negative player", func(c *Config) { c.Player.Height = -1 }, "player size"},
		{"player too tall", func(c *Config) { c.Player.Height = 300 }, "does not fit"},
		{"no move step", func(c *Config) { c.Player.MoveStep = 0 }, "move_step"},
		{"negative radius", func(c *Config) { c.Bubble.Radius = -2 }, "radius"},
		{"not falling", func(c *Config) { c.Bubble.FallSpeed = 0 }, "fall_speed"},
		{"spawn above one", func(c *Config) { c.Bubble.SpawnRate = 1.5 }, "spawn_rate"},
		{"no tick rate", func(c *Config) { c.Loop.TickRate = 0 }, "tick_rate"},
		{"no levels", func(c *Config) { c.Levels = nil }, "levels must not be empty"},
		{"too many colors", func(c *Config) { c.Levels = []int{2, 9} }, "level 2 uses 9 colors"},
		{"zero colors", func(c *Config) { c.Levels = []int{0} }, "level 1 uses 0 colors"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateSettingsIgnoresLevels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Levels = []int{0, 12}

	if err := cfg.ValidateSettings(); err != nil {
		t.Errorf("ValidateSettings() = %v, expected nil for a bad level table", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should still reject the level table")
	}

	cfg.Bubble.FallSpeed = 0
	if err := cfg.ValidateSettings(); err == nil || !strings.Contains(err.Error(), "fall_speed") {
		t.Errorf("ValidateSettings() = %v, expected a fall_speed error", err)
	}
}

func TestLoadKeepsInvalidLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, []byte("levels: [12]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Levels, []int{12}) {
		t.Errorf("Levels = %v, expected [12]", cfg.Levels)
	}
	if err := ValidateLevels(cfg.Levels); err == nil {
		t.Error("ValidateLevels() should reject 12 colors")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("levels: [3, 4]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Levels, []int{3, 4}) {
		t.Errorf("Levels = %v, expected [3 4]", cfg.Levels)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("bubble:\n  spawn_rate: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of an invalid custom file should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Levels, DefaultConfig().Levels) {
		t.Errorf("Levels = %v, expected defaults", cfg.Levels)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", FileName), []byte("levels: [4]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg, _ = Load("")
	if !reflect.DeepEqual(cfg.Levels, []int{4}) {
		t.Errorf("Levels = %v, expected local [4]", cfg.Levels)
	}

	// User directory wins over local
	userDir := filepath.Join(home, ".bubblecatch")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("levels: [5]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg, _ = Load("")
	if !reflect.DeepEqual(cfg.Levels, []int{5}) {
		t.Errorf("Levels = %v, expected user [5]", cfg.Levels)
	}

	// Invalid user file is skipped
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("loop:\n  tick_rate: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg, _ = Load("")
	if !reflect.DeepEqual(cfg.Levels, []int{4}) {
		t.Errorf("Levels = %v, expected fallback to local [4]", cfg.Levels)
	}
}
