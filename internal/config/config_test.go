package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var snake SnakeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("snake"), &snake); err != nil {
		t.Fatalf("parse embedded snake.yaml: %v", err)
	}
	if snake != DefaultSnakeConfig() {
		t.Errorf("embedded snake defaults = %+v, expected %+v", snake, DefaultSnakeConfig())
	}

	var breakout BreakoutConfig
	if err := yaml.Unmarshal(GetDefaultYAML("breakout"), &breakout); err != nil {
		t.Fatalf("parse embedded breakout.yaml: %v", err)
	}
	if breakout != DefaultBreakoutConfig() {
		t.Errorf("embedded breakout defaults = %+v, expected %+v", breakout, DefaultBreakoutConfig())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded default")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("default snake config invalid: %v", err)
	}
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Errorf("default breakout config invalid: %v", err)
	}
}

func TestSnakeDurations(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if cfg.InitialInterval() != 150*time.Millisecond {
		t.Errorf("InitialInterval() = %v", cfg.InitialInterval())
	}
	if cfg.MinInterval() != 80*time.Millisecond {
		t.Errorf("MinInterval() = %v", cfg.MinInterval())
	}
	if cfg.SpeedStep() != 10*time.Millisecond {
		t.Errorf("SpeedStep() = %v", cfg.SpeedStep())
	}
}

func TestSnakeValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SnakeConfig)
		errSub string
	}{
		{"tiny grid", func(c *SnakeConfig) { c.GridSize = 1 }, "grid_size"},
		{"zero interval", func(c *SnakeConfig) { c.InitialIntervalMs = 0 }, "positive"},
		{"floor above start", func(c *SnakeConfig) { c.MinIntervalMs = 200 }, "exceeds"},
		{"start outside", func(c *SnakeConfig) { c.Start = Point{X: 20, Y: 0} }, "start"},
		{"food outside", func(c *SnakeConfig) { c.FirstFood = Point{X: -1, Y: 3} }, "first_food"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("error %q should mention %q", err, tc.errSub)
			}
		})
	}
}

func TestBreakoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *BreakoutConfig)
	}{
		{"no lives", func(c *BreakoutConfig) { c.Lives = 0 }},
		{"paddle wider than board", func(c *BreakoutConfig) { c.Paddle.Width = 700 }},
		{"zero radius", func(c *BreakoutConfig) { c.Ball.Radius = 0 }},
		{"no vertical speed", func(c *BreakoutConfig) { c.Ball.SpeedY = 0 }},
		{"empty grid", func(c *BreakoutConfig) { c.Bricks.Rows = 0 }},
		{"grid off board", func(c *BreakoutConfig) { c.Bricks.OffsetLeft = 600 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	// Only override a few keys; the rest keep their defaults.
	if err := os.WriteFile(path, []byte("grid_size: 30\ninitial_interval_ms: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() error: %v", err)
	}
	if cfg.GridSize != 30 || cfg.InitialIntervalMs != 120 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.MinIntervalMs != 80 || cfg.FoodReward != 10 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("lives: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(invalid); err == nil {
		t.Error("invalid values should fail")
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".gamevault", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "breakout.yaml"), []byte("lives: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() error: %v", err)
	}
	if cfg.Lives != 7 {
		t.Errorf("Lives = %d, expected user override 7", cfg.Lives)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// An invalid user file is skipped
	dir := filepath.Join(home, ".gamevault", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("grid_size: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() error: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"Easy", DifficultyEasy, false},
		{" hard ", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParsePreset(%q) = (%q, %v)", tc.in, got, err)
		}
	}
}

func TestApplyPresets(t *testing.T) {
	snake := DefaultSnakeConfig()
	ApplySnakePreset(&snake, DifficultyNormal)
	if snake != DefaultSnakeConfig() {
		t.Error("normal preset should not change snake config")
	}
	ApplySnakePreset(&snake, DifficultyHard)
	if snake.InitialIntervalMs >= 150 {
		t.Errorf("hard preset should be faster, got %dms", snake.InitialIntervalMs)
	}
	if err := snake.Validate(); err != nil {
		t.Errorf("hard snake preset invalid: %v", err)
	}

	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Lives <= 3 || easy.Paddle.Width <= 100 {
		t.Errorf("easy preset should be forgiving: %+v", easy)
	}
	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Lives >= 3 {
		t.Errorf("hard preset should have fewer lives, got %d", hard.Lives)
	}
	for _, cfg := range []BreakoutConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset config invalid: %v", err)
		}
	}
}
