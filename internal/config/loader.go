package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.gamevault/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load(customPath, "snake.yaml", defaultSnakeYAML, DefaultSnakeConfig)
}

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.gamevault/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load(customPath, "breakout.yaml", defaultBreakoutYAML, DefaultBreakoutConfig)
}

// load walks the search order. Missing keys in a file keep their default
// values because decoding starts from the hard-coded config.
func load[T validator](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	// An explicit path must exist and be valid.
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Implicit locations are skipped when unreadable or invalid.
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryFile(path, defaults); ok {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile[T validator](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamevault", "configs", filename)
}
