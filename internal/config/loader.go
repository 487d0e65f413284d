package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const fileName = "maze.yaml"

// Environment variables that override file values.
const (
	EnvWidth    = "MAZE_WIDTH"
	EnvHeight   = "MAZE_HEIGHT"
	EnvStep     = "MAZE_STEP"
	EnvTickRate = "MAZE_TICK_RATE"
	EnvSSHAddr  = "MAZE_SSH_ADDR"
	EnvDB       = "MAZE_DB"
)

// Load reads the configuration and applies environment overrides.
// Search order: customPath -> ~/.mazerunner/configs/maze.yaml ->
// ./configs/maze.yaml -> embedded default -> Default().
// An explicit customPath that cannot be read or parsed is an error; the
// other locations are skipped when missing or malformed.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	// A missing .env is normal.
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultMazeYAML); err == nil {
		return cfg, nil
	}
	return Default(), nil
}

// Parse decodes YAML on top of Default, so a file only needs the keys it
// changes.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// applyEnv overrides cfg from MAZE_* environment variables.
func applyEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Grid.Width},
		{EnvHeight, &cfg.Grid.Height},
		{EnvStep, &cfg.Motion.Step},
		{EnvTickRate, &cfg.Timing.TickRate},
	}
	for _, e := range ints {
		raw, ok := os.LookupEnv(e.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, e.key, err)
		}
		*e.dst = v
	}

	if v, ok := os.LookupEnv(EnvSSHAddr); ok && v != "" {
		cfg.Server.Address = v
	}
	if v, ok := os.LookupEnv(EnvDB); ok && v != "" {
		cfg.Server.DB = v
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazerunner", "configs", filename)
}
