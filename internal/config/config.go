package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/arcanaland/highcard/internal/deck"
	"github.com/arcanaland/highcard/internal/types"
)

// Environment variables that override values from the config file
const (
	EnvSeed    = "HIGHCARD_SEED"
	EnvNoColor = "HIGHCARD_NO_COLOR"
)

// DefaultInitialShuffles is how many times a new game shuffles its deck
const DefaultInitialShuffles = 2

// Config represents the application configuration
type Config struct {
	Seed            int64 `toml:"seed"`
	InitialShuffles int   `toml:"initial_shuffles"`
	NoColor         bool  `toml:"no_color"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Seed:            deck.DefaultSeed,
		InitialShuffles: DefaultInitialShuffles,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "highcard", "config.toml")
}

// LoadConfig loads the config file at path, or the default location when
// path is empty. It never writes: a missing file means default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	config := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, types.WrapError(types.ErrInvalidConfig, "error decoding config file", err)
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the values that the game cannot run with
func (c *Config) Validate() error {
	if c.InitialShuffles < 0 {
		return types.Errorf(types.ErrInvalidConfig,
			"initial_shuffles must not be negative, got %d", c.InitialShuffles)
	}
	return nil
}

// applyEnv loads a .env file if one exists and applies environment overrides
func applyEnv(c *Config) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	if value := os.Getenv(EnvSeed); value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return types.WrapError(types.ErrInvalidConfig, EnvSeed+" must be an integer", err)
		}
		c.Seed = seed
	}

	if value := os.Getenv(EnvNoColor); value != "" {
		noColor, err := strconv.ParseBool(value)
		if err != nil {
			return types.WrapError(types.ErrInvalidConfig, EnvNoColor+" must be a boolean", err)
		}
		c.NoColor = noColor
	}

	return nil
}

// InitConfig creates a default config file at path unless one exists,
// then loads it
func InitConfig(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeConfig(path, Default()); err != nil {
			return nil, err
		}
	}
	return LoadConfig(path)
}

// writeConfig encodes config to path, creating the parent directory
func writeConfig(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SetSeed stores a new seed in the config file at path
func SetSeed(path string, seed int64) error {
	if path == "" {
		path = GetConfigFilePath()
	}

	config := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return types.WrapError(types.ErrInvalidConfig, "error decoding config file", err)
		}
	}

	config.Seed = seed
	return writeConfig(path, config)
}
