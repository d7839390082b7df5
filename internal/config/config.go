// Package config loads the todo configuration.
//
// Values are resolved in priority order:
//  1. Defaults
//  2. TOML file (--config, or $XDG_CONFIG_HOME/todo/config.toml)
//  3. Environment variables (TODO_*)
//  4. CLI flags, applied by the caller
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tgienger/todo/internal/ui/styles"
)

// Default values.
const (
	DefaultTheme      = "tokyo-night"
	DefaultLogLevel   = "info"
	DefaultTitleLimit = 200
)

// Environment variables read by Load.
const (
	EnvTheme    = "TODO_THEME"
	EnvLogFile  = "TODO_LOG_FILE"
	EnvLogLevel = "TODO_LOG_LEVEL"
)

// Config holds the full configuration for todo.
type Config struct {
	Theme      string `toml:"theme"`
	LogFile    string `toml:"log_file"`
	LogLevel   string `toml:"log_level"`
	TitleLimit int    `toml:"title_limit"`
	AltScreen  bool   `toml:"alt_screen"`

	// Path of the file the values were read from, empty if none.
	Path string `toml:"-"`
}

// Default returns a config populated with default values.
func Default() *Config {
	return &Config{
		Theme:      DefaultTheme,
		LogLevel:   DefaultLogLevel,
		TitleLimit: DefaultTitleLimit,
		AltScreen:  true,
	}
}

// Load builds the config from defaults, the config file and the environment.
// An explicit path must exist; the default path is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := loadFile(cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else {
		cfg.Path = path
	}

	loadFromEnv(cfg)

	return cfg, nil
}

// DefaultPath returns the path of the user config file.
func DefaultPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "todo", "config.toml"), nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if !styles.Known(c.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(styles.Names(), ", "))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.TitleLimit <= 0 {
		return fmt.Errorf("title_limit must be positive, got %d", c.TitleLimit)
	}
	return nil
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}
