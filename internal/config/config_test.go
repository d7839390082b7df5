package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme: got %s, want %s", cfg.Theme, DefaultTheme)
	}
	if cfg.TitleLimit != DefaultTitleLimit {
		t.Errorf("TitleLimit: got %d, want %d", cfg.TitleLimit, DefaultTitleLimit)
	}
	if !cfg.AltScreen {
		t.Error("AltScreen: got false, want true")
	}
	if cfg.Path != "" {
		t.Errorf("Path: got %q, want empty", cfg.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvLogLevel, "")
	path := writeConfig(t, `
theme = "classic"
log_level = "debug"
title_limit = 64
alt_screen = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "classic" {
		t.Errorf("Theme: got %s, want classic", cfg.Theme)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %s, want debug", cfg.LogLevel)
	}
	if cfg.TitleLimit != 64 {
		t.Errorf("TitleLimit: got %d, want 64", cfg.TitleLimit)
	}
	if cfg.AltScreen {
		t.Error("AltScreen: got true, want false")
	}
	if cfg.Path != path {
		t.Errorf("Path: got %s, want %s", cfg.Path, path)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `theme = "classic"`)
	t.Setenv(EnvTheme, "tokyo-night")
	t.Setenv(EnvLogFile, "/tmp/todo.log")
	t.Setenv(EnvLogLevel, "WARN")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "tokyo-night" {
		t.Errorf("Theme: got %s, want tokyo-night", cfg.Theme)
	}
	if cfg.LogFile != "/tmp/todo.log" {
		t.Errorf("LogFile: got %s", cfg.LogFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel: got %s, want warn", cfg.LogLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing explicit file", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "nope.toml")
		}},
		{"invalid toml", func(t *testing.T) string {
			return writeConfig(t, `theme = `)
		}},
		{"unknown key", func(t *testing.T) string {
			return writeConfig(t, `colour = "red"`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path(t)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"classic theme", func(c *Config) { c.Theme = "classic" }, false},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, true},
		{"unknown level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"zero title limit", func(c *Config) { c.TitleLimit = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate: got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}
