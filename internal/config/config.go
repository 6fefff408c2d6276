// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/IGLOU-EU/go-wildcard"
)

// DefaultStaleAfter is how long a project must sit untouched before its
// artifacts are considered for cleanup: 30 days.
const DefaultStaleAfter = 60 * 60 * 24 * 30 * time.Second

// DefaultWorkspace is the directory under $HOME scanned when no root is set.
const DefaultWorkspace = "Developer"

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// Scanning
	Root           string        `yaml:"root"`
	StaleAfter     time.Duration `yaml:"stale_after"`
	IgnorePatterns []string      `yaml:"ignore_patterns"`
	Cleaners       []string      `yaml:"cleaners"`

	// Cleaning
	DryRun       bool   `yaml:"dry_run"`
	WaitForClean bool   `yaml:"wait_for_clean"`
	CargoPath    string `yaml:"cargo_path"`

	// Logging
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

func NewConfig() *Config {
	return &Config{
		StaleAfter:     DefaultStaleAfter,
		IgnorePatterns: []string{},
		Cleaners:       []string{},
		DryRun:         true,
		LogLevel:       "warn",
	}
}

// ShouldIgnore reports whether a workspace child matches any ignore pattern,
// either by its base name or by its full path.
func (c *Config) ShouldIgnore(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range c.IgnorePatterns {
		if wildcard.Match(pattern, base) || wildcard.Match(pattern, path) {
			return true
		}
	}
	return false
}

// ResolveRoot fills in the default workspace and expands a leading ~.
func (c *Config) ResolveRoot() error {
	if c.Root == "" {
		root, err := DefaultRoot()
		if err != nil {
			return err
		}
		c.Root = root
		return nil
	}
	c.Root = ExpandHome(c.Root)
	return nil
}

func (c *Config) Validate() error {
	if c.StaleAfter <= 0 {
		return fmt.Errorf("%w: stale_after must be positive, got %s", ErrInvalidConfig, c.StaleAfter)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}

// DefaultRoot returns $HOME/Developer.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultWorkspace), nil
}
