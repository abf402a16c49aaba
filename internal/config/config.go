// Package config handles XDG configuration directory and file paths.
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// AppName is the application directory name.
	AppName = "please"

	// RecordFile is the filename of the stored user record and task list.
	RecordFile = "config.json"

	// DefaultWidth is used when the terminal width cannot be determined.
	DefaultWidth = 80
)

// Config holds configuration paths and settings for one invocation.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Width is the terminal width used to center output.
	Width int

	// Input is read by interactive prompts (first-run setup).
	Input io.Reader

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time

	// Logger receives diagnostics. Nil means logging is discarded.
	Logger *log.Logger
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/please or $HOME/.config/please.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, Width: DefaultWidth}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// RecordPath returns the path to the stored record file.
func (c *Config) RecordPath() string {
	return filepath.Join(c.Dir, RecordFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasRecord checks if the record file exists.
func (c *Config) HasRecord() bool {
	_, err := os.Stat(c.RecordPath())
	return err == nil
}

// Clock returns the current time.
func (c *Config) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Log returns the configured logger, or a logger that discards everything.
func (c *Config) Log() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard)
}

// TermWidth returns Width, or DefaultWidth when unset.
func (c *Config) TermWidth() int {
	if c.Width <= 0 {
		return DefaultWidth
	}
	return c.Width
}
