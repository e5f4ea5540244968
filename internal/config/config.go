// Package config handles XDG configuration/data directories and file paths.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "tempoclaro"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// UserFile is the stored user profile filename.
	UserFile = "user.json"

	// SettingsFile is the optional settings filename.
	SettingsFile = "settings.yaml"

	// TasksFile is the persisted task list filename.
	TasksFile = "tasks.json"

	// RoutinesFile is the persisted routine list filename.
	RoutinesFile = "routines.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path (credentials, settings).
	Dir string

	// DataDir is the data directory path (task and routine stores).
	DataDir string

	// Settings holds values from settings.yaml, with defaults applied.
	Settings Settings

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tempoclaro or $HOME/.config/tempoclaro.
// Settings are read from settings.yaml in the config dir; an absent file means
// all defaults.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	dataDir := DefaultDataDir()
	if configDir != "" {
		// An explicit config dir keeps everything in one place (tests, portable setups).
		dataDir = configDir
	}

	settings, err := LoadSettings(filepath.Join(dir, SettingsFile))
	if err != nil {
		return nil, err
	}

	return &Config{Dir: dir, DataDir: dataDir, Settings: settings}, nil
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

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// UserPath returns the path to the stored user profile file.
func (c *Config) UserPath() string {
	return filepath.Join(c.Dir, UserFile)
}

// TasksPath returns the path to the persisted task list.
func (c *Config) TasksPath() string {
	return filepath.Join(c.DataDir, TasksFile)
}

// RoutinesPath returns the path to the persisted routine list.
func (c *Config) RoutinesPath() string {
	return filepath.Join(c.DataDir, RoutinesFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

// HasUser checks if the user profile file exists.
func (c *Config) HasUser() bool {
	_, err := os.Stat(c.UserPath())
	return err == nil
}

// RemoveUser deletes the user profile file.
func (c *Config) RemoveUser() error {
	return os.Remove(c.UserPath())
}
