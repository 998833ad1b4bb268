package config

import (
	"fmt"
	"os"
	"path/filepath"

	serr "aetherfm/internal/errors"
	"aetherfm/internal/log"

	"gopkg.in/yaml.v3"
)

// Window holds the desktop window geometry.
type Window struct {
	Width        int `yaml:"width"`         // Initial window width in pixels
	Height       int `yaml:"height"`        // Initial window height in pixels
	SidebarWidth int `yaml:"sidebar_width"` // Width of the places pane in pixels
}

// Places controls what the sidebar shows besides the home folders.
type Places struct {
	ShowVolumes bool `yaml:"show_volumes"` // List mounted volumes
}

// Watch controls automatic refresh when the shown directory changes on disk.
type Watch struct {
	Enabled    bool `yaml:"enabled"`     // Re-list on external changes
	DebounceMS int  `yaml:"debounce_ms"` // Quiet period before a refresh
}

// Log controls diagnostic output.
type Log struct {
	Debug bool `yaml:"debug"`
	JSON  bool `yaml:"json"` // One JSON object per line instead of text
}

// Config represents the application configuration structure.
type Config struct {
	StartDirectory string   `yaml:"start_directory"` // Empty or missing means the working directory
	ConfirmDelete  bool     `yaml:"confirm_delete"`  // Ask before deleting
	Window         Window   `yaml:"window"`
	Bookmarks      []string `yaml:"bookmarks"`    // Extra sidebar entries
	Places         Places   `yaml:"places"`
	Watch          Watch    `yaml:"watch"`
	OpenCommand    string   `yaml:"open_command"` // Overrides the platform opener
	Log            Log      `yaml:"log"`
}

// DefaultPath returns ~/.config/aetherfm/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "aetherfm", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Decoding over the defaults keeps every key the file leaves out.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, serr.NewConfigError("error parsing config file", path, serr.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, serr.NewConfigError("invalid configuration", path, serr.InvalidConfig, err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.StartDirectory = ""
	cfg.ConfirmDelete = true

	cfg.Window.Width = 900
	cfg.Window.Height = 600
	cfg.Window.SidebarWidth = 200

	cfg.Bookmarks = []string{}
	cfg.Places.ShowVolumes = true

	cfg.Watch.Enabled = true
	cfg.Watch.DebounceMS = 250

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. The start directory is
// not checked here; it may come and go between runs.
func (c *Config) Validate() error {
	if c == nil {
		return serr.NewConfigError("nil config", "", serr.InvalidConfig, nil)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		msg := fmt.Sprintf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
		return serr.NewConfigError(msg, "window", serr.InvalidConfig, nil)
	}
	if c.Window.SidebarWidth < 0 || c.Window.SidebarWidth >= c.Window.Width {
		msg := fmt.Sprintf("sidebar width %d must be between 0 and the window width", c.Window.SidebarWidth)
		return serr.NewConfigError(msg, "window.sidebar_width", serr.InvalidConfig, nil)
	}

	if c.Watch.DebounceMS < 0 {
		return serr.NewConfigError("watch debounce must be >= 0 milliseconds", "watch.debounce_ms", serr.InvalidConfig, nil)
	}

	for i, b := range c.Bookmarks {
		param := fmt.Sprintf("bookmarks[%d]", i)
		if b == "" {
			return serr.NewConfigError("bookmark path is required", param, serr.InvalidConfig, nil)
		}
		if !filepath.IsAbs(b) {
			return serr.NewConfigError("bookmark path must be absolute, got "+b, param, serr.InvalidConfig, nil)
		}
	}

	return nil
}

// SidebarOffset converts the sidebar width into the split ratio used by
// the window layout.
func (c *Config) SidebarOffset() float64 {
	if c.Window.Width <= 0 {
		return 0
	}
	return float64(c.Window.SidebarWidth) / float64(c.Window.Width)
}

// ResolveStartDirectory returns the directory the first view should show.
// A configured directory that is gone or not a directory falls back to the
// working directory with a warning.
func (c *Config) ResolveStartDirectory() (string, error) {
	if c.StartDirectory == "" {
		return os.Getwd()
	}

	dir, err := filepath.Abs(c.StartDirectory)
	if err == nil {
		var info os.FileInfo
		if info, err = os.Stat(dir); err == nil {
			if info.IsDir() {
				return dir, nil
			}
			err = serr.New(serr.NotADirectory, "not a directory")
		}
	}
	log.Warnf("Start directory %s unavailable (%v), using the working directory", c.StartDirectory, err)
	return os.Getwd()
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.ConfirmDelete = false
	cfg.Places.ShowVolumes = false
	cfg.Watch.Enabled = false
	return cfg
}
