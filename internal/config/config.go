package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/timers/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"

	// BackendFile stores the timers blob in a JSON file
	BackendFile = "file"
	// BackendSQLite stores the timers blob in a SQLite key/value table
	BackendSQLite = "sqlite"
)

// Config represents the application configuration
type Config struct {
	// WeeklyTarget is the weekly goal in hours, as a string.
	// A malformed value disables shortfall computation.
	WeeklyTarget string `toml:"weekly_target"`
	// WeekStartDay defines which day starts the week (monday or sunday)
	WeekStartDay string `toml:"week_start_day"`
	// Timezone defines the timezone used to group timers into days (IANA name or "Local")
	Timezone string `toml:"timezone"`
	// StorageBackend selects where the timers blob lives (file or sqlite)
	StorageBackend string `toml:"storage_backend"`
	// ExportDir overrides the export directory (defaults to ~/Downloads)
	ExportDir string `toml:"export_dir"`
	// Notifications enables desktop notifications for start/stop
	Notifications bool `toml:"notifications"`
	// Theme is the bubbletint theme id used by the TUI
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
// - weekly_target: "" (no shortfall)
// - week_start_day: "monday" (ISO 8601)
// - timezone: "Local"
// - storage_backend: "file"
func DefaultConfig() Config {
	return Config{
		WeeklyTarget:   "",
		WeekStartDay:   "monday",
		Timezone:       "Local",
		StorageBackend: BackendFile,
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	return osutil.AppFile(ConfigFile)
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file if it exists and returns defaults otherwise.
// A file that exists but is invalid is an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Normalize lower-cases and trims enum-like values in place.
func (c *Config) Normalize() {
	c.WeeklyTarget = strings.TrimSpace(c.WeeklyTarget)
	c.WeekStartDay = strings.ToLower(strings.TrimSpace(c.WeekStartDay))
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	c.ExportDir = strings.TrimSpace(c.ExportDir)
	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks enum values and the timezone name.
// weekly_target is not validated.
func (c Config) Validate() error {
	if c.WeekStartDay != "monday" && c.WeekStartDay != "sunday" {
		return fmt.Errorf("invalid week_start_day %q: must be \"monday\" or \"sunday\"", c.WeekStartDay)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.StorageBackend != BackendFile && c.StorageBackend != BackendSQLite {
		return fmt.Errorf("invalid storage_backend %q: must be %q or %q", c.StorageBackend, BackendFile, BackendSQLite)
	}
	return nil
}

// Location resolves Timezone. "Local" and "" map to time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// WeekStart returns the configured first day of the week.
func (c Config) WeekStart() time.Weekday {
	if c.WeekStartDay == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// WeeklyTargetHours parses WeeklyTarget. ok is false when the value is
// absent, not an integer, or not positive.
func (c Config) WeeklyTargetHours() (hours int, ok bool) {
	if c.WeeklyTarget == "" {
		return 0, false
	}
	n, err := strconv.Atoi(c.WeeklyTarget)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// WeeklyTargetSeconds is WeeklyTargetHours in seconds, or 0 when unset.
func (c Config) WeeklyTargetSeconds() int64 {
	hours, ok := c.WeeklyTargetHours()
	if !ok {
		return 0
	}
	return int64(hours) * 3600
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# timers configuration file

# Weekly target in hours. When set, weeks below the target show a shortfall.
# weekly_target = "40"

# Week start day: "monday" or "sunday"
# week_start_day = "monday"

# Timezone used to group timers into days: "Local" or an IANA name
# (e.g., "America/New_York", "Europe/London", "Asia/Tokyo")
# timezone = "Local"

# Where timers are stored: "file" or "sqlite"
# storage_backend = "file"

# Directory for exports (defaults to ~/Downloads)
# export_dir = ""

# Show desktop notifications when starting and stopping timers
# notifications = false

# TUI color theme (bubbletint id, e.g. "dracula")
# theme = "dracula"
`
}
