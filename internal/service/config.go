package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xolan/timers/internal/config"
)

// ConfigKeys lists the keys accepted by ConfigService.Set, in file order.
var ConfigKeys = []string{
	"weekly_target",
	"week_start_day",
	"timezone",
	"storage_backend",
	"export_dir",
	"notifications",
	"theme",
}

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update updates the configuration with new values
func (s *ConfigService) Update(cfg config.Config) error {
	// Normalize and validate
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Write the config file
	if err := s.writeConfig(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// Update in-memory config
	s.config = cfg

	return nil
}

// Set changes a single key and writes the configuration file.
func (s *ConfigService) Set(key, value string) error {
	cfg := s.config
	value = strings.TrimSpace(value)

	switch strings.ToLower(strings.TrimSpace(key)) {
	case "weekly_target":
		if value != "" {
			if hours, err := strconv.Atoi(value); err != nil || hours <= 0 {
				return fmt.Errorf("invalid weekly_target '%s' (use a whole number of hours, e.g., 40)", value)
			}
		}
		cfg.WeeklyTarget = value
	case "week_start_day":
		cfg.WeekStartDay = value
	case "timezone":
		cfg.Timezone = value
	case "storage_backend":
		cfg.StorageBackend = value
	case "export_dir":
		cfg.ExportDir = value
	case "notifications":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid notifications '%s' (use true or false)", value)
		}
		cfg.Notifications = enabled
	case "theme":
		cfg.Theme = value
	default:
		return fmt.Errorf("unknown config key '%s' (valid keys: %s)", key, strings.Join(ConfigKeys, ", "))
	}

	return s.Update(cfg)
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	// Check if file already exists
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write sample config
	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.config = cfg
	return nil
}

// writeConfig writes the config to the config file in TOML format
func (s *ConfigService) writeConfig(cfg config.Config) error {
	var buf bytes.Buffer
	buf.WriteString("# timers configuration file\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.configPath, buf.Bytes(), 0644)
}
