package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wmutil/positioner/internal/placement"
)

// Rule maps windows of a WM class to a placement. The first matching
// rule wins; matching is a case-insensitive comparison of the class.
type Rule struct {
	Class     string              `yaml:"class"`
	Placement placement.Placement `yaml:"placement"`
}

// LoggingConfig configures the move action log.
type LoggingConfig struct {
	// Enabled turns action logging on/off
	Enabled bool `yaml:"enabled,omitempty"`
	// Level controls verbosity: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
	// File is the log file path (default: ~/.local/share/positioner/actions.log)
	File string `yaml:"file,omitempty"`
	// MaxSizeMB rotates the log when it grows past this size
	MaxSizeMB int `yaml:"max_size_mb,omitempty"`
}

// Config is the daemon configuration.
type Config struct {
	// DefaultPlacement is used when a move request names no placement.
	DefaultPlacement placement.Placement `yaml:"default_placement"`

	// Rules override the default placement per window class.
	Rules []Rule `yaml:"rules,omitempty"`

	// Hotkeys maps X key sequences (e.g. "Mod4-KP_7") to placements.
	Hotkeys map[string]placement.Placement `yaml:"hotkeys,omitempty"`

	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// Default returns the builtin configuration used when no config file
// exists.
func Default() *Config {
	return &Config{
		DefaultPlacement: placement.Center,
		Logging: LoggingConfig{
			Level:     "info",
			MaxSizeMB: 10,
		},
	}
}

// DefaultConfigPath returns ~/.config/positioner/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "positioner", "config.yaml"), nil
}

// DefaultLogPath returns ~/.local/share/positioner/actions.log.
func DefaultLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "positioner", "actions.log"), nil
}

// Load reads the configuration from the standard location. A missing
// file is not an error; builtin defaults apply.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if !c.DefaultPlacement.Valid() {
		return fmt.Errorf("default_placement: unknown placement %d", int(c.DefaultPlacement))
	}
	for i, rule := range c.Rules {
		if strings.TrimSpace(rule.Class) == "" {
			return fmt.Errorf("rules[%d]: class must not be empty", i)
		}
		if !rule.Placement.Valid() {
			return fmt.Errorf("rules[%d]: unknown placement %d", i, int(rule.Placement))
		}
	}

	for seq, p := range c.Hotkeys {
		if strings.TrimSpace(seq) == "" {
			return fmt.Errorf("hotkeys: key sequence must not be empty")
		}
		if !p.Valid() {
			return fmt.Errorf("hotkeys[%s]: unknown placement %d", seq, int(p))
		}
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}

	return nil
}

// PlacementFor returns the placement for a window class, falling back
// to the default placement when no rule matches.
func (c *Config) PlacementFor(class string) placement.Placement {
	for _, rule := range c.Rules {
		if strings.EqualFold(rule.Class, class) {
			return rule.Placement
		}
	}
	return c.DefaultPlacement
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
