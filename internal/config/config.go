package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"datascout/pkg/types"

	"gopkg.in/yaml.v3"
)

// Source describes one instrument share the agent searches for datasets
type Source struct {
	Name            string `yaml:"name"`             // Short label used in logs and CLI
	Path            string `yaml:"path"`             // Directory the instrument writes into
	InstrumentClass string `yaml:"instrument_class"` // Class name as stored in the workflow database
}

// AutoFix overrides one entry of the filename substitution table
type AutoFix struct {
	Find    string `yaml:"find"`    // Single character to replace
	Replace string `yaml:"replace"` // Replacement text
}

// Config represents the agent configuration structure
type Config struct {
	Sources []Source `yaml:"sources"`
	Search  struct {
		Trace     bool      `yaml:"trace"`      // Emit per-pass debug events
		AutoFixes []AutoFix `yaml:"auto_fixes"` // Optional substitution table override
	} `yaml:"search"`
	Settings struct {
		Debug bool `yaml:"debug"` // Debug-level logging
	} `yaml:"settings"`
	WatchMode struct {
		IncludePatterns []string `yaml:"include_patterns"` // Glob patterns for filesystem events worth reacting to
		EventBuffer     int      `yaml:"event_buffer"`     // Channel capacity for dataset events
	} `yaml:"watch_mode"`
}

// LoadConfig loads configuration from the default location
// (~/.config/datascout/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "datascout", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if len(tempCfg.Sources) > 0 {
		cfg.Sources = tempCfg.Sources
	}
	if len(tempCfg.Search.AutoFixes) > 0 {
		cfg.Search.AutoFixes = tempCfg.Search.AutoFixes
	}
	cfg.Search.Trace = tempCfg.Search.Trace
	cfg.Settings.Debug = tempCfg.Settings.Debug

	if len(tempCfg.WatchMode.IncludePatterns) > 0 {
		cfg.WatchMode.IncludePatterns = tempCfg.WatchMode.IncludePatterns
	}
	if tempCfg.WatchMode.EventBuffer > 0 {
		cfg.WatchMode.EventBuffer = tempCfg.WatchMode.EventBuffer
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Sources = []Source{}
	cfg.Search.Trace = false
	cfg.Search.AutoFixes = []AutoFix{}
	cfg.Settings.Debug = false
	cfg.WatchMode.IncludePatterns = []string{"*"}
	cfg.WatchMode.EventBuffer = 10

	return cfg
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

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	for i, src := range c.Sources {
		if src.Path == "" {
			return fmt.Errorf("source %d: path is required", i)
		}
	}

	for i, fix := range c.Search.AutoFixes {
		if utf8.RuneCountInString(fix.Find) != 1 {
			return fmt.Errorf("auto_fix %d: find must be exactly one character, got %q", i, fix.Find)
		}
		if fix.Replace == "" {
			return fmt.Errorf("auto_fix %d: replace is required", i)
		}
	}

	for i, pattern := range c.WatchMode.IncludePatterns {
		if pattern == "" {
			return fmt.Errorf("include_pattern %d: pattern cannot be empty", i)
		}
	}

	if c.WatchMode.EventBuffer < 1 {
		return fmt.Errorf("event_buffer must be >= 1")
	}

	return nil
}

// SourceByName returns the configured source with the given name
func (c *Config) SourceByName(name string) (Source, bool) {
	for _, src := range c.Sources {
		if src.Name == name {
			return src, true
		}
	}
	return Source{}, false
}

// Class returns the parsed instrument class for the source
func (s Source) Class() types.InstrumentClass {
	return types.ParseInstrumentClass(s.InstrumentClass)
}

// New creates a new configuration instance with default values
func New() *Config {
	return defaultConfig()
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Sources = []Source{
		{Name: "vorbi", Path: ".", InstrumentClass: "Finnigan_Ion_Trap"},
		{Name: "ims04", Path: ".", InstrumentClass: "IMS_Agilent_TOF_DotD"},
	}
	cfg.WatchMode.IncludePatterns = []string{"*.raw", "*.d"}
	return cfg
}
