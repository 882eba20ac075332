// Package config provides reading and writing of cafeval configuration.
// Supports both global (~/.cafeval/config.yaml) and local (.cafeval/config.yaml).
// Reading: uses local if it exists, otherwise global. Environment variables
// (CAFEVAL_*) override file values but are never written back.
// Writing: goes to the file the config was read from.
//
// The validation rules themselves are fixed and not configurable here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.cafeval/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .cafeval/config.yaml
	ScopeLocal
)

// Author identifies who ran a validation in the audit log.
type Author struct {
	Name string `yaml:"name,omitempty"`
}

// Log holds audit log options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
	Limit   *int  `yaml:"limit,omitempty"`
}

// Output holds presentation options.
type Output struct {
	Colour *bool `yaml:"colour,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultLogEnabled = true
	DefaultLogLimit   = 20
	DefaultColour     = true
)

// Validation bounds for configuration values.
const (
	MinLogLimit = 1
	MaxLogLimit = 1000
)

// Env holds environment overrides. Pointer fields stay nil when the
// variable is unset.
type Env struct {
	Author     string `env:"CAFEVAL_AUTHOR"`
	LogEnabled *bool  `env:"CAFEVAL_LOG_ENABLED"`
	Colour     *bool  `env:"CAFEVAL_COLOUR"`
}

// Config contains configuration for cafeval.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Log    Log    `yaml:"log,omitempty"`
	Output Output `yaml:"output,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
	env   Env
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Log.Limit != nil {
		v := *c.Log.Limit
		if v < MinLogLimit || v > MaxLogLimit {
			return fmt.Errorf("%w: log.limit must be between %d and %d, got %d",
				ErrInvalidValue, MinLogLimit, MaxLogLimit, v)
		}
	}
	return nil
}

// AuthorName returns the author, preferring CAFEVAL_AUTHOR.
func (c *Config) AuthorName() string {
	if c.env.Author != "" {
		return c.env.Author
	}
	return c.Author.Name
}

// LogEnabled returns whether validations are recorded (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.env.LogEnabled != nil {
		return *c.env.LogEnabled
	}
	if c.Log.Enabled == nil {
		return DefaultLogEnabled
	}
	return *c.Log.Enabled
}

// LogLimit returns how many entries "cafeval log" lists by default.
func (c *Config) LogLimit() int {
	if c.Log.Limit == nil {
		return DefaultLogLimit
	}
	return *c.Log.Limit
}

// Colour returns whether terminal output may be colourised (defaults to true).
func (c *Config) Colour() bool {
	if c.env.Colour != nil {
		return *c.env.Colour
	}
	if c.Output.Colour == nil {
		return DefaultColour
	}
	return *c.Output.Colour
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(".cafeval", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.cafeval/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cafeval", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope and applies
// environment overrides.
func LoadScope(scope Scope) (*Config, error) {
	cfg, err := loadFile(scope)
	if err != nil {
		return nil, err
	}
	if err := env.Parse(&cfg.env); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

func loadFile(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
