package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-rfc2org/internal/fileutil"
	"github.com/alnah/go-rfc2org/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidWidth    = errors.New("invalid reflow width")
	ErrInvalidLogLevel = errors.New("invalid logging level")
	ErrInvalidLogStyle = errors.New("invalid logging style")
)

// Reflow width bounds. Anything narrower than MinWidth cannot hold list
// bullets and their continuation indent; anything wider than MaxWidth
// no longer reads as reflowed text.
const (
	MinWidth = 20
	MaxWidth = 200
)

// Config holds all configuration for document conversion.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig defines conversion options.
type ConvertConfig struct {
	Width      int  `yaml:"width"`      // Reflow column limit (0 = library default)
	NoPreamble bool `yaml:"noPreamble"` // Skip the org options header
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = stdout)
}

// LoggingConfig defines logger options.
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error" (empty = info)
	Style string `yaml:"style"` // "terminal", "json", "noop" (empty = terminal)
}

// Validate checks value ranges and enumerations.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
func (c *Config) Validate() error {
	if c.Convert.Width != 0 && (c.Convert.Width < MinWidth || c.Convert.Width > MaxWidth) {
		return fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidWidth, c.Convert.Width, MinWidth, MaxWidth)
	}

	if c.Logging.Level != "" {
		switch strings.ToLower(c.Logging.Level) {
		case "debug", "info", "warn", "error":
			// valid
		default:
			return fmt.Errorf("%w: %q (must be debug, info, warn, or error)",
				ErrInvalidLogLevel, c.Logging.Level)
		}
	}

	if c.Logging.Style != "" {
		switch strings.ToLower(c.Logging.Style) {
		case "terminal", "json", "noop":
			// valid
		default:
			return fmt.Errorf("%w: %q (must be terminal, json, or noop)",
				ErrInvalidLogStyle, c.Logging.Style)
		}
	}

	return nil
}

// DefaultConfig returns a neutral configuration: library default width,
// preamble on, stdout output, default logging.
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{Width: 0, NoPreamble: false},
		Output:  OutputConfig{DefaultDir: ""},
		Logging: LoggingConfig{Level: "", Style: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate locations for a config name, in
// resolution order: current directory first, then ~/.config/go-rfc2org/,
// trying .yaml before .yml in each. Exposed so callers can tell users
// where a failed lookup searched.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-rfc2org", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
