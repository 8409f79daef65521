package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-rfc2org/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // RFC2ORG_CONFIG: config file name or path
	OutputDir  string // RFC2ORG_OUTPUT_DIR: default output directory
	Width      int    // RFC2ORG_WIDTH: reflow column limit
	LogLevel   string // RFC2ORG_LOG_LEVEL: debug, info, warn, error
	LogStyle   string // RFC2ORG_LOG_STYLE: terminal, json, noop
}

// knownEnvVars lists valid RFC2ORG_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RFC2ORG_CONFIG":     true,
	"RFC2ORG_OUTPUT_DIR": true,
	"RFC2ORG_WIDTH":      true,
	"RFC2ORG_LOG_LEVEL":  true,
	"RFC2ORG_LOG_STYLE":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized RFC2ORG_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("RFC2ORG_CONFIG"),
		OutputDir:  os.Getenv("RFC2ORG_OUTPUT_DIR"),
		LogLevel:   os.Getenv("RFC2ORG_LOG_LEVEL"),
		LogStyle:   os.Getenv("RFC2ORG_LOG_STYLE"),
	}

	// Parse int for width; invalid or non-positive values are ignored
	if width := os.Getenv("RFC2ORG_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil && w > 0 {
			cfg.Width = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized RFC2ORG_* variables.
// Helps catch typos like RFC2ORG_WIDHT instead of RFC2ORG_WIDTH.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "RFC2ORG_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Width > 0 && cfg.Convert.Width == 0 {
		cfg.Convert.Width = env.Width
	}
	if env.LogLevel != "" && cfg.Logging.Level == "" {
		cfg.Logging.Level = env.LogLevel
	}
	if env.LogStyle != "" && cfg.Logging.Style == "" {
		cfg.Logging.Style = env.LogStyle
	}
}
