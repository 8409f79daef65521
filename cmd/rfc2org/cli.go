package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	rfc2org "github.com/alnah/go-rfc2org"
	"github.com/alnah/go-rfc2org/internal/config"
	"github.com/alnah/go-rfc2org/internal/fileutil"
	"github.com/alnah/go-rfc2org/internal/hints"
	"github.com/alnah/go-rfc2org/internal/logging"
	"go.uber.org/zap"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput        = errors.New("failed to read input document")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInputNotFound    = errors.New("input file not found")
	ErrInvalidExtension = errors.New("file must have .xml extension")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input rfc2org.Input) (string, error)
}

// Compile-time interface implementation check.
var _ Converter = (*rfc2org.Service)(nil)

// run orchestrates a single conversion from parsed flags to written output.
// Nothing is written to the output target until conversion has succeeded.
func run(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if flags.version {
		fmt.Fprintf(env.Stdout, "rfc2org %s\n", Version)
		return nil
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfiguration(flags, envCfg)
	if err != nil {
		return err
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := buildLogger(flags, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	inputPath, document, err := readInput(positionalArgs, env)
	if err != nil {
		return err
	}

	svc := newService(cfg, log)
	body, err := svc.Convert(ctx, rfc2org.Input{Document: document})
	if err != nil {
		return err
	}

	out := composeOutput(body, cfg.Convert.NoPreamble)

	outputPath := resolveOutputPath(inputPath, flags.output, cfg)
	if outputPath == "" {
		if _, err := io.WriteString(env.Stdout, out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := writeOutput(outputPath, out); err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}

	return nil
}

// loadConfiguration resolves the config source: --config flag first,
// then RFC2ORG_CONFIG, then built-in defaults. A named config that
// cannot be found is an error, never a silent fallback.
func loadConfiguration(flags *convertFlags, envCfg *envConfig) (*config.Config, error) {
	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.width != 0 {
		cfg.Convert.Width = flags.width
	}
	if flags.noPreamble {
		cfg.Convert.NoPreamble = true
	}
}

// buildLogger creates the logger from config, with --verbose and
// --quiet taking precedence over the configured level.
func buildLogger(flags *convertFlags, cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Logging.Level
	if flags.common.verbose {
		level = "debug"
	} else if flags.common.quiet {
		level = "error"
	}
	return logging.NewLogger(level, cfg.Logging.Style)
}

// newService builds the conversion service from merged configuration.
func newService(cfg *config.Config, log *zap.Logger) *rfc2org.Service {
	opts := []rfc2org.Option{rfc2org.WithLogger(log)}
	if cfg.Convert.Width != 0 {
		opts = append(opts, rfc2org.WithWidth(cfg.Convert.Width))
	}
	return rfc2org.New(opts...)
}

// readInput loads the document from the positional path or stdin.
// Returns the source path ("stdin" when piped) and the raw document.
func readInput(args []string, env *Environment) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return "stdin", string(data), nil
	}

	path := args[0]
	if err := validateDocumentExtension(path); err != nil {
		return "", "", err
	}
	if !fileutil.FileExists(path) {
		return "", "", fmt.Errorf("%w: %s%s", ErrInputNotFound, path, hints.ForInputNotFound())
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return path, string(data), nil
}

// validateDocumentExtension checks that the file has a .xml extension.
func validateDocumentExtension(path string) error {
	if ext := filepath.Ext(path); ext != ".xml" {
		return fmt.Errorf("%w: got %q%s", ErrInvalidExtension, ext, hints.ForInvalidExtension())
	}
	return nil
}

// composeOutput attaches the org options header unless disabled and
// terminates the document with a final newline.
func composeOutput(body string, noPreamble bool) string {
	if noPreamble {
		return body + "\n"
	}
	return rfc2org.Preamble + "\n\n" + body + "\n"
}

// resolveOutputPath determines where the org document goes.
// Returns "" for stdout. A target ending in .org is taken as a file;
// anything else is a directory that receives <input-base>.org.
func resolveOutputPath(inputPath, flagOutput string, cfg *config.Config) string {
	target := flagOutput
	if target == "" {
		target = cfg.Output.DefaultDir
	}
	if target == "" {
		return ""
	}
	if strings.HasSuffix(target, ".org") {
		return target
	}
	return filepath.Join(target, fileutil.BaseName(inputPath)+".org")
}

// writeOutput creates the parent directory and writes the document.
func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
	}
	// #nosec G306 -- org documents are meant to be readable
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	return nil
}
