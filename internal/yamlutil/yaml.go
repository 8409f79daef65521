// Package yamlutil isolates YAML parsing behind a minimal seam so the
// underlying library can change without touching callers.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps YAML input length (default 1MB).
var MaxInputSize = 1 << 20

// Sentinel errors for input validation.
var (
	ErrEmptyInput    = errors.New("yamlutil: empty input")
	ErrNilTarget     = errors.New("yamlutil: nil destination pointer")
	ErrOversizeInput = errors.New("yamlutil: input exceeds maximum size")
)

func checkArgs(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrOversizeInput, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilTarget
	}
	return nil
}

// Unmarshal parses data into v, tolerating unknown fields.
func Unmarshal(data []byte, v any) error {
	if err := checkArgs(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict parses data into v, rejecting unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkArgs(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal renders v as YAML.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
