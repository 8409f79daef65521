package main

import (
	"errors"
	"os"

	rfc2org "github.com/alnah/go-rfc2org"
	"github.com/alnah/go-rfc2org/internal/config"
	"github.com/alnah/go-rfc2org/internal/logging"
)

// Exit codes for rfc2org CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, document, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrInputNotFound) {
		return ExitIO
	}

	// Usage/config/document validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidWidth) ||
		errors.Is(err, config.ErrInvalidLogLevel) ||
		errors.Is(err, config.ErrInvalidLogStyle) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, logging.ErrInvalidStyle) ||
		errors.Is(err, rfc2org.ErrEmptyDocument) ||
		errors.Is(err, rfc2org.ErrDocumentParse) ||
		errors.Is(err, rfc2org.ErrDocName) ||
		errors.Is(err, rfc2org.ErrXrefTarget) ||
		errors.Is(err, rfc2org.ErrReferencesInBody) ||
		errors.Is(err, rfc2org.ErrReferenceAnchor) ||
		errors.Is(err, rfc2org.ErrFigureArtwork) ||
		errors.Is(err, ErrInvalidExtension) {
		return ExitUsage
	}

	return ExitGeneral
}
