// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-rfc2org/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-rfc2org) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-rfc2org") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns hints for missing input file errors.
func ForInputNotFound() string {
	return formatHints([]string{"check the input path", "pipe the document on stdin instead"})
}

// ForInvalidExtension returns a hint for input files with the wrong extension.
func ForInvalidExtension() string {
	return format("input must be an xml2rfc .xml document")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
