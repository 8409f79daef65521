package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests config flag", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound(nil)

		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("hint = %q, want \"\\n  hint: \" prefix", hint)
		}
		if !strings.Contains(hint, "--config") {
			t.Error("expected --config suggestion")
		}
	})

	t.Run("suggests creating user config when path searched", func(t *testing.T) {
		t.Parallel()

		paths := []string{
			"myconfig.yaml",
			"/home/user/.config/go-rfc2org/myconfig.yaml",
			"/home/user/.config/go-rfc2org/myconfig.yml",
		}
		hint := ForConfigNotFound(paths)

		if !strings.Contains(hint, "or create /home/user/.config/go-rfc2org/myconfig.yaml") {
			t.Errorf("hint = %q, want user config suggestion for first matching path", hint)
		}
	})

	t.Run("no user config suggestion without matching path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"myconfig.yaml", "myconfig.yml"})

		if strings.Contains(hint, "or create") {
			t.Errorf("hint = %q, want no create suggestion", hint)
		}
	})
}

func TestForInputNotFound(t *testing.T) {
	t.Parallel()

	hint := ForInputNotFound()

	if !strings.Contains(hint, "check the input path") {
		t.Error("expected input path suggestion")
	}
	if !strings.Contains(hint, "stdin") {
		t.Error("expected stdin suggestion")
	}
	if !strings.Contains(hint, "; ") {
		t.Error("expected hints joined with semicolon")
	}
}

func TestForInvalidExtension(t *testing.T) {
	t.Parallel()

	hint := ForInvalidExtension()

	if !strings.Contains(hint, ".xml") {
		t.Error("expected .xml extension suggestion")
	}
}

func TestForOutputDirectory(t *testing.T) {
	t.Parallel()

	hint := ForOutputDirectory()

	if !strings.Contains(hint, "writable") {
		t.Error("expected writable directory suggestion")
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "non-empty hint",
			input:    "do the thing",
			expected: "\n  hint: do the thing",
		},
		{
			name:     "empty hint",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := format(tt.input); got != tt.expected {
				t.Errorf("format(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{
			name:     "multiple hints joined",
			input:    []string{"first", "second"},
			expected: "\n  hint: first; second",
		},
		{
			name:     "single hint",
			input:    []string{"only"},
			expected: "\n  hint: only",
		},
		{
			name:     "no hints",
			input:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatHints(tt.input); got != tt.expected {
				t.Errorf("formatHints(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
