package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-rfc2org/internal/fileutil"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present.xml")
	if err := os.WriteFile(path, []byte("<rfc/>"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fileutil.FileExists(path) {
		t.Errorf("FileExists(%q) = false, want true", path)
	}
	if fileutil.FileExists(filepath.Join(dir, "absent.xml")) {
		t.Error("FileExists() = true for missing file, want false")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists() = true for directory, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "bare name", input: "myconfig", expected: false},
		{name: "hyphenated name", input: "my-config", expected: false},
		{name: "relative path", input: "./custom.yaml", expected: true},
		{name: "parent path", input: "../shared/config.yaml", expected: true},
		{name: "absolute path", input: "/etc/rfc2org/config.yaml", expected: true},
		{name: "windows path", input: `C:\configs\default.yaml`, expected: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.IsFilePath(tt.input); got != tt.expected {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "plain file", path: "draft-example-01.xml", expected: "draft-example-01"},
		{name: "nested path", path: "docs/drafts/draft-example-01.xml", expected: "draft-example-01"},
		{name: "no extension", path: "stdin", expected: "stdin"},
		{name: "dotted name keeps inner dots", path: "a.b.xml", expected: "a.b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.BaseName(tt.path); got != tt.expected {
				t.Errorf("BaseName(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
