package rfc2org

import "testing"

func TestUnindent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no line breaks",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "indented continuation",
			input:    "first\n    second",
			expected: "first second",
		},
		{
			name:     "tab indented continuation",
			input:    "first\n\tsecond",
			expected: "first second",
		},
		{
			name:     "bare newline untouched",
			input:    "first\nsecond",
			expected: "first\nsecond",
		},
		{
			name:     "multiple continuations",
			input:    "a\n  b\n  c",
			expected: "a b c",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := unindent(tt.input)
			if got != tt.expected {
				t.Errorf("unindent() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCollapseBlankLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single blank line kept",
			input:    "a\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "double blank line collapsed",
			input:    "a\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "long blank run collapsed",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "single newline untouched",
			input:    "a\nb",
			expected: "a\nb",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := collapseBlankLines(tt.input)
			if got != tt.expected {
				t.Errorf("collapseBlankLines() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no tabs",
			input:    "abc",
			expected: "abc",
		},
		{
			name:     "tab at line start",
			input:    "\tx",
			expected: "        x",
		},
		{
			name:     "tab after text",
			input:    "ab\tx",
			expected: "ab      x",
		},
		{
			name:     "tab at stop boundary",
			input:    "abcdefgh\tx",
			expected: "abcdefgh        x",
		},
		{
			name:     "column resets after newline",
			input:    "ab\n\tx",
			expected: "ab\n        x",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := expandTabs(tt.input)
			if got != tt.expected {
				t.Errorf("expandTabs() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		width    int
		indent   string
		expected string
	}{
		{
			name:     "short line unchanged",
			input:    "hello world",
			width:    69,
			indent:   "",
			expected: "hello world",
		},
		{
			name:     "wraps at width",
			input:    "aaa bbb ccc",
			width:    7,
			indent:   "",
			expected: "aaa bbb\nccc",
		},
		{
			name:     "continuation lines indented",
			input:    "aaa bbb ccc",
			width:    7,
			indent:   "  ",
			expected: "aaa bbb\n  ccc",
		},
		{
			name:     "indent counts against width",
			input:    "aaaa bbbb cccc",
			width:    9,
			indent:   "    ",
			expected: "aaaa bbbb\n    cccc",
		},
		{
			name:     "long word broken",
			input:    "abcdefghij",
			width:    4,
			indent:   "",
			expected: "abcd\nefgh\nij",
		},
		{
			name:     "newlines and tabs become spaces",
			input:    "a\nb\tc",
			width:    69,
			indent:   "",
			expected: "a b       c",
		},
		{
			name:     "list marker pulled up to previous line",
			input:    "aa bb - cc",
			width:    5,
			indent:   "",
			expected: "aa bb - \ncc",
		},
		{
			name:     "empty input",
			input:    "",
			width:    69,
			indent:   "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			width:    69,
			indent:   "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fill(tt.input, tt.width, tt.indent)
			if got != tt.expected {
				t.Errorf("fill() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFillIdempotent(t *testing.T) {
	t.Parallel()

	input := "one two three four five six seven"
	want := "one two\nthree four\nfive six\nseven"

	once := fill(input, 10, "")
	if once != want {
		t.Fatalf("fill() = %q, want %q", once, want)
	}
	twice := fill(once, 10, "")
	if twice != once {
		t.Errorf("fill(fill()) = %q, want %q", twice, once)
	}
}

func TestNormalizeSpace(t *testing.T) {
	t.Parallel()

	got := normalizeSpace("a\tb\nc\rd\ve\ff")
	want := "a b c d e f"
	if got != want {
		t.Errorf("normalizeSpace() = %q, want %q", got, want)
	}
}
