package rfc2org

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Precompiled regex patterns for performance.
var (
	// Line break followed by indentation inside element text
	continuationIndent = regexp.MustCompile(`\n[ \t]+`)

	// Compress runs of blank lines to a single blank line
	multipleBlankLines = regexp.MustCompile(`\n\n\n+`)

	// Alternating runs of non-space and space characters
	chunkPattern = regexp.MustCompile(`\S+|\s+`)

	// List marker stranded at the start of a wrapped line
	orphanedListMarker = regexp.MustCompile(`\n([ \t]*)((\d+\.(\D|$)|- |\* )[ \t]?)`)
)

// unindent joins continuation lines by replacing each line break and its
// leading indentation with a single space.
func unindent(s string) string {
	return continuationIndent.ReplaceAllString(s, " ")
}

// collapseBlankLines limits consecutive blank lines to one.
func collapseBlankLines(s string) string {
	return multipleBlankLines.ReplaceAllString(s, "\n\n")
}

// fill greedily wraps text into lines of at most width columns. The first
// line starts at column zero; continuation lines are prefixed with indent,
// which counts against the width. A list marker stranded at the start of a
// wrapped line is moved back to the end of the previous line.
func fill(text string, width int, indent string) string {
	chunks := chunkPattern.FindAllString(normalizeSpace(expandTabs(text)), -1)
	s := strings.Join(wrapChunks(chunks, width, indent), "\n")
	return orphanedListMarker.ReplaceAllString(s, " ${2}\n${1}")
}

// tabStop is the column interval used when expanding tabs.
const tabStop = 8

// expandTabs replaces each tab with spaces up to the next tab stop.
// Column counting restarts after a line break.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			pad := tabStop - col%tabStop
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// normalizeSpace replaces tabs and line breaks with single spaces.
func normalizeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\v', '\f', '\r':
			return ' '
		}
		return r
	}, s)
}

// wrapChunks packs word and whitespace chunks into lines no wider than
// width. Whitespace chunks are dropped at line boundaries, except at the
// very start of the first line. A word longer than a whole line is broken
// at the width limit. Lengths are counted in runes.
func wrapChunks(chunks []string, width int, indent string) []string {
	var lines []string
	for len(chunks) > 0 {
		prefix := ""
		if len(lines) > 0 {
			prefix = indent
		}
		avail := width - utf8.RuneCountInString(prefix)

		if len(lines) > 0 && strings.TrimSpace(chunks[0]) == "" {
			chunks = chunks[1:]
		}

		var cur []string
		curLen := 0
		for len(chunks) > 0 {
			n := utf8.RuneCountInString(chunks[0])
			if curLen+n > avail {
				break
			}
			cur = append(cur, chunks[0])
			curLen += n
			chunks = chunks[1:]
		}

		// The next chunk would not fit even on a line of its own.
		if len(chunks) > 0 && utf8.RuneCountInString(chunks[0]) > avail {
			spaceLeft := avail - curLen
			if avail < 1 {
				spaceLeft = 1
			}
			word := []rune(chunks[0])
			cur = append(cur, string(word[:spaceLeft]))
			chunks[0] = string(word[spaceLeft:])
		}

		if len(cur) > 0 && strings.TrimSpace(cur[len(cur)-1]) == "" {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			lines = append(lines, prefix+strings.Join(cur, ""))
		}
	}
	return lines
}
