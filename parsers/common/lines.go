// Package common provides the shared line grammar used by all format
// adapters: prefix stripping, separator detection, section extraction,
// label/value splitting and junk-value cleaning.
package common

import (
	"strings"
)

// labelFieldPattern decides whether the text enclosed in a bracketed
// separator looks like a "Label: value" field rather than a section name.
// Branded single-line banners sometimes contain a colon, so the label part
// must be short and word-like.
func looksLikeLabelField(text string) bool {
	idx := strings.Index(text, ":")
	if idx <= 0 {
		return false
	}
	label := strings.TrimSpace(text[:idx])
	if label == "" || len(label) > 32 {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == ' ' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}

// SplitLines normalizes line endings and splits content into lines,
// dropping a single trailing empty line.
func SplitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// NormalizeLine strips one leading "- " style dash prefix and any leading
// whitespace. Many families prefix every field line with a dash bullet.
func NormalizeLine(line string) string {
	line = strings.TrimLeft(line, " \t")
	if strings.HasPrefix(line, "- ") {
		line = line[2:]
	}
	return strings.TrimLeft(line, " \t")
}

// IsSeparatorLine reports whether a line is a pure divider: blank, a run of
// eight or more identical '=' or '-' characters, or a bracketed banner of
// the form "===text===" / "---text---". A bracketed line whose enclosed
// text looks like a "label:" field is NOT a separator.
func IsSeparatorLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if isRuneRun(trimmed, 8) {
		return true
	}
	if text, ok := bracketedText(trimmed); ok {
		return !looksLikeLabelField(text)
	}
	return false
}

// ExtractSectionFromSeparator pulls the free text out of a bracketed
// separator line, for adapters that track the current section. Returns ""
// when the line is not a bracketed separator.
func ExtractSectionFromSeparator(line string) string {
	trimmed := strings.TrimSpace(line)
	text, ok := bracketedText(trimmed)
	if !ok || looksLikeLabelField(text) {
		return ""
	}
	return strings.TrimSpace(text)
}

// ExtractValue locates the first of ':', '-' (not at position 0) or '=' in
// the line and returns the trimmed remainder. With no separator present the
// trimmed whole line is returned.
func ExtractValue(line string) string {
	idx := -1
	for i, r := range line {
		if r == ':' || r == '=' || (r == '-' && i > 0) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line[idx+1:])
}

// IsContinuationLine reports whether a raw (un-normalized) line continues a
// list started on a previous header line: indented or dash-prefixed, and not
// itself blank.
func IsContinuationLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
		return true
	}
	return strings.HasPrefix(line, "- ")
}

// isRuneRun reports whether s consists of at least min repetitions of a
// single '=' or '-' character and nothing else.
func isRuneRun(s string, min int) bool {
	if len(s) < min {
		return false
	}
	first := s[0]
	if first != '=' && first != '-' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}

// bracketedText matches "===text===" style lines: at least three leading
// and three trailing dashes/equals with free text between.
func bracketedText(s string) (string, bool) {
	start := 0
	for start < len(s) && (s[start] == '-' || s[start] == '=') {
		start++
	}
	end := len(s)
	for end > start && (s[end-1] == '-' || s[end-1] == '=') {
		end--
	}
	if start < 3 || len(s)-end < 3 {
		return "", false
	}
	text := strings.TrimSpace(s[start:end])
	if text == "" {
		return "", false
	}
	return text, true
}
