// Package textnorm canonicalizes raw extracted text before pattern matching.
//
// Two variants are produced on purpose: rules that capture up to a line
// boundary (seller blocks, addresses) need NormalizeLines, while rules for
// single-line scalar fields run against CollapseSpaces, where OCR line wraps
// cannot break a match.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	reDashes     = regexp.MustCompile("[–—‒―]") // en/em/figure/horizontal-bar dashes
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reAnySpace   = regexp.MustCompile(`\s+`)
)

// CollapseSpaces returns the line-collapsed form: dash variants become ASCII
// hyphens and every whitespace run, newlines included, becomes one space.
// Idempotent.
func CollapseSpaces(s string) string {
	if s == "" {
		return s
	}
	s = reDashes.ReplaceAllString(s, "-")
	s = reAnySpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeLines returns the line-preserving form: dash variants become ASCII
// hyphens, CRLF becomes LF, tabs and space runs collapse within lines, runs
// of blank lines collapse to a single blank line, trailing spaces are
// stripped. Line boundaries survive so block patterns can split on them.
// Idempotent.
func NormalizeLines(s string) string {
	if s == "" {
		return s
	}
	s = reDashes.ReplaceAllString(s, "-")
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
