package cascade

import (
	"regexp"
	"strings"
)

var (
	reFootnote   = regexp.MustCompile(`\*[^\n]*`)
	reBlockSpace = regexp.MustCompile(`\s{2,}`)
)

// Boilerplate phrases that regularly leak past an address or amount-in-words
// region because the enclosing boundary pattern is not fully reliable. The
// capture is truncated at the first occurrence.
var blockStopWords = []string{"For", "Authorized Signatory", "Whether", "*ASSPL"}

// CleanBlock normalizes a captured address/free-text block: known
// boilerplate truncates the block, footnote tails (from a '*' to the end of
// that line; later lines survive) are dropped, and runs of whitespace
// collapse into paragraph breaks.
func CleanBlock(s string) string {
	if s == "" {
		return ""
	}
	s = truncateAtStopWords(s)
	s = reFootnote.ReplaceAllString(s, "")
	s = reBlockSpace.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// CleanAmountWords keeps the first line of an amount-in-words capture and
// truncates trailing boilerplate.
func CleanAmountWords(s string) string {
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(truncateAtStopWords(s))
}

func truncateAtStopWords(s string) string {
	for _, w := range blockStopWords {
		if i := strings.Index(s, w); i >= 0 {
			s = s[:i]
		}
	}
	return s
}
