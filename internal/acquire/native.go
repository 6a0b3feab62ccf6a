package acquire

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// nativeText reads the embedded text layer of a PDF, concatenating page
// texts in page order. ledongthuc/pdf panics on some malformed files, so the
// whole read is wrapped in a recover and surfaced as an ordinary error; the
// caller treats any failure here as "empty text" and escalates to OCR.
func nativeText(path string) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, pages, err = "", 0, fmt.Errorf("pdf text layer: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages = reader.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		t, perr := page.GetPlainText(nil)
		if perr != nil {
			continue
		}
		b.WriteString(t)
		b.WriteString("\n")
	}
	return b.String(), pages, nil
}

func nonWhitespaceLen(s string) int {
	n := 0
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
		default:
			n++
		}
	}
	return n
}
