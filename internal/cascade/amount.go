package cascade

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Currency symbols and separators seen across the vendor layouts. Locale-aware
// parsing is out of scope; the source domain only needs rupee/comma/space
// stripping.
var reAmountNoise = regexp.MustCompile(`[₹$,\s]|Rs\.?`)

// NormalizeAmount strips currency symbols, thousands separators and spaces,
// leaving a signed decimal string. Empty input stays empty.
func NormalizeAmount(s string) string {
	return reAmountNoise.ReplaceAllString(s, "")
}

// ParseAmount normalizes and parses a captured amount.
func ParseAmount(s string) (float64, bool) {
	n := NormalizeAmount(s)
	if n == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatAmount renders an amount the way the output table expects it.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// SumAmounts parses and sums a list of captured amounts. Captures that do not
// parse are skipped. ok is false when nothing parsed.
func SumAmounts(vals []string) (total float64, ok bool) {
	for _, v := range vals {
		if f, parsed := ParseAmount(v); parsed {
			total += f
			ok = true
		}
	}
	return total, ok
}

// IsDecimal reports whether s looks like a plain signed decimal, the form
// NormalizeAmount is expected to produce.
func IsDecimal(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	dot := false
	for i, c := range s {
		if c == '.' {
			if dot || i == 0 {
				return false
			}
			dot = true
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0 && !strings.HasSuffix(s, ".")
}
