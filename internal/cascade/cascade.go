// Package cascade implements the ordered pattern cascade every vendor
// strategy is built on: a field is defined by a list of rules tried in order,
// and the first rule producing a non-empty capture wins.
package cascade

import (
	"regexp"
	"strings"
)

// Rule is one pattern in a cascade. Group selects the capture group to
// return; 0 means "first group if the pattern has one, else the whole match".
type Rule struct {
	Re    *regexp.Regexp
	Group int
}

// FieldRule is an ordered rule list for one field. Rules are tried in listed
// order and evaluation stops at the first non-empty capture.
type FieldRule []Rule

// P compiles pattern into a single-rule shorthand used by the vendor tables.
// Panics on an invalid pattern, same as regexp.MustCompile.
func P(pattern string) Rule {
	return Rule{Re: regexp.MustCompile(pattern)}
}

// PG compiles pattern with an explicit capture group index.
func PG(pattern string, group int) Rule {
	return Rule{Re: regexp.MustCompile(pattern), Group: group}
}

// Extract evaluates the cascade against text. It returns the first rule's
// trimmed capture and true, or "" and false when no rule matches. Later rules
// are never evaluated once a rule has produced a value.
func Extract(text string, rules FieldRule) (string, bool) {
	for _, r := range rules {
		m := r.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		group := r.Group
		if group == 0 && r.Re.NumSubexp() > 0 {
			group = 1
		}
		if group >= len(m) {
			continue
		}
		v := strings.TrimSpace(m[group])
		if v != "" {
			return v, true
		}
	}
	return "", false
}

// ExtractAll returns every trimmed capture of a single rule, in match order.
func ExtractAll(text string, r Rule) []string {
	group := r.Group
	if group == 0 && r.Re.NumSubexp() > 0 {
		group = 1
	}
	var out []string
	for _, m := range r.Re.FindAllStringSubmatch(text, -1) {
		if group >= len(m) {
			continue
		}
		if v := strings.TrimSpace(m[group]); v != "" {
			out = append(out, v)
		}
	}
	return out
}
