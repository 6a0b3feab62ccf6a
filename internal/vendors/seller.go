package vendors

import (
	"regexp"
	"strings"

	"invoicetab/constants"
	"invoicetab/internal/record"
)

// The "Sold By" block runs until whichever terminator label the layout
// prints next, so the boundary is an alternation over all of them.
var reSoldByBlock = regexp.MustCompile(
	`(?is)Sold\s*By\s*[:\-]?\s*(.*?)\s*` +
		`(?:PAN\s*(?:No)?\s*[:\-]|GSTIN|GST\s*Registration|Invoice\s*(?:No|Number)|Order\s*(?:Id|Number)|Billing\s*Address|Shipping\s*Address)`)

// A line of >=4 characters starting with an uppercase letter and containing
// only uppercase letters, spaces and commas reads as a company header.
var reAllCapsLine = regexp.MustCompile(`^[A-Z][A-Z ,]{3,}$`)

// parseSellerBlock captures the labeled seller region from line-preserving
// text. The first non-empty line is the seller name, the remainder joined is
// the address.
func parseSellerBlock(lines string) (info, name, addr string, ok bool) {
	m := reSoldByBlock.FindStringSubmatch(lines)
	if m == nil {
		return "", "", "", false
	}
	block := strings.TrimSpace(m[1])
	var parts []string
	for _, l := range strings.Split(block, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	if len(parts) == 0 {
		return "", "", "", false
	}
	return block, parts[0], strings.Join(parts[1:], "\n"), true
}

// applySeller derives seller_info/name/address. Fallback order when the
// labeled block is absent: first comma segment of the billing address, then
// the first all-caps header line anywhere in the text.
func applySeller(d Doc, r *record.Record) {
	if info, name, addr, ok := parseSellerBlock(d.Lines); ok {
		r.Set(constants.FieldSellerInfo, info)
		r.Set(constants.FieldSellerName, name)
		r.Set(constants.FieldSellerAddress, addr)
		return
	}

	if billing, ok := r.Get(constants.FieldBillingAddress); ok {
		parts := splitNonEmpty(strings.ReplaceAll(billing, "\n", ","), ",")
		if len(parts) > 0 {
			r.Set(constants.FieldSellerInfo, parts[0])
			r.Set(constants.FieldSellerName, parts[0])
			r.Set(constants.FieldSellerAddress, strings.Join(parts[1:], ", "))
			return
		}
	}

	for _, line := range strings.Split(d.Lines, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !reAllCapsLine.MatchString(line) {
			continue
		}
		parts := splitNonEmpty(line, ",")
		name := line
		if len(parts) > 0 {
			name = parts[0]
		}
		r.Set(constants.FieldSellerInfo, line)
		r.Set(constants.FieldSellerName, name)
		if len(parts) > 1 {
			r.Set(constants.FieldSellerAddress, strings.Join(parts[1:], ", "))
		}
		return
	}
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
