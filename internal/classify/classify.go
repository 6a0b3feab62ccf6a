// Package classify selects the vendor extraction strategy for a document.
package classify

import (
	"strings"

	"invoicetab/constants"
)

// Signature tokens per vendor, probed as case-insensitive substrings.
// "shopler estore" is a Flipkart storefront alias seen in the wild.
var vendorTokens = map[constants.Vendor][]string{
	constants.VendorAmazon:   {"amazon"},
	constants.VendorFlipkart: {"flipkart", "shopler estore"},
	constants.VendorSwiggy:   {"swiggy"},
}

// Classify returns the vendor tag for normalized document text. Vendors are
// probed in fixed priority order so a document that mentions several vendors
// resolves deterministically to the first hit. No hit yields VendorUnknown,
// which routes to the generic best-effort strategy.
func Classify(text string) constants.Vendor {
	t := strings.ToLower(text)
	for _, v := range constants.Vendors {
		for _, token := range vendorTokens[v] {
			if strings.Contains(t, token) {
				return v
			}
		}
	}
	return constants.VendorUnknown
}
