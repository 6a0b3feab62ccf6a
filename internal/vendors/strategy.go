// Package vendors holds the per-vendor extraction strategies. Each strategy
// is a field-rule table over the shared cascade engine plus a post step for
// derived fields (seller block, state codes, tax aggregation, totals).
package vendors

import (
	"invoicetab/constants"
	"invoicetab/internal/record"
)

// Doc is one document (or one invoice segment of a multi-invoice document)
// in both normalized forms. Rules capturing up to a line boundary run against
// Lines; single-line field rules run against Flat.
type Doc struct {
	Source string
	Lines  string
	Flat   string
}

// Strategy extracts zero or more invoice records from a document.
// Multi-invoice vendors return one record per invoice segment.
type Strategy interface {
	Vendor() constants.Vendor
	Extract(d Doc) []*record.Record
}

// ForVendor returns the strategy for a vendor tag. Unknown vendors get the
// generic best-effort strategy rather than failing the document.
func ForVendor(v constants.Vendor) Strategy {
	switch v {
	case constants.VendorAmazon:
		return amazonStrategy
	case constants.VendorFlipkart:
		return flipkartStrategy
	case constants.VendorSwiggy:
		return swiggyStrategy
	default:
		return genericStrategy
	}
}
