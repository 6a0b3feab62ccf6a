package vendors

import (
	"regexp"
	"strings"

	"invoicetab/constants"
	"invoicetab/internal/cascade"
	"invoicetab/internal/record"
	"invoicetab/internal/textnorm"
)

// Swiggy batches several restaurant invoices into one PDF. The only reliable
// per-invoice anchor is the start-of-invoice label; segments that lack the
// invoice-value marker are administrative boilerplate or blank continuation
// pages and yield no record.
var (
	// The separator is mandatory: a bare "Invoice No" also occurs inside
	// prose (and as the prefix of "Invoice Number") and must not split a
	// real invoice apart.
	reInvoiceAnchor    = regexp.MustCompile(`(?i)Invoice\s*No\s*[:\-]`)
	invoiceValueMarker = "Invoice Value"
	anchorLabel        = "Invoice No: "
)

// SplitInvoices partitions line-preserving multi-invoice text into one
// segment per real invoice. The split consumes the anchor, so it is
// re-prepended to each surviving segment.
func SplitInvoices(text string) []string {
	parts := reInvoiceAnchor.Split(text, -1)
	var segs []string
	for _, p := range parts {
		if !strings.Contains(p, invoiceValueMarker) {
			continue
		}
		segs = append(segs, anchorLabel+strings.TrimSpace(p))
	}
	return segs
}

type multiStrategy struct {
	flat *flatStrategy
}

func (s *multiStrategy) Vendor() constants.Vendor {
	return s.flat.vendor
}

func (s *multiStrategy) Extract(d Doc) []*record.Record {
	var out []*record.Record
	for _, seg := range SplitInvoices(d.Lines) {
		sd := Doc{
			Source: d.Source,
			Lines:  seg,
			Flat:   textnorm.CollapseSpaces(seg),
		}
		out = append(out, s.flat.extractOne(sd))
	}
	return out
}

var swiggyStrategy = &multiStrategy{flat: &flatStrategy{
	vendor: constants.VendorSwiggy,
	specs: []fieldSpec{
		{field: constants.FieldInvoiceNumber, rule: cascade.FieldRule{
			cascade.P(`(?i)Invoice\s*No\s*[:\-]?\s*([A-Z0-9]+)`),
		}},
		{field: constants.FieldOrderNumber, rule: cascade.FieldRule{
			cascade.P(`(?i)Order\s*ID\s*[:\-]?\s*([0-9]+)`),
		}},
		{field: constants.FieldInvoiceDate, rule: cascade.FieldRule{
			cascade.P(`(?i)Date\s*of\s*Invoice\s*[:\-]?\s*([0-9][0-9\-]+)`),
		}},
		{field: constants.FieldSellerName, lines: true, rule: cascade.FieldRule{
			cascade.P(`(?i)Seller\s*Name\s*[:\-]?\s*(.*)`),
		}},
		{field: constants.FieldSellerGST, rule: cascade.FieldRule{
			cascade.P(`(?i)Seller\s*GSTIN\s*[:\-]?\s*([A-Z0-9]+)`),
		}},
		{field: constants.FieldFSSAILicense, rule: cascade.FieldRule{
			cascade.P(`(?i)FSSAI\s*(?:License)?\s*(?:No)?\s*[:\-]?\s*([0-9]+)`),
		}},
		{field: constants.FieldBillingAddress, lines: true, clean: cascade.CleanBlock, rule: cascade.FieldRule{
			cascade.P(`(?is)Customer\s*Address\s*[:\-]?\s*(.*?)\s*(?:Order\s*ID|Invoice\s*No|FSSAI)`),
		}},
		{field: constants.FieldPlaceOfSupply, lines: true, rule: cascade.FieldRule{
			cascade.P(`(?i)Place\s*of\s*Supply\s*[:\-]?\s*([A-Za-z ]+)`),
		}},
		{field: constants.FieldAmountInWords, lines: true, clean: cascade.CleanAmountWords, rule: cascade.FieldRule{
			cascade.P(`(?i)Amount\s*in\s*words\s*[:\-]?\s*([A-Za-z\s]+?)(?:\n|Invoice|Whether|Discount|Disclaimer)`),
		}},
		// The aggregator layout labels the invoice total before tax detail,
		// sometimes without decimals.
		{field: constants.FieldTotalAmount, clean: cascade.NormalizeAmount, rule: cascade.FieldRule{
			cascade.P(`(?i)Invoice\s*Value\s*[:\-]?\s*₹?\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
		}},
	},
	post: func(d Doc, r *record.Record) {
		defaultOrderDate(r)
		if v, ok := r.Get(constants.FieldBillingAddress); ok {
			r.Set(constants.FieldPlaceOfDelivery, v)
		}
		applyTax(d.Flat, r)
		applyTotal(d.Flat, r)
	},
}}
