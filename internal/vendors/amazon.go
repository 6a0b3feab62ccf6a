package vendors

import (
	"invoicetab/constants"
	"invoicetab/internal/cascade"
	"invoicetab/internal/record"
)

// Amazon prints fully labeled fields; the later rules in each cascade cover
// OCR output where labels degrade and only the value shapes survive.
var amazonStrategy = &flatStrategy{
	vendor: constants.VendorAmazon,
	specs: []fieldSpec{
		{field: constants.FieldInvoiceNumber, rule: cascade.FieldRule{
			cascade.P(`(?i)Invoice\s*Number\s*[:\-]?\s*([A-Z0-9\-]+)`),
			cascade.P(`(?i)Invoice\s*(?:No|#)\s*[:\-]?\s*([A-Z0-9\-]{8,})`),
			cascade.P(`\b[A-Z]{2,5}-[0-9]{4,}\b`),
		}},
		{field: constants.FieldInvoiceDate, rule: cascade.FieldRule{
			cascade.P(`(?i)Invoice\s*Date\s*[:\-]?\s*([0-9][0-9./\-]+)`),
		}},
		{field: constants.FieldOrderNumber, rule: cascade.FieldRule{
			cascade.P(`(?i)Order\s*Number\s*[:\-]?\s*([0-9\-]+)`),
			cascade.P(`\b[0-9]{3}-[0-9]{7}-[0-9]{7}\b`),
		}},
		{field: constants.FieldOrderDate, rule: cascade.FieldRule{
			cascade.P(`(?i)Order\s*Date\s*[:\-]?\s*([0-9][0-9./\-]+)`),
		}},
		{field: constants.FieldSellerPAN, rule: cascade.FieldRule{
			cascade.P(`(?i)PAN\s*No\s*[:\-]?\s*([A-Z0-9]+)`),
		}},
		{field: constants.FieldSellerGST, rule: cascade.FieldRule{
			cascade.P(`(?i)GST\s*Registration\s*No\s*[:\-]?\s*([A-Z0-9]+)`),
			cascade.P(`\b[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9]Z[A-Z0-9]\b`),
		}},
		{field: constants.FieldBillingAddress, lines: true, clean: cascade.CleanBlock, rule: cascade.FieldRule{
			cascade.P(`(?is)Billing\s*Address\s*[:\-]?\s*(.*?)\s*(?:Shipping\s*Address|Invoice\s*Number|Order\s*Number)`),
		}},
		{field: constants.FieldShippingAddress, lines: true, clean: cascade.CleanBlock, rule: cascade.FieldRule{
			cascade.P(`(?is)Shipping\s*Address\s*[:\-]?\s*(.*?)\s*(?:Invoice\s*Number|Order\s*Number|Place\s*of)`),
		}},
		// Line-preserving on purpose: with (?i) the class matches lowercase
		// too, so on collapsed text the capture would run into the next label.
		{field: constants.FieldPlaceOfSupply, lines: true, rule: cascade.FieldRule{
			cascade.P(`(?i)Place\s*of\s*supply\s*[:\-]?\s*([A-Za-z ]+)`),
		}},
		{field: constants.FieldAmountInWords, lines: true, clean: cascade.CleanAmountWords, rule: cascade.FieldRule{
			cascade.P(`(?i)Amount\s*in\s*Words\s*[:\-]?\s*(.*)`),
		}},
	},
	post: func(d Doc, r *record.Record) {
		defaultOrderDate(r)
		applySeller(d, r)
		applyStateCodes(d.Flat, r)
		applyTax(d.Flat, r)
		applyTotal(d.Flat, r)
	},
}
