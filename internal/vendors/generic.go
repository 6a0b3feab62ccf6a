package vendors

import (
	"invoicetab/constants"
	"invoicetab/internal/cascade"
	"invoicetab/internal/record"
)

// genericStrategy is the best-effort path for unclassified documents: the
// widest label cascades, ending in bare value-shape rules so a record still
// comes out of a layout nothing else recognizes.
var genericStrategy = &flatStrategy{
	vendor: constants.VendorUnknown,
	specs: []fieldSpec{
		{field: constants.FieldInvoiceNumber, rule: cascade.FieldRule{
			cascade.P(`(?i)Invoice\s*(?:Number|No|#)\s*[:\-]?\s*([A-Z0-9\-]+)`),
			cascade.P(`(?i)Tax\s*Invoice\s*([A-Z0-9\-]{8,})`),
			cascade.P(`\b[A-Z]{2,5}-[0-9]{4,}\b`),
		}},
		{field: constants.FieldInvoiceDate, rule: cascade.FieldRule{
			cascade.P(`(?i)Invoice\s*Date\s*[:\-]?\s*([0-9][0-9./\-]+)`),
			cascade.P(`(?i)Date\s*of\s*Invoice\s*[:\-]?\s*([0-9][0-9./\-]+)`),
			cascade.P(`\b([0-9]{2}[./\-][0-9]{2}[./\-][0-9]{4}|[0-9]{4}[./\-][0-9]{2}[./\-][0-9]{2})\b`),
		}},
		{field: constants.FieldOrderNumber, rule: cascade.FieldRule{
			cascade.P(`(?i)Order\s*(?:ID|Number)\s*[:\-]?\s*([A-Z0-9\-]+)`),
			cascade.P(`\b[0-9]{3}-[0-9]{7}-[0-9]{7}\b`),
		}},
		{field: constants.FieldOrderDate, rule: cascade.FieldRule{
			cascade.P(`(?i)Order\s*Date\s*[:\-]?\s*([0-9][0-9./\-]+)`),
		}},
		{field: constants.FieldSellerPAN, rule: cascade.FieldRule{
			cascade.P(`(?i)PAN\s*(?:No)?\s*[:\-]?\s*([A-Z0-9]{10})\b`),
		}},
		{field: constants.FieldSellerGST, rule: cascade.FieldRule{
			cascade.P(`(?i)GST(?:IN|\s*Registration\s*No)?\s*[:\-]?\s*([0-9]{2}[A-Z0-9]{13})\b`),
			cascade.P(`\b[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9]Z[A-Z0-9]\b`),
		}},
		{field: constants.FieldFSSAILicense, rule: cascade.FieldRule{
			cascade.P(`(?i)FSSAI\s*(?:License)?\s*(?:No)?\s*[:\-]?\s*([0-9]+)`),
		}},
		{field: constants.FieldBillingAddress, lines: true, clean: cascade.CleanBlock, rule: cascade.FieldRule{
			cascade.P(`(?is)Billing\s*Address\s*[:\-]?\s*(.*?)\s*(?:Shipping\s*Address|Invoice\s*N|Order\s*N)`),
		}},
		{field: constants.FieldShippingAddress, lines: true, clean: cascade.CleanBlock, rule: cascade.FieldRule{
			cascade.P(`(?is)Shipping\s*Address\s*[:\-]?\s*(.*?)\s*(?:Invoice\s*N|Order\s*N|Place\s*of)`),
		}},
		{field: constants.FieldPlaceOfSupply, lines: true, rule: cascade.FieldRule{
			cascade.P(`(?i)Place\s*of\s*Supply\s*[:\-]?\s*([A-Za-z ]+)`),
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
