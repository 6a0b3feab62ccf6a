package vendors

import (
	"invoicetab/constants"
	"invoicetab/internal/cascade"
	"invoicetab/internal/record"
)

var flipkartStrategy = &flatStrategy{
	vendor: constants.VendorFlipkart,
	specs: []fieldSpec{
		{field: constants.FieldInvoiceNumber, rule: cascade.FieldRule{
			cascade.P(`(?i)Invoice\s*No\s*[:\-]?\s*([A-Z0-9]+)`),
		}},
		{field: constants.FieldOrderNumber, rule: cascade.FieldRule{
			cascade.P(`(?i)Order\s*ID\s*[:\-]?\s*(OD[0-9]+)`),
			cascade.P(`(?i)Order\s*ID\s*[:\-]?\s*([A-Z0-9\-]+)`),
		}},
		{field: constants.FieldInvoiceDate, rule: cascade.FieldRule{
			cascade.P(`(?i)Invoice\s*Date\s*[:\-]?\s*([0-9]{2}[-/][0-9]{2}[-/][0-9]{4})`),
		}},
		{field: constants.FieldSellerName, lines: true, clean: cascade.CleanBlock, rule: cascade.FieldRule{
			cascade.P(`(?is)Sold\s*By\s*[:\-]?\s*(.*?)\s*(?:GSTIN|PAN|Invoice)`),
		}},
		{field: constants.FieldSellerPAN, rule: cascade.FieldRule{
			cascade.P(`(?i)PAN\s*[:\-]?\s*([A-Z0-9]+)`),
		}},
		{field: constants.FieldSellerGST, rule: cascade.FieldRule{
			cascade.P(`(?i)GSTIN\s*[:\-]?\s*([A-Z0-9]+)`),
		}},
		{field: constants.FieldBillingAddress, lines: true, clean: cascade.CleanBlock, rule: cascade.FieldRule{
			cascade.P(`(?is)Billing\s*Address\s*[:\-]?\s*(.*?)\s*(?:Shipping|Invoice)`),
		}},
		{field: constants.FieldShippingAddress, lines: true, clean: cascade.CleanBlock, rule: cascade.FieldRule{
			cascade.P(`(?is)Shipping\s*Address\s*[:\-]?\s*(.*?)\s*(?:Invoice|Sold)`),
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
		// Flipkart prints no explicit delivery place; the billing address is
		// the closest stand-in the layout offers.
		if v, ok := r.Get(constants.FieldBillingAddress); ok {
			r.Set(constants.FieldPlaceOfDelivery, v)
		}
		applySeller(d, r)
		applyStateCodes(d.Flat, r)
		applyTax(d.Flat, r)
		applyTotal(d.Flat, r)
	},
}
