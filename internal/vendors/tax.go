package vendors

import (
	"invoicetab/constants"
	"invoicetab/internal/cascade"
	"invoicetab/internal/record"
)

var (
	reCGST = cascade.P(`(?i)CGST[^0-9]{0,10}([0-9,]+\.[0-9]{2})`)
	reSGST = cascade.P(`(?i)SGST[^0-9]{0,10}([0-9,]+\.[0-9]{2})`)
	reIGST = cascade.P(`(?i)IGST[^0-9]{0,10}([0-9,]+\.[0-9]{2})`)
)

// labeledTotalRule prefers an explicitly labeled grand total.
var labeledTotalRule = cascade.FieldRule{
	cascade.PG(`(?i)(Invoice\s*Value|TOTAL\s*Amount|Grand\s*Total|Amount\s*Payable)[^0-9]{0,20}([0-9,]+\.[0-9]{2})`, 2),
}

// looseDecimalRule is the last-resort fallback for total amounts: any
// decimal-looking number. Acceptable only because every labeled rule is
// tried first; the last occurrence is used since totals close an invoice.
var looseDecimalRule = cascade.P(`\b[0-9]+\.[0-9]{2}\b`)

// totalTax aggregates GST line items. Domestic shipments carry CGST+SGST,
// inter-state shipments carry IGST, and a well-formed invoice has only one
// family. When both appear anyway, CGST+SGST wins and conflict is reported
// so the caller can flag the record.
func totalTax(text string) (val string, ok bool, conflict bool) {
	domestic := append(cascade.ExtractAll(text, reCGST), cascade.ExtractAll(text, reSGST)...)
	igst := cascade.ExtractAll(text, reIGST)

	if sum, got := cascade.SumAmounts(domestic); got {
		return cascade.FormatAmount(sum), true, len(igst) > 0
	}
	if sum, got := cascade.SumAmounts(igst); got {
		return cascade.FormatAmount(sum), true, false
	}
	return "", false, false
}

func applyTax(text string, r *record.Record) {
	v, ok, conflict := totalTax(text)
	if !ok {
		return
	}
	r.Set(constants.FieldTotalTax, v)
	if conflict {
		r.Warn("both CGST/SGST and IGST line items present; kept CGST+SGST")
	}
}

// totalAmount resolves the invoice total: labeled value first, last loose
// decimal as fallback.
func totalAmount(text string) (string, bool) {
	if v, ok := cascade.Extract(text, labeledTotalRule); ok {
		return cascade.NormalizeAmount(v), true
	}
	nums := cascade.ExtractAll(text, looseDecimalRule)
	if len(nums) > 0 {
		return nums[len(nums)-1], true
	}
	return "", false
}

func applyTotal(text string, r *record.Record) {
	if r.Has(constants.FieldTotalAmount) {
		return
	}
	if v, ok := totalAmount(text); ok {
		r.Set(constants.FieldTotalAmount, v)
	}
}

var reStateCode = cascade.P(`(?i)State/UT\s*Code\s*[:\-]?\s*([0-9]{1,2})`)

// applyStateCodes fills billing/shipping state codes. A single State/UT Code
// label covers both; with two, the billing code is printed first.
func applyStateCodes(text string, r *record.Record) {
	codes := cascade.ExtractAll(text, reStateCode)
	switch {
	case len(codes) == 0:
	case len(codes) == 1:
		r.Set(constants.FieldBillingStateCode, codes[0])
		r.Set(constants.FieldShippingStateCode, codes[0])
	default:
		r.Set(constants.FieldBillingStateCode, codes[0])
		r.Set(constants.FieldShippingStateCode, codes[1])
	}
}
