package constants

// Canonical field names for extracted invoice records. These match the
// column headers of the reconciliation output template.
const (
	FieldSource            = "Field" // origin file name; always populated
	FieldInvoiceNumber     = "invoice_number"
	FieldInvoiceDate       = "invoice_date"
	FieldOrderNumber       = "order_number"
	FieldOrderDate         = "order_date"
	FieldSellerInfo        = "seller_info"
	FieldSellerName        = "seller_name"
	FieldSellerAddress     = "seller_address"
	FieldSellerPAN         = "seller_pan"
	FieldSellerGST         = "seller_gst"
	FieldBillingAddress    = "billing_address"
	FieldShippingAddress   = "shipping_address"
	FieldBillingStateCode  = "billing_state_code"
	FieldShippingStateCode = "shipping_state_code"
	FieldPlaceOfSupply     = "place_of_supply"
	FieldPlaceOfDelivery   = "place_of_delivery"
	FieldFSSAILicense      = "fssai_license"
	FieldTotalTax          = "total_tax"
	FieldTotalAmount       = "total_amount"
	FieldAmountInWords     = "amount_in_words"
)
