package constants

// Vendor identifies which invoice layout produced a document.
type Vendor string

const (
	VendorAmazon   Vendor = "amazon"
	VendorFlipkart Vendor = "flipkart"
	VendorSwiggy   Vendor = "swiggy"
	VendorUnknown  Vendor = "unknown"
)

// Vendors holds every known vendor tag, in classification priority order.
var Vendors = []Vendor{VendorAmazon, VendorFlipkart, VendorSwiggy}

func (v Vendor) String() string {
	return string(v)
}
