package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicetab/constants"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want constants.Vendor
	}{
		{"amazon", "Tax Invoice Amazon Seller Services", constants.VendorAmazon},
		{"amazon case insensitive", "sold on AMAZON.in", constants.VendorAmazon},
		{"flipkart", "Flipkart Internet Private Limited", constants.VendorFlipkart},
		{"flipkart alias", "Sold by SHOPLER ESTORE", constants.VendorFlipkart},
		{"swiggy", "Swiggy order delivered", constants.VendorSwiggy},
		{"no token", "Generic Traders Invoice", constants.VendorUnknown},
		{"empty", "", constants.VendorUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.text))
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// A Swiggy invoice that mentions an Amazon gift card must still resolve
	// to the first-priority token.
	got := Classify("Swiggy order paid via Amazon Pay balance")
	assert.Equal(t, constants.VendorAmazon, got)

	got = Classify("flipkart order delivered by swiggy genie")
	assert.Equal(t, constants.VendorFlipkart, got)
}
