package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFirstRuleWins(t *testing.T) {
	// Both rules match; the first one's capture must be returned.
	rules := FieldRule{
		P(`Invoice\s*Number\s*[:\-]?\s*([A-Z0-9\-]+)`),
		P(`([A-Z]{2}-\d{5})`),
	}
	v, ok := Extract("Invoice Number: AB-12345 ref CD-99999", rules)
	require.True(t, ok)
	assert.Equal(t, "AB-12345", v)
}

func TestExtractFallsThroughToLaterRule(t *testing.T) {
	rules := FieldRule{
		P(`Invoice\s*Number\s*[:\-]?\s*([A-Z0-9\-]+)`),
		P(`Tax\s*Invoice\s*([A-Z0-9\-]{8,})`),
	}
	v, ok := Extract("Tax Invoice FX20250831AA", rules)
	require.True(t, ok)
	assert.Equal(t, "FX20250831AA", v)
}

func TestExtractNoMatch(t *testing.T) {
	rules := FieldRule{P(`Order\s*ID\s*:\s*(\d+)`)}
	v, ok := Extract("nothing relevant here", rules)
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestExtractWholeMatchWhenNoGroup(t *testing.T) {
	rules := FieldRule{P(`\d{3}-\d{7}-\d{7}`)}
	v, ok := Extract("Order 123-4567890-1234567 shipped", rules)
	require.True(t, ok)
	assert.Equal(t, "123-4567890-1234567", v)
}

func TestExtractExplicitGroup(t *testing.T) {
	rules := FieldRule{PG(`(Invoice\s*Value|Grand\s*Total)[^0-9]{0,20}([0-9,]+\.[0-9]{2})`, 2)}
	v, ok := Extract("Grand Total : ₹ 1,220.00", rules)
	require.True(t, ok)
	assert.Equal(t, "1,220.00", v)
}

func TestExtractTrimsCapture(t *testing.T) {
	rules := FieldRule{P(`Place\s*of\s*Supply\s*[:\-]?\s*([A-Z ]+)`)}
	v, ok := Extract("Place of Supply: KARNATAKA \n", rules)
	require.True(t, ok)
	assert.Equal(t, "KARNATAKA", v)
}

func TestExtractSkipsEmptyCapture(t *testing.T) {
	// First rule matches but captures only whitespace; the cascade must move on.
	rules := FieldRule{
		P(`PAN\s*:( *)`),
		P(`PAN\s*:\s*([A-Z0-9]{10})`),
	}
	v, ok := Extract("PAN : AAACA1234F", rules)
	require.True(t, ok)
	assert.Equal(t, "AAACA1234F", v)
}

func TestExtractAll(t *testing.T) {
	vals := ExtractAll("CGST 10.00 then SGST 10.00 then CGST 2.50", P(`CGST[^0-9]{0,10}([0-9,]+\.[0-9]{2})`))
	assert.Equal(t, []string{"10.00", "2.50"}, vals)
}
