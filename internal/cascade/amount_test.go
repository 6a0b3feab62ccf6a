package cascade

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	cases := map[string]string{
		"₹ 1,234.56":  "1234.56",
		"Rs. 220.00":  "220.00",
		"1 234,00.50": "123400.50",
		"-45.10":      "-45.10",
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeAmount(in), "input %q", in)
	}
}

func TestNormalizeAmountProducesParseableDecimal(t *testing.T) {
	for _, in := range []string{"₹1,000.00", "Rs 25.00", "  3,999.99 ", "-₹12.50"} {
		out := NormalizeAmount(in)
		assert.NotContains(t, out, "₹")
		assert.NotContains(t, out, ",")
		assert.False(t, strings.ContainsAny(out, " \t\n"))
		_, err := strconv.ParseFloat(out, 64)
		assert.NoError(t, err, "input %q -> %q", in, out)
		assert.True(t, IsDecimal(out), "input %q -> %q", in, out)
	}
}

func TestSumAmounts(t *testing.T) {
	total, ok := SumAmounts([]string{"10.00", "₹10.00", "garbage"})
	require.True(t, ok)
	assert.InDelta(t, 20.0, total, 0.001)

	_, ok = SumAmounts(nil)
	assert.False(t, ok)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "20.00", FormatAmount(20))
	assert.Equal(t, "219.99", FormatAmount(219.99))
}

func TestCleanBlock(t *testing.T) {
	in := "ACME Retail Pvt Ltd  42 Industrial Estate  Bengaluru *registered office differs"
	got := CleanBlock(in)
	assert.Equal(t, "ACME Retail Pvt Ltd\n42 Industrial Estate\nBengaluru", got)
}

func TestCleanBlockFootnoteStripsPerLine(t *testing.T) {
	// A footnote tail only loses the rest of its own line; the address lines
	// after it must survive.
	in := "14 Lake View Road *see note\nChennai 600001"
	assert.Equal(t, "14 Lake View Road\nChennai 600001", CleanBlock(in))
}

func TestCleanBlockTruncatesAtASSPLMarker(t *testing.T) {
	in := "ACME Corp\nBengaluru 560001\n*ASSPL-Amazon Seller Services Pvt. Ltd.\nregistered office boilerplate"
	assert.Equal(t, "ACME Corp\nBengaluru 560001", CleanBlock(in))
}

func TestCleanBlockStopsAtBoilerplate(t *testing.T) {
	in := "12 MG Road Bengaluru Authorized Signatory"
	assert.Equal(t, "12 MG Road Bengaluru", CleanBlock(in))
}

func TestCleanAmountWords(t *testing.T) {
	in := "Two Hundred Twenty Only\nFor ACME Retail\nWhether tax payable under reverse charge"
	assert.Equal(t, "Two Hundred Twenty Only", CleanAmountWords(in))

	in = "Two Hundred Twenty Only For ACME Retail"
	assert.Equal(t, "Two Hundred Twenty Only", CleanAmountWords(in))
}
