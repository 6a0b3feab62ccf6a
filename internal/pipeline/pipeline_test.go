package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicetab/internal/acquire"
	"invoicetab/internal/common"
	"invoicetab/internal/validate"
)

type stubAcquirer struct {
	texts map[string]string
	errs  map[string]error
}

func (s *stubAcquirer) Acquire(_ context.Context, path string) (acquire.Result, error) {
	base := filepath.Base(path)
	if err, ok := s.errs[base]; ok {
		return acquire.Result{}, err
	}
	return acquire.Result{Text: s.texts[base], Pages: 1, Method: acquire.MethodNative}, nil
}

const amazonText = `Amazon.in Tax Invoice
Sold By: ACME RETAIL PRIVATE LIMITED
42 Industrial Estate
Bengaluru 560001
PAN No: AAACA1234F
GST Registration No: 29AAACA1234F1Z5
Invoice Number: AB-12345
Invoice Date: 15.01.2024
Order Number: 403-1234567-7654321
CGST 10.00
SGST 10.00
Invoice Value 220.00
`

const swiggyText = `Swiggy TAX INVOICE
Invoice No: SW1
Date of Invoice: 2024-03-05
Invoice Value 120.00
Invoice No: SW2
Date of Invoice: 2024-03-05
Invoice Value 80.00
`

const flipkartText = `Flipkart Tax Invoice
Invoice No: FK123
Invoice Date: 05-02-2024
Grand Total : 118.00
`

func writeInput(t *testing.T) (string, *stubAcquirer) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"amazon.pdf", "swiggy.pdf", "broken.pdf", ".skip.pdf", "notes.txt", filepath.Join("sub", "nested.pdf")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644))
	}
	acq := &stubAcquirer{
		texts: map[string]string{
			"amazon.pdf": amazonText,
			"swiggy.pdf": swiggyText,
			"nested.pdf": flipkartText,
		},
		errs: map[string]error{
			"broken.pdf": fmt.Errorf("%w: garbled scan", common.ErrAcquisition),
		},
	}
	return dir, acq
}

func newPipeline(t *testing.T, acq TextAcquirer) *Pipeline {
	t.Helper()
	checker, err := validate.NewChecker()
	require.NoError(t, err)
	return New(acq, checker, common.PipelineConfig{DocTimeout: 5 * time.Second}, nil)
}

func TestRunEndToEnd(t *testing.T) {
	dir, acq := writeInput(t)
	p := newPipeline(t, acq)

	sum, recs, err := p.Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Scanned, "hidden files and non-pdf files are not scanned")
	assert.Equal(t, 3, sum.Succeeded)
	assert.Equal(t, 3, sum.Matched)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, []string{"broken.pdf"}, sum.FailedFiles)
	assert.Equal(t, 4, sum.Records, "one amazon + two swiggy segments + one flipkart")
	assert.Len(t, recs, 4)

	for _, r := range recs {
		assert.NotEmpty(t, r.Source, "every record stays traceable to its file")
	}
}

func TestRunEmptyDir(t *testing.T) {
	p := newPipeline(t, &stubAcquirer{})

	sum, recs, err := p.Run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
	assert.Empty(t, recs)
}

func TestProcessFileAcquisitionFailure(t *testing.T) {
	acq := &stubAcquirer{errs: map[string]error{"x.pdf": fmt.Errorf("%w: empty", common.ErrAcquisition)}}
	p := newPipeline(t, acq)

	recs, err := p.ProcessFile(context.Background(), "/in/x.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAcquisition)
	assert.Empty(t, recs)
}

func TestProcessFileRecordsValidationWarnings(t *testing.T) {
	acq := &stubAcquirer{texts: map[string]string{"a.pdf": "Amazon invoice\nGST Registration No: 29ZZZ\nInvoice Value 100.00\n"}}
	p := newPipeline(t, acq)

	recs, err := p.ProcessFile(context.Background(), "/in/a.pdf")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.NotEmpty(t, recs[0].Warnings, "malformed GSTIN is flagged for review")
}

func TestRunTwiceProducesIdenticalData(t *testing.T) {
	dir, acq := writeInput(t)
	p := newPipeline(t, acq)

	_, first, err := p.Run(context.Background(), dir)
	require.NoError(t, err)
	_, second, err := p.Run(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Fields(), second[i].Fields())
		assert.Equal(t, first[i].Source, second[i].Source)
	}
}
