package acquire

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicetab/internal/common"
)

// stubRunner fakes pdftoppm and tesseract. The pdftoppm call writes the
// requested number of page images so the glob in ocrPages finds them.
type stubRunner struct {
	pages          int
	pdftoppmCalls  int
	tesseractCalls int
	tesseractErr   error
	pdftoppmErr    error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	if strings.Contains(name, "pdftoppm") {
		s.pdftoppmCalls++
		if s.pdftoppmErr != nil {
			return nil, []byte("boom"), s.pdftoppmErr
		}
		prefix := args[len(args)-1]
		for i := 1; i <= s.pages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o600); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	}
	s.tesseractCalls++
	if s.tesseractErr != nil {
		return nil, []byte("fail"), s.tesseractErr
	}
	return []byte(fmt.Sprintf("ocr page %d text", s.tesseractCalls)), nil, nil
}

func newTestAcquirer(native func(string) (string, int, error), r Runner) *Acquirer {
	a := NewAcquirer(common.OCRConfig{Threshold: 200}, nil)
	a.native = native
	a.runner = r
	return a
}

func TestAcquireNativeAboveThreshold(t *testing.T) {
	long := strings.Repeat("invoice text ", 30) // well past 200 chars
	runner := &stubRunner{pages: 2}
	a := newTestAcquirer(func(string) (string, int, error) { return long, 3, nil }, runner)

	res, err := a.Acquire(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, MethodNative, res.Method)
	assert.Equal(t, 3, res.Pages)
	assert.Zero(t, runner.pdftoppmCalls, "OCR must not run when the text layer is dense enough")
}

func TestAcquireSparseNativeTriggersOCRPerPage(t *testing.T) {
	// 50 non-whitespace chars, below the 200 threshold.
	sparse := strings.Repeat("x", 50)
	runner := &stubRunner{pages: 3}
	a := newTestAcquirer(func(string) (string, int, error) { return sparse, 1, nil }, runner)

	res, err := a.Acquire(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, MethodOCR, res.Method)
	assert.Equal(t, 1, runner.pdftoppmCalls)
	assert.Equal(t, 3, runner.tesseractCalls, "OCR must run exactly once per page")
	assert.Equal(t, 3, res.Pages)
	// Page outputs concatenate in page order, after the sparse native text.
	assert.True(t, strings.HasPrefix(res.Text, sparse))
	assert.Less(t,
		strings.Index(res.Text, "ocr page 1"),
		strings.Index(res.Text, "ocr page 3"))
}

func TestAcquireNativeErrorSwallowed(t *testing.T) {
	runner := &stubRunner{pages: 1}
	a := newTestAcquirer(func(string) (string, int, error) { return "", 0, errors.New("broken xref") }, runner)

	res, err := a.Acquire(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, MethodOCR, res.Method)
	assert.Contains(t, res.Text, "ocr page 1")
}

func TestAcquireBothPathsFail(t *testing.T) {
	runner := &stubRunner{pages: 1, pdftoppmErr: errors.New("no rasterizer")}
	a := newTestAcquirer(func(string) (string, int, error) { return "", 0, errors.New("no text layer") }, runner)

	_, err := a.Acquire(context.Background(), "doc.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAcquisition)
}

func TestAcquireOCRFailureKeepsSparseNative(t *testing.T) {
	sparse := "short native text"
	runner := &stubRunner{pages: 1, pdftoppmErr: errors.New("no rasterizer")}
	a := newTestAcquirer(func(string) (string, int, error) { return sparse, 1, nil }, runner)

	res, err := a.Acquire(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, MethodNative, res.Method)
	assert.Equal(t, sparse, res.Text)
	assert.NotEmpty(t, res.Warnings)
}

func TestNonWhitespaceLen(t *testing.T) {
	assert.Equal(t, 0, nonWhitespaceLen(" \n\t\f"))
	assert.Equal(t, 5, nonWhitespaceLen(" ab c\nd e "))
}
