// Package acquire turns a PDF document into raw text. The native text layer
// is tried first; when it yields too little content the pages are rasterized
// and run through OCR. The escalation exists because scanned invoices have no
// text layer while OCR is slow and noisier, so native-first with a
// threshold-gated fallback balances cost and completeness.
package acquire

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"invoicetab/internal/common"
)

const (
	MethodNative = "pdf-text"
	MethodOCR    = "pdf-ocr"
)

// Result is the outcome of text acquisition for one document.
type Result struct {
	Text     string
	Pages    int
	Method   string // MethodNative | MethodOCR
	Duration time.Duration
	Warnings []string
}

// Acquirer implements the native-then-OCR escalation.
type Acquirer struct {
	cfg    common.OCRConfig
	runner Runner
	native func(path string) (string, int, error)
	logger *slog.Logger
}

func NewAcquirer(cfg common.OCRConfig, logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = 200
	}
	return &Acquirer{cfg: cfg, runner: execRunner{}, native: nativeText, logger: logger}
}

// Acquire returns the textual content of the document at path. A native
// text-layer failure is swallowed and treated as empty text; when the OCR
// fallback also fails on a document with empty native text, the error wraps
// common.ErrAcquisition and the document yields zero records.
func (a *Acquirer) Acquire(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	text, pages, err := a.native(path)
	if err != nil {
		a.logger.Debug("acquire.native.failed", "path", path, "error", err)
		text, pages = "", 0
	}
	if nonWhitespaceLen(text) >= a.cfg.Threshold {
		return Result{
			Text:     text,
			Pages:    pages,
			Method:   MethodNative,
			Duration: time.Since(start),
		}, nil
	}

	a.logger.Debug("acquire.ocr.fallback",
		"path", path, "native_chars", nonWhitespaceLen(text), "threshold", a.cfg.Threshold)

	ocrText, ocrPages, warns, err := a.ocrPages(ctx, path)
	if err != nil {
		if strings.TrimSpace(text) == "" {
			return Result{Warnings: warns, Duration: time.Since(start)},
				common.NewAppError("ACQUISITION_FAILED",
					fmt.Sprintf("no usable text for %s", filepath.Base(path)),
					fmt.Errorf("%w: %v", common.ErrAcquisition, err))
		}
		// Sparse native text is still better than nothing.
		return Result{
			Text:     text,
			Pages:    pages,
			Method:   MethodNative,
			Duration: time.Since(start),
			Warnings: append(warns, err.Error()),
		}, nil
	}

	// The original text layer, however sparse, is kept ahead of the OCR
	// output so exact native captures win over their noisier OCR twins.
	return Result{
		Text:     text + ocrText,
		Pages:    ocrPages,
		Method:   MethodOCR,
		Duration: time.Since(start),
		Warnings: warns,
	}, nil
}

// ocrPages rasterizes every page and runs OCR on each image, concatenating
// outputs in page order.
func (a *Acquirer) ocrPages(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "it-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			a.logger.Warn("acquire.tmpdir.remove_failed", "dir", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := a.runner.Run(ctx, a.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", a.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if a.cfg.MaxPages > 0 && len(matches) > a.cfg.MaxPages {
		matches = matches[:a.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	for _, img := range matches {
		out, errb, err := a.runner.Run(ctx, a.cfg.Tesseract, img, "stdout", "-l", a.cfg.TesseractLang)
		if err != nil {
			warns = append(warns, fmt.Sprintf("tesseract %s: %v: %s", filepath.Base(img), err, errb))
			continue
		}
		b.Write(out)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", len(matches), warns, fmt.Errorf("ocr produced no text")
	}
	return b.String(), len(matches), warns, nil
}
