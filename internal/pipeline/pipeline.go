// Package pipeline drives the batch run: walk the input directory, pull text
// out of each PDF, classify the vendor, run its extraction strategy and
// collect the records for alignment and export.
package pipeline

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"invoicetab/constants"
	"invoicetab/internal/acquire"
	"invoicetab/internal/classify"
	"invoicetab/internal/common"
	"invoicetab/internal/record"
	"invoicetab/internal/textnorm"
	"invoicetab/internal/validate"
	"invoicetab/internal/vendors"
)

// TextAcquirer is the acquisition seam; tests substitute canned text for the
// pdftotext/OCR machinery.
type TextAcquirer interface {
	Acquire(ctx context.Context, path string) (acquire.Result, error)
}

// Summary aggregates one run. Failed documents are named so the caller can
// report them; the run itself keeps going.
type Summary struct {
	Scanned     int
	Matched     int // classified to a known vendor
	Succeeded   int
	Failed      int
	Records     int
	FailedFiles []string
}

type Pipeline struct {
	acq     TextAcquirer
	checker *validate.Checker
	timeout time.Duration
	logger  *slog.Logger
}

func New(acq TextAcquirer, checker *validate.Checker, cfg common.PipelineConfig, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{acq: acq, checker: checker, timeout: cfg.DocTimeout, logger: logger}
}

// Fields whose absence is worth surfacing per document.
var coreFields = []string{
	constants.FieldInvoiceNumber,
	constants.FieldInvoiceDate,
	constants.FieldTotalAmount,
}

// ProcessFile runs one document through acquisition, classification and
// extraction. An acquisition failure returns an error and zero records;
// extraction itself cannot fail, it just leaves fields absent.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) ([]*record.Record, error) {
	recs, _, err := p.processFile(ctx, path)
	return recs, err
}

func (p *Pipeline) processFile(ctx context.Context, path string) ([]*record.Record, constants.Vendor, error) {
	res, err := p.acq.Acquire(ctx, path)
	if err != nil {
		return nil, constants.VendorUnknown, err
	}

	flat := textnorm.CollapseSpaces(res.Text)
	lines := textnorm.NormalizeLines(res.Text)
	vendor := classify.Classify(flat)
	p.logger.Info("doc.classified",
		"path", path,
		"vendor", string(vendor),
		"method", res.Method,
		"pages", res.Pages,
	)

	doc := vendors.Doc{Source: filepath.Base(path), Lines: lines, Flat: flat}
	recs := vendors.ForVendor(vendor).Extract(doc)

	for _, r := range recs {
		for _, f := range coreFields {
			if !r.Has(f) {
				p.logger.Debug("field.missing", "path", path, "field", f)
			}
		}
		if p.checker == nil {
			continue
		}
		for _, v := range p.checker.Check(r) {
			r.Warn(v)
			p.logger.Debug("record.needs_review", "path", path, "violation", v)
		}
	}

	p.logger.Info("doc.extracted", "path", path, "records", len(recs))
	return recs, vendor, nil
}

// Run walks dir for PDF files (case-insensitive extension, hidden entries
// skipped) and processes each under its own job id and wall-clock budget.
// A failed document is counted and named, never fatal.
func (p *Pipeline) Run(ctx context.Context, dir string) (Summary, []*record.Record, error) {
	start := time.Now()
	var sum Summary
	var all []*record.Record

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !constants.IsAllowedExt(filepath.Ext(name)) {
			return nil
		}

		sum.Scanned++
		jobID := uuid.New().String()
		p.logger.Info("doc.started", "job_id", jobID, "path", path)

		docCtx := ctx
		cancel := context.CancelFunc(func() {})
		if p.timeout > 0 {
			docCtx, cancel = context.WithTimeout(ctx, p.timeout)
		}
		recs, vendor, perr := p.processFile(docCtx, path)
		cancel()

		if perr != nil {
			sum.Failed++
			sum.FailedFiles = append(sum.FailedFiles, name)
			p.logger.Error("doc.failed", "job_id", jobID, "path", path, "error", perr)
			return nil
		}
		if vendor != constants.VendorUnknown {
			sum.Matched++
		}
		sum.Succeeded++
		sum.Records += len(recs)
		all = append(all, recs...)
		return nil
	})
	if err != nil {
		return sum, all, common.WrapError(err, "walk input dir")
	}

	p.logger.Info("run.completed",
		"scanned", sum.Scanned,
		"matched", sum.Matched,
		"succeeded", sum.Succeeded,
		"failed", sum.Failed,
		"records", sum.Records,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return sum, all, nil
}
