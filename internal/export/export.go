package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"invoicetab/internal/schema"
)

const sheetName = "Invoices"

// Writer produces one XLSX workbook per run in the output directory. Each run
// writes a fresh timestamped file; existing files are never appended to.
type Writer struct {
	outDir string
	prefix string
	logger *slog.Logger

	// now is a hook for tests.
	now func() time.Time
}

func NewWriter(outDir, prefix string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{outDir: outDir, prefix: prefix, logger: logger, now: time.Now}
}

// Write renders the aligned rows under a header row taken from the schema and
// saves the workbook as <prefix>_<YYYYMMDD_HHMMSS>.xlsx. It returns the path
// of the file it created.
func (w *Writer) Write(s schema.Schema, rows [][]string) (string, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range s {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}
	for ri, row := range rows {
		for ci, v := range row {
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	for i, h := range s {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, col, col, columnWidth(h))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("xlsx write: %w", err)
	}

	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.xlsx", w.prefix, w.now().Format("20060102_150405"))
	path := filepath.Join(w.outDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	w.logger.Info("export.xlsx.ok",
		"path", path,
		"rows", len(rows),
		"columns", len(s),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}

// columnWidth gives block-valued columns room to breathe; everything else
// gets a uniform width.
func columnWidth(header string) float64 {
	switch header {
	case "seller_info", "seller_address", "billing_address", "shipping_address",
		"place_of_delivery", "amount_in_words":
		return 48
	default:
		return 20
	}
}
