package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"invoicetab/internal/acquire"
	"invoicetab/internal/common"
	"invoicetab/internal/export"
	"invoicetab/internal/pipeline"
	"invoicetab/internal/schema"
	"invoicetab/internal/validate"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := common.LoadConfig()

	var (
		dir       = flag.String("dir", cfg.Input.Dir, "directory scanned for invoice PDFs")
		template  = flag.String("template", cfg.Input.TemplatePath, "XLSX template whose header row defines the output columns")
		out       = flag.String("out", cfg.Output.Dir, "output directory")
		prefix    = flag.String("prefix", cfg.Output.Prefix, "output file name prefix")
		threshold = flag.Int("threshold", cfg.OCR.Threshold, "minimum native-text characters before OCR is skipped")
		timeout   = flag.Duration("timeout", cfg.Pipeline.DocTimeout, "per-document processing budget")
		level     = flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	)
	flag.Parse()

	cfg.Input.Dir = *dir
	cfg.Input.TemplatePath = *template
	cfg.Output.Dir = *out
	cfg.Output.Prefix = *prefix
	cfg.OCR.Threshold = *threshold
	cfg.Pipeline.DocTimeout = *timeout
	cfg.LogLevel = *level

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The template drives the output columns; without it there is nothing
	// meaningful to produce, so resolve it before touching any document.
	cols, err := schema.Load(cfg.Input.TemplatePath)
	if err != nil {
		logger.Error("schema.load.failed", "template", cfg.Input.TemplatePath, "error", err)
		os.Exit(1)
	}
	logger.Info("schema.load.ok", "template", cfg.Input.TemplatePath, "columns", len(cols))

	checker, err := validate.NewChecker()
	if err != nil {
		logger.Error("validate.compile.failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	start := time.Now()

	acq := acquire.NewAcquirer(cfg.OCR, logger)
	pipe := pipeline.New(acq, checker, cfg.Pipeline, logger)

	sum, recs, err := pipe.Run(ctx, cfg.Input.Dir)
	if err != nil {
		logger.Error("run.failed", "dir", cfg.Input.Dir, "error", err)
		os.Exit(1)
	}

	rows := schema.Align(recs, cols)
	writer := export.NewWriter(cfg.Output.Dir, cfg.Output.Prefix, logger)
	path, err := writer.Write(cols, rows)
	if err != nil {
		logger.Error("export.write.failed", "error", err)
		os.Exit(1)
	}

	logger.Info("batch.completed",
		"output_file", path,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	fmt.Printf("Invoice extraction complete!\n")
	fmt.Printf("- Files scanned: %d\n", sum.Scanned)
	fmt.Printf("- Vendor matched: %d\n", sum.Matched)
	fmt.Printf("- Succeeded: %d\n", sum.Succeeded)
	fmt.Printf("- Failed: %d\n", sum.Failed)
	for _, name := range sum.FailedFiles {
		fmt.Printf("    failed: %s\n", name)
	}
	fmt.Printf("- Records: %d\n", sum.Records)
	fmt.Printf("- Output: %s\n", path)
}
