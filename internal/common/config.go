package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Input    InputConfig
	Output   OutputConfig
	OCR      OCRConfig
	Pipeline PipelineConfig
	LogLevel string
}

// InputConfig holds input-side configuration
type InputConfig struct {
	Dir          string // directory scanned for *.pdf
	TemplatePath string // XLSX whose header row defines the output schema
}

// OutputConfig holds output-side configuration
type OutputConfig struct {
	Dir    string
	Prefix string // output file name prefix; a timestamp is appended per run
}

// OCRConfig holds text-acquisition configuration
type OCRConfig struct {
	Pdftoppm      string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	// Threshold is the minimum count of non-whitespace characters the
	// native text layer must yield before OCR is skipped.
	Threshold int
}

// PipelineConfig holds per-document processing behavior
type PipelineConfig struct {
	DocTimeout time.Duration // wall-clock budget per document; 0 = no limit
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:          getEnv("INVOICES_DIR", "invoices"),
			TemplatePath: getEnv("TEMPLATE_FILE", "Output Template.xlsx"),
		},
		Output: OutputConfig{
			Dir:    getEnv("OUTPUT_DIR", "."),
			Prefix: getEnv("OUTPUT_PREFIX", "Final_Output"),
		},
		OCR: OCRConfig{
			Pdftoppm:      getEnv("PDFTOPPM", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT", "tesseract"),
			TesseractLang: getEnv("OCR_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
			Threshold:     getEnvAsInt("OCR_THRESHOLD", 200),
		},
		Pipeline: PipelineConfig{
			DocTimeout: getEnvAsDuration("DOC_TIMEOUT", 2*time.Minute),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. A missing template is a hard
// error: falling back to an inferred schema would silently drift the output
// columns under downstream reconciliation.
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return NewAppError("CONFIG_ERROR", "INVOICES_DIR is required", ErrInvalidInput)
	}
	if c.Input.TemplatePath == "" {
		return NewAppError("CONFIG_ERROR", "TEMPLATE_FILE is required", ErrInvalidInput)
	}
	if c.OCR.Threshold < 0 {
		return NewAppError("CONFIG_ERROR", "OCR_THRESHOLD must be >= 0", ErrInvalidInput)
	}
	return nil
}
