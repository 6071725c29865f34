package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Ingest IngestConfig
	OCR    OCRConfig
	Output OutputConfig
}

// IngestConfig holds the extraction-quality thresholds. The defaults are
// tuned against a small corpus of scanned minutes; they are configuration,
// not invariants.
type IngestConfig struct {
	MinAvgCharsPerPage float64 // below this, try the next strategy
	LayoutGainRatio    float64 // layout must beat plain by this factor
	OCRGainRatio       float64 // OCR must beat the current best by this factor
	OCRMinCharsPerPage float64 // absolute floor for accepting OCR output
	EnableOCR          bool
}

// OCRConfig holds the external OCR toolchain configuration
type OCRConfig struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Pdfinfo   string // binary name or absolute path; if empty -> "pdfinfo"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Lang     string // tesseract language hint, default "deu+eng"
	DPI      int    // rasterization DPI, default 140
	MaxPages int    // 0 = no limit
}

// OutputConfig holds batch output locations
type OutputConfig struct {
	OutDir    string
	ResultsDB string // sqlite results index; empty disables the store
	Workers   int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Ingest: IngestConfig{
			MinAvgCharsPerPage: getEnvAsFloat64("MIN_AVG_CHARS_PER_PAGE", 250),
			LayoutGainRatio:    getEnvAsFloat64("LAYOUT_GAIN_RATIO", 1.2),
			OCRGainRatio:       getEnvAsFloat64("OCR_GAIN_RATIO", 1.5),
			OCRMinCharsPerPage: getEnvAsFloat64("OCR_MIN_CHARS_PER_PAGE", 200),
			EnableOCR:          getEnvAsBool("ENABLE_OCR", false),
		},
		OCR: OCRConfig{
			Pdftotext: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:  getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Pdfinfo:   getEnv("PDFINFO_BIN", "pdfinfo"),
			Tesseract: getEnv("TESSERACT_BIN", "tesseract"),
			Lang:      getEnv("OCR_LANG", "deu+eng"),
			DPI:       getEnvAsInt("OCR_DPI", 140),
			MaxPages:  getEnvAsInt("MAX_OCR_PAGES", 0),
		},
		Output: OutputConfig{
			OutDir:    getEnv("OUT_DIR", "out"),
			ResultsDB: getEnv("RESULTS_DB", ""),
			Workers:   getEnvAsInt("WORKERS", 4),
		},
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

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Ingest.MinAvgCharsPerPage < 0 {
		return NewAppError("CONFIG_ERROR", "MIN_AVG_CHARS_PER_PAGE must be >= 0", ErrInvalidInput)
	}
	if c.Ingest.LayoutGainRatio <= 0 || c.Ingest.OCRGainRatio <= 0 {
		return NewAppError("CONFIG_ERROR", "gain ratios must be > 0", ErrInvalidInput)
	}
	if c.OCR.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_DPI must be > 0", ErrInvalidInput)
	}
	if c.Output.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "WORKERS must be > 0", ErrInvalidInput)
	}
	return nil
}
