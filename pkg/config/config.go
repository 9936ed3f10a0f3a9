// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	// Directory layout
	BaseDir      string // Root of the data tree
	RawDir       string // Workbook, staging CSV and the SQLite file
	ProcessedDir string // Per-table CSVs written by the transform stage
	FinalDir     string // Per-table CSVs written by the load stage
	LogDir       string

	// Extraction source
	WorkbookPath string
	SheetName    string

	// Load target
	DatabasePath string

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load builds a Config from environment variables, with defaults matching
// the production directory layout (data/raw, data/processed, data/final).
func Load() (*Config, error) {
	base := getEnv("ETL_BASE_DIR", ".")

	cfg := &Config{
		BaseDir:      base,
		RawDir:       filepath.Join(base, "data", "raw"),
		ProcessedDir: filepath.Join(base, "data", "processed"),
		FinalDir:     filepath.Join(base, "data", "final"),
		LogDir:       filepath.Join(base, "logs"),
		SheetName:    getEnv("ETL_SHEET_NAME", "EC DATA"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
	}

	cfg.WorkbookPath = getEnv("ETL_WORKBOOK", filepath.Join(cfg.RawDir, "alba_mf.xlsm"))
	cfg.DatabasePath = getEnv("ETL_DATABASE", filepath.Join(cfg.RawDir, "mf_data.db"))
	cfg.LogFile = getEnv("LOG_FILE", filepath.Join(cfg.LogDir, "alba_mf_etl.log"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.WorkbookPath == "" {
		return errors.New("workbook path is required")
	}

	if c.SheetName == "" {
		return errors.New("sheet name is required")
	}

	if c.DatabasePath == "" {
		return errors.New("database path is required")
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}

	return nil
}

// EnsureDirs creates the raw/processed/final/log directories if absent.
// This is the explicit bootstrap step run before any stage touches disk.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.RawDir, c.ProcessedDir, c.FinalDir, c.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
