// pkg/extract/extract.go
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/albapetroleum/mf-etl/pkg/config"
	"github.com/albapetroleum/mf-etl/pkg/table"
)

// StagingFileName is the raw copy of the extracted sheet, written to
// the raw data directory before any transformation.
const StagingFileName = "ec_data_alba.csv"

// Extractor reads the production sheet out of the source workbook.
type Extractor struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(cfg *config.Config, logger *zap.Logger) (*Extractor, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Extractor{cfg: cfg, logger: logger}, nil
}

// Run reads the configured sheet into a raw table with no structural
// interpretation and writes an unmodified copy to the staging CSV.
func (e *Extractor) Run() (table.Table, error) {
	if _, err := os.Stat(e.cfg.WorkbookPath); os.IsNotExist(err) {
		return table.Table{}, fmt.Errorf("workbook not found: %s", e.cfg.WorkbookPath)
	}

	f, err := excelize.OpenFile(e.cfg.WorkbookPath)
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(e.cfg.SheetName)
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to read sheet %q: %w", e.cfg.SheetName, err)
	}

	raw := table.FromStrings(rows)

	stagingPath := filepath.Join(e.cfg.RawDir, StagingFileName)
	if err := table.WriteCSVFile(stagingPath, raw); err != nil {
		return table.Table{}, fmt.Errorf("failed to write staging CSV: %w", err)
	}

	e.logger.Info("Extracted sheet",
		zap.String("workbook", e.cfg.WorkbookPath),
		zap.String("sheet", e.cfg.SheetName),
		zap.Int("rows", raw.NumRows()),
		zap.Int("columns", raw.NumCols()),
		zap.String("staging", stagingPath))

	return raw, nil
}
