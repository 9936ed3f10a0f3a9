// pkg/transform/transform.go
package transform

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/albapetroleum/mf-etl/pkg/config"
	"github.com/albapetroleum/mf-etl/pkg/table"
)

// Transformer reshapes the raw sheet into the four normalized datasets.
type Transformer struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewTransformer creates a Transformer.
func NewTransformer(cfg *config.Config, logger *zap.Logger) (*Transformer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Transformer{cfg: cfg, logger: logger}, nil
}

// Run cleans the raw sheet, splits it into the four sub-tables, cleans
// each independently and writes the processed CSVs.
func (t *Transformer) Run(raw table.Table) ([]table.Dataset, error) {
	cleaned, err := cleanSheet(raw)
	if err != nil {
		return nil, err
	}

	datasets := make([]table.Dataset, 0, len(subTables))
	for _, spec := range subTables {
		ds, err := buildSubTable(cleaned, spec)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s: %w", spec.Name, err)
		}

		path := filepath.Join(t.cfg.ProcessedDir, ds.Name+".csv")
		if err := table.WriteCSVFile(path, ds.Table); err != nil {
			return nil, fmt.Errorf("failed to write processed CSV for %s: %w", ds.Name, err)
		}

		t.logger.Info("Built sub-table",
			zap.String("table", ds.Name),
			zap.Int("rows", ds.Table.NumRows()),
			zap.Strings("columns", ds.Table.Columns))

		datasets = append(datasets, ds)
	}

	return datasets, nil
}

// cleanSheet applies the whole-sheet cleaning pass: header derivation,
// forced date renames, metadata-row drop, truncation to the data block
// and per-column type coercion.
func cleanSheet(raw table.Table) (table.Table, error) {
	names, err := raw.HeaderAt(headerRow)
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to derive column names: %w", err)
	}

	// The sheet repeats a "Date" header once per block; the forced
	// renames disambiguate them while positions still refer to the
	// full-width sheet.
	for i, pos := range datePositions {
		if pos < len(names) {
			names[pos] = fmt.Sprintf("date_%d", i+1)
		}
	}

	cleaned := raw.WithColumns(names).
		DropHeadRows(metadataRows).
		SliceCols(keepColumnsLo, keepColumnsHi)

	// Date columns first, so numeric coercion can skip them by name.
	dateCols := make(map[string]bool)
	for i, name := range cleaned.Columns {
		if strings.Contains(name, "date") {
			dateCols[name] = true
			cleaned = cleaned.MapColumn(i, table.CoerceDate)
		}
	}

	// Empty header cells normalize to "nan"; those columns are layout
	// artifacts and carry no data.
	cleaned = dropArtifactColumns(cleaned)

	for i, name := range cleaned.Columns {
		if dateCols[name] || textColumns[name] {
			continue
		}
		cleaned = cleaned.MapColumn(i, table.CoerceNumber)
	}

	return cleaned, nil
}

// dropArtifactColumns removes every column named "nan", preserving the
// order of the rest. Table.DropColumns cannot be used here because the
// name may repeat.
func dropArtifactColumns(t table.Table) table.Table {
	keepIdx := make([]int, 0, len(t.Columns))
	keepNames := make([]string, 0, len(t.Columns))
	for i, name := range t.Columns {
		if name != "nan" {
			keepIdx = append(keepIdx, i)
			keepNames = append(keepNames, name)
		}
	}

	rows := make([][]table.Cell, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]table.Cell, len(keepIdx))
		for k, j := range keepIdx {
			cells[k] = row[j]
		}
		rows[i] = cells
	}

	return table.Table{Columns: keepNames, Rows: rows}
}

// buildSubTable slices one column block out of the cleaned sheet and
// applies that block's own cleaning: null-row removal, column
// selection and the date rename.
func buildSubTable(cleaned table.Table, spec subTableSpec) (table.Dataset, error) {
	sub := cleaned.SliceCols(spec.Lo, spec.Hi).DropNullRows()

	var err error
	switch {
	case spec.Keep != nil:
		sub, err = sub.Select(spec.Keep...)
	case spec.Drop != nil:
		sub, err = sub.DropColumns(spec.Drop...)
	}
	if err != nil {
		return table.Dataset{}, err
	}

	sub = sub.Rename(spec.DateColumn, "date")

	return table.Dataset{Name: spec.Name, Table: sub}, nil
}
