// pkg/table/csv.go
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteCSV writes the table to w. Named tables get a header row; raw
// tables are written as-is. The row index is never included.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)

	if t.Columns != nil {
		if err := cw.Write(t.Columns); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	record := make([]string, 0, t.NumCols())
	for _, row := range t.Rows {
		record = record[:0]
		for _, c := range row {
			record = append(record, c.Encode())
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to path, replacing any existing file.
func WriteCSVFile(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
