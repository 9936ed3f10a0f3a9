// pkg/load/store.go
package load

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/albapetroleum/mf-etl/pkg/table"
)

// Store wraps the single-file SQLite database the cleaned datasets are
// queried from.
type Store struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// OpenStore opens (creating if absent) the SQLite file at path and
// verifies the connection.
func OpenStore(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", path, err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ReplaceTable drops and recreates the dataset's table, then inserts
// every row with a synthetic id column reflecting row order. The drop,
// create and inserts run in one transaction so a single table is never
// left half-written.
func (s *Store) ReplaceTable(ctx context.Context, ds table.Dataset) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error("Failed to rollback transaction",
					zap.Error(rbErr),
					zap.Error(err))
			}
		}
	}()

	name := quoteIdent(ds.Name)

	if _, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
		return fmt.Errorf("failed to drop %s: %w", ds.Name, err)
	}

	if _, err = tx.ExecContext(ctx, createTableSQL(ds)); err != nil {
		return fmt.Errorf("failed to create %s: %w", ds.Name, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL(ds))
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %s: %w", ds.Name, err)
	}
	defer stmt.Close()

	args := make([]interface{}, 0, len(ds.Table.Columns)+1)
	for i, row := range ds.Table.Rows {
		args = args[:0]
		args = append(args, i)
		for _, c := range row {
			args = append(args, cellValue(c))
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row %d into %s: %w", i, ds.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", ds.Name, err)
	}

	s.logger.Info("Replaced table",
		zap.String("table", ds.Name),
		zap.Int("rows", ds.Table.NumRows()))

	return nil
}

// createTableSQL builds the DDL for a dataset: id primary key plus one
// column per cleaned column. Numeric columns map to REAL; dates are
// stored as ISO-8601 text.
func createTableSQL(ds table.Dataset) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(quoteIdent(ds.Name))
	b.WriteString(" (\"id\" INTEGER PRIMARY KEY")
	for i, col := range ds.Table.Columns {
		b.WriteString(", ")
		b.WriteString(quoteIdent(col))
		b.WriteString(" ")
		b.WriteString(columnType(ds.Table, i))
	}
	b.WriteString(")")
	return b.String()
}

// insertSQL builds the parameterized insert for a dataset.
func insertSQL(ds table.Dataset) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(quoteIdent(ds.Name))
	b.WriteString(" (\"id\"")
	for _, col := range ds.Table.Columns {
		b.WriteString(", ")
		b.WriteString(quoteIdent(col))
	}
	b.WriteString(") VALUES (?")
	for range ds.Table.Columns {
		b.WriteString(", ?")
	}
	b.WriteString(")")
	return b.String()
}

// columnType picks the SQLite type for column idx from the first
// non-null cell; empty columns default to REAL.
func columnType(t table.Table, idx int) string {
	for _, row := range t.Rows {
		c := row[idx]
		if c.IsNull() {
			continue
		}
		if c.Kind == table.KindNumber {
			return "REAL"
		}
		return "TEXT"
	}
	return "REAL"
}

// cellValue converts a cell to its database representation.
func cellValue(c table.Cell) interface{} {
	switch c.Kind {
	case table.KindNumber:
		return c.Num
	case table.KindDate:
		return c.Time.Format("2006-01-02")
	case table.KindText:
		if c.IsNull() {
			return nil
		}
		return c.Str
	default:
		return nil
	}
}

// quoteIdent double-quotes an identifier; column names derived from
// the sheet can contain parentheses.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
