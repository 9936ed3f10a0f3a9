// pkg/load/load_test.go
package load

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/albapetroleum/mf-etl/pkg/config"
	"github.com/albapetroleum/mf-etl/pkg/table"
)

func testDatasets() []table.Dataset {
	day := func(d int) table.Cell {
		return table.Date(time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC))
	}

	return []table.Dataset{
		{
			Name: "gas_production",
			Table: table.Table{
				Columns: []string{"date", "gas_sales"},
				Rows: [][]table.Cell{
					{day(15), table.Number(16)},
					{day(16), table.Number(14.5)},
					{day(17), table.Null()},
				},
			},
		},
		{
			Name: "tank_data",
			Table: table.Table{
				Columns: []string{"date", "tank_name", "standard_net_oil_volume_(bbls)"},
				Rows: [][]table.Cell{
					{day(15), table.Text("TK-101"), table.Number(4950.5)},
				},
			},
		},
	}
}

func testLoader(t *testing.T) (*Loader, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		FinalDir:     filepath.Join(dir, "final"),
		DatabasePath: filepath.Join(dir, "mf_data.db"),
	}
	require.NoError(t, os.MkdirAll(cfg.FinalDir, 0o755))

	l, err := NewLoader(cfg, zap.NewNop())
	require.NoError(t, err)
	return l, cfg
}

func TestLoaderWritesFinalCSVsAndTables(t *testing.T) {
	l, cfg := testLoader(t)
	ctx := context.Background()

	require.NoError(t, l.Run(ctx, testDatasets()))

	csvBytes, err := os.ReadFile(filepath.Join(cfg.FinalDir, "gas_production.csv"))
	require.NoError(t, err)
	assert.Equal(t, "date,gas_sales\n2024-01-15,16\n2024-01-16,14.5\n2024-01-17,\n", string(csvBytes))

	db, err := sqlx.Open("sqlite", cfg.DatabasePath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM "gas_production"`))
	assert.Equal(t, 3, count)

	// The synthetic id column reflects row order, starting at zero.
	type row struct {
		ID    int      `db:"id"`
		Date  string   `db:"date"`
		Sales *float64 `db:"gas_sales"`
	}
	var rows []row
	require.NoError(t, db.Select(&rows, `SELECT "id", "date", "gas_sales" FROM "gas_production" ORDER BY "id"`))
	require.Len(t, rows, 3)
	assert.Equal(t, 0, rows[0].ID)
	assert.Equal(t, "2024-01-15", rows[0].Date)
	require.NotNil(t, rows[1].Sales)
	assert.Equal(t, 14.5, *rows[1].Sales)
	assert.Nil(t, rows[2].Sales, "null cells load as SQL NULL")

	var tank struct {
		Name   string  `db:"tank_name"`
		Volume float64 `db:"standard_net_oil_volume_(bbls)"`
	}
	err = db.QueryRowx(`SELECT "tank_name", "standard_net_oil_volume_(bbls)" FROM "tank_data"`).StructScan(&tank)
	require.NoError(t, err)
	assert.Equal(t, "TK-101", tank.Name)
	assert.Equal(t, 4950.5, tank.Volume)
}

func TestLoaderReplaceSemantics(t *testing.T) {
	l, cfg := testLoader(t)
	ctx := context.Background()

	require.NoError(t, l.Run(ctx, testDatasets()))

	first, err := os.ReadFile(filepath.Join(cfg.FinalDir, "gas_production.csv"))
	require.NoError(t, err)

	// A second run fully replaces prior output: identical CSV bytes,
	// no accumulated rows.
	require.NoError(t, l.Run(ctx, testDatasets()))

	second, err := os.ReadFile(filepath.Join(cfg.FinalDir, "gas_production.csv"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	db, err := sqlx.Open("sqlite", cfg.DatabasePath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM "gas_production"`))
	assert.Equal(t, 3, count)
}

func TestNewLoaderValidation(t *testing.T) {
	_, err := NewLoader(nil, zap.NewNop())
	assert.Error(t, err)

	_, err = NewLoader(&config.Config{}, nil)
	assert.Error(t, err)
}
