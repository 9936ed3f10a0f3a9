// pkg/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ETL_BASE_DIR", base)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "data", "raw"), cfg.RawDir)
	assert.Equal(t, filepath.Join(base, "data", "processed"), cfg.ProcessedDir)
	assert.Equal(t, filepath.Join(base, "data", "final"), cfg.FinalDir)
	assert.Equal(t, filepath.Join(base, "data", "raw", "alba_mf.xlsm"), cfg.WorkbookPath)
	assert.Equal(t, filepath.Join(base, "data", "raw", "mf_data.db"), cfg.DatabasePath)
	assert.Equal(t, "EC DATA", cfg.SheetName)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ETL_WORKBOOK", "/srv/exports/alba_mf.xlsm")
	t.Setenv("ETL_SHEET_NAME", "EC DATA 2024")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/exports/alba_mf.xlsm", cfg.WorkbookPath)
	assert.Equal(t, "EC DATA 2024", cfg.SheetName)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{SheetName: "EC DATA", WorkbookPath: "wb.xlsm", DatabasePath: "db", LogFormat: "console"}
	assert.NoError(t, cfg.Validate())

	cfg.SheetName = ""
	assert.Error(t, cfg.Validate())
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ETL_BASE_DIR", base)

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.EnsureDirs())

	for _, dir := range []string{cfg.RawDir, cfg.ProcessedDir, cfg.FinalDir, cfg.LogDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent on existing directories.
	assert.NoError(t, cfg.EnsureDirs())
}
