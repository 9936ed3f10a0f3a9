// pkg/load/load.go
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/albapetroleum/mf-etl/pkg/config"
	"github.com/albapetroleum/mf-etl/pkg/table"
)

// Loader persists the cleaned datasets to the final CSVs and the
// SQLite store, replacing any prior output.
type Loader struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewLoader creates a Loader.
func NewLoader(cfg *config.Config, logger *zap.Logger) (*Loader, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Loader{cfg: cfg, logger: logger}, nil
}

// Run writes each dataset to its final CSV and relational table. There
// is no transactional guarantee across the four tables; each table is
// replaced atomically on its own.
func (l *Loader) Run(ctx context.Context, datasets []table.Dataset) error {
	for _, ds := range datasets {
		path := filepath.Join(l.cfg.FinalDir, ds.Name+".csv")
		if err := table.WriteCSVFile(path, ds.Table); err != nil {
			return fmt.Errorf("failed to write final CSV for %s: %w", ds.Name, err)
		}
	}

	store, err := OpenStore(ctx, l.cfg.DatabasePath, l.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, ds := range datasets {
		if err := store.ReplaceTable(ctx, ds); err != nil {
			return err
		}
	}

	l.logger.Info("Loaded datasets",
		zap.Int("datasets", len(datasets)),
		zap.String("database", l.cfg.DatabasePath),
		zap.String("finalDir", l.cfg.FinalDir))

	return nil
}
