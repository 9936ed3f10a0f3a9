// pkg/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/albapetroleum/mf-etl/pkg/table"
)

// Extractor reads the raw sheet out of the source workbook.
type Extractor interface {
	Run() (table.Table, error)
}

// Transformer turns the raw sheet into the four normalized datasets.
type Transformer interface {
	Run(raw table.Table) ([]table.Dataset, error)
}

// Loader persists the datasets to their final outputs.
type Loader interface {
	Run(ctx context.Context, datasets []table.Dataset) error
}

// Pipeline runs Extract, Transform and Load in sequence. A stage
// failure short-circuits the run: later stages are never invoked with
// absent data, so the first error stays the root cause.
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	loader      Loader
	logger      *zap.Logger
}

// New creates a Pipeline.
func New(e Extractor, t Transformer, l Loader, logger *zap.Logger) (*Pipeline, error) {
	if e == nil {
		return nil, errors.New("extractor cannot be nil")
	}
	if t == nil {
		return nil, errors.New("transformer cannot be nil")
	}
	if l == nil {
		return nil, errors.New("loader cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Pipeline{extractor: e, transformer: t, loader: l, logger: logger}, nil
}

// Run executes the pipeline once and returns a summary of every stage
// that ran. Summary.Success is the overall outcome.
func (p *Pipeline) Run(ctx context.Context) *Summary {
	summary := &Summary{}
	start := time.Now()
	p.logger.Info("Starting pipeline")

	var raw table.Table
	if !p.runStage(summary, "extract", func() error {
		var err error
		raw, err = p.extractor.Run()
		return err
	}) {
		return p.finish(summary, start)
	}

	var datasets []table.Dataset
	if !p.runStage(summary, "transform", func() error {
		var err error
		datasets, err = p.transformer.Run(raw)
		return err
	}) {
		return p.finish(summary, start)
	}

	p.runStage(summary, "load", func() error {
		return p.loader.Run(ctx, datasets)
	})

	return p.finish(summary, start)
}

// runStage executes one stage, records its result and reports whether
// the pipeline may continue.
func (p *Pipeline) runStage(summary *Summary, name string, fn func() error) bool {
	p.logger.Info("Starting stage", zap.String("stage", name))
	start := time.Now()

	err := fn()
	result := StageResult{
		Stage:    name,
		Success:  err == nil,
		Err:      err,
		Duration: time.Since(start),
	}
	summary.Stages = append(summary.Stages, result)

	if err != nil {
		p.logger.Error("Stage failed",
			zap.String("stage", name),
			zap.Duration("duration", result.Duration),
			zap.Error(err))
		return false
	}

	p.logger.Info("Stage completed",
		zap.String("stage", name),
		zap.Duration("duration", result.Duration))
	return true
}

// finish computes the overall outcome and logs the run summary.
func (p *Pipeline) finish(summary *Summary, start time.Time) *Summary {
	summary.Duration = time.Since(start)
	summary.Success = len(summary.Stages) > 0 && summary.FailedStage() == nil

	if summary.Success {
		p.logger.Info("Pipeline completed",
			zap.Duration("duration", summary.Duration))
	} else if failed := summary.FailedStage(); failed != nil {
		p.logger.Error("Pipeline failed",
			zap.String("stage", failed.Stage),
			zap.Duration("duration", summary.Duration),
			zap.Error(failed.Err))
	}

	return summary
}
