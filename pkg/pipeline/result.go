// pkg/pipeline/result.go
package pipeline

import "time"

// StageResult records the outcome of a single pipeline stage. A failed
// stage carries its reason; downstream stages are never run on it.
type StageResult struct {
	Stage    string
	Success  bool
	Err      error
	Duration time.Duration
}

// Summary aggregates stage outcomes for one pipeline run.
type Summary struct {
	Stages   []StageResult
	Success  bool
	Duration time.Duration
}

// FailedStage returns the first failed stage, or nil when the run
// succeeded.
func (s *Summary) FailedStage() *StageResult {
	for i := range s.Stages {
		if !s.Stages[i].Success {
			return &s.Stages[i]
		}
	}
	return nil
}
