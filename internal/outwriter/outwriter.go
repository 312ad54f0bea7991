// Package outwriter prints benchmark summaries and speedup reports as
// tables, CSV or JSON.
package outwriter

import (
	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints curve statistics using the configured output file.
func (ow *OutWriter) WriteSummary(summary Summary, cfg *contract.Config) error {
	return WriteSummaryResults(summary, cfg)
}

// WriteSpeedup prints a speedup report using the configured output file.
func (ow *OutWriter) WriteSpeedup(report SpeedupReport, cfg *contract.Config) error {
	return WriteSpeedupResults(report, cfg)
}

// WriteRuns lists stored import runs using the configured output file.
func (ow *OutWriter) WriteRuns(runs []schema.ImportRun, cfg *contract.Config) error {
	return WriteRunsResults(runs, cfg)
}
