// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/benchplot/schema"
)

// Renderer turns a plot description into an image.
// Render validates the description and dispatches drawing without waiting for it.
type Renderer interface {
	Render(desc schema.PlotDescription) (Job, error)
}

// Job is a handle to an asynchronous drawing job.
type Job interface {
	// Done is closed once drawing has finished, successfully or not.
	Done() <-chan struct{}

	// Wait blocks until drawing finishes and returns its error.
	Wait() error

	// Output returns the path the job writes to.
	Output() string
}

// DensityEstimator computes a smooth density curve from a raw sample.
// It returns x and y sequences of equal, non-zero length with finite values.
// A nil bandwidth lets the estimator choose one.
type DensityEstimator interface {
	Estimate(sample []float64, points int, bandwidth *float64) (x, y []float64, err error)
}

// ValueFormatter picks a human-scale unit for measured values.
// ScaleValues multiplies values in place by the factor chosen for the typical
// magnitude and returns the unit's short name.
type ValueFormatter interface {
	ScaleValues(typical float64, values []float64) string
}

// Escaper sanitizes free text for the rendering backend.
type Escaper interface {
	Escape(text string) string
}

// EscapeFunc adapts a plain function to the Escaper interface.
type EscapeFunc func(string) string

// Escape implements Escaper.
func (f EscapeFunc) Escape(text string) string {
	return f(text)
}

// SampleStore persists imported curves between runs.
type SampleStore interface {
	// Import stores curves as a new run and returns its ID.
	Import(ctx context.Context, source string, curves []schema.Curve) (int64, error)

	// Load returns the curves of a run in import order. A runID of zero or
	// less selects the latest run.
	Load(ctx context.Context, runID int64) ([]schema.Curve, error)

	// Runs lists stored runs, newest first.
	Runs(ctx context.Context) ([]schema.ImportRun, error)

	Close() error
}
