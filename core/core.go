// Package core turns benchmark curves into plot descriptions: a comparison
// of means against the input parameter, optionally normalized to a speedup
// ratio, and a violin plot of the full distributions.
package core

import (
	"fmt"
	"log/slog"

	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("benchplot.core")

// Plotter holds the collaborators shared by both pipelines.
// A Plotter has no mutable state, so one value may serve concurrent calls
// when its collaborators allow it.
type Plotter struct {
	Renderer contract.Renderer
	Density  contract.DensityEstimator
	Escaper  contract.Escaper
	Logger   *slog.Logger

	// Bandwidth is passed to the density estimator. Nil lets it choose.
	Bandwidth *float64
}

// NewPlotter wires a Plotter. A nil escaper keeps text unchanged and a nil
// logger discards records.
func NewPlotter(renderer contract.Renderer, density contract.DensityEstimator, escaper contract.Escaper, logger *slog.Logger) *Plotter {
	return &Plotter{
		Renderer: renderer,
		Density:  density,
		Escaper:  escaper,
		Logger:   logger,
	}
}

func (p *Plotter) escape(s string) string {
	if p.Escaper == nil {
		return s
	}
	return p.Escaper.Escape(s)
}

func (p *Plotter) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// dispatch hands a finished description to the renderer.
func (p *Plotter) dispatch(desc schema.PlotDescription) (contract.Job, error) {
	if p.Renderer == nil {
		return nil, fmt.Errorf("%w: no renderer configured", schema.ErrRender)
	}
	job, err := p.Renderer.Render(desc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", schema.ErrRender, desc.Output, err)
	}
	p.logger().Debug("dispatched plot", "output", desc.Output, "series", len(desc.Series))
	return job, nil
}

// ResolveValueType returns vt, or the value type of the first curve when vt
// is auto or empty. Curves with no numeric parameter resolve to plain values.
func ResolveValueType(curves []schema.Curve, vt schema.ValueType) schema.ValueType {
	if vt != "" && vt != schema.AutoValue {
		return vt
	}
	for _, c := range curves {
		if detected, ok := c.ID.ValueType(); ok {
			return detected
		}
	}
	return schema.PlainValue
}

// checkCurves rejects an empty curve set and curves without measurements.
func checkCurves(op string, curves []schema.Curve) error {
	if len(curves) == 0 {
		return schema.NewContractError(op, "", "no curves to plot")
	}
	for _, c := range curves {
		if len(c.Sample) == 0 {
			return schema.NewContractError(op, c.ID.DisplayTitle(), "curve has an empty sample")
		}
	}
	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
