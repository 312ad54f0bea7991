package core

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/huangsam/benchplot/core/algo"
	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Violin builds a violin plot and dispatches it to the renderer.
// The returned job is not waited on.
func (p *Plotter) Violin(
	ctx context.Context,
	formatter contract.ValueFormatter,
	title string,
	curves []schema.Curve,
	path string,
	axisScale schema.AxisScale,
) (contract.Job, error) {
	desc, err := p.BuildViolin(ctx, formatter, title, curves, path, axisScale)
	if err != nil {
		return nil, err
	}
	return p.dispatch(desc)
}

// lane is the peak-normalized density of one curve.
type lane struct {
	title string
	x     []float64
	y     []float64
}

// BuildViolin assembles the violin plot description. Curves are laid out in
// reverse input order so the first curve ends up at the top; each lane i is
// a band centered on i+0.5 whose half-width is 0.45 at peak density.
func (p *Plotter) BuildViolin(
	ctx context.Context,
	formatter contract.ValueFormatter,
	title string,
	curves []schema.Curve,
	path string,
	axisScale schema.AxisScale,
) (_ schema.PlotDescription, err error) {
	_, span := tracer.Start(ctx, "core.BuildViolin", trace.WithAttributes(
		attribute.String("plot.kind", "violin"),
		attribute.Int("plot.curves", len(curves)),
	))
	defer func() { endSpan(span, err) }()

	if err := checkCurves("violin", curves); err != nil {
		return schema.PlotDescription{}, err
	}
	if formatter == nil {
		return schema.PlotDescription{}, schema.NewContractError("violin", "", "no value formatter")
	}
	if p.Density == nil {
		return schema.PlotDescription{}, schema.NewContractError("violin", "", "no density estimator")
	}

	ordered := slices.Clone(curves)
	slices.Reverse(ordered)

	lanes, err := p.densities(ordered)
	if err != nil {
		return schema.PlotDescription{}, err
	}

	all := make([][]float64, len(lanes))
	for i, l := range lanes {
		all[i] = l.x
	}
	lo, hi, ok := algo.PositiveBounds(all...)
	if !ok {
		lo, hi = bounds(all...)
		p.logger().Warn("no positive density positions, axis range uses all values",
			"title", title, "min", lo, "max", hi)
	}

	one := []float64{1}
	unit := formatter.ScaleValues((lo+hi)/2, one)
	factor := one[0]

	n := len(lanes)
	series := make([]schema.Series, 0, n)
	ticks := make([]schema.Tick, 0, n)
	for i, l := range lanes {
		offset := float64(i) + 0.5
		xs := make([]float64, len(l.x))
		upper := make([]float64, len(l.y))
		lower := make([]float64, len(l.y))
		for j := range l.x {
			xs[j] = l.x[j] * factor
			upper[j] = offset + schema.ViolinHalfWidth*l.y[j]
			lower[j] = offset - schema.ViolinHalfWidth*l.y[j]
		}
		s := schema.Series{Color: schema.DarkBlue, Shape: schema.BandShape, X: xs, Y: upper, Y2: lower}
		if i == 0 {
			s.Label = schema.DensityLabel
		}
		series = append(series, s)
		ticks = append(ticks, schema.Tick{Value: offset, Label: p.escape(l.title)})
	}

	var xRange *schema.Range
	if top := hi * factor; top > 0 && !math.IsInf(top, 0) {
		xRange = &schema.Range{Min: 0, Max: top}
	}

	return schema.PlotDescription{
		Title: fmt.Sprintf("%s: Violin plot", p.escape(title)),
		Font:  schema.DefaultFont,
		Size:  schema.Size{Width: schema.DefaultWidth, Height: schema.ViolinBaseHeight + schema.ViolinLaneHeight*n},
		XAxis: schema.Axis{
			Label:     averageTimeLabel(unit),
			Scale:     axisScale,
			Range:     xRange,
			MajorGrid: true,
			MinorGrid: false,
		},
		YAxis: schema.Axis{
			Label: "Input",
			Scale: schema.LinearScale,
			Range: &schema.Range{Min: 0, Max: float64(n)},
			Ticks: ticks,
		},
		Series: series,
		Output: path,
	}, nil
}

// densities estimates and peak-normalizes the density of every curve.
func (p *Plotter) densities(curves []schema.Curve) ([]lane, error) {
	lanes := make([]lane, 0, len(curves))
	for _, c := range curves {
		title := c.ID.DisplayTitle()
		x, y, err := p.Density.Estimate(c.Sample, schema.KDEPoints, p.Bandwidth)
		if err != nil {
			return nil, fmt.Errorf("violin: density of %s: %w", title, err)
		}
		if len(x) == 0 || len(x) != len(y) {
			return nil, fmt.Errorf("violin: density of %s: estimator returned %d x and %d y values", title, len(x), len(y))
		}
		normalized, ok := algo.NormalizePeak(y)
		if !ok {
			p.logger().Warn("degenerate density, drawing no band", "curve", title)
		}
		lanes = append(lanes, lane{title: title, x: x, y: normalized})
	}
	return lanes, nil
}

// bounds returns the min and max over all finite values.
func bounds(series ...[]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, xs := range series {
		for _, x := range xs {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				continue
			}
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}
