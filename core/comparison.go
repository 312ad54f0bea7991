package core

import (
	"context"
	"fmt"

	"github.com/huangsam/benchplot/core/algo"
	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// comparisonLegend places the key outside the top right corner.
var comparisonLegend = schema.Legend{Outside: true, Top: true, LeftJustify: true, SampleText: true}

// LineComparison builds a comparison plot and dispatches it to the renderer.
// The returned job is not waited on.
func (p *Plotter) LineComparison(
	ctx context.Context,
	formatter contract.ValueFormatter,
	title string,
	curves []schema.Curve,
	path string,
	valueType schema.ValueType,
	conf schema.PlotConfiguration,
) (contract.Job, error) {
	desc, err := p.BuildLineComparison(ctx, formatter, title, curves, path, valueType, conf)
	if err != nil {
		return nil, err
	}
	return p.dispatch(desc)
}

// BuildLineComparison assembles the comparison plot description: one line and
// one point series per group of means against the input parameter, or a
// single speedup series when conf.Speedup is set.
func (p *Plotter) BuildLineComparison(
	ctx context.Context,
	formatter contract.ValueFormatter,
	title string,
	curves []schema.Curve,
	path string,
	valueType schema.ValueType,
	conf schema.PlotConfiguration,
) (_ schema.PlotDescription, err error) {
	_, span := tracer.Start(ctx, "core.BuildLineComparison", trace.WithAttributes(
		attribute.String("plot.kind", "comparison"),
		attribute.Int("plot.curves", len(curves)),
		attribute.Bool("plot.speedup", conf.Speedup),
	))
	defer func() { endSpan(span, err) }()

	if err := checkCurves("comparison", curves); err != nil {
		return schema.PlotDescription{}, err
	}
	if formatter == nil {
		return schema.PlotDescription{}, schema.NewContractError("comparison", "", "no value formatter")
	}
	if conf.Speedup && conf.SpeedupID == "" {
		return schema.PlotDescription{}, schema.NewContractError("comparison", "", "speedup mode requires a baseline function")
	}

	groups, err := GroupCurves(curves, conf.Grouping, p.logger())
	if err != nil {
		return schema.PlotDescription{}, err
	}
	span.SetAttributes(attribute.Int("plot.groups", len(groups)))

	maxMean := algo.MaxMean(curves)
	unit := formatter.ScaleValues(maxMean, []float64{1})

	var series []schema.Series
	if conf.Speedup {
		result, err := Speedup(groups, conf.SpeedupID)
		if err != nil {
			return schema.PlotDescription{}, err
		}
		// Ratios are unitless and stay unscaled.
		xs, ys := result.XY()
		series = lineAndPoints(schema.SpeedupLabel, algo.ColorFor(0), xs, ys)
	} else {
		for i, g := range groups {
			points, err := g.SortedPoints()
			if err != nil {
				return schema.PlotDescription{}, err
			}
			xs := make([]float64, len(points))
			ys := make([]float64, len(points))
			for j, pt := range points {
				xs[j], ys[j] = pt.X, pt.Mean
			}
			formatter.ScaleValues(maxMean, ys)

			label := ""
			if name, ok := g.Name(); ok {
				label = p.escape(name)
			}
			series = append(series, lineAndPoints(label, algo.ColorFor(i), xs, ys)...)
		}
	}

	legend := comparisonLegend
	return schema.PlotDescription{
		Title:  p.comparisonTitle(title, conf),
		Font:   schema.DefaultFont,
		Size:   schema.Size{Width: schema.DefaultWidth, Height: schema.DefaultHeight},
		Legend: &legend,
		XAxis: schema.Axis{
			Label:     inputLabel(conf.XLabel, valueType),
			Scale:     conf.XScale,
			Ticks:     byteTicks(conf.Tics),
			MajorGrid: conf.XGridMajor,
			MinorGrid: conf.XGridMinor,
		},
		YAxis: schema.Axis{
			Label:     comparisonYLabel(conf, unit),
			Scale:     conf.YScale,
			MajorGrid: conf.YGridMajor,
			MinorGrid: conf.YGridMinor,
		},
		Series: series,
		Output: path,
	}, nil
}

func (p *Plotter) comparisonTitle(title string, conf schema.PlotConfiguration) string {
	if conf.Label != "" {
		return p.escape(conf.Label)
	}
	return fmt.Sprintf("%s: Comparison", p.escape(title))
}

// lineAndPoints draws one group as a labelled line plus unlabelled markers.
func lineAndPoints(label string, color schema.Color, xs, ys []float64) []schema.Series {
	return []schema.Series{
		{Label: label, Color: color, Shape: schema.LineShape, X: xs, Y: ys, LineWidth: schema.LineWidth},
		{Color: color, Shape: schema.PointsShape, X: xs, Y: ys, PointSize: schema.PointSize},
	}
}

func inputLabel(override string, valueType schema.ValueType) string {
	if override != "" {
		return override
	}
	switch valueType {
	case schema.BytesValue:
		return "Input size (Bytes)"
	case schema.ElementsValue:
		return "Input size (Elements)"
	default:
		return "Input"
	}
}

func comparisonYLabel(conf schema.PlotConfiguration, unit string) string {
	switch {
	case conf.YLabel != "":
		return conf.YLabel
	case conf.Speedup:
		return schema.SpeedupLabel
	default:
		return averageTimeLabel(unit)
	}
}

func averageTimeLabel(unit string) string {
	return fmt.Sprintf("Average time (%s)", unit)
}

// byteTicks labels explicit tick positions as byte sizes.
func byteTicks(tics []int64) []schema.Tick {
	if len(tics) == 0 {
		return nil
	}
	ticks := make([]schema.Tick, len(tics))
	for i, v := range tics {
		ticks[i] = schema.Tick{Value: float64(v), Label: algo.FormatBytes(v)}
	}
	return ticks
}
