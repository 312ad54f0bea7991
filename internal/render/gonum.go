package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// dpi converts pixel sizes into vg lengths.
const dpi = 96

// Grid line styles.
var (
	majorGridStyle = draw.LineStyle{Color: color.Gray{Y: 192}, Width: vg.Points(0.5)}
	minorGridStyle = draw.LineStyle{
		Color:  color.Gray{Y: 224},
		Width:  vg.Points(0.3),
		Dashes: []vg.Length{vg.Points(2), vg.Points(2)},
	}
)

// GonumRenderer draws plots with gonum.org/v1/plot. The output format follows
// the file extension (svg, png, pdf, eps, jpg, tif).
type GonumRenderer struct {
	Logger *slog.Logger
}

var _ contract.Renderer = &GonumRenderer{} // Compile-time check

// Render validates desc, builds the gonum plot and saves it in a goroutine.
// Points that a logarithmic axis cannot show are dropped before drawing.
func (r *GonumRenderer) Render(desc schema.PlotDescription) (contract.Job, error) {
	if err := validate(desc); err != nil {
		return nil, err
	}
	if desc.Size.Width <= 0 || desc.Size.Height <= 0 {
		return nil, fmt.Errorf("%w: %s: invalid size %dx%d", schema.ErrRender, desc.Output, desc.Size.Width, desc.Size.Height)
	}

	xlog := desc.XAxis.Scale == schema.LogarithmicScale
	ylog := desc.YAxis.Scale == schema.LogarithmicScale
	series := make([]schema.Series, 0, len(desc.Series))
	for _, s := range desc.Series {
		kept, dropped := clipForLog(s, xlog, ylog)
		if dropped > 0 {
			r.logger().Warn("dropping points a logarithmic axis cannot show",
				"series", s.Label, "dropped", dropped)
		}
		if len(kept.X) == 0 {
			return nil, fmt.Errorf("%w: %s: series %q has no positive values on a logarithmic axis",
				schema.ErrRender, desc.Output, s.Label)
		}
		series = append(series, kept)
	}

	xRange, err := logSafeRange(desc.XAxis, xlog, series, func(s schema.Series) []float64 { return s.X })
	if err != nil {
		return nil, fmt.Errorf("%w: %s: x axis: %w", schema.ErrRender, desc.Output, err)
	}
	yRange, err := logSafeRange(desc.YAxis, ylog, series, lowerAndUpper)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: y axis: %w", schema.ErrRender, desc.Output, err)
	}

	p, err := build(desc, series, xRange, yRange)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", schema.ErrRender, desc.Output, err)
	}

	w := vg.Length(desc.Size.Width) * vg.Inch / dpi
	h := vg.Length(desc.Size.Height) * vg.Inch / dpi
	return start(desc.Output, func() error {
		return p.Save(w, h, desc.Output)
	}), nil
}

// build assembles the gonum plot for desc using the clipped series.
func build(desc schema.PlotDescription, series []schema.Series, xRange, yRange *schema.Range) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = desc.Title
	p.X.Label.Text = desc.XAxis.Label
	p.Y.Label.Text = desc.YAxis.Label

	configureAxis(&p.X, desc.XAxis)
	configureAxis(&p.Y, desc.YAxis)

	g := &gridLines{
		xMajor: desc.XAxis.MajorGrid, xMinor: desc.XAxis.MinorGrid,
		yMajor: desc.YAxis.MajorGrid, yMinor: desc.YAxis.MinorGrid,
	}
	if g.any() {
		p.Add(g)
	}

	if desc.Legend != nil {
		p.Legend.Top = desc.Legend.Top
		p.Legend.Left = desc.Legend.Left
		if desc.Legend.Outside {
			p.Legend.XOffs = vg.Points(-4)
			p.Legend.YOffs = vg.Points(-4)
		}
	}

	for _, s := range series {
		thumb, err := plotterFor(s)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		p.Add(thumb)
		if s.Label != "" && desc.Legend != nil {
			p.Legend.Add(s.Label, thumb)
		}
	}

	if xRange != nil {
		p.X.Min, p.X.Max = xRange.Min, xRange.Max
	}
	if yRange != nil {
		p.Y.Min, p.Y.Max = yRange.Min, yRange.Max
	}
	return p, nil
}

// thumbPlotter is a plotter that can appear in the legend.
type thumbPlotter interface {
	plot.Plotter
	plot.Thumbnailer
}

func plotterFor(s schema.Series) (thumbPlotter, error) {
	switch s.Shape {
	case schema.LineShape:
		l, err := plotter.NewLine(xys(s.X, s.Y))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = s.Color
		l.LineStyle.Width = vg.Points(orDefault(s.LineWidth, schema.LineWidth))
		return l, nil

	case schema.PointsShape:
		sc, err := plotter.NewScatter(xys(s.X, s.Y))
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = s.Color
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2 * orDefault(s.PointSize, schema.PointSize))
		return sc, nil

	case schema.BandShape:
		// Upper edge left to right, lower edge right to left.
		outline := make(plotter.XYs, 0, 2*len(s.X))
		for i := range s.X {
			outline = append(outline, plotter.XY{X: s.X[i], Y: s.Y[i]})
		}
		for i := len(s.X) - 1; i >= 0; i-- {
			outline = append(outline, plotter.XY{X: s.X[i], Y: s.Y2[i]})
		}
		poly, err := plotter.NewPolygon(outline)
		if err != nil {
			return nil, err
		}
		poly.Color = s.Color
		poly.LineStyle.Width = 0
		return poly, nil
	}
	return nil, fmt.Errorf("unknown shape %q", s.Shape)
}

func configureAxis(a *plot.Axis, desc schema.Axis) {
	if desc.Scale == schema.LogarithmicScale {
		a.Scale = plot.LogScale{}
		a.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if len(desc.Ticks) > 0 {
		ticks := make([]plot.Tick, len(desc.Ticks))
		for i, t := range desc.Ticks {
			ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
		}
		a.Tick.Marker = plot.ConstantTicks(ticks)
	}
}

// clipForLog removes points with non-positive coordinates on log axes.
func clipForLog(s schema.Series, xlog, ylog bool) (schema.Series, int) {
	if !xlog && !ylog {
		return s, 0
	}
	out := s
	out.X, out.Y, out.Y2 = nil, nil, nil
	dropped := 0
	for i := range s.X {
		ok := !xlog || s.X[i] > 0
		if ylog {
			ok = ok && s.Y[i] > 0
			if s.Shape == schema.BandShape {
				ok = ok && s.Y2[i] > 0
			}
		}
		if !ok {
			dropped++
			continue
		}
		out.X = append(out.X, s.X[i])
		out.Y = append(out.Y, s.Y[i])
		if s.Shape == schema.BandShape {
			out.Y2 = append(out.Y2, s.Y2[i])
		}
	}
	return out, dropped
}

// logSafeRange returns the explicit axis range, with a non-positive minimum
// raised to the smallest data value on log axes.
func logSafeRange(axis schema.Axis, isLog bool, series []schema.Series, values func(schema.Series) []float64) (*schema.Range, error) {
	if axis.Range == nil {
		return nil, nil
	}
	r := *axis.Range
	if !isLog {
		return &r, nil
	}
	if r.Min <= 0 {
		r.Min = math.Inf(1)
		for _, s := range series {
			for _, v := range values(s) {
				if v > 0 && v < r.Min {
					r.Min = v
				}
			}
		}
	}
	if math.IsInf(r.Min, 1) || r.Max <= r.Min {
		return nil, fmt.Errorf("range [%g, %g] is not usable on a logarithmic scale", axis.Range.Min, axis.Range.Max)
	}
	return &r, nil
}

func lowerAndUpper(s schema.Series) []float64 {
	return append(append([]float64(nil), s.Y...), s.Y2...)
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func (r *GonumRenderer) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// gridLines draws major and minor grid lines at the axis tick positions.
// Labelled ticks are major, unlabelled ticks are minor.
type gridLines struct {
	xMajor, xMinor bool
	yMajor, yMinor bool
}

func (g *gridLines) any() bool {
	return g.xMajor || g.xMinor || g.yMajor || g.yMinor
}

// Plot implements the plot.Plotter interface.
func (g *gridLines) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, t := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
		style, ok := g.style(t, g.xMajor, g.xMinor)
		if !ok || t.Value < plt.X.Min || t.Value > plt.X.Max {
			continue
		}
		x := trX(t.Value)
		c.StrokeLine2(style, x, c.Min.Y, x, c.Max.Y)
	}
	for _, t := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
		style, ok := g.style(t, g.yMajor, g.yMinor)
		if !ok || t.Value < plt.Y.Min || t.Value > plt.Y.Max {
			continue
		}
		y := trY(t.Value)
		c.StrokeLine2(style, c.Min.X, y, c.Max.X, y)
	}
}

func (g *gridLines) style(t plot.Tick, major, minor bool) (draw.LineStyle, bool) {
	if t.IsMinor() {
		return minorGridStyle, minor
	}
	return majorGridStyle, major
}
