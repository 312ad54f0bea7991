package core

import (
	"math"

	"github.com/huangsam/benchplot/schema"
)

// curve builds a curve with an optional function identity ("" means none).
func curve(function, value string, sample ...float64) schema.Curve {
	id := schema.BenchmarkID{GroupID: "bench", ValueStr: schema.StringPtr(value)}
	if function != "" {
		id.FunctionID = schema.StringPtr(function)
	}
	return schema.Curve{ID: id, Sample: sample}
}

// identityFormatter keeps values unchanged and reports a fixed unit.
type identityFormatter struct{ unit string }

func (f identityFormatter) ScaleValues(_ float64, _ []float64) string { return f.unit }

// scalingFormatter multiplies by a fixed factor.
type scalingFormatter struct {
	factor float64
	unit   string
}

func (f scalingFormatter) ScaleValues(_ float64, values []float64) string {
	for i := range values {
		values[i] *= f.factor
	}
	return f.unit
}

// gaussianDensity returns a bell curve centered on the sample mean.
type gaussianDensity struct{}

func (gaussianDensity) Estimate(sample []float64, points int, _ *float64) ([]float64, []float64, error) {
	mean := 0.0
	for _, v := range sample {
		mean += v
	}
	mean /= float64(len(sample))
	xs := make([]float64, points)
	ys := make([]float64, points)
	for i := range xs {
		xs[i] = mean*0.5 + mean*float64(i)/float64(points-1)
		d := (xs[i] - mean) / (mean * 0.1)
		ys[i] = 3 * math.Exp(-d*d/2)
	}
	return xs, ys, nil
}

// flatDensity returns a zero density everywhere.
type flatDensity struct{ x []float64 }

func (f flatDensity) Estimate(_ []float64, _ int, _ *float64) ([]float64, []float64, error) {
	return f.x, make([]float64, len(f.x)), nil
}
