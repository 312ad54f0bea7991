package algo

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/huangsam/benchplot/schema"
)

// Mean returns the arithmetic mean of a sample, or NaN when it is empty.
func Mean(sample []float64) float64 {
	if len(sample) == 0 {
		return math.NaN()
	}
	return stats.Mean(sample)
}

// MaxMean returns the largest curve mean. NaN means are skipped, so the result
// is NaN only when no curve has a usable mean.
func MaxMean(curves []schema.Curve) float64 {
	maxMean := math.NaN()
	for _, c := range curves {
		m := Mean(c.Sample)
		if math.IsNaN(m) {
			continue
		}
		if math.IsNaN(maxMean) || m > maxMean {
			maxMean = m
		}
	}
	return maxMean
}

// NormalizePeak divides every value by the maximum so the peak becomes 1.
// A peak that is zero, negative or not finite yields all zeros, which draws
// as no visible band. Negative values are clamped to zero. It reports whether
// the input was usable.
func NormalizePeak(ys []float64) ([]float64, bool) {
	out := make([]float64, len(ys))
	peak := math.Inf(-1)
	for _, y := range ys {
		if y > peak {
			peak = y
		}
	}
	if len(ys) == 0 || peak <= 0 || math.IsInf(peak, 0) || math.IsNaN(peak) {
		return out, false
	}
	for i, y := range ys {
		v := y / peak
		if !(v > 0) || math.IsInf(v, 0) {
			v = 0
		}
		out[i] = v
	}
	return out, true
}

// PositiveBounds returns the min and max over all strictly positive values.
// The last return value is false when no value is positive.
func PositiveBounds(series ...[]float64) (lo, hi float64, ok bool) {
	for _, xs := range series {
		for _, x := range xs {
			if !(x > 0) || math.IsInf(x, 1) {
				continue
			}
			if !ok {
				lo, hi, ok = x, x, true
				continue
			}
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
	}
	return lo, hi, ok
}
