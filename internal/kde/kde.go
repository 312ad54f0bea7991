// Package kde estimates probability densities of benchmark samples with a
// Gaussian kernel from github.com/aclements/go-moremath/stats.
package kde

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/huangsam/benchplot/internal/contract"
)

// sweepWidths is how many bandwidths the sweep extends past the sample bounds.
const sweepWidths = 3

// ErrEmptySample is returned when there is nothing to estimate.
var ErrEmptySample = errors.New("kde: empty sample")

// Estimator is a Gaussian kernel density estimator.
type Estimator struct {
	Logger *slog.Logger
}

var _ contract.DensityEstimator = &Estimator{} // Compile-time check

// NewEstimator returns an Estimator that reports degenerate samples to logger.
// A nil logger discards them.
func NewEstimator(logger *slog.Logger) *Estimator {
	return &Estimator{Logger: logger}
}

// Estimate evaluates the density of sample at points evenly spaced x values
// covering [min-3h, max+3h]. A nil bandwidth selects Silverman's rule.
func (e *Estimator) Estimate(sample []float64, points int, bandwidth *float64) ([]float64, []float64, error) {
	if len(sample) == 0 {
		return nil, nil, ErrEmptySample
	}
	if points < 1 {
		return nil, nil, fmt.Errorf("kde: need at least one point (received %d)", points)
	}
	for _, v := range sample {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, fmt.Errorf("kde: sample contains non-finite value %v", v)
		}
	}

	s := stats.Sample{Xs: sample}
	lo, hi := s.Bounds()

	var h float64
	if bandwidth != nil {
		h = *bandwidth
	} else {
		h = stats.BandwidthSilverman(s)
	}
	if !(h > 0) || math.IsInf(h, 0) {
		h = FallbackBandwidth((lo + hi) / 2)
		e.logger().Warn("degenerate sample, using narrow bandwidth",
			"samples", len(sample), "bandwidth", h)
	}

	k := stats.KDE{
		Sample:    s,
		Kernel:    stats.GaussianKernel,
		Bandwidth: h,
	}

	start := lo - sweepWidths*h
	end := hi + sweepWidths*h
	xs := make([]float64, points)
	ys := make([]float64, points)
	step := 0.0
	if points > 1 {
		step = (end - start) / float64(points-1)
	}
	for i := range xs {
		x := start + float64(i)*step
		if points == 1 {
			x = (lo + hi) / 2
		}
		y := k.PDF(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			y = 0
		}
		xs[i] = x
		ys[i] = y
	}
	return xs, ys, nil
}

// FallbackBandwidth is the bandwidth used when the sample has no spread:
// one percent of |center|, or 1e-9 at zero.
func FallbackBandwidth(center float64) float64 {
	if h := math.Abs(center) * 0.01; h > 0 {
		return h
	}
	return 1e-9
}

func (e *Estimator) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
