// Package units scales raw measurements into readable magnitudes for plot
// axes and summary tables.
package units

import (
	"math"
	"slices"

	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
	"golang.org/x/perf/benchunit"
)

// ladder names the units a formatter can choose. Values are converted to
// the base unit first; units[i] then labels values scaled by 1000^-i.
type ladder struct {
	base  float64
	units []string
}

// siPrefixes are the benchunit.Decimal prefixes at or above one, in ladder order.
var siPrefixes = []string{"", "k", "M", "G", "T"}

// DurationFormatter scales nanosecond measurements.
type DurationFormatter struct{}

// DecimalFormatter scales unitless counts with SI-style names.
type DecimalFormatter struct{}

var (
	_ contract.ValueFormatter = DurationFormatter{} // Compile-time check
	_ contract.ValueFormatter = DecimalFormatter{}  // Compile-time check
)

// Durations are scaled in picoseconds so sub-nanosecond values get a unit.
var durationLadder = ladder{base: 1e3, units: []string{"ps", "ns", "µs", "ms", "s"}}

var decimalLadder = ladder{base: 1, units: []string{"count", "thousands", "millions", "billions"}}

// Pick returns the factor and unit label for a typical nanosecond value.
func (DurationFormatter) Pick(typical float64) (float64, string) {
	return durationLadder.pick(typical)
}

// ScaleValues multiplies values in place by the factor chosen for typical.
func (f DurationFormatter) ScaleValues(typical float64, values []float64) string {
	factor, unit := f.Pick(typical)
	scale(values, factor)
	return unit
}

// Pick returns the factor and unit label for a typical count.
func (DecimalFormatter) Pick(typical float64) (float64, string) {
	return decimalLadder.pick(typical)
}

// ScaleValues multiplies values in place by the factor chosen for typical.
func (f DecimalFormatter) ScaleValues(typical float64, values []float64) string {
	factor, unit := f.Pick(typical)
	scale(values, factor)
	return unit
}

// ForKind returns the formatter for a unit kind, defaulting to durations.
func ForKind(kind schema.UnitKind) contract.ValueFormatter {
	if kind == schema.DecimalUnit {
		return DecimalFormatter{}
	}
	return DurationFormatter{}
}

// Humanize renders a parameter value for tables: binary prefixes for
// bytes, decimal prefixes otherwise.
func Humanize(v float64, valueType schema.ValueType) string {
	class := benchunit.Decimal
	if valueType == schema.BytesValue {
		class = benchunit.Binary
	}
	return benchunit.Scale(v, class)
}

// pick lets benchunit choose the SI prefix for typical in the base unit and
// clamps it to the ladder. Values below one base unit keep the smallest unit.
func (l ladder) pick(typical float64) (float64, string) {
	t := math.Abs(typical) * l.base
	if math.IsNaN(t) {
		t = 0
	}
	s := benchunit.CommonScale([]float64{t}, benchunit.Decimal)
	i := slices.Index(siPrefixes, s.Prefix)
	switch {
	case i < 0:
		return l.base, l.units[0]
	case i >= len(l.units):
		i = len(l.units) - 1
		return l.base / math.Pow(1e3, float64(i)), l.units[i]
	}
	return l.base / s.Factor, l.units[i]
}

func scale(values []float64, factor float64) {
	for i := range values {
		values[i] *= factor
	}
}
