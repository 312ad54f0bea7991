package algo

import (
	"math"
	"testing"

	"github.com/huangsam/benchplot/schema"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{"zero", 0, "0b"},
		{"bytes", 512, "512b"},
		{"just below kilobyte", 1023, "1023b"},
		{"exactly kilobyte", 1024, "1Kb"},
		{"kilobytes", 2048, "2Kb"},
		{"rounded kilobytes", 1536, "2Kb"},
		{"megabytes", 5 * 1024 * 1024, "5Mb"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, "3Gb"},
		{"terabyte stays in gigabytes", 1024 * 1024 * 1024 * 1024, "1024Gb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.input))
		})
	}
}

func TestColorFor(t *testing.T) {
	t.Run("eleven groups cycle after nine", func(t *testing.T) {
		colors := make([]schema.Color, 11)
		for i := range colors {
			colors[i] = ColorFor(i)
		}
		assert.Equal(t, colors[0], colors[9])
		assert.Equal(t, colors[1], colors[10])
		assert.NotEqual(t, colors[0], colors[1])
	})

	t.Run("palette entries are distinct", func(t *testing.T) {
		seen := make(map[schema.Color]bool)
		for i := range NumColors {
			seen[ColorFor(i)] = true
		}
		assert.Len(t, seen, NumColors)
	})

	t.Run("negative index wraps", func(t *testing.T) {
		assert.Equal(t, ColorFor(8), ColorFor(-1))
	})
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-12)
	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestMaxMean(t *testing.T) {
	curves := []schema.Curve{
		{Sample: []float64{1, 1}},
		{Sample: nil},
		{Sample: []float64{4, 6}},
	}
	assert.InDelta(t, 5.0, MaxMean(curves), 1e-12)
	assert.True(t, math.IsNaN(MaxMean(nil)))
}

func TestNormalizePeak(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		want   []float64
		wantOK bool
	}{
		{"regular", []float64{1, 2, 4}, []float64{0.25, 0.5, 1}, true},
		{"zero peak", []float64{0, 0}, []float64{0, 0}, false},
		{"infinite peak", []float64{1, math.Inf(1)}, []float64{0, 0}, false},
		{"nan entries ignored for peak", []float64{math.NaN(), 2}, []float64{0, 1}, true},
		{"negative clamped", []float64{-2, 1, 2}, []float64{0, 0.5, 1}, true},
		{"empty", nil, []float64{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePeak(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestPositiveBounds(t *testing.T) {
	t.Run("skips non positive values", func(t *testing.T) {
		lo, hi, ok := PositiveBounds([]float64{-3, 0, 2}, []float64{5, 1})
		assert.True(t, ok)
		assert.Equal(t, 1.0, lo)
		assert.Equal(t, 5.0, hi)
	})

	t.Run("nothing positive", func(t *testing.T) {
		_, _, ok := PositiveBounds([]float64{-1, 0, math.NaN()})
		assert.False(t, ok)
	})
}

// FuzzFormatBytes fuzzes FormatBytes with arbitrary byte counts.
func FuzzFormatBytes(f *testing.F) {
	for _, seed := range []int64{0, 1, 1023, 1024, 1 << 20, 1 << 30, -1} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, n int64) {
		s := FormatBytes(n)
		assert.NotEmpty(t, s)
	})
}
