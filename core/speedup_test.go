package core

import (
	"testing"

	"github.com/huangsam/benchplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupsOf(t *testing.T, curves ...schema.Curve) []Group {
	t.Helper()
	groups, err := GroupCurves(curves, schema.RunsGrouping, nil)
	require.NoError(t, err)
	return groups
}

func TestSpeedupRatioIsRelativeToBaseline(t *testing.T) {
	tests := []struct {
		name   string
		curves []schema.Curve
	}{
		{"baseline first", []schema.Curve{curve("base", "10", 2), curve("new", "10", 4)}},
		{"comparison first", []schema.Curve{curve("new", "10", 4), curve("base", "10", 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Speedup(groupsOf(t, tt.curves...), "base")
			require.NoError(t, err)
			require.Len(t, result.Points, 1)
			assert.Equal(t, uint64(10), result.Points[0].X)
			assert.InDelta(t, 0.5, result.Points[0].Ratio, 1e-12)
			assert.Equal(t, 4.0, result.MaxMean)
		})
	}
}

func TestSpeedupOrderedByParameter(t *testing.T) {
	groups := groupsOf(t,
		curve("base", "100", 10), curve("base", "1", 1), curve("base", "10.7", 5),
		curve("new", "10", 10), curve("new", "1", 2), curve("new", "100", 5),
	)

	result, err := Speedup(groups, "base")
	require.NoError(t, err)

	xs, ys := result.XY()
	assert.Equal(t, []float64{1, 10, 100}, xs)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 2}, ys, 1e-12)
}

func TestSpeedupContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		curves []schema.Curve
	}{
		{"three contributors", []schema.Curve{curve("base", "1", 1), curve("a", "1", 2), curve("b", "1", 3)}},
		{"two baselines", []schema.Curve{curve("base", "1", 1), curve("other", "2", 1), curve("base", "1", 2)}},
		{"two comparisons", []schema.Curve{curve("a", "1", 1), curve("b", "1", 2)}},
		{"missing comparison", []schema.Curve{curve("base", "1", 1), curve("base", "2", 1), curve("new", "1", 2)}},
		{"missing baseline", []schema.Curve{curve("new", "1", 1)}},
		{"no function identity", []schema.Curve{curve("", "1", 1), curve("base", "1", 1)}},
		{"non numeric parameter", []schema.Curve{curve("base", "big", 1)}},
		{"negative parameter", []schema.Curve{curve("base", "-1", 1)}},
		{"parameter beyond the key range", []schema.Curve{curve("base", "1e20", 2), curve("new", "1e21", 4)}},
		{"zero comparison mean", []schema.Curve{curve("base", "1", 1), curve("new", "1", 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Speedup(groupsOf(t, tt.curves...), "base")
			require.Error(t, err)
			assert.ErrorIs(t, err, schema.ErrCallerContract)
		})
	}
}
